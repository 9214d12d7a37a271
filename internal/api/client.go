package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// Client talks to the MailPilot backend over its JSON REST surface.
// It performs no retries and sets no client-side timeout; slow calls
// stay outstanding until the backend answers.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// CreateAccountRequest carries the add-account form fields. The
// password is submitted once and never stored on the client.
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IMAPHost string `json:"imap_host"`
	IMAPPort int    `json:"imap_port"`
	IMAPTLS  bool   `json:"imap_tls"`
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port"`
	SMTPTLS  bool   `json:"smtp_tls"`
}

// TestConnectionRequest carries the IMAP probe fields.
type TestConnectionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IMAPHost string `json:"imap_host"`
	IMAPPort int    `json:"imap_port"`
	IMAPTLS  bool   `json:"imap_tls"`
}

type syncRequest struct {
	Limit int `json:"limit"`
}

type draftRequest struct {
	Language string `json:"language"`
}

type aiResult struct {
	Result string `json:"result"`
}

// ListAccounts fetches all configured accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, &accounts); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// CreateAccount submits a new account and returns the created entity.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodPost, "/accounts", req, &account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

// TestConnection probes the IMAP credentials. A nil error means the
// backend reached the mailbox; no state changes either way.
func (c *Client) TestConnection(ctx context.Context, req TestConnectionRequest) error {
	if err := c.do(ctx, http.MethodPost, "/accounts/test", req, nil); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	return nil
}

// SyncAccount triggers a bounded backend sync for the account. The
// response body is opaque; callers reload threads separately.
func (c *Client) SyncAccount(ctx context.Context, accountID int64, limit int) error {
	path := fmt.Sprintf("/accounts/%d/sync", accountID)
	if err := c.do(ctx, http.MethodPost, path, syncRequest{Limit: limit}, nil); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	return nil
}

// ListThreads fetches the thread list for an account.
func (c *Client) ListThreads(ctx context.Context, accountID int64) ([]models.Thread, error) {
	var threads []models.Thread
	path := fmt.Sprintf("/threads/account/%d", accountID)
	if err := c.do(ctx, http.MethodGet, path, nil, &threads); err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	return threads, nil
}

// ListSubscriptions fetches the newsletter sender buckets for an
// account.
func (c *Client) ListSubscriptions(ctx context.Context, accountID int64) ([]models.Subscription, error) {
	var subs []models.Subscription
	path := fmt.Sprintf("/threads/newsletters/%d", accountID)
	if err := c.do(ctx, http.MethodGet, path, nil, &subs); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// ListMessages fetches the messages of a thread in server order.
func (c *Client) ListMessages(ctx context.Context, threadID int64) ([]models.Message, error) {
	var messages []models.Message
	path := fmt.Sprintf("/threads/%d/messages", threadID)
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// GetInsights fetches the AI insight bundle for a thread.
func (c *Client) GetInsights(ctx context.Context, threadID int64) (*models.Insight, error) {
	var insight models.Insight
	path := fmt.Sprintf("/threads/%d/insights", threadID)
	if err := c.do(ctx, http.MethodGet, path, nil, &insight); err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}
	return &insight, nil
}

// Summarize asks the backend AI for a fresh thread summary.
func (c *Client) Summarize(ctx context.Context, threadID int64) (string, error) {
	var result aiResult
	path := fmt.Sprintf("/threads/%d/ai/summarize", threadID)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return "", fmt.Errorf("summarize failed: %w", err)
	}
	return result.Result, nil
}

// DraftReply asks the backend AI for a reply draft in the given
// language. The text is returned to the caller; it is never sent as an
// email by this client.
func (c *Client) DraftReply(ctx context.Context, threadID int64, language string) (string, error) {
	var result aiResult
	path := fmt.Sprintf("/threads/%d/ai/draft", threadID)
	if err := c.do(ctx, http.MethodPost, path, draftRequest{Language: language}, &result); err != nil {
		return "", fmt.Errorf("draft failed: %w", err)
	}
	return result.Result, nil
}

// GetUnsubscribeOptions fetches the parsed unsubscribe targets for a
// subscription.
func (c *Client) GetUnsubscribeOptions(ctx context.Context, subscriptionID int64) (*models.UnsubscribeOptions, error) {
	var opts models.UnsubscribeOptions
	path := fmt.Sprintf("/threads/newsletters/%d/unsubscribe", subscriptionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &opts); err != nil {
		return nil, fmt.Errorf("failed to get unsubscribe options: %w", err)
	}
	return &opts, nil
}

// do issues one JSON round trip. A non-2xx status is an error; out is
// left untouched in every error case.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend returned status %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}
