package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/mailpilot/mailpilot-tui/internal/api"
	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// AccountServiceImpl implements AccountService. It holds the account
// list and the single selected account; all dependent loads hang off
// the selection listeners rather than direct calls.
type AccountServiceImpl struct {
	client   AccountAPI
	notifier Toaster
	logger   *log.Logger

	mu        sync.RWMutex
	accounts  []models.Account
	selected  *models.Account
	listeners []func(selected models.Account)
}

// NewAccountService creates a new account store.
func NewAccountService(client AccountAPI, notifier Toaster, logger *log.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// Load fetches all accounts and replaces the list. The current
// selection is left alone; no auto-select happens when none exists.
func (s *AccountServiceImpl) Load(ctx context.Context) error {
	accounts, err := s.client.ListAccounts(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("account load failed: %v", err)
		}
		s.notifier.Post("Accounts failed to load.")
		return err
	}

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()
	return nil
}

// Accounts returns a copy of the account list.
func (s *AccountServiceImpl) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Select sets the current account and notifies listeners.
func (s *AccountServiceImpl) Select(account models.Account) {
	s.mu.Lock()
	selected := account
	s.selected = &selected
	listeners := make([]func(models.Account), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(account)
	}
}

// Selected returns the current account, if any.
func (s *AccountServiceImpl) Selected() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return models.Account{}, false
	}
	return *s.selected, true
}

// Create validates the form, submits it, and on success prepends the
// new account and selects it. On any failure the list stays exactly as
// it was; no partial account is ever added.
func (s *AccountServiceImpl) Create(ctx context.Context, form AccountForm) error {
	req, err := buildCreateRequest(form)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("account form rejected: %v", err)
		}
		s.notifier.Post("Account could not be saved.")
		return err
	}

	account, err := s.client.CreateAccount(ctx, req)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("account create failed: %v", err)
		}
		s.notifier.Post("Account could not be saved.")
		return err
	}

	s.mu.Lock()
	s.accounts = append([]models.Account{*account}, s.accounts...)
	s.mu.Unlock()

	s.Select(*account)
	return nil
}

// TestConnection probes the IMAP settings without touching the account
// list. The outcome surfaces exclusively as a toast.
func (s *AccountServiceImpl) TestConnection(ctx context.Context, form AccountForm) {
	port, err := parsePort(form.IMAPPort)
	if err != nil {
		s.notifier.Post("IMAP connection failed.")
		return
	}

	err = s.client.TestConnection(ctx, api.TestConnectionRequest{
		Email:    form.Email,
		Password: form.Password,
		IMAPHost: form.IMAPHost,
		IMAPPort: port,
		IMAPTLS:  form.IMAPTLS,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("connection test failed: %v", err)
		}
		s.notifier.Post("IMAP connection failed.")
		return
	}
	s.notifier.Post("IMAP connection successful.")
}

// Subscribe registers a listener invoked whenever the selected account
// changes.
func (s *AccountServiceImpl) Subscribe(fn func(selected models.Account)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// buildCreateRequest validates the raw form values into a backend
// request. Ports must parse as non-negative integers.
func buildCreateRequest(form AccountForm) (api.CreateAccountRequest, error) {
	imapPort, err := parsePort(form.IMAPPort)
	if err != nil {
		return api.CreateAccountRequest{}, fmt.Errorf("imap port: %w", err)
	}
	smtpPort, err := parsePort(form.SMTPPort)
	if err != nil {
		return api.CreateAccountRequest{}, fmt.Errorf("smtp port: %w", err)
	}

	return api.CreateAccountRequest{
		Email:    form.Email,
		Password: form.Password,
		IMAPHost: form.IMAPHost,
		IMAPPort: imapPort,
		IMAPTLS:  form.IMAPTLS,
		SMTPHost: form.SMTPHost,
		SMTPPort: smtpPort,
		SMTPTLS:  form.SMTPTLS,
	}, nil
}

// parsePort parses a form port field as a non-negative integer.
func parsePort(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	port, err := strconv.Atoi(raw)
	if err != nil || port < 0 {
		return 0, ErrInvalidPort
	}
	return port, nil
}
