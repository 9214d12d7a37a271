package services

import (
	"context"

	"github.com/mailpilot/mailpilot-tui/internal/api"
	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// Backend API slices consumed by the stores. The concrete *api.Client
// satisfies all of them; tests substitute narrow stubs.

// AccountAPI covers account listing, creation and the IMAP probe.
type AccountAPI interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, req api.CreateAccountRequest) (*models.Account, error)
	TestConnection(ctx context.Context, req api.TestConnectionRequest) error
}

// ThreadAPI covers the per-account thread list.
type ThreadAPI interface {
	ListThreads(ctx context.Context, accountID int64) ([]models.Thread, error)
}

// SubscriptionAPI covers newsletter buckets and their unsubscribe
// targets.
type SubscriptionAPI interface {
	ListSubscriptions(ctx context.Context, accountID int64) ([]models.Subscription, error)
	GetUnsubscribeOptions(ctx context.Context, subscriptionID int64) (*models.UnsubscribeOptions, error)
}

// DetailAPI covers the two per-thread detail loads.
type DetailAPI interface {
	ListMessages(ctx context.Context, threadID int64) ([]models.Message, error)
	GetInsights(ctx context.Context, threadID int64) (*models.Insight, error)
}

// AIAPI covers the on-demand AI actions.
type AIAPI interface {
	Summarize(ctx context.Context, threadID int64) (string, error)
	DraftReply(ctx context.Context, threadID int64, language string) (string, error)
}

// SyncAPI covers the backend sync trigger.
type SyncAPI interface {
	SyncAccount(ctx context.Context, accountID int64, limit int) error
}

// Service interfaces

// Toaster accepts transient user-facing notifications. Any store may
// post; the queue holds at most one message (last write wins).
type Toaster interface {
	Post(msg string)
}

// ToastService is the full notification surface including display
// subscription and dismissal.
type ToastService interface {
	Toaster
	Current() string
	Dismiss()
	Subscribe(fn func(msg string))
}

// AccountService owns the account list and the current account
// selection.
type AccountService interface {
	Load(ctx context.Context) error
	Accounts() []models.Account
	Select(account models.Account)
	Selected() (models.Account, bool)
	Create(ctx context.Context, form AccountForm) error
	TestConnection(ctx context.Context, form AccountForm)
	Subscribe(fn func(selected models.Account))
}

// ThreadService owns the raw thread list for the selected account and
// its tab-filtered derivations.
type ThreadService interface {
	LoadForAccount(ctx context.Context, accountID int64) error
	Threads() []models.Thread
	Filtered(tab models.Tab) []models.Thread
	Subscribe(fn func())
}

// SubscriptionService owns the newsletter bucket list and the
// unsubscribe options of the selected bucket.
type SubscriptionService interface {
	LoadForAccount(ctx context.Context, accountID int64) error
	Subscriptions() []models.Subscription
	LoadUnsubscribeOptions(ctx context.Context, subscriptionID int64)
	UnsubscribeOptions() (models.UnsubscribeOptions, bool)
	Subscribe(fn func())
}

// StepDirection selects which neighbour StepThread moves to.
type StepDirection int

const (
	StepNext StepDirection = iota
	StepPrevious
)

// SelectionService owns the selected-thread and selected-subscription
// pointers and keyboard-driven navigation over the live filtered view.
type SelectionService interface {
	SelectThread(thread models.Thread)
	SelectedThread() (models.Thread, bool)
	SelectSubscription(sub models.Subscription)
	SelectedSubscription() (models.Subscription, bool)
	StepThread(dir StepDirection)
	SubscribeThread(fn func(thread models.Thread))
	SubscribeSubscription(fn func(sub models.Subscription))
}

// DetailService owns the messages, insight and draft of the selected
// thread.
type DetailService interface {
	LoadForThread(ctx context.Context, threadID int64)
	Reset()
	Messages() []models.Message
	Insight() models.Insight
	Draft() string
	SetDraft(text string)
	Subscribe(fn func())
}

// AIService issues on-demand summarize/draft requests and writes the
// results back into the detail state.
type AIService interface {
	Summarize(ctx context.Context, threadID int64)
	DraftReply(ctx context.Context, threadID int64, language string)
}

// SyncService triggers a backend sync and refreshes the thread list on
// completion.
type SyncService interface {
	SyncNow(ctx context.Context, accountID int64, limit int)
}

// AccountForm carries raw add-account form values before validation.
// Ports arrive as strings straight from the input fields; TLS flags
// come from checkboxes.
type AccountForm struct {
	Email    string
	Password string
	IMAPHost string
	IMAPPort string
	IMAPTLS  bool
	SMTPHost string
	SMTPPort string
	SMTPTLS  bool
}
