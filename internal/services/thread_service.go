package services

import (
	"context"
	"log"
	"sync"

	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// Focus/needs-reply priority thresholds, computed server-side and only
// compared here.
const (
	focusMinScore      = 40
	needsReplyMinScore = 60
)

// ThreadServiceImpl implements ThreadService. The raw list is replaced
// wholesale on every load; filtered views are recomputed on demand and
// never stored.
type ThreadServiceImpl struct {
	client   ThreadAPI
	notifier Toaster
	logger   *log.Logger

	mu        sync.RWMutex
	threads   []models.Thread
	listeners []func()
}

// NewThreadService creates a new thread store.
func NewThreadService(client ThreadAPI, notifier Toaster, logger *log.Logger) *ThreadServiceImpl {
	return &ThreadServiceImpl{
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// LoadForAccount replaces the thread list with the account's threads.
// Called on account selection and again after every successful sync.
func (s *ThreadServiceImpl) LoadForAccount(ctx context.Context, accountID int64) error {
	threads, err := s.client.ListThreads(ctx, accountID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("thread load failed for account %d: %v", accountID, err)
		}
		s.notifier.Post("Threads failed to load.")
		return err
	}

	s.mu.Lock()
	s.threads = threads
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return nil
}

// Threads returns a copy of the raw thread list in backend order.
func (s *ThreadServiceImpl) Threads() []models.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Thread, len(s.threads))
	copy(out, s.threads)
	return out
}

// Filtered returns the tab's view of the current thread list.
func (s *ThreadServiceImpl) Filtered(tab models.Tab) []models.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterThreads(s.threads, tab)
}

// Subscribe registers a listener invoked after every list replacement.
func (s *ThreadServiceImpl) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// FilterThreads derives the tab view from a thread list. It is pure:
// backend order is preserved and the input is never mutated. Note the
// newsletters predicate exists for completeness; the newsletters tab
// renders the subscription list instead of its output.
func FilterThreads(threads []models.Thread, tab models.Tab) []models.Thread {
	out := make([]models.Thread, 0, len(threads))
	for _, t := range threads {
		switch tab {
		case models.TabNewsletters:
			if t.IsNewsletter {
				out = append(out, t)
			}
		case models.TabNeedsReply:
			if t.PriorityScore > needsReplyMinScore {
				out = append(out, t)
			}
		case models.TabAll:
			out = append(out, t)
		default: // focus
			if t.PriorityScore >= focusMinScore && !t.IsNewsletter {
				out = append(out, t)
			}
		}
	}
	return out
}
