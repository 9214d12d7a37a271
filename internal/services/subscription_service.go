package services

import (
	"context"
	"log"
	"sync"

	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// SubscriptionServiceImpl implements SubscriptionService. It follows
// the same account-scoping discipline as the thread store and the same
// staleness discipline as the detail loader: unsubscribe options that
// arrive after the user picked a different subscription are dropped.
type SubscriptionServiceImpl struct {
	client   SubscriptionAPI
	notifier Toaster
	logger   *log.Logger
	selected func() (int64, bool)

	mu            sync.RWMutex
	subscriptions []models.Subscription
	options       *models.UnsubscribeOptions
	listeners     []func()
}

// NewSubscriptionService creates a subscription store. selected is the
// live selected-subscription accessor consulted at response arrival.
func NewSubscriptionService(client SubscriptionAPI, notifier Toaster, logger *log.Logger, selected func() (int64, bool)) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{
		client:   client,
		notifier: notifier,
		logger:   logger,
		selected: selected,
	}
}

// LoadForAccount replaces the subscription list with the account's
// newsletter buckets.
func (s *SubscriptionServiceImpl) LoadForAccount(ctx context.Context, accountID int64) error {
	subs, err := s.client.ListSubscriptions(ctx, accountID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("subscription load failed for account %d: %v", accountID, err)
		}
		s.notifier.Post("Newsletters failed to load.")
		return err
	}

	s.mu.Lock()
	s.subscriptions = subs
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
	return nil
}

// Subscriptions returns a copy of the subscription list.
func (s *SubscriptionServiceImpl) Subscriptions() []models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Subscription, len(s.subscriptions))
	copy(out, s.subscriptions)
	return out
}

// LoadUnsubscribeOptions fetches the unsubscribe targets for the
// subscription and replaces the stored value, unless the selection
// moved on while the request was outstanding.
func (s *SubscriptionServiceImpl) LoadUnsubscribeOptions(ctx context.Context, subscriptionID int64) {
	opts, err := s.client.GetUnsubscribeOptions(ctx, subscriptionID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("unsubscribe options failed for subscription %d: %v", subscriptionID, err)
		}
		s.notifier.Post("Unsubscribe options failed to load.")
		return
	}

	s.mu.Lock()
	if id, ok := s.selected(); !ok || id != subscriptionID {
		s.mu.Unlock()
		return
	}
	s.options = opts
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// UnsubscribeOptions returns the options for the selected
// subscription, if loaded.
func (s *SubscriptionServiceImpl) UnsubscribeOptions() (models.UnsubscribeOptions, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.options == nil {
		return models.UnsubscribeOptions{}, false
	}
	return *s.options, true
}

// ResetOptions clears the unsubscribe options. Called when the
// subscription selection changes, before the new load is issued.
func (s *SubscriptionServiceImpl) ResetOptions() {
	s.mu.Lock()
	s.options = nil
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// Subscribe registers a listener invoked after every store change.
func (s *SubscriptionServiceImpl) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *SubscriptionServiceImpl) snapshotListeners() []func() {
	out := make([]func(), len(s.listeners))
	copy(out, s.listeners)
	return out
}
