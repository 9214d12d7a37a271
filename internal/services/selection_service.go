package services

import (
	"sync"

	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// SelectionServiceImpl implements SelectionService. The thread and
// subscription pointers are independent; they live in different tabs
// and selecting one never clears the other.
//
// Navigation reads the filtered view through a live accessor on every
// step, never through a slice captured at registration time. A
// selection that has dropped out of the view after a filter or account
// change is tolerated; its index simply resolves to -1 until the user
// navigates again.
type SelectionServiceImpl struct {
	view func() []models.Thread

	mu            sync.RWMutex
	thread        *models.Thread
	subscription  *models.Subscription
	threadSubs    []func(thread models.Thread)
	subscriptSubs []func(sub models.Subscription)
}

// NewSelectionService creates a selection controller over the given
// live filtered-view accessor.
func NewSelectionService(view func() []models.Thread) *SelectionServiceImpl {
	return &SelectionServiceImpl{view: view}
}

// SelectThread sets the thread pointer and notifies listeners.
func (s *SelectionServiceImpl) SelectThread(thread models.Thread) {
	s.mu.Lock()
	selected := thread
	s.thread = &selected
	listeners := make([]func(models.Thread), len(s.threadSubs))
	copy(listeners, s.threadSubs)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(thread)
	}
}

// SelectedThread returns the current thread pointer, if set.
func (s *SelectionServiceImpl) SelectedThread() (models.Thread, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.thread == nil {
		return models.Thread{}, false
	}
	return *s.thread, true
}

// SelectSubscription sets the subscription pointer and notifies
// listeners.
func (s *SelectionServiceImpl) SelectSubscription(sub models.Subscription) {
	s.mu.Lock()
	selected := sub
	s.subscription = &selected
	listeners := make([]func(models.Subscription), len(s.subscriptSubs))
	copy(listeners, s.subscriptSubs)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(sub)
	}
}

// SelectedSubscription returns the current subscription pointer, if
// set.
func (s *SelectionServiceImpl) SelectedSubscription() (models.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.subscription == nil {
		return models.Subscription{}, false
	}
	return *s.subscription, true
}

// StepThread moves the thread selection within the current filtered
// view. Next wraps from the end to the first element; previous wraps
// from the start to the last. A selection absent from the view counts
// as index -1, so next lands on the first element and previous on the
// last. An empty view is a no-op.
func (s *SelectionServiceImpl) StepThread(dir StepDirection) {
	view := s.view()
	if len(view) == 0 {
		return
	}

	index := -1
	if current, ok := s.SelectedThread(); ok {
		for i, t := range view {
			if t.ID == current.ID {
				index = i
				break
			}
		}
	}

	var target int
	switch dir {
	case StepPrevious:
		target = index - 1
		if target < 0 {
			target = len(view) - 1
		}
	default:
		target = index + 1
		if target >= len(view) {
			target = 0
		}
	}

	s.SelectThread(view[target])
}

// SubscribeThread registers a listener for thread selection changes.
func (s *SelectionServiceImpl) SubscribeThread(fn func(thread models.Thread)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threadSubs = append(s.threadSubs, fn)
}

// SubscribeSubscription registers a listener for subscription
// selection changes.
func (s *SelectionServiceImpl) SubscribeSubscription(fn func(sub models.Subscription)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptSubs = append(s.subscriptSubs, fn)
}
