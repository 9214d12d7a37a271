package services

import (
	"context"
	"log"
	"sync"

	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// DetailServiceImpl implements DetailService. It holds the detail
// state of the currently selected thread: messages, the insight bundle
// and the reply draft.
//
// Both loads run as independent tasks tagged with the thread id they
// were issued for. When a response arrives it is applied only if that
// id still matches the live selection; otherwise it is silently
// dropped. In-flight requests are never aborted, only ignored.
type DetailServiceImpl struct {
	client   DetailAPI
	notifier Toaster
	logger   *log.Logger
	selected func() (int64, bool)

	mu        sync.RWMutex
	messages  []models.Message
	insight   models.Insight
	draft     string
	listeners []func()
}

// NewDetailService creates a detail loader. selected is the live
// selected-thread accessor consulted at response-arrival time.
func NewDetailService(client DetailAPI, notifier Toaster, logger *log.Logger, selected func() (int64, bool)) *DetailServiceImpl {
	return &DetailServiceImpl{
		client:   client,
		notifier: notifier,
		logger:   logger,
		selected: selected,
	}
}

// LoadForThread issues the messages and insights loads for the thread.
// The two loads fail independently; one failing does not block the
// other from rendering.
func (s *DetailServiceImpl) LoadForThread(ctx context.Context, threadID int64) {
	go s.loadMessages(ctx, threadID)
	go s.loadInsights(ctx, threadID)
}

func (s *DetailServiceImpl) loadMessages(ctx context.Context, threadID int64) {
	messages, err := s.client.ListMessages(ctx, threadID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("message load failed for thread %d: %v", threadID, err)
		}
		s.notifier.Post("Messages failed to load.")
		return
	}
	s.mu.Lock()
	if !s.isCurrent(threadID) {
		s.mu.Unlock()
		return
	}
	s.messages = messages
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

func (s *DetailServiceImpl) loadInsights(ctx context.Context, threadID int64) {
	insight, err := s.client.GetInsights(ctx, threadID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("insight load failed for thread %d: %v", threadID, err)
		}
		s.notifier.Post("Insights failed to load.")
		return
	}
	s.mu.Lock()
	if !s.isCurrent(threadID) {
		s.mu.Unlock()
		return
	}
	s.insight = *insight
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// ApplySummary overwrites only the insight summary, keeping actions
// and labels. Discarded if the thread is no longer selected.
func (s *DetailServiceImpl) ApplySummary(threadID int64, summary string) {
	s.mu.Lock()
	if !s.isCurrent(threadID) {
		s.mu.Unlock()
		return
	}
	s.insight.Summary = summary
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// ApplyDraft overwrites the draft wholesale, discarding any unsaved
// user edits. Discarded if the thread is no longer selected.
func (s *DetailServiceImpl) ApplyDraft(threadID int64, text string) {
	s.mu.Lock()
	if !s.isCurrent(threadID) {
		s.mu.Unlock()
		return
	}
	s.draft = text
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// Reset clears all detail state. Called when the thread selection
// changes, before the new loads are issued.
func (s *DetailServiceImpl) Reset() {
	s.mu.Lock()
	s.messages = nil
	s.insight = models.Insight{}
	s.draft = ""
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// Messages returns the loaded messages in server order.
func (s *DetailServiceImpl) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Insight returns the current insight bundle.
func (s *DetailServiceImpl) Insight() models.Insight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	insight := s.insight
	insight.Actions = append([]string(nil), s.insight.Actions...)
	insight.Labels = append([]string(nil), s.insight.Labels...)
	return insight
}

// Draft returns the current reply draft text.
func (s *DetailServiceImpl) Draft() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// SetDraft records a user edit to the draft. Never submitted anywhere.
func (s *DetailServiceImpl) SetDraft(text string) {
	s.mu.Lock()
	s.draft = text
	s.mu.Unlock()
}

// Subscribe registers a listener invoked after every detail change.
func (s *DetailServiceImpl) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// isCurrent re-reads the live selection at apply time; responses for
// any other thread are stale. Called with the state lock held so a
// selection change cannot slip between check and apply.
func (s *DetailServiceImpl) isCurrent(threadID int64) bool {
	id, ok := s.selected()
	return ok && id == threadID
}

func (s *DetailServiceImpl) snapshotListeners() []func() {
	out := make([]func(), len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}
