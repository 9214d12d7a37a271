package services

import (
	"log"
	"sync"
	"time"
)

// toastTTL is how long a toast stays up before auto-dismissing.
const toastTTL = 5 * time.Second

// ToastServiceImpl implements ToastService. It holds at most one
// message: posting overwrites any unread previous toast instead of
// queuing. The auto-dismiss timer is generation-guarded so it never
// clears a toast that was posted after the timer started.
type ToastServiceImpl struct {
	mu        sync.Mutex
	current   string
	gen       uint64
	timer     *time.Timer
	listeners []func(msg string)
	logger    *log.Logger
}

// NewToastService creates a toast queue. The logger may be nil.
func NewToastService(logger *log.Logger) *ToastServiceImpl {
	return &ToastServiceImpl{logger: logger}
}

// Post replaces the current toast with msg and arms the auto-dismiss
// timer. Empty messages are ignored.
func (s *ToastServiceImpl) Post(msg string) {
	if msg == "" {
		return
	}

	s.mu.Lock()
	if s.logger != nil {
		s.logger.Printf("toast: %s", msg)
	}
	s.current = msg
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(toastTTL, func() {
		s.dismissIfCurrent(gen)
	})
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(msg)
	}
}

// Current returns the visible toast, or "" when none is shown.
func (s *ToastServiceImpl) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Dismiss clears the toast immediately (user click/keypress).
func (s *ToastServiceImpl) Dismiss() {
	s.mu.Lock()
	s.clearLocked()
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn("")
	}
}

// Subscribe registers a listener invoked with the new toast text on
// every change; an empty string means the toast was dismissed.
func (s *ToastServiceImpl) Subscribe(fn func(msg string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Stop cancels any pending auto-dismiss timer. Used on shutdown and in
// tests to avoid leaked timers.
func (s *ToastServiceImpl) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// dismissIfCurrent clears the toast only when no newer message was
// posted since the timer was armed.
func (s *ToastServiceImpl) dismissIfCurrent(gen uint64) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.clearLocked()
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn("")
	}
}

func (s *ToastServiceImpl) clearLocked() {
	s.current = ""
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *ToastServiceImpl) snapshotListeners() []func(msg string) {
	out := make([]func(msg string), len(s.listeners))
	copy(out, s.listeners)
	return out
}
