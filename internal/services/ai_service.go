package services

import (
	"context"
	"log"
)

// AIServiceImpl implements AIService. Both actions are idempotent
// backend calls; repeated invocations for the same thread are not
// deduplicated, the last response to arrive wins. Results flow into
// the detail store, which drops them if the thread is no longer
// selected.
type AIServiceImpl struct {
	client   AIAPI
	detail   *DetailServiceImpl
	notifier Toaster
	logger   *log.Logger
}

// NewAIService creates an AI action gateway writing into the given
// detail store.
func NewAIService(client AIAPI, detail *DetailServiceImpl, notifier Toaster, logger *log.Logger) *AIServiceImpl {
	return &AIServiceImpl{
		client:   client,
		detail:   detail,
		notifier: notifier,
		logger:   logger,
	}
}

// Summarize requests a fresh summary for the thread. On success only
// the insight's summary field is replaced; actions and labels stay.
// On failure the previous summary is kept and a toast is posted.
func (s *AIServiceImpl) Summarize(ctx context.Context, threadID int64) {
	summary, err := s.client.Summarize(ctx, threadID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("summarize failed for thread %d: %v", threadID, err)
		}
		s.notifier.Post("Summary failed.")
		return
	}
	s.detail.ApplySummary(threadID, summary)
}

// DraftReply requests a reply draft in the given language. On success
// the draft is replaced wholesale, discarding unsaved user edits. On
// failure the existing draft is untouched.
func (s *AIServiceImpl) DraftReply(ctx context.Context, threadID int64, language string) {
	text, err := s.client.DraftReply(ctx, threadID, language)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("draft failed for thread %d: %v", threadID, err)
		}
		s.notifier.Post("Draft failed.")
		return
	}
	s.detail.ApplyDraft(threadID, text)
}
