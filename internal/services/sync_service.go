package services

import (
	"context"
	"log"
)

// SyncServiceImpl implements SyncService.
type SyncServiceImpl struct {
	client   SyncAPI
	threads  ThreadService
	notifier Toaster
	logger   *log.Logger
}

// NewSyncService creates a sync coordinator that refreshes the given
// thread store after successful syncs.
func NewSyncService(client SyncAPI, threads ThreadService, notifier Toaster, logger *log.Logger) *SyncServiceImpl {
	return &SyncServiceImpl{
		client:   client,
		threads:  threads,
		notifier: notifier,
		logger:   logger,
	}
}

// SyncNow triggers a bounded backend sync. The sync response body is
// never used to update the thread list; on success the list is
// refreshed with a second round trip. On failure the old thread list
// stays untouched and no reload happens.
func (s *SyncServiceImpl) SyncNow(ctx context.Context, accountID int64, limit int) {
	if err := s.client.SyncAccount(ctx, accountID, limit); err != nil {
		if s.logger != nil {
			s.logger.Printf("sync failed for account %d: %v", accountID, err)
		}
		s.notifier.Post("Sync failed.")
		return
	}

	s.notifier.Post("Sync completed.")
	// LoadForAccount posts its own toast if the reload fails.
	_ = s.threads.LoadForAccount(ctx, accountID)
}
