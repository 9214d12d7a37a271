package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// MockSyncAPI implements SyncAPI for testing
type MockSyncAPI struct {
	mock.Mock
}

func (m *MockSyncAPI) SyncAccount(ctx context.Context, accountID int64, limit int) error {
	args := m.Called(ctx, accountID, limit)
	return args.Error(0)
}

func TestSyncService_SyncNow(t *testing.T) {
	ctx := context.Background()

	t.Run("success_toasts_then_reloads", func(t *testing.T) {
		syncAPI := &MockSyncAPI{}
		threadAPI := &MockThreadAPI{}
		toasts := &recordingToaster{}
		threads := NewThreadService(threadAPI, toasts, nil)
		s := NewSyncService(syncAPI, threads, toasts, nil)

		syncAPI.On("SyncAccount", ctx, int64(1), 50).Return(nil)
		threadAPI.On("ListThreads", ctx, int64(1)).Return([]models.Thread{{ID: 7}}, nil)

		s.SyncNow(ctx, 1, 50)

		// The reload is a second round trip; the sync response itself
		// never feeds the list.
		threadAPI.AssertCalled(t, "ListThreads", ctx, int64(1))
		assert.Len(t, threads.Threads(), 1)
		assert.Equal(t, []string{"Sync completed."}, toasts.all())
	})

	t.Run("failure_skips_reload", func(t *testing.T) {
		syncAPI := &MockSyncAPI{}
		threadAPI := &MockThreadAPI{}
		toasts := &recordingToaster{}
		threads := NewThreadService(threadAPI, toasts, nil)

		threadAPI.On("ListThreads", ctx, int64(1)).Return([]models.Thread{{ID: 7}}, nil).Once()
		assert.NoError(t, threads.LoadForAccount(ctx, 1))

		s := NewSyncService(syncAPI, threads, toasts, nil)
		syncAPI.On("SyncAccount", ctx, int64(1), 50).Return(errors.New("imap timeout"))

		s.SyncNow(ctx, 1, 50)

		// Old list stays; no reload was attempted.
		threadAPI.AssertNumberOfCalls(t, "ListThreads", 1)
		assert.Len(t, threads.Threads(), 1)
		assert.Equal(t, "Sync failed.", toasts.last())
	})

	t.Run("reload_failure_posts_its_own_toast", func(t *testing.T) {
		syncAPI := &MockSyncAPI{}
		threadAPI := &MockThreadAPI{}
		toasts := &recordingToaster{}
		threads := NewThreadService(threadAPI, toasts, nil)
		s := NewSyncService(syncAPI, threads, toasts, nil)

		syncAPI.On("SyncAccount", ctx, int64(1), 50).Return(nil)
		threadAPI.On("ListThreads", ctx, int64(1)).Return(nil, errors.New("boom"))

		s.SyncNow(ctx, 1, 50)

		assert.Equal(t, []string{"Sync completed.", "Threads failed to load."}, toasts.all())
	})
}
