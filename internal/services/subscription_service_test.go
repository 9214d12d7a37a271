package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// MockSubscriptionAPI implements SubscriptionAPI for testing
type MockSubscriptionAPI struct {
	mock.Mock
}

func (m *MockSubscriptionAPI) ListSubscriptions(ctx context.Context, accountID int64) ([]models.Subscription, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

func (m *MockSubscriptionAPI) GetUnsubscribeOptions(ctx context.Context, subscriptionID int64) (*models.UnsubscribeOptions, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UnsubscribeOptions), args.Error(1)
}

func TestSubscriptionService_LoadForAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces_list", func(t *testing.T) {
		client := &MockSubscriptionAPI{}
		s := NewSubscriptionService(client, &recordingToaster{}, nil, func() (int64, bool) { return 0, false })

		client.On("ListSubscriptions", ctx, int64(1)).Return([]models.Subscription{{ID: 1}, {ID: 2}}, nil).Once()
		assert.NoError(t, s.LoadForAccount(ctx, 1))

		client.On("ListSubscriptions", ctx, int64(2)).Return([]models.Subscription{{ID: 3}}, nil).Once()
		assert.NoError(t, s.LoadForAccount(ctx, 2))

		subs := s.Subscriptions()
		assert.Len(t, subs, 1)
		assert.Equal(t, int64(3), subs[0].ID)
	})

	t.Run("failure_posts_toast_and_keeps_list", func(t *testing.T) {
		client := &MockSubscriptionAPI{}
		toasts := &recordingToaster{}
		s := NewSubscriptionService(client, toasts, nil, func() (int64, bool) { return 0, false })

		client.On("ListSubscriptions", ctx, int64(1)).Return([]models.Subscription{{ID: 1}}, nil).Once()
		assert.NoError(t, s.LoadForAccount(ctx, 1))

		client.On("ListSubscriptions", ctx, int64(1)).Return(nil, errors.New("boom")).Once()
		assert.Error(t, s.LoadForAccount(ctx, 1))

		assert.Len(t, s.Subscriptions(), 1)
		assert.Equal(t, "Newsletters failed to load.", toasts.last())
	})
}

func TestSubscriptionService_LoadUnsubscribeOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("applies_for_current_selection", func(t *testing.T) {
		client := &MockSubscriptionAPI{}
		s := NewSubscriptionService(client, &recordingToaster{}, nil, func() (int64, bool) { return 5, true })

		client.On("GetUnsubscribeOptions", ctx, int64(5)).
			Return(&models.UnsubscribeOptions{URLs: []string{"https://example.com/u"}}, nil)
		s.LoadUnsubscribeOptions(ctx, 5)

		opts, ok := s.UnsubscribeOptions()
		assert.True(t, ok)
		assert.Equal(t, []string{"https://example.com/u"}, opts.URLs)
	})

	t.Run("stale_response_discarded", func(t *testing.T) {
		client := &MockSubscriptionAPI{}
		// Selection already moved to subscription 6 by the time the
		// response for 5 arrives.
		s := NewSubscriptionService(client, &recordingToaster{}, nil, func() (int64, bool) { return 6, true })

		client.On("GetUnsubscribeOptions", ctx, int64(5)).
			Return(&models.UnsubscribeOptions{URLs: []string{"https://example.com/old"}}, nil)
		s.LoadUnsubscribeOptions(ctx, 5)

		_, ok := s.UnsubscribeOptions()
		assert.False(t, ok)
	})

	t.Run("failure_posts_toast", func(t *testing.T) {
		client := &MockSubscriptionAPI{}
		toasts := &recordingToaster{}
		s := NewSubscriptionService(client, toasts, nil, func() (int64, bool) { return 5, true })

		client.On("GetUnsubscribeOptions", ctx, int64(5)).Return(nil, errors.New("boom"))
		s.LoadUnsubscribeOptions(ctx, 5)

		_, ok := s.UnsubscribeOptions()
		assert.False(t, ok)
		assert.Equal(t, "Unsubscribe options failed to load.", toasts.last())
	})
}

func TestSubscriptionService_ResetOptions(t *testing.T) {
	client := &MockSubscriptionAPI{}
	s := NewSubscriptionService(client, &recordingToaster{}, nil, func() (int64, bool) { return 5, true })

	client.On("GetUnsubscribeOptions", context.Background(), int64(5)).
		Return(&models.UnsubscribeOptions{Mailto: []string{"u@example.com"}}, nil)
	s.LoadUnsubscribeOptions(context.Background(), 5)

	notified := false
	s.Subscribe(func() { notified = true })

	s.ResetOptions()
	_, ok := s.UnsubscribeOptions()
	assert.False(t, ok)
	assert.True(t, notified)
}
