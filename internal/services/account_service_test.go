package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mailpilot/mailpilot-tui/internal/api"
	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// MockAccountAPI implements AccountAPI for testing
type MockAccountAPI struct {
	mock.Mock
}

func (m *MockAccountAPI) ListAccounts(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccountAPI) CreateAccount(ctx context.Context, req api.CreateAccountRequest) (*models.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountAPI) TestConnection(ctx context.Context, req api.TestConnectionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func validForm() AccountForm {
	return AccountForm{
		Email:    "user@example.com",
		Password: "app-password",
		IMAPHost: "imap.example.com",
		IMAPPort: "993",
		IMAPTLS:  true,
		SMTPHost: "smtp.example.com",
		SMTPPort: "587",
		SMTPTLS:  true,
	}
}

func TestAccountService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces_list", func(t *testing.T) {
		client := &MockAccountAPI{}
		toasts := &recordingToaster{}
		s := NewAccountService(client, toasts, nil)

		client.On("ListAccounts", ctx).Return([]models.Account{{ID: 1, Email: "a@x"}}, nil).Once()
		assert.NoError(t, s.Load(ctx))
		assert.Len(t, s.Accounts(), 1)

		client.On("ListAccounts", ctx).Return([]models.Account{{ID: 2, Email: "b@x"}, {ID: 3, Email: "c@x"}}, nil).Once()
		assert.NoError(t, s.Load(ctx))
		accounts := s.Accounts()
		assert.Len(t, accounts, 2)
		assert.Equal(t, int64(2), accounts[0].ID)

		client.AssertExpectations(t)
	})

	t.Run("does_not_auto_select", func(t *testing.T) {
		client := &MockAccountAPI{}
		s := NewAccountService(client, &recordingToaster{}, nil)

		client.On("ListAccounts", ctx).Return([]models.Account{{ID: 1}}, nil)
		assert.NoError(t, s.Load(ctx))

		_, ok := s.Selected()
		assert.False(t, ok, "selection stays empty until the user picks an account")
	})

	t.Run("failure_posts_toast", func(t *testing.T) {
		client := &MockAccountAPI{}
		toasts := &recordingToaster{}
		s := NewAccountService(client, toasts, nil)

		client.On("ListAccounts", ctx).Return(nil, errors.New("boom"))
		assert.Error(t, s.Load(ctx))
		assert.Equal(t, "Accounts failed to load.", toasts.last())
	})
}

func TestAccountService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_prepends_and_selects", func(t *testing.T) {
		client := &MockAccountAPI{}
		s := NewAccountService(client, &recordingToaster{}, nil)

		client.On("ListAccounts", ctx).Return([]models.Account{{ID: 1, Email: "old@x"}}, nil)
		assert.NoError(t, s.Load(ctx))

		created := &models.Account{ID: 2, Email: "user@example.com"}
		client.On("CreateAccount", ctx, mock.Anything).Return(created, nil)

		assert.NoError(t, s.Create(ctx, validForm()))

		accounts := s.Accounts()
		assert.Len(t, accounts, 2)
		assert.Equal(t, int64(2), accounts[0].ID, "new account is prepended")

		selected, ok := s.Selected()
		assert.True(t, ok)
		assert.Equal(t, int64(2), selected.ID)
	})

	t.Run("failure_leaves_list_untouched", func(t *testing.T) {
		client := &MockAccountAPI{}
		toasts := &recordingToaster{}
		s := NewAccountService(client, toasts, nil)

		client.On("ListAccounts", ctx).Return([]models.Account{{ID: 1}}, nil)
		assert.NoError(t, s.Load(ctx))
		before := s.Accounts()

		client.On("CreateAccount", ctx, mock.Anything).Return(nil, errors.New("backend rejected"))
		assert.Error(t, s.Create(ctx, validForm()))

		assert.Equal(t, before, s.Accounts(), "no partial account is ever added")
		_, ok := s.Selected()
		assert.False(t, ok)
		assert.Equal(t, "Account could not be saved.", toasts.last())
	})

	t.Run("invalid_port_never_reaches_network", func(t *testing.T) {
		client := &MockAccountAPI{}
		toasts := &recordingToaster{}
		s := NewAccountService(client, toasts, nil)

		form := validForm()
		form.IMAPPort = "not-a-number"
		err := s.Create(ctx, form)
		assert.ErrorIs(t, err, ErrInvalidPort)

		form = validForm()
		form.SMTPPort = "-1"
		err = s.Create(ctx, form)
		assert.ErrorIs(t, err, ErrInvalidPort)

		client.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
		assert.Equal(t, "Account could not be saved.", toasts.last())
	})

	t.Run("parses_ports_as_integers", func(t *testing.T) {
		client := &MockAccountAPI{}
		s := NewAccountService(client, &recordingToaster{}, nil)

		client.On("CreateAccount", ctx, mock.MatchedBy(func(req api.CreateAccountRequest) bool {
			return req.IMAPPort == 993 && req.SMTPPort == 587 && req.IMAPTLS && req.SMTPTLS
		})).Return(&models.Account{ID: 9}, nil)

		assert.NoError(t, s.Create(ctx, validForm()))
		client.AssertExpectations(t)
	})
}

func TestAccountService_TestConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("success_toast_only", func(t *testing.T) {
		client := &MockAccountAPI{}
		toasts := &recordingToaster{}
		s := NewAccountService(client, toasts, nil)

		client.On("TestConnection", ctx, mock.Anything).Return(nil)
		s.TestConnection(ctx, validForm())

		assert.Equal(t, "IMAP connection successful.", toasts.last())
		assert.Empty(t, s.Accounts(), "probe never mutates the account list")
	})

	t.Run("failure_toast", func(t *testing.T) {
		client := &MockAccountAPI{}
		toasts := &recordingToaster{}
		s := NewAccountService(client, toasts, nil)

		client.On("TestConnection", ctx, mock.Anything).Return(errors.New("refused"))
		s.TestConnection(ctx, validForm())

		assert.Equal(t, "IMAP connection failed.", toasts.last())
	})
}

func TestAccountService_SelectNotifiesListeners(t *testing.T) {
	s := NewAccountService(&MockAccountAPI{}, &recordingToaster{}, nil)

	var got []int64
	s.Subscribe(func(account models.Account) { got = append(got, account.ID) })

	s.Select(models.Account{ID: 7})
	s.Select(models.Account{ID: 8})

	assert.Equal(t, []int64{7, 8}, got)
	selected, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, int64(8), selected.ID)
}
