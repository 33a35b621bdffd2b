package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	userRepo         *MockUserRepo
	verificationRepo *MockVerificationRepo
	sessionRepo      *MockSessionRepo
	sender           *MockCodeSender
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		userRepo:         NewMockUserRepo(ctrl),
		verificationRepo: NewMockVerificationRepo(ctrl),
		sessionRepo:      NewMockSessionRepo(ctrl),
		sender:           NewMockCodeSender(ctrl),
	}
	service := New(m.userRepo, m.verificationRepo, m.sessionRepo, m.sender, &auth.HashService{}, auth.NewJWTService("test-secret"))
	defer ctrl.Finish()
	return service, m
}

func TestSendCode(t *testing.T) {
	service, m := NewMock(t)

	t.Run("issues a six digit code for a new email", func(t *testing.T) {
		var sentCode string
		m.userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(nil, nil)
		m.verificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v *domain.Verification) (*domain.Verification, error) {
				assert.Equal(t, "user@example.com", v.Target)
				assert.Len(t, v.Code, 6)
				sentCode = v.Code
				return v, nil
			})
		m.sender.EXPECT().Send(gomock.Any(), "user@example.com", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, code string) error {
				assert.Equal(t, sentCode, code)
				return nil
			})

		assert.NoError(t, service.SendCode(context.Background(), "user@example.com"))
	})

	t.Run("phone targets hit the phone lookup", func(t *testing.T) {
		m.userRepo.EXPECT().FindByPhone(gomock.Any(), "+79001234567").Return(nil, nil)
		m.verificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Verification{}, nil)
		m.sender.EXPECT().Send(gomock.Any(), "+79001234567", gomock.Any()).Return(nil)

		assert.NoError(t, service.SendCode(context.Background(), "+79001234567"))
	})

	t.Run("existing account is rejected", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").Return(&domain.User{ID: "u-1"}, nil)

		assert.ErrorIs(t, service.SendCode(context.Background(), "taken@example.com"), ErrUserExists)
	})
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)

	t.Run("valid code creates the account once", func(t *testing.T) {
		m.verificationRepo.EXPECT().Consume(gomock.Any(), "user@example.com", "123456", gomock.Any()).Return(true, nil)
		m.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) (*domain.User, error) {
				assert.Equal(t, "Ivan", u.Name)
				assert.NotNil(t, u.Email)
				assert.NotEqual(t, "secret-password", u.PasswordHash)
				u.ID = "u-1"
				return u, nil
			})

		user, token, err := service.Register(context.Background(), "user@example.com", "123456", "Ivan", "secret-password")
		assert.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("stale code is rejected", func(t *testing.T) {
		m.verificationRepo.EXPECT().Consume(gomock.Any(), "user@example.com", "000000", gomock.Any()).Return(false, nil)

		_, _, err := service.Register(context.Background(), "user@example.com", "000000", "Ivan", "secret-password")
		assert.ErrorIs(t, err, ErrInvalidCode)
	})
}

func TestLogin(t *testing.T) {
	service, m := NewMock(t)

	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword("correct-password")
	assert.NoError(t, err)
	email := "user@example.com"
	stored := &domain.User{ID: "u-1", Email: &email, PasswordHash: hash}

	tests := []struct {
		name          string
		target        string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "valid credentials",
			target:   "user@example.com",
			password: "correct-password",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			target:   "user@example.com",
			password: "wrong-password",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(stored, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown account",
			target:   "ghost@example.com",
			password: "whatever",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, token, err := service.Login(context.Background(), tt.target, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "u-1", user.ID)
			assert.NotEmpty(t, token)
		})
	}
}

func TestMe(t *testing.T) {
	service, m := NewMock(t)

	m.userRepo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&domain.User{ID: "u-1"}, nil)
	user, err := service.Me(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	m.userRepo.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, nil)
	_, err = service.Me(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateTelegramSession(t *testing.T) {
	service, m := NewMock(t)

	m.sessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *domain.TelegramSession) (*domain.TelegramSession, error) {
			assert.Len(t, s.Token, 32)
			assert.False(t, s.ExpiresAt.IsZero())
			return s, nil
		})

	session, err := service.CreateTelegramSession(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}

func TestConfirmTelegramSession(t *testing.T) {
	service, m := NewMock(t)

	t.Run("binds session to the linked account", func(t *testing.T) {
		m.sessionRepo.EXPECT().FindValidByToken(gomock.Any(), "tok", gomock.Any()).Return(&domain.TelegramSession{ID: "s-1"}, nil)
		m.userRepo.EXPECT().FindByTelegramID(gomock.Any(), int64(42)).Return(&domain.User{ID: "u-1"}, nil)
		m.sessionRepo.EXPECT().Link(gomock.Any(), "s-1", int64(42), "u-1").Return(nil)

		assert.NoError(t, service.ConfirmTelegramSession(context.Background(), "tok", 42))
	})

	t.Run("expired session", func(t *testing.T) {
		m.sessionRepo.EXPECT().FindValidByToken(gomock.Any(), "tok", gomock.Any()).Return(nil, nil)

		assert.ErrorIs(t, service.ConfirmTelegramSession(context.Background(), "tok", 42), ErrSessionNotFound)
	})

	t.Run("unlinked telegram account", func(t *testing.T) {
		m.sessionRepo.EXPECT().FindValidByToken(gomock.Any(), "tok", gomock.Any()).Return(&domain.TelegramSession{ID: "s-1"}, nil)
		m.userRepo.EXPECT().FindByTelegramID(gomock.Any(), int64(42)).Return(nil, nil)

		assert.ErrorIs(t, service.ConfirmTelegramSession(context.Background(), "tok", 42), ErrUnknownTelegramID)
	})
}

func TestExchangeTelegramSession(t *testing.T) {
	service, m := NewMock(t)
	userID := "u-1"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "confirmed session is consumed and exchanged",
			prepareMock: func() {
				m.sessionRepo.EXPECT().Consume(gomock.Any(), "tok", gomock.Any()).
					Return(&userID, true, nil)
			},
		},
		{
			name: "pending session",
			prepareMock: func() {
				m.sessionRepo.EXPECT().Consume(gomock.Any(), "tok", gomock.Any()).
					Return(nil, false, nil)
				m.sessionRepo.EXPECT().FindValidByToken(gomock.Any(), "tok", gomock.Any()).
					Return(&domain.TelegramSession{ID: "s-1"}, nil)
			},
			expectedError: ErrSessionNotReady,
		},
		{
			name: "expired or consumed session",
			prepareMock: func() {
				m.sessionRepo.EXPECT().Consume(gomock.Any(), "tok", gomock.Any()).
					Return(nil, false, nil)
				m.sessionRepo.EXPECT().FindValidByToken(gomock.Any(), "tok", gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrSessionNotFound,
		},
		{
			name: "consume failure keeps the session",
			prepareMock: func() {
				m.sessionRepo.EXPECT().Consume(gomock.Any(), "tok", gomock.Any()).
					Return(nil, false, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, err := service.ExchangeTelegramSession(context.Background(), "tok")
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestExchangeTelegramSessionOnce(t *testing.T) {
	service, m := NewMock(t)
	userID := "u-1"

	// The first exchange wins the conditional update; the second finds the
	// token already consumed and gets nothing.
	first := m.sessionRepo.EXPECT().Consume(gomock.Any(), "tok", gomock.Any()).
		Return(&userID, true, nil)
	m.sessionRepo.EXPECT().Consume(gomock.Any(), "tok", gomock.Any()).
		Return(nil, false, nil).After(first)
	m.sessionRepo.EXPECT().FindValidByToken(gomock.Any(), "tok", gomock.Any()).Return(nil, nil)

	token, err := service.ExchangeTelegramSession(context.Background(), "tok")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	token, err = service.ExchangeTelegramSession(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, token)
}
