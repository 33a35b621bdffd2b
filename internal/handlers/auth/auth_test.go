package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/service/authservice"
	pkgauth "github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	var resp utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSendCodeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Code sent",
			body: `{"target":"user@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SendCode(context.Background(), "user@example.com").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Account already exists",
			body: `{"target":"taken@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SendCode(context.Background(), "taken@example.com").Return(authservice.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrUserExists.Error(),
		},
		{
			name:          "Missing target",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Target",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register/send-code", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.SendCode(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Contains(t, decodeResponse(t, rec).Error, tt.expectedError)
			}
		})
	}
}

func TestVerifyHandler(t *testing.T) {
	handler, service := NewMock(t)
	email := "user@example.com"
	user := &domain.User{ID: "u-1", Name: "Ivan", Email: &email, CreatedAt: time.Now()}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"target":"user@example.com","code":"123456","name":"Ivan","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "user@example.com", "123456", "Ivan", "password123").
					Return(user, "some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "some-jwt-token",
		},
		{
			name: "Wrong code",
			body: `{"target":"user@example.com","code":"000000","name":"Ivan","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "user@example.com", "000000", "Ivan", "password123").
					Return(nil, "", authservice.ErrInvalidCode)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrInvalidCode.Error(),
		},
		{
			name: "Second use of a consumed code",
			body: `{"target":"user@example.com","code":"123456","name":"Ivan","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "user@example.com", "123456", "Ivan", "password123").
					Return(nil, "", authservice.ErrInvalidCode)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrInvalidCode.Error(),
		},
		{
			name:          "Password too short",
			body:          `{"target":"user@example.com","code":"123456","name":"Ivan","password":"short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register/verify", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.Verify(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, "Bearer "+tt.expectedToken, rec.Header().Get("Authorization"))
				resp := decodeResponse(t, rec)
				assert.True(t, resp.Success)
			}
			if tt.expectedError != "" {
				assert.Contains(t, decodeResponse(t, rec).Error, tt.expectedError)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	email := "user@example.com"
	user := &domain.User{ID: "u-1", Name: "Ivan", Email: &email}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"target":"user@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "user@example.com", "password123").
					Return(user, "some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: `{"target":"user@example.com","password":"wrongpass"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "user@example.com", "wrongpass").
					Return(nil, "", authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Unknown account reads the same as a wrong password",
			body: `{"target":"ghost@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "ghost@example.com", "password123").
					Return(nil, "", authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Contains(t, decodeResponse(t, rec).Error, tt.expectedError)
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)
	email := "user@example.com"

	t.Run("Authenticated profile", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, "u-1")
		service.EXPECT().Me(ctx, "u-1").Return(&domain.User{ID: "u-1", Name: "Ivan", Email: &email}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"u-1"`)
	})

	t.Run("Lookup failure", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, "u-gone")
		service.EXPECT().Me(ctx, "u-gone").Return(nil, errors.New("not found"))

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateTelegramSessionHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Handshake opened", func(t *testing.T) {
		expires := time.Now().Add(10 * time.Minute)
		service.EXPECT().CreateTelegramSession(context.Background()).
			Return(&domain.TelegramSession{Token: "abc123", ExpiresAt: expires}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/telegram/session", nil)
		rec := httptest.NewRecorder()
		handler.CreateTelegramSession(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"abc123"`)
	})

	t.Run("Storage failure", func(t *testing.T) {
		service.EXPECT().CreateTelegramSession(context.Background()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/telegram/session", nil)
		rec := httptest.NewRecorder()
		handler.CreateTelegramSession(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestExchangeTelegramSessionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Confirmed session exchanged",
			body: `{"token":"abc123"}`,
			prepareMock: func() {
				service.EXPECT().ExchangeTelegramSession(context.Background(), "abc123").
					Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "some-jwt-token",
		},
		{
			name: "Confirmation still pending",
			body: `{"token":"abc123"}`,
			prepareMock: func() {
				service.EXPECT().ExchangeTelegramSession(context.Background(), "abc123").
					Return("", authservice.ErrSessionNotReady)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Expired or consumed session",
			body: `{"token":"stale"}`,
			prepareMock: func() {
				service.EXPECT().ExchangeTelegramSession(context.Background(), "stale").
					Return("", authservice.ErrSessionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Missing token",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/telegram/exchange", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ExchangeTelegramSession(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, "Bearer "+tt.expectedToken, rec.Header().Get("Authorization"))
			}
		})
	}
}
