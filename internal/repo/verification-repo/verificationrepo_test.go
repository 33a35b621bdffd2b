package verificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	expiresAt := time.Now().Add(10 * time.Minute)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO verifications (id, target, code, expires_at)")).
		WithArgs(pgxmock.AnyArg(), "user@example.com", "123456", expiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	v, err := repo.Create(context.Background(), &domain.Verification{
		Target:    "user@example.com",
		Code:      "123456",
		ExpiresAt: expiresAt,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Consume(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectOK  bool
		expectErr bool
	}{
		{
			name: "Fresh code matches exactly once",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE verifications")).
					WithArgs("user@example.com", "123456", now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectOK: true,
		},
		{
			name: "Consumed or expired code matches nothing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE verifications")).
					WithArgs("user@example.com", "123456", now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectOK: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE verifications")).
					WithArgs("user@example.com", "123456", now).
					WillReturnError(errors.New("connection lost"))
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.Consume(context.Background(), "user@example.com", "123456", now)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM verifications WHERE expires_at <= $1 OR verified = TRUE")).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	assert.NoError(t, repo.DeleteExpired(context.Background(), now))
	assert.NoError(t, mock.ExpectationsWereMet())
}
