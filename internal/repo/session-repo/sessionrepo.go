package sessionrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const sessionColumns = "id, token, telegram_id, user_id, expires_at, used"

func (r *Repository) Create(ctx context.Context, s *domain.TelegramSession) (*domain.TelegramSession, error) {
	s.ID = uuid.NewString()
	query := `
        INSERT INTO telegram_sessions (id, token, expires_at)
        VALUES ($1, $2, $3)
    `
	_, err := r.db.Exec(ctx, query, s.ID, s.Token, s.ExpiresAt)
	if err != nil {
		zap.L().Error("can't save telegram session", zap.Error(err))
		return nil, err
	}
	return s, nil
}

// FindValidByToken only matches sessions that are unused and unexpired.
func (r *Repository) FindValidByToken(ctx context.Context, token string, now time.Time) (*domain.TelegramSession, error) {
	query := "SELECT " + sessionColumns + " FROM telegram_sessions WHERE token = $1 AND used = FALSE AND expires_at > $2"
	var s domain.TelegramSession
	err := r.db.QueryRow(ctx, query, token, now).Scan(&s.ID, &s.Token, &s.TelegramID, &s.UserID, &s.ExpiresAt, &s.Used)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find telegram session", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Link(ctx context.Context, id string, telegramID int64, userID string) error {
	_, err := r.db.Exec(ctx, "UPDATE telegram_sessions SET telegram_id = $1, user_id = $2 WHERE id = $3", telegramID, userID, id)
	if err != nil {
		zap.L().Error("can't link telegram session", zap.Error(err))
		return err
	}
	return nil
}

// Consume flips a confirmed session to used and hands back its linked user
// in one conditional UPDATE, so a token exchanges at most once even under
// concurrent polls.
func (r *Repository) Consume(ctx context.Context, token string, now time.Time) (*string, bool, error) {
	query := `
        UPDATE telegram_sessions SET used = TRUE
        WHERE token = $1 AND used = FALSE AND expires_at > $2 AND user_id IS NOT NULL
        RETURNING user_id
    `
	var userID string
	err := r.db.QueryRow(ctx, query, token, now).Scan(&userID)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		zap.L().Error("can't consume telegram session", zap.Error(err))
		return nil, false, err
	}
	return &userID, true, nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.Exec(ctx, "DELETE FROM telegram_sessions WHERE expires_at <= $1 OR used = TRUE", now)
	if err != nil {
		zap.L().Error("can't sweep telegram sessions", zap.Error(err))
		return err
	}
	return nil
}
