package verificationrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, v *domain.Verification) (*domain.Verification, error) {
	v.ID = uuid.NewString()
	query := `
        INSERT INTO verifications (id, target, code, expires_at)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, v.ID, v.Target, v.Code, v.ExpiresAt)
	if err != nil {
		zap.L().Error("can't save verification", zap.Error(err))
		return nil, err
	}
	return v, nil
}

// Consume marks a matching unexpired, unconsumed code as verified. The
// predicate carries the whole at-most-once guarantee: a repeat call with the
// same arguments matches zero rows.
func (r *Repository) Consume(ctx context.Context, target, code string, now time.Time) (bool, error) {
	query := `
        UPDATE verifications
        SET verified = TRUE
        WHERE target = $1 AND code = $2 AND verified = FALSE AND expires_at > $3
    `
	tag, err := r.db.Exec(ctx, query, target, code, now)
	if err != nil {
		zap.L().Error("can't consume verification", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteExpired is garbage collection only; correctness does not depend on
// the sweep having run.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.Exec(ctx, "DELETE FROM verifications WHERE expires_at <= $1 OR verified = TRUE", now)
	if err != nil {
		zap.L().Error("can't sweep verifications", zap.Error(err))
		return err
	}
	return nil
}
