package userrepo

import (
	"context"

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

const userColumns = "id, name, email, phone, password_hash, telegram_id, created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash, &user.TelegramID, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := scanUser(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	user, err := scanUser(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE phone = $1", phone)
	user, err := scanUser(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by phone", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE telegram_id = $1", telegramID)
	user, err := scanUser(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by telegram id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = uuid.NewString()
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, telegram_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.Phone, user.PasswordHash, user.TelegramID).Scan(&user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) LinkTelegram(ctx context.Context, userID string, telegramID int64) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET telegram_id = $1 WHERE id = $2", telegramID, userID)
	if err != nil {
		zap.L().Error("can't link telegram id", zap.Error(err))
		return err
	}
	return nil
}

// List returns registered users newest first, for the admin panel. The
// password hash is not selected.
func (repo *Repository) List(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	var total int
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT id, name, email, phone, telegram_id, created_at
        FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := repo.db.Query(ctx, query, page.Limit, page.Offset())
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.TelegramID, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, nil
}
