package budgetrepo

import (
	"context"
	"fmt"
	"strings"

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

const budgetColumns = "id, user_id, category_id, category_name, spent, limit_amount, color"

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.CategoryName, &b.Spent, &b.Limit, &b.Color)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) List(ctx context.Context, userID string, page domain.Page) ([]domain.Budget, int, error) {
	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM budgets WHERE user_id = $1", userID).Scan(&total)
	if err != nil {
		zap.L().Error("can't count budgets", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT ` + budgetColumns + `
        FROM budgets
        WHERE user_id = $1
        ORDER BY category_name ASC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, page.Limit, page.Offset())
	if err != nil {
		zap.L().Error("can't get budgets", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			zap.L().Error("can't scan budget row", zap.Error(err))
			return nil, 0, err
		}
		budgets = append(budgets, *b)
	}
	return budgets, total, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Budget, error) {
	row := r.db.QueryRow(ctx, "SELECT "+budgetColumns+" FROM budgets WHERE id = $1", id)
	b, err := scanBudget(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find budget", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error) {
	b.ID = uuid.NewString()
	query := `
        INSERT INTO budgets (id, user_id, category_id, category_name, spent, limit_amount, color)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, b.ID, b.UserID, b.CategoryID, b.CategoryName, b.Spent, b.Limit, b.Color)
	if err != nil {
		zap.L().Error("can't save budget", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) Update(ctx context.Context, id string, upd domain.BudgetUpdate) (*domain.Budget, error) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.CategoryID != nil {
		add("category_id", *upd.CategoryID)
	}
	if upd.CategoryName != nil {
		add("category_name", *upd.CategoryName)
	}
	if upd.Spent != nil {
		add("spent", *upd.Spent)
	}
	if upd.Limit != nil {
		add("limit_amount", *upd.Limit)
	}
	if upd.Color != nil {
		add("color", *upd.Color)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE budgets SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			zap.L().Error("can't update budget", zap.Error(err))
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM budgets WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete budget", zap.Error(err))
		return err
	}
	return nil
}
