package debtrepo

import (
	"context"
	"fmt"
	"strings"
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

const debtColumns = "id, user_id, title, amount, currency, type, counterparty, due_date, paid, paid_at, created_at"

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var d domain.Debt
	err := row.Scan(&d.ID, &d.UserID, &d.Title, &d.Amount, &d.Currency, &d.Type, &d.Counterparty,
		&d.DueDate, &d.Paid, &d.PaidAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) List(ctx context.Context, filter domain.DebtFilter) ([]domain.Debt, int, error) {
	where := "user_id = $1"
	args := []any{filter.UserID}
	if filter.Paid != nil {
		args = append(args, *filter.Paid)
		where += fmt.Sprintf(" AND paid = $%d", len(args))
	}

	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM debts WHERE "+where, args...).Scan(&total)
	if err != nil {
		zap.L().Error("can't count debts", zap.Error(err))
		return nil, 0, err
	}

	args = append(args, filter.Page.Limit, filter.Page.Offset())
	query := fmt.Sprintf(`
        SELECT %s
        FROM debts
        WHERE %s
        ORDER BY due_date ASC, created_at DESC
        LIMIT $%d OFFSET $%d`, debtColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get debts", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			zap.L().Error("can't scan debt row", zap.Error(err))
			return nil, 0, err
		}
		debts = append(debts, *d)
	}
	return debts, total, nil
}

func (r *Repository) FindOverdue(ctx context.Context, userID string, now time.Time) ([]domain.Debt, error) {
	query := `
        SELECT ` + debtColumns + `
        FROM debts
        WHERE user_id = $1 AND paid = FALSE AND due_date < $2
        ORDER BY due_date ASC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, now)
	if err != nil {
		zap.L().Error("can't get overdue debts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			zap.L().Error("can't scan debt row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, *d)
	}
	return debts, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Debt, error) {
	row := r.db.QueryRow(ctx, "SELECT "+debtColumns+" FROM debts WHERE id = $1", id)
	d, err := scanDebt(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find debt", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) Create(ctx context.Context, d *domain.Debt) (*domain.Debt, error) {
	d.ID = uuid.NewString()
	query := `
        INSERT INTO debts (id, user_id, title, amount, currency, type, counterparty, due_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query, d.ID, d.UserID, d.Title, d.Amount, d.Currency, d.Type, d.Counterparty, d.DueDate).Scan(&d.CreatedAt)
	if err != nil {
		zap.L().Error("can't save debt", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) Update(ctx context.Context, id string, upd domain.DebtUpdate) (*domain.Debt, error) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Amount != nil {
		add("amount", *upd.Amount)
	}
	if upd.Currency != nil {
		add("currency", *upd.Currency)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Counterparty != nil {
		add("counterparty", *upd.Counterparty)
	}
	if upd.DueDate != nil {
		add("due_date", *upd.DueDate)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE debts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			zap.L().Error("can't update debt", zap.Error(err))
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) MarkPaid(ctx context.Context, id string, paid bool, paidAt *time.Time) (*domain.Debt, error) {
	_, err := r.db.Exec(ctx, "UPDATE debts SET paid = $1, paid_at = $2 WHERE id = $3", paid, paidAt, id)
	if err != nil {
		zap.L().Error("can't mark debt paid", zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM debts WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete debt", zap.Error(err))
		return err
	}
	return nil
}
