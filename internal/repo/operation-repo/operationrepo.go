package operationrepo

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
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Every read resolves the category display name through the translations
// table, falling back to the raw name key.
const selectOperation = `
        SELECT o.id, o.user_id, o.title, o.amount, o.currency, o.category_id, o.subcategory_id,
               COALESCE(t.name, c.name_key, '') AS category_name,
               o.type, o.date, o.ts, o.from_account, o.to_account, o.created_at
        FROM operations o
        LEFT JOIN categories c ON c.id = o.category_id
        LEFT JOIN translations t ON t.entity_type = 'category' AND t.entity_id = c.id AND t.language = $1
`

func scanOperation(row pgx.Row) (*domain.Operation, error) {
	var op domain.Operation
	err := row.Scan(&op.ID, &op.UserID, &op.Title, &op.Amount, &op.Currency, &op.CategoryID, &op.SubcategoryID,
		&op.CategoryName, &op.Type, &op.Date, &op.Timestamp, &op.FromAccount, &op.ToAccount, &op.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *Repository) List(ctx context.Context, filter domain.OperationFilter) ([]domain.Operation, int, error) {
	where := "o.user_id = $2"
	args := []any{filter.Language, filter.UserID}
	countArgs := []any{filter.UserID}
	countWhere := "user_id = $1"

	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		countArgs = append(countArgs, *filter.DateFrom)
		where += fmt.Sprintf(" AND o.date >= $%d", len(args))
		countWhere += fmt.Sprintf(" AND date >= $%d", len(countArgs))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		countArgs = append(countArgs, *filter.DateTo)
		where += fmt.Sprintf(" AND o.date <= $%d", len(args))
		countWhere += fmt.Sprintf(" AND date <= $%d", len(countArgs))
	}

	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM operations WHERE "+countWhere, countArgs...).Scan(&total)
	if err != nil {
		zap.L().Error("can't count operations", zap.Error(err))
		return nil, 0, err
	}

	args = append(args, filter.Page.Limit, filter.Page.Offset())
	query := fmt.Sprintf(`%s
        WHERE %s
        ORDER BY o.date DESC, o.ts DESC NULLS LAST
        LIMIT $%d OFFSET $%d`, selectOperation, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get operations", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			zap.L().Error("can't scan operation row", zap.Error(err))
			return nil, 0, err
		}
		ops = append(ops, *op)
	}
	return ops, total, nil
}

// FindByID does not filter by owner: the caller distinguishes forbidden
// from not-found after the fetch.
func (r *Repository) FindByID(ctx context.Context, id, language string) (*domain.Operation, error) {
	row := r.db.QueryRow(ctx, selectOperation+" WHERE o.id = $2", language, id)
	op, err := scanOperation(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find operation", zap.Error(err))
		return nil, err
	}
	return op, nil
}

const insertOperation = `
        INSERT INTO operations (id, user_id, title, amount, currency, category_id, subcategory_id, type, date, ts, from_account, to_account)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

// Create inserts and re-reads the row so the returned record carries the
// canonical category name resolution, not whatever the caller supplied.
func (r *Repository) Create(ctx context.Context, op *domain.Operation, language string) (*domain.Operation, error) {
	op.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, insertOperation,
		op.ID, op.UserID, op.Title, op.Amount, op.Currency, op.CategoryID, op.SubcategoryID,
		op.Type, op.Date, op.Timestamp, op.FromAccount, op.ToAccount)
	if err != nil {
		zap.L().Error("can't save operation", zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, op.ID, language)
}

// CreateBatch inserts all operations inside one transaction; any failure
// rolls the whole batch back.
func (r *Repository) CreateBatch(ctx context.Context, ops []domain.Operation) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range ops {
			ops[i].ID = uuid.NewString()
			op := &ops[i]
			_, err := r.db.Exec(ctx, insertOperation,
				op.ID, op.UserID, op.Title, op.Amount, op.Currency, op.CategoryID, op.SubcategoryID,
				op.Type, op.Date, op.Timestamp, op.FromAccount, op.ToAccount)
			if err != nil {
				zap.L().Error("batch insert failed, rolling back", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, id string, upd domain.OperationUpdate, language string) (*domain.Operation, error) {
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
	if upd.CategoryID != nil {
		add("category_id", *upd.CategoryID)
	}
	if upd.SubcategoryID != nil {
		add("subcategory_id", *upd.SubcategoryID)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Date != nil {
		add("date", *upd.Date)
	}
	if upd.Timestamp != nil {
		add("ts", *upd.Timestamp)
	}
	if upd.FromAccount != nil {
		add("from_account", *upd.FromAccount)
	}
	if upd.ToAccount != nil {
		add("to_account", *upd.ToAccount)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE operations SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			zap.L().Error("can't update operation", zap.Error(err))
			return nil, err
		}
	}
	return r.FindByID(ctx, id, language)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM operations WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete operation", zap.Error(err))
		return err
	}
	return nil
}

// SumByUser returns the raw signed sum of all the user's operation amounts.
func (r *Repository) SumByUser(ctx context.Context, userID string) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0) FROM operations WHERE user_id = $1", userID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum operations", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
