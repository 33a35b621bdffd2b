package goalrepo

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

const goalColumns = "id, user_id, title, target_amount, current_amount, deadline, auto_fill, auto_fill_pct"

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var g domain.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &g.AutoFill, &g.AutoFillPct)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) List(ctx context.Context, userID string, page domain.Page) ([]domain.Goal, int, error) {
	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM goals WHERE user_id = $1", userID).Scan(&total)
	if err != nil {
		zap.L().Error("can't count goals", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT ` + goalColumns + `
        FROM goals
        WHERE user_id = $1
        ORDER BY deadline ASC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, page.Limit, page.Offset())
	if err != nil {
		zap.L().Error("can't get goals", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			zap.L().Error("can't scan goal row", zap.Error(err))
			return nil, 0, err
		}
		goals = append(goals, *g)
	}
	return goals, total, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRow(ctx, "SELECT "+goalColumns+" FROM goals WHERE id = $1", id)
	g, err := scanGoal(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find goal", zap.Error(err))
		return nil, err
	}
	return g, nil
}

func (r *Repository) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	g.ID = uuid.NewString()
	query := `
        INSERT INTO goals (id, user_id, title, target_amount, current_amount, deadline, auto_fill, auto_fill_pct)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, g.ID, g.UserID, g.Title, g.TargetAmount, g.CurrentAmount, g.Deadline, g.AutoFill, g.AutoFillPct)
	if err != nil {
		zap.L().Error("can't save goal", zap.Error(err))
		return nil, err
	}
	return g, nil
}

func (r *Repository) Update(ctx context.Context, id string, upd domain.GoalUpdate) (*domain.Goal, error) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.TargetAmount != nil {
		add("target_amount", *upd.TargetAmount)
	}
	if upd.CurrentAmount != nil {
		add("current_amount", *upd.CurrentAmount)
	}
	if upd.Deadline != nil {
		add("deadline", *upd.Deadline)
	}
	if upd.AutoFill != nil {
		add("auto_fill", *upd.AutoFill)
	}
	if upd.AutoFillPct != nil {
		add("auto_fill_pct", *upd.AutoFillPct)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE goals SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			zap.L().Error("can't update goal", zap.Error(err))
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM goals WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete goal", zap.Error(err))
		return err
	}
	return nil
}
