package goalrepo

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

func goalRows(goals ...domain.Goal) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "user_id", "title", "target_amount", "current_amount", "deadline", "auto_fill", "auto_fill_pct"})
	for _, g := range goals {
		rows.AddRow(g.ID, g.UserID, g.Title, g.TargetAmount, g.CurrentAmount, g.Deadline, g.AutoFill, g.AutoFillPct)
	}
	return rows
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	stored := domain.Goal{
		ID: "g-1", UserID: "u-1", Title: "Vacation", TargetAmount: 200000, CurrentAmount: 45000,
		Deadline: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	page := domain.Page{Page: 1, Limit: 20}

	t.Run("Page of goals with total", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM goals WHERE user_id = $1")).
			WithArgs("u-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals")).
			WithArgs("u-1", 20, 0).
			WillReturnRows(goalRows(stored))

		goals, total, err := repo.List(context.Background(), "u-1", page)
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, goals, 1)
		assert.Equal(t, "Vacation", goals[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM goals WHERE user_id = $1")).
			WithArgs("u-1").
			WillReturnError(errors.New("db down"))

		_, _, err := repo.List(context.Background(), "u-1", page)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Goal found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals WHERE id = $1")).
			WithArgs("g-1").
			WillReturnRows(goalRows(domain.Goal{ID: "g-1", UserID: "u-1", Title: "Vacation", Deadline: time.Now()}))

		g, err := repo.FindByID(context.Background(), "g-1")
		assert.NoError(t, err)
		assert.NotNil(t, g)
		assert.Equal(t, "Vacation", g.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Goal not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals WHERE id = $1")).
			WithArgs("g-missing").
			WillReturnRows(goalRows())

		g, err := repo.FindByID(context.Background(), "g-missing")
		assert.NoError(t, err)
		assert.Nil(t, g)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	pct := 10.0
	goal := domain.Goal{
		UserID: "u-1", Title: "Vacation", TargetAmount: 200000,
		Deadline: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), AutoFill: true, AutoFillPct: &pct,
	}

	t.Run("Insert with generated id", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO goals")).
			WithArgs(pgxmock.AnyArg(), "u-1", "Vacation", 200000.0, 0.0, goal.Deadline, true, &pct).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		created, err := repo.Create(context.Background(), &goal)
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert fails", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO goals")).
			WithArgs(pgxmock.AnyArg(), "u-1", "Vacation", 200000.0, 0.0, goal.Deadline, true, &pct).
			WillReturnError(errors.New("db down"))

		created, err := repo.Create(context.Background(), &goal)
		assert.Error(t, err)
		assert.Nil(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	current := 90000.0

	t.Run("Partial update touches only given columns", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE goals SET current_amount = $1 WHERE id = $2")).
			WithArgs(current, "g-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals WHERE id = $1")).
			WithArgs("g-1").
			WillReturnRows(goalRows(domain.Goal{ID: "g-1", UserID: "u-1", Title: "Vacation", CurrentAmount: current, Deadline: time.Now()}))

		g, err := repo.Update(context.Background(), "g-1", domain.GoalUpdate{CurrentAmount: &current})
		assert.NoError(t, err)
		assert.Equal(t, current, g.CurrentAmount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty update just re-reads", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals WHERE id = $1")).
			WithArgs("g-1").
			WillReturnRows(goalRows(domain.Goal{ID: "g-1", UserID: "u-1", Title: "Vacation", Deadline: time.Now()}))

		g, err := repo.Update(context.Background(), "g-1", domain.GoalUpdate{})
		assert.NoError(t, err)
		assert.Equal(t, "g-1", g.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM goals WHERE id = $1")).
			WithArgs("g-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), "g-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM goals WHERE id = $1")).
			WithArgs("g-1").
			WillReturnError(errors.New("db down"))

		assert.Error(t, repo.Delete(context.Background(), "g-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
