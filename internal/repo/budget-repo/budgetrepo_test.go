package budgetrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func budgetRows(budgets ...domain.Budget) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "user_id", "category_id", "category_name", "spent", "limit_amount", "color"})
	for _, b := range budgets {
		rows.AddRow(b.ID, b.UserID, b.CategoryID, b.CategoryName, b.Spent, b.Limit, b.Color)
	}
	return rows
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	stored := domain.Budget{ID: "b-1", UserID: "u-1", CategoryName: "Food", Spent: 4500, Limit: 10000, Color: "#FF5733"}
	page := domain.Page{Page: 1, Limit: 20}

	t.Run("Page of budgets with total", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM budgets WHERE user_id = $1")).
			WithArgs("u-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM budgets")).
			WithArgs("u-1", 20, 0).
			WillReturnRows(budgetRows(stored))

		budgets, total, err := repo.List(context.Background(), "u-1", page)
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, budgets, 1)
		assert.Equal(t, "Food", budgets[0].CategoryName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM budgets WHERE user_id = $1")).
			WithArgs("u-1").
			WillReturnError(errors.New("db down"))

		_, _, err := repo.List(context.Background(), "u-1", page)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	budget := domain.Budget{UserID: "u-1", CategoryName: "Food", Limit: 10000, Color: "#FF5733"}

	t.Run("Insert with generated id", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO budgets")).
			WithArgs(pgxmock.AnyArg(), "u-1", budget.CategoryID, "Food", 0.0, 10000.0, "#FF5733").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		created, err := repo.Create(context.Background(), &budget)
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert fails", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO budgets")).
			WithArgs(pgxmock.AnyArg(), "u-1", budget.CategoryID, "Food", 0.0, 10000.0, "#FF5733").
			WillReturnError(errors.New("db down"))

		created, err := repo.Create(context.Background(), &budget)
		assert.Error(t, err)
		assert.Nil(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	spent := 6200.0
	color := "#00AA00"

	t.Run("Partial update touches only given columns", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE budgets SET spent = $1, color = $2 WHERE id = $3")).
			WithArgs(spent, color, "b-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM budgets WHERE id = $1")).
			WithArgs("b-1").
			WillReturnRows(budgetRows(domain.Budget{ID: "b-1", UserID: "u-1", CategoryName: "Food", Spent: spent, Limit: 10000, Color: color}))

		b, err := repo.Update(context.Background(), "b-1", domain.BudgetUpdate{Spent: &spent, Color: &color})
		assert.NoError(t, err)
		assert.Equal(t, spent, b.Spent)
		assert.Equal(t, color, b.Color)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty update just re-reads", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM budgets WHERE id = $1")).
			WithArgs("b-1").
			WillReturnRows(budgetRows(domain.Budget{ID: "b-1", UserID: "u-1", CategoryName: "Food"}))

		b, err := repo.Update(context.Background(), "b-1", domain.BudgetUpdate{})
		assert.NoError(t, err)
		assert.Equal(t, "b-1", b.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM budgets WHERE id = $1")).
			WithArgs("b-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), "b-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM budgets WHERE id = $1")).
			WithArgs("b-1").
			WillReturnError(errors.New("db down"))

		assert.Error(t, repo.Delete(context.Background(), "b-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
