package categoryrepo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/pg"
	"go.uber.org/zap"
)

// incomeKeyPrefixes is the static classification of system categories that
// apply to income operations; every other system category is treated as
// expense-applicable.
var incomeKeyPrefixes = []string{
	"category.salary",
	"category.income.",
}

func IsIncomeKey(nameKey string) bool {
	for _, p := range incomeKeyPrefixes {
		if strings.HasPrefix(nameKey, p) {
			return true
		}
	}
	return false
}

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

const selectCategory = `
        SELECT c.id, c.user_id, c.name_key, COALESCE(t.name, c.name_key) AS name, c.is_system
        FROM categories c
        LEFT JOIN translations t ON t.entity_type = 'category' AND t.entity_id = c.id AND t.language = $1
`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.UserID, &c.NameKey, &c.Name, &c.IsSystem)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns the shared system categories plus the user's own, name keys
// ascending. operationType (income/expense), when set, filters system rows by
// the income-prefix classification; user categories always pass.
func (r *Repository) List(ctx context.Context, userID, language, operationType string) ([]domain.Category, error) {
	query := selectCategory + `
        WHERE c.is_system = TRUE OR c.user_id = $2
        ORDER BY c.name_key ASC
    `
	rows, err := r.db.Query(ctx, query, language, userID)
	if err != nil {
		zap.L().Error("can't get categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		if c.IsSystem && operationType != "" {
			wantIncome := operationType == domain.OperationIncome
			if IsIncomeKey(c.NameKey) != wantIncome {
				continue
			}
		}
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *Repository) FindByID(ctx context.Context, id int, language string) (*domain.Category, error) {
	row := r.db.QueryRow(ctx, selectCategory+" WHERE c.id = $2", language, id)
	c, err := scanCategory(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find category", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) Subcategories(ctx context.Context, categoryID int, language string) ([]domain.Subcategory, error) {
	query := `
        SELECT s.id, s.category_id, s.name_key, COALESCE(t.name, s.name_key) AS name
        FROM subcategories s
        LEFT JOIN translations t ON t.entity_type = 'subcategory' AND t.entity_id = s.id AND t.language = $1
        WHERE s.category_id = $2
        ORDER BY s.name_key ASC
    `
	rows, err := r.db.Query(ctx, query, language, categoryID)
	if err != nil {
		zap.L().Error("can't get subcategories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subcategory
	for rows.Next() {
		var s domain.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.NameKey, &s.Name); err != nil {
			zap.L().Error("can't scan subcategory row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

func (r *Repository) FindSubcategoryByID(ctx context.Context, id int) (*domain.Subcategory, error) {
	query := "SELECT id, category_id, name_key FROM subcategories WHERE id = $1"
	var s domain.Subcategory
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.CategoryID, &s.NameKey)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find subcategory", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// Create inserts a user category and re-reads it through the translation
// join so the display name reflects the canonical resolution.
func (r *Repository) Create(ctx context.Context, c *domain.Category, language string) (*domain.Category, error) {
	query := `
        INSERT INTO categories (user_id, name_key, is_system)
        VALUES ($1, $2, FALSE)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query, c.UserID, c.NameKey).Scan(&c.ID); err != nil {
		zap.L().Error("can't save category", zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, c.ID, language)
}

func (r *Repository) CreateSubcategory(ctx context.Context, s *domain.Subcategory) (*domain.Subcategory, error) {
	query := `
        INSERT INTO subcategories (category_id, name_key)
        VALUES ($1, $2)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query, s.CategoryID, s.NameKey).Scan(&s.ID); err != nil {
		zap.L().Error("can't save subcategory", zap.Error(err))
		return nil, err
	}
	s.Name = s.NameKey
	return s, nil
}

// Delete removes the category together with its subcategories and all the
// translation rows, in one transaction.
func (r *Repository) Delete(ctx context.Context, id int) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `
            DELETE FROM translations
            WHERE entity_type = 'subcategory'
              AND entity_id IN (SELECT id FROM subcategories WHERE category_id = $1)`, id)
		if err != nil {
			zap.L().Error("can't delete subcategory translations", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, "DELETE FROM subcategories WHERE category_id = $1", id); err != nil {
			zap.L().Error("can't delete subcategories", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, "DELETE FROM translations WHERE entity_type = 'category' AND entity_id = $1", id); err != nil {
			zap.L().Error("can't delete category translations", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id); err != nil {
			zap.L().Error("can't delete category", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) DeleteSubcategory(ctx context.Context, id int) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, "DELETE FROM translations WHERE entity_type = 'subcategory' AND entity_id = $1", id)
		if err != nil {
			zap.L().Error("can't delete subcategory translations", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, "DELETE FROM subcategories WHERE id = $1", id); err != nil {
			zap.L().Error("can't delete subcategory", zap.Error(err))
			return err
		}
		return nil
	})
}
