package categoryservice

import (
	"context"
	"errors"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=categoryservice.go -destination=categoryservice_mock.go -package=categoryservice

var (
	ErrNotFound  = errors.New("category not found")
	ErrForbidden = errors.New("system categories cannot be modified")
)

type Repo interface {
	List(ctx context.Context, userID, language, operationType string) ([]domain.Category, error)
	FindByID(ctx context.Context, id int, language string) (*domain.Category, error)
	Subcategories(ctx context.Context, categoryID int, language string) ([]domain.Subcategory, error)
	FindSubcategoryByID(ctx context.Context, id int) (*domain.Subcategory, error)
	Create(ctx context.Context, c *domain.Category, language string) (*domain.Category, error)
	CreateSubcategory(ctx context.Context, s *domain.Subcategory) (*domain.Subcategory, error)
	Delete(ctx context.Context, id int) error
	DeleteSubcategory(ctx context.Context, id int) error
}

type CategoryWithSubs struct {
	domain.Category
	Subcategories []domain.Subcategory
}

type Service struct {
	categoryRepo Repo
}

func New(categoryRepo Repo) *Service {
	return &Service{
		categoryRepo: categoryRepo,
	}
}

// List returns system plus user categories with their subcategories
// attached, display names resolved for the requested language.
func (s *Service) List(ctx context.Context, userID, language, operationType string) ([]CategoryWithSubs, error) {
	categories, err := s.categoryRepo.List(ctx, userID, language, operationType)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryWithSubs, 0, len(categories))
	for _, c := range categories {
		subs, err := s.categoryRepo.Subcategories(ctx, c.ID, language)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryWithSubs{Category: c, Subcategories: subs})
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, userID, name, language string) (*domain.Category, error) {
	c := &domain.Category{
		UserID:  &userID,
		NameKey: name,
	}
	created, err := s.categoryRepo.Create(ctx, c, language)
	if err != nil {
		zap.L().Error("can't create category", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// CreateSubcategory only verifies the parent exists. Matching the original
// system, it does not cross-check category ownership.
func (s *Service) CreateSubcategory(ctx context.Context, categoryID int, name string) (*domain.Subcategory, error) {
	parent, err := s.categoryRepo.FindByID(ctx, categoryID, domain.DefaultLanguage)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrNotFound
	}

	sub := &domain.Subcategory{
		CategoryID: categoryID,
		NameKey:    name,
	}
	created, err := s.categoryRepo.CreateSubcategory(ctx, sub)
	if err != nil {
		zap.L().Error("can't create subcategory", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Delete refuses system categories; user categories require ownership.
func (s *Service) Delete(ctx context.Context, userID string, id int) error {
	c, err := s.categoryRepo.FindByID(ctx, id, domain.DefaultLanguage)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}
	if c.IsSystem {
		return ErrForbidden
	}
	if c.UserID != nil && *c.UserID != userID {
		return ErrForbidden
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *Service) DeleteSubcategory(ctx context.Context, id int) error {
	sub, err := s.categoryRepo.FindSubcategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrNotFound
	}

	parent, err := s.categoryRepo.FindByID(ctx, sub.CategoryID, domain.DefaultLanguage)
	if err != nil {
		return err
	}
	if parent != nil && parent.IsSystem {
		return ErrForbidden
	}
	return s.categoryRepo.DeleteSubcategory(ctx, id)
}
