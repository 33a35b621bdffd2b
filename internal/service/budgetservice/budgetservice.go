package budgetservice

import (
	"context"
	"errors"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=budgetservice.go -destination=budgetservice_mock.go -package=budgetservice

var (
	ErrNotFound  = errors.New("budget not found")
	ErrForbidden = errors.New("budget belongs to another user")
)

type Repo interface {
	List(ctx context.Context, userID string, page domain.Page) ([]domain.Budget, int, error)
	FindByID(ctx context.Context, id string) (*domain.Budget, error)
	Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error)
	Update(ctx context.Context, id string, upd domain.BudgetUpdate) (*domain.Budget, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	budgetRepo Repo
}

func New(budgetRepo Repo) *Service {
	return &Service{
		budgetRepo: budgetRepo,
	}
}

func (s *Service) List(ctx context.Context, userID string, page domain.Page) ([]domain.Budget, int, error) {
	return s.budgetRepo.List(ctx, userID, page.Normalize())
}

func (s *Service) getOwned(ctx context.Context, userID, id string) (*domain.Budget, error) {
	b, err := s.budgetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Budget, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error) {
	created, err := s.budgetRepo.Create(ctx, b)
	if err != nil {
		zap.L().Error("can't create budget", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, upd domain.BudgetUpdate) (*domain.Budget, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.budgetRepo.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.budgetRepo.Delete(ctx, id)
}
