package goalservice

import (
	"context"
	"errors"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=goalservice.go -destination=goalservice_mock.go -package=goalservice

var (
	ErrNotFound  = errors.New("goal not found")
	ErrForbidden = errors.New("goal belongs to another user")
)

type Repo interface {
	List(ctx context.Context, userID string, page domain.Page) ([]domain.Goal, int, error)
	FindByID(ctx context.Context, id string) (*domain.Goal, error)
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, id string, upd domain.GoalUpdate) (*domain.Goal, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	goalRepo Repo
}

func New(goalRepo Repo) *Service {
	return &Service{
		goalRepo: goalRepo,
	}
}

func (s *Service) List(ctx context.Context, userID string, page domain.Page) ([]domain.Goal, int, error) {
	return s.goalRepo.List(ctx, userID, page.Normalize())
}

func (s *Service) getOwned(ctx context.Context, userID, id string) (*domain.Goal, error) {
	g, err := s.goalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	if g.UserID != userID {
		return nil, ErrForbidden
	}
	return g, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Goal, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	created, err := s.goalRepo.Create(ctx, g)
	if err != nil {
		zap.L().Error("can't create goal", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, upd domain.GoalUpdate) (*domain.Goal, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.goalRepo.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.goalRepo.Delete(ctx, id)
}
