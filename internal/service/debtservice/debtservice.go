package debtservice

import (
	"context"
	"errors"
	"time"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=debtservice.go -destination=debtservice_mock.go -package=debtservice

var (
	ErrNotFound    = errors.New("debt not found")
	ErrForbidden   = errors.New("debt belongs to another user")
	ErrInvalidType = errors.New("debt type must be lent or borrowed")
)

type Repo interface {
	List(ctx context.Context, filter domain.DebtFilter) ([]domain.Debt, int, error)
	FindOverdue(ctx context.Context, userID string, now time.Time) ([]domain.Debt, error)
	FindByID(ctx context.Context, id string) (*domain.Debt, error)
	Create(ctx context.Context, d *domain.Debt) (*domain.Debt, error)
	Update(ctx context.Context, id string, upd domain.DebtUpdate) (*domain.Debt, error)
	MarkPaid(ctx context.Context, id string, paid bool, paidAt *time.Time) (*domain.Debt, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	debtRepo Repo
	now      func() time.Time
}

func New(debtRepo Repo) *Service {
	return &Service{
		debtRepo: debtRepo,
		now:      time.Now,
	}
}

func validType(t string) bool {
	return t == domain.DebtLent || t == domain.DebtBorrowed
}

func (s *Service) List(ctx context.Context, filter domain.DebtFilter) ([]domain.Debt, int, error) {
	filter.Page = filter.Page.Normalize()
	return s.debtRepo.List(ctx, filter)
}

func (s *Service) Overdue(ctx context.Context, userID string) ([]domain.Debt, error) {
	return s.debtRepo.FindOverdue(ctx, userID, s.now())
}

func (s *Service) getOwned(ctx context.Context, userID, id string) (*domain.Debt, error) {
	d, err := s.debtRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	if d.UserID != userID {
		return nil, ErrForbidden
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Debt, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, d *domain.Debt) (*domain.Debt, error) {
	if !validType(d.Type) {
		return nil, ErrInvalidType
	}
	created, err := s.debtRepo.Create(ctx, d)
	if err != nil {
		zap.L().Error("can't create debt", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, upd domain.DebtUpdate) (*domain.Debt, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	if upd.Type != nil && !validType(*upd.Type) {
		return nil, ErrInvalidType
	}
	return s.debtRepo.Update(ctx, id, upd)
}

// SetPaid flips the paid flag; the paid date follows the flag.
func (s *Service) SetPaid(ctx context.Context, userID, id string, paid bool) (*domain.Debt, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	var paidAt *time.Time
	if paid {
		now := s.now()
		paidAt = &now
	}
	return s.debtRepo.MarkPaid(ctx, id, paid, paidAt)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.debtRepo.Delete(ctx, id)
}
