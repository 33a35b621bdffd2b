package operationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=operationservice.go -destination=operationservice_mock.go -package=operationservice

var (
	ErrNotFound     = errors.New("operation not found")
	ErrForbidden    = errors.New("operation belongs to another user")
	ErrInvalidType  = errors.New("operation type must be income, expense or transfer")
	ErrBadDateRange = errors.New("invalid date range")
)

type Repo interface {
	List(ctx context.Context, filter domain.OperationFilter) ([]domain.Operation, int, error)
	FindByID(ctx context.Context, id, language string) (*domain.Operation, error)
	Create(ctx context.Context, op *domain.Operation, language string) (*domain.Operation, error)
	CreateBatch(ctx context.Context, ops []domain.Operation) error
	Update(ctx context.Context, id string, upd domain.OperationUpdate, language string) (*domain.Operation, error)
	Delete(ctx context.Context, id string) error
	SumByUser(ctx context.Context, userID string) (float64, error)
}

type Service struct {
	operationRepo Repo
}

func New(operationRepo Repo) *Service {
	return &Service{
		operationRepo: operationRepo,
	}
}

// ListParams carries the raw client-side date window. Dates are calendar
// days in the user's timezone; TimezoneOffset is minutes, UTC minus local
// (the JS getTimezoneOffset convention, UTC+3 is -180).
type ListParams struct {
	UserID         string
	StartDate      string
	EndDate        string
	TimezoneOffset int
	Language       string
	Page           domain.Page
}

const dateLayout = "2006-01-02"

// DateWindow maps the user's local calendar days onto UTC instants. The
// start bound is local midnight, the end bound is local end-of-day.
func DateWindow(startDate, endDate string, offsetMinutes int) (from, to *time.Time, err error) {
	shift := time.Duration(offsetMinutes) * time.Minute
	if startDate != "" {
		t, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrBadDateRange, err)
		}
		t = t.Add(shift)
		from = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrBadDateRange, err)
		}
		t = t.Add(24*time.Hour - time.Millisecond).Add(shift)
		to = &t
	}
	return from, to, nil
}

func (s *Service) List(ctx context.Context, params ListParams) ([]domain.Operation, int, error) {
	from, to, err := DateWindow(params.StartDate, params.EndDate, params.TimezoneOffset)
	if err != nil {
		return nil, 0, err
	}

	filter := domain.OperationFilter{
		UserID:   params.UserID,
		DateFrom: from,
		DateTo:   to,
		Language: params.Language,
		Page:     params.Page.Normalize(),
	}
	return s.operationRepo.List(ctx, filter)
}

// GetOwned fetches by id and then checks ownership, so a caller can tell
// forbidden apart from not-found.
func (s *Service) GetOwned(ctx context.Context, userID, id, language string) (*domain.Operation, error) {
	op, err := s.operationRepo.FindByID(ctx, id, language)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, ErrNotFound
	}
	if op.UserID != userID {
		return nil, ErrForbidden
	}
	return op, nil
}

func validType(t string) bool {
	return t == domain.OperationIncome || t == domain.OperationExpense || t == domain.OperationTransfer
}

func (s *Service) Create(ctx context.Context, op *domain.Operation, language string) (*domain.Operation, error) {
	if !validType(op.Type) {
		return nil, ErrInvalidType
	}
	created, err := s.operationRepo.Create(ctx, op, language)
	if err != nil {
		zap.L().Error("can't create operation", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// CreateBatch stamps every operation with the owner and inserts them
// atomically: either the whole list lands or none of it.
func (s *Service) CreateBatch(ctx context.Context, userID string, ops []domain.Operation) error {
	for i := range ops {
		if !validType(ops[i].Type) {
			return ErrInvalidType
		}
		ops[i].UserID = userID
	}
	if err := s.operationRepo.CreateBatch(ctx, ops); err != nil {
		zap.L().Error("can't create operations batch", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Update(ctx context.Context, userID, id string, upd domain.OperationUpdate, language string) (*domain.Operation, error) {
	if _, err := s.GetOwned(ctx, userID, id, language); err != nil {
		return nil, err
	}
	if upd.Type != nil && !validType(*upd.Type) {
		return nil, ErrInvalidType
	}
	return s.operationRepo.Update(ctx, id, upd, language)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.GetOwned(ctx, userID, id, domain.DefaultLanguage); err != nil {
		return err
	}
	return s.operationRepo.Delete(ctx, id)
}

// Balance sums all of the user's operation amounts with no date filtering.
func (s *Service) Balance(ctx context.Context, userID string) (float64, error) {
	sum, err := s.operationRepo.SumByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't compute balance", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
