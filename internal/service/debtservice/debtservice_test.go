package debtservice

import (
	"context"
	"testing"
	"time"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("lent debt is accepted", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Debt{ID: "d-1"}, nil)

		created, err := service.Create(context.Background(), &domain.Debt{UserID: "u-1", Type: domain.DebtLent, Amount: 5000})
		assert.NoError(t, err)
		assert.Equal(t, "d-1", created.ID)
	})

	t.Run("unknown type never reaches the repo", func(t *testing.T) {
		_, err := service.Create(context.Background(), &domain.Debt{UserID: "u-1", Type: "mortgage"})
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}

func TestOverdue(t *testing.T) {
	service, repo := NewMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	repo.EXPECT().FindOverdue(gomock.Any(), "u-1", now).Return([]domain.Debt{{ID: "d-1"}}, nil)

	debts, err := service.Overdue(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Len(t, debts, 1)
}

func TestSetPaid(t *testing.T) {
	service, repo := NewMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	t.Run("marking paid stamps the paid date", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "d-1").Return(&domain.Debt{ID: "d-1", UserID: "u-1"}, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "d-1", true, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, paid bool, paidAt *time.Time) (*domain.Debt, error) {
				assert.NotNil(t, paidAt)
				assert.Equal(t, now, *paidAt)
				return &domain.Debt{ID: id, Paid: paid, PaidAt: paidAt}, nil
			})

		debt, err := service.SetPaid(context.Background(), "u-1", "d-1", true)
		assert.NoError(t, err)
		assert.True(t, debt.Paid)
	})

	t.Run("unmarking clears the paid date", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "d-1").Return(&domain.Debt{ID: "d-1", UserID: "u-1"}, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "d-1", false, nil).Return(&domain.Debt{ID: "d-1"}, nil)

		debt, err := service.SetPaid(context.Background(), "u-1", "d-1", false)
		assert.NoError(t, err)
		assert.False(t, debt.Paid)
		assert.Nil(t, debt.PaidAt)
	})

	t.Run("foreign debt", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "d-1").Return(&domain.Debt{ID: "d-1", UserID: "u-2"}, nil)

		_, err := service.SetPaid(context.Background(), "u-1", "d-1", true)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("missing debt", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "d-404").Return(nil, nil)

		_, err := service.Update(context.Background(), "u-1", "d-404", domain.DebtUpdate{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("type change validated", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "d-1").Return(&domain.Debt{ID: "d-1", UserID: "u-1"}, nil)

		bad := "mortgage"
		_, err := service.Update(context.Background(), "u-1", "d-1", domain.DebtUpdate{Type: &bad})
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}
