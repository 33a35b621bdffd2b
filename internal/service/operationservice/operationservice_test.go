package operationservice

import (
	"context"
	"errors"
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

func TestDateWindow(t *testing.T) {
	tests := []struct {
		name          string
		startDate     string
		endDate       string
		offsetMinutes int
		expectedFrom  string
		expectedTo    string
		expectError   bool
	}{
		{
			name:          "UTC window",
			startDate:     "2024-01-01",
			endDate:       "2024-01-31",
			offsetMinutes: 0,
			expectedFrom:  "2024-01-01T00:00:00Z",
			expectedTo:    "2024-01-31T23:59:59.999Z",
		},
		{
			name:          "UTC+3 shifts both bounds back",
			startDate:     "2024-01-01",
			endDate:       "2024-01-31",
			offsetMinutes: -180,
			expectedFrom:  "2023-12-31T21:00:00Z",
			expectedTo:    "2024-01-31T20:59:59.999Z",
		},
		{
			name:          "UTC-5 shifts both bounds forward",
			startDate:     "2024-06-01",
			endDate:       "2024-06-01",
			offsetMinutes: 300,
			expectedFrom:  "2024-06-01T05:00:00Z",
			expectedTo:    "2024-06-02T04:59:59.999Z",
		},
		{
			name:          "open-ended start only",
			startDate:     "2024-01-01",
			offsetMinutes: 0,
			expectedFrom:  "2024-01-01T00:00:00Z",
		},
		{
			name:        "malformed date",
			startDate:   "01-01-2024",
			expectError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := DateWindow(tt.startDate, tt.endDate, tt.offsetMinutes)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrBadDateRange)
				return
			}
			assert.NoError(t, err)
			if tt.expectedFrom != "" {
				expected, _ := time.Parse(time.RFC3339, tt.expectedFrom)
				assert.Equal(t, expected, from.UTC())
			} else {
				assert.Nil(t, from)
			}
			if tt.expectedTo != "" {
				expected, _ := time.Parse(time.RFC3339, tt.expectedTo)
				assert.Equal(t, expected, to.UTC())
			} else {
				assert.Nil(t, to)
			}
		})
	}
}

// An operation stored at 22:30 UTC on Jan 31 belongs to Feb 1 for a user
// in UTC+3, so an endDate of Jan 31 must exclude it.
func TestDateWindowExcludesNextLocalDay(t *testing.T) {
	opDate, _ := time.Parse(time.RFC3339, "2024-01-31T22:30:00Z")

	_, to, err := DateWindow("", "2024-01-31", -180)
	assert.NoError(t, err)
	assert.True(t, opDate.After(*to))
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)
	ops := []domain.Operation{{ID: "op-1", UserID: "u-1", Amount: -250}}

	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter domain.OperationFilter) ([]domain.Operation, int, error) {
			assert.Equal(t, "u-1", filter.UserID)
			assert.Equal(t, 1, filter.Page.Page)
			assert.Equal(t, 20, filter.Page.Limit)
			assert.Nil(t, filter.DateFrom)
			return ops, 1, nil
		})

	got, total, err := service.List(context.Background(), ListParams{UserID: "u-1", Language: "en"})
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, ops, got)
}

func TestListBadDates(t *testing.T) {
	service, _ := NewMock(t)
	_, _, err := service.List(context.Background(), ListParams{UserID: "u-1", StartDate: "nope"})
	assert.Error(t, err)
}

func TestGetOwned(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "owner gets the operation",
			userID: "u-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "op-1", "en").Return(&domain.Operation{ID: "op-1", UserID: "u-1"}, nil)
			},
		},
		{
			name:   "missing operation",
			userID: "u-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "op-1", "en").Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "foreign operation",
			userID: "u-2",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "op-1", "en").Return(&domain.Operation{ID: "op-1", UserID: "u-1"}, nil)
			},
			expectedError: ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			op, err := service.GetOwned(context.Background(), tt.userID, "op-1", "en")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, op)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.userID, op.UserID)
		})
	}
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		op            *domain.Operation
		prepareMock   func()
		expectedError error
	}{
		{
			name: "valid expense",
			op:   &domain.Operation{UserID: "u-1", Title: "Groceries", Amount: -420, Type: domain.OperationExpense},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), "en").
					Return(&domain.Operation{ID: "op-1", UserID: "u-1"}, nil)
			},
		},
		{
			name:          "unknown type rejected before the repo",
			op:            &domain.Operation{UserID: "u-1", Type: "loan"},
			prepareMock:   func() {},
			expectedError: ErrInvalidType,
		},
		{
			name: "repo failure propagates",
			op:   &domain.Operation{UserID: "u-1", Type: domain.OperationIncome},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), "en").Return(nil, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			created, err := service.Create(context.Background(), tt.op, "en")
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, created.ID)
		})
	}
}

func TestCreateBatch(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("stamps every operation with the owner", func(t *testing.T) {
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ops []domain.Operation) error {
				for _, op := range ops {
					assert.Equal(t, "u-1", op.UserID)
				}
				return nil
			})

		ops := []domain.Operation{
			{Title: "Salary", Amount: 100000, Type: domain.OperationIncome},
			{Title: "Rent", Amount: -45000, Type: domain.OperationExpense},
		}
		assert.NoError(t, service.CreateBatch(context.Background(), "u-1", ops))
	})

	t.Run("one bad type fails the whole batch", func(t *testing.T) {
		ops := []domain.Operation{
			{Title: "Salary", Amount: 100000, Type: domain.OperationIncome},
			{Title: "Oops", Amount: 1, Type: "subscription"},
		}
		assert.ErrorIs(t, service.CreateBatch(context.Background(), "u-1", ops), ErrInvalidType)
	})
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("ownership checked before update", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "op-1", "en").Return(&domain.Operation{ID: "op-1", UserID: "u-2"}, nil)

		title := "new title"
		_, err := service.Update(context.Background(), "u-1", "op-1", domain.OperationUpdate{Title: &title}, "en")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("type change validated", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "op-1", "en").Return(&domain.Operation{ID: "op-1", UserID: "u-1"}, nil)

		bad := "loan"
		_, err := service.Update(context.Background(), "u-1", "op-1", domain.OperationUpdate{Type: &bad}, "en")
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("valid update goes through", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "op-1", "en").Return(&domain.Operation{ID: "op-1", UserID: "u-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), "op-1", gomock.Any(), "en").Return(&domain.Operation{ID: "op-1", Title: "new title"}, nil)

		title := "new title"
		updated, err := service.Update(context.Background(), "u-1", "op-1", domain.OperationUpdate{Title: &title}, "en")
		assert.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
	})
}

func TestDelete(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), "op-1", "en").Return(&domain.Operation{ID: "op-1", UserID: "u-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "op-1").Return(nil)

	assert.NoError(t, service.Delete(context.Background(), "u-1", "op-1"))
}

func TestBalance(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().SumByUser(gomock.Any(), "u-1").Return(1234.56, nil)

	sum, err := service.Balance(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, 1234.56, sum)
}
