package categoryservice

import (
	"context"
	"testing"

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

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	categories := []domain.Category{
		{ID: 1, NameKey: "category.salary", Name: "Salary", IsSystem: true},
		{ID: 7, NameKey: "Pets", Name: "Pets"},
	}
	repo.EXPECT().List(gomock.Any(), "u-1", "ru", "").Return(categories, nil)
	repo.EXPECT().Subcategories(gomock.Any(), 1, "ru").Return(nil, nil)
	repo.EXPECT().Subcategories(gomock.Any(), 7, "ru").Return([]domain.Subcategory{{ID: 3, CategoryID: 7, Name: "Vet"}}, nil)

	got, err := service.List(context.Background(), "u-1", "ru", "")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Empty(t, got[0].Subcategories)
	assert.Len(t, got[1].Subcategories, 1)
	assert.Equal(t, "Vet", got[1].Subcategories[0].Name)
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any(), "en").DoAndReturn(
		func(_ context.Context, c *domain.Category, _ string) (*domain.Category, error) {
			assert.Equal(t, "Pets", c.NameKey)
			assert.NotNil(t, c.UserID)
			assert.Equal(t, "u-1", *c.UserID)
			c.ID = 7
			return c, nil
		})

	created, err := service.Create(context.Background(), "u-1", "Pets", "en")
	assert.NoError(t, err)
	assert.Equal(t, 7, created.ID)
}

func TestCreateSubcategory(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("parent must exist", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 99, "en").Return(nil, nil)

		_, err := service.CreateSubcategory(context.Background(), 99, "Vet")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("created under existing parent", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 7, "en").Return(&domain.Category{ID: 7}, nil)
		repo.EXPECT().CreateSubcategory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.Subcategory) (*domain.Subcategory, error) {
				assert.Equal(t, 7, s.CategoryID)
				s.ID = 3
				return s, nil
			})

		sub, err := service.CreateSubcategory(context.Background(), 7, "Vet")
		assert.NoError(t, err)
		assert.Equal(t, 3, sub.ID)
	})
}

func TestDelete(t *testing.T) {
	service, repo := NewMock(t)
	owner := "u-1"

	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "system category is protected",
			userID: "u-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1, "en").Return(&domain.Category{ID: 1, IsSystem: true}, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:   "foreign category is protected",
			userID: "u-2",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1, "en").Return(&domain.Category{ID: 1, UserID: &owner}, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:   "missing category",
			userID: "u-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1, "en").Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "owner deletes own category",
			userID: "u-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1, "en").Return(&domain.Category{ID: 1, UserID: &owner}, nil)
				repo.EXPECT().Delete(gomock.Any(), 1).Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Delete(context.Background(), tt.userID, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeleteSubcategory(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("system parent is protected", func(t *testing.T) {
		repo.EXPECT().FindSubcategoryByID(gomock.Any(), 3).Return(&domain.Subcategory{ID: 3, CategoryID: 1}, nil)
		repo.EXPECT().FindByID(gomock.Any(), 1, "en").Return(&domain.Category{ID: 1, IsSystem: true}, nil)

		assert.ErrorIs(t, service.DeleteSubcategory(context.Background(), 3), ErrForbidden)
	})

	t.Run("user subcategory deleted", func(t *testing.T) {
		repo.EXPECT().FindSubcategoryByID(gomock.Any(), 3).Return(&domain.Subcategory{ID: 3, CategoryID: 7}, nil)
		repo.EXPECT().FindByID(gomock.Any(), 7, "en").Return(&domain.Category{ID: 7}, nil)
		repo.EXPECT().DeleteSubcategory(gomock.Any(), 3).Return(nil)

		assert.NoError(t, service.DeleteSubcategory(context.Background(), 3))
	})
}
