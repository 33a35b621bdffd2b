package dto

import (
	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/internal/domain"
)

type BudgetRequestDTO struct {
	CategoryID   *int     `json:"categoryId"`
	CategoryName string   `json:"categoryName" validate:"required" example:"Food"`
	Limit        *float64 `json:"limit" validate:"required" example:"30000"`
	Color        string   `json:"color" example:"#fca903"`
}

type BudgetUpdateDTO struct {
	CategoryID   *int     `json:"categoryId"`
	CategoryName *string  `json:"categoryName"`
	Spent        *float64 `json:"spent"`
	Limit        *float64 `json:"limit"`
	Color        *string  `json:"color"`
}

type BudgetResponseDTO struct {
	ID           string  `json:"id"`
	CategoryID   *int    `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryName"`
	Spent        float64 `json:"spent"`
	Limit        float64 `json:"limit"`
	Color        string  `json:"color"`

	*currency.Converted
}

func NewBudgetResponseDTO(b *domain.Budget, converted *currency.Converted) BudgetResponseDTO {
	return BudgetResponseDTO{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		Spent:        b.Spent,
		Limit:        b.Limit,
		Color:        b.Color,
		Converted:    converted,
	}
}
