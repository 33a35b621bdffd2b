package dto

import (
	"time"

	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/internal/domain"
)

type OperationRequestDTO struct {
	Title         string   `json:"title" validate:"required" example:"Groceries"`
	Amount        *float64 `json:"amount" validate:"required" example:"-1500"`
	Currency      string   `json:"currency" validate:"required" example:"RUB"`
	CategoryID    *int     `json:"categoryId"`
	SubcategoryID *int     `json:"subcategoryId"`
	Type          string   `json:"type" validate:"required,oneof=income expense transfer"`
	Date          string   `json:"date" validate:"required" example:"2024-01-15T10:00:00Z"`
	Timestamp     *int64   `json:"timestamp"`
	FromAccount   *string  `json:"fromAccount"`
	ToAccount     *string  `json:"toAccount"`
}

type OperationUpdateDTO struct {
	Title         *string  `json:"title"`
	Amount        *float64 `json:"amount"`
	Currency      *string  `json:"currency"`
	CategoryID    *int     `json:"categoryId"`
	SubcategoryID *int     `json:"subcategoryId"`
	Type          *string  `json:"type"`
	Date          *string  `json:"date"`
	Timestamp     *int64   `json:"timestamp"`
	FromAccount   *string  `json:"fromAccount"`
	ToAccount     *string  `json:"toAccount"`
}

type BatchOperationsRequestDTO struct {
	Operations []OperationRequestDTO `json:"operations" validate:"required,min=1,dive"`
}

type OperationResponseDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CategoryID    *int      `json:"categoryId,omitempty"`
	SubcategoryID *int      `json:"subcategoryId,omitempty"`
	CategoryName  string    `json:"categoryName,omitempty"`
	Type          string    `json:"type"`
	Date          time.Time `json:"date"`
	Timestamp     *int64    `json:"timestamp,omitempty"`
	FromAccount   *string   `json:"fromAccount,omitempty"`
	ToAccount     *string   `json:"toAccount,omitempty"`

	*currency.Converted
}

func NewOperationResponseDTO(op *domain.Operation, converted *currency.Converted) OperationResponseDTO {
	return OperationResponseDTO{
		ID:            op.ID,
		Title:         op.Title,
		Amount:        op.Amount,
		Currency:      op.Currency,
		CategoryID:    op.CategoryID,
		SubcategoryID: op.SubcategoryID,
		CategoryName:  op.CategoryName,
		Type:          op.Type,
		Date:          op.Date,
		Timestamp:     op.Timestamp,
		FromAccount:   op.FromAccount,
		ToAccount:     op.ToAccount,
		Converted:     converted,
	}
}

type BalanceResponseDTO struct {
	Balance float64 `json:"balance"`

	*currency.Converted
}
