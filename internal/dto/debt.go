package dto

import (
	"time"

	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/internal/domain"
)

type DebtRequestDTO struct {
	Title        string   `json:"title" validate:"required" example:"Loan to Alex"`
	Amount       *float64 `json:"amount" validate:"required" example:"5000"`
	Currency     string   `json:"currency" validate:"required" example:"RUB"`
	Type         string   `json:"type" validate:"required,oneof=lent borrowed"`
	Counterparty string   `json:"counterparty" validate:"required" example:"Alex"`
	DueDate      string   `json:"dueDate" validate:"required" example:"2026-03-01T00:00:00Z"`
}

type DebtUpdateDTO struct {
	Title        *string  `json:"title"`
	Amount       *float64 `json:"amount"`
	Currency     *string  `json:"currency"`
	Type         *string  `json:"type"`
	Counterparty *string  `json:"counterparty"`
	DueDate      *string  `json:"dueDate"`
}

type DebtPaidRequestDTO struct {
	Paid *bool `json:"paid" validate:"required"`
}

type DebtResponseDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency"`
	Type         string     `json:"type"`
	Counterparty string     `json:"counterparty"`
	DueDate      time.Time  `json:"dueDate"`
	Paid         bool       `json:"paid"`
	PaidAt       *time.Time `json:"paidAt,omitempty"`

	*currency.Converted
}

func NewDebtResponseDTO(d *domain.Debt, converted *currency.Converted) DebtResponseDTO {
	return DebtResponseDTO{
		ID:           d.ID,
		Title:        d.Title,
		Amount:       d.Amount,
		Currency:     d.Currency,
		Type:         d.Type,
		Counterparty: d.Counterparty,
		DueDate:      d.DueDate,
		Paid:         d.Paid,
		PaidAt:       d.PaidAt,
		Converted:    converted,
	}
}
