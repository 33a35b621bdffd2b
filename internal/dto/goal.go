package dto

import (
	"time"

	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/internal/domain"
)

type GoalRequestDTO struct {
	Title        string   `json:"title" validate:"required" example:"New laptop"`
	TargetAmount *float64 `json:"targetAmount" validate:"required" example:"120000"`
	Deadline     string   `json:"deadline" validate:"required" example:"2026-12-31T00:00:00Z"`
	AutoFill     bool     `json:"autoFill"`
	AutoFillPct  *float64 `json:"autoFillPct"`
}

type GoalUpdateDTO struct {
	Title         *string  `json:"title"`
	TargetAmount  *float64 `json:"targetAmount"`
	CurrentAmount *float64 `json:"currentAmount"`
	Deadline      *string  `json:"deadline"`
	AutoFill      *bool    `json:"autoFill"`
	AutoFillPct   *float64 `json:"autoFillPct"`
}

type GoalResponseDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Deadline      time.Time `json:"deadline"`
	AutoFill      bool      `json:"autoFill"`
	AutoFillPct   *float64  `json:"autoFillPct,omitempty"`

	*currency.Converted
}

func NewGoalResponseDTO(g *domain.Goal, converted *currency.Converted) GoalResponseDTO {
	return GoalResponseDTO{
		ID:            g.ID,
		Title:         g.Title,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		AutoFill:      g.AutoFill,
		AutoFillPct:   g.AutoFillPct,
		Converted:     converted,
	}
}
