package dto

import (
	"time"

	"github.com/mkorobeynikov/fintrack/internal/domain"
)

type SendCodeRequestDTO struct {
	Target string `json:"target" validate:"required" example:"user@example.com"`
}

type RegisterRequestDTO struct {
	Target   string `json:"target" validate:"required" example:"user@example.com"`
	Code     string `json:"code" validate:"required" example:"123456"`
	Name     string `json:"name" validate:"required" example:"Ivan"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequestDTO struct {
	Target   string `json:"target" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	TelegramID *int64    `json:"telegramId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewUserDTO(u *domain.User) *UserDTO {
	return &UserDTO{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		TelegramID: u.TelegramID,
		CreatedAt:  u.CreatedAt,
	}
}

type AuthResponseDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user,omitempty"`
}

type TelegramSessionResponseDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type TelegramExchangeRequestDTO struct {
	Token string `json:"token" validate:"required"`
}
