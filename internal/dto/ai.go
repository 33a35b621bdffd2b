package dto

type ChatMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequestDTO struct {
	Messages []ChatMessageDTO `json:"messages" validate:"required,min=1,dive"`
}

type ChatResponseDTO struct {
	Reply string `json:"reply"`
}
