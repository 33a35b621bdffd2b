package aichat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mkorobeynikov/fintrack/internal/ai"
	"github.com/mkorobeynikov/fintrack/internal/dto"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
	"go.uber.org/zap"
)

type Provider interface {
	Chat(ctx context.Context, msgs []ai.Message) (string, error)
	Stream(ctx context.Context, msgs []ai.Message, out io.Writer) error
}

type AIHandler struct {
	provider Provider
}

func New(provider Provider) *AIHandler {
	return &AIHandler{
		provider: provider,
	}
}

func (h *AIHandler) decode(w http.ResponseWriter, r *http.Request) ([]ai.Message, bool) {
	var req dto.ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	msgs := make([]ai.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, ai.Message{Role: m.Role, Content: m.Content})
	}
	return msgs, true
}

// Chat godoc
//
//	@Summary	Ask the assistant
//	@Tags		AI
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ChatRequestDTO	true	"Conversation"
//	@Success	200		{object}	utils.Response{data=dto.ChatResponseDTO}
//	@Failure	503		{object}	utils.Response	"Provider unavailable"
//	@Router		/api/ai/chat [post]
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	msgs, ok := h.decode(w, r)
	if !ok {
		return
	}

	reply, err := h.provider.Chat(r.Context(), msgs)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "AI provider unavailable")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ChatResponseDTO{Reply: reply})
}

// Stream godoc
//
//	@Summary		Ask the assistant, streaming
//	@Description	Relays the provider's server-sent events verbatim
//	@Tags			AI
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		text/event-stream
//	@Param			request	body	dto.ChatRequestDTO	true	"Conversation"
//	@Success		200
//	@Router			/api/ai/chat/stream [post]
func (h *AIHandler) Stream(w http.ResponseWriter, r *http.Request) {
	msgs, ok := h.decode(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	if err := h.provider.Stream(r.Context(), msgs, w); err != nil {
		// headers are already out, the stream just ends early
		zap.L().Warn("ai stream interrupted", zap.Error(err))
	}
}
