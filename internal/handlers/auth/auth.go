package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/dto"
	authservice "github.com/mkorobeynikov/fintrack/internal/service/authservice"
	pkgauth "github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

type Service interface {
	SendCode(ctx context.Context, target string) error
	Register(ctx context.Context, target, code, name, password string) (*domain.User, string, error)
	Login(ctx context.Context, target, password string) (*domain.User, string, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	CreateTelegramSession(ctx context.Context) (*domain.TelegramSession, error)
	ExchangeTelegramSession(ctx context.Context, token string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SendCode godoc
//
//	@Summary		Send a verification code
//	@Description	Issue a one-time registration code for an email address or phone number
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendCodeRequestDTO	true	"Code target"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response
//	@Failure		409		{object}	utils.Response	"Account already exists"
//	@Router			/api/auth/register/send-code [post]
func (h *AuthHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req dto.SendCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.SendCode(r.Context(), req.Target); err != nil {
		if errors.Is(err, authservice.ErrUserExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Verification code sent")
}

// Verify godoc
//
//	@Summary		Verify a code and register
//	@Description	Consume the one-time code; a matching code works exactly once
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid or expired code"
//	@Router			/api/auth/register/verify [post]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Target, req.Code, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCode) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Token: token,
		User:  dto.NewUserDTO(user),
	})
}

// Login godoc
//
//	@Summary	Authenticate user
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequestDTO	true	"Login payload"
//	@Success	200		{object}	dto.AuthResponseDTO
//	@Failure	401		{object}	utils.Response	"Invalid credentials"
//	@Router		/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Target, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Token: token,
		User:  dto.NewUserDTO(user),
	})
}

// Me godoc
//
//	@Summary	Get the authenticated profile
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.UserDTO
//	@Failure	401	{object}	utils.Response
//	@Router		/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserID(r.Context())

	user, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(user))
}

// CreateTelegramSession godoc
//
//	@Summary		Open a Telegram login handshake
//	@Description	Returns the short-lived token the client embeds into the bot deep-link
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.TelegramSessionResponseDTO
//	@Router			/api/auth/telegram/session [post]
func (h *AuthHandler) CreateTelegramSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.CreateTelegramSession(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TelegramSessionResponseDTO{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// ExchangeTelegramSession godoc
//
//	@Summary		Exchange a confirmed Telegram session for a token
//	@Description	Polled by the login client; 202 while the bot confirmation is pending
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TelegramExchangeRequestDTO	true	"Session token"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		404		{object}	utils.Response	"Session expired or consumed"
//	@Router			/api/auth/telegram/exchange [post]
func (h *AuthHandler) ExchangeTelegramSession(w http.ResponseWriter, r *http.Request) {
	var req dto.TelegramExchangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.ExchangeTelegramSession(r.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrSessionNotReady):
			utils.RespondWithError(w, http.StatusAccepted, err.Error())
		case errors.Is(err, authservice.ErrSessionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		}
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{Token: token})
}
