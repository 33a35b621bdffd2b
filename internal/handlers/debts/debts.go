package debts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/dto"
	"github.com/mkorobeynikov/fintrack/internal/service/debtservice"
	"github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

type Service interface {
	List(ctx context.Context, filter domain.DebtFilter) ([]domain.Debt, int, error)
	Overdue(ctx context.Context, userID string) ([]domain.Debt, error)
	Get(ctx context.Context, userID, id string) (*domain.Debt, error)
	Create(ctx context.Context, d *domain.Debt) (*domain.Debt, error)
	Update(ctx context.Context, userID, id string, upd domain.DebtUpdate) (*domain.Debt, error)
	SetPaid(ctx context.Context, userID, id string, paid bool) (*domain.Debt, error)
	Delete(ctx context.Context, userID, id string) error
}

type DebtHandler struct {
	debtService Service
	decorator   *currency.Decorator
}

func New(debtService Service, decorator *currency.Decorator) *DebtHandler {
	return &DebtHandler{
		debtService: debtService,
		decorator:   decorator,
	}
}

func (h *DebtHandler) respond(ctx context.Context, d *domain.Debt) dto.DebtResponseDTO {
	return dto.NewDebtResponseDTO(d, h.decorator.Decorate(ctx, d.Amount, d.Currency))
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, debtservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Debt not found")
	case errors.Is(err, debtservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, debtservice.ErrInvalidType):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid debt type")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// List godoc
//
//	@Summary	List debts
//	@Tags		Debts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		paid	query		bool	false	"Filter by paid state"
//	@Param		page	query		int		false	"Page number"
//	@Param		limit	query		int		false	"Page size"
//	@Success	200		{object}	utils.Response{data=[]dto.DebtResponseDTO}
//	@Router		/api/debts [get]
func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	page, limit := utils.ParsePagination(r)

	filter := domain.DebtFilter{
		UserID: userID,
		Page:   domain.Page{Page: page, Limit: limit},
	}
	if raw := r.URL.Query().Get("paid"); raw != "" {
		paid, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid paid filter")
			return
		}
		filter.Paid = &paid
	}

	debts, total, err := h.debtService.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]dto.DebtResponseDTO, 0, len(debts))
	for i := range debts {
		items = append(items, h.respond(r.Context(), &debts[i]))
	}
	norm := filter.Page.Normalize()
	utils.RespondWithPagination(w, http.StatusOK, items, utils.Pagination{
		Page:       norm.Page,
		Limit:      norm.Limit,
		Total:      total,
		TotalPages: domain.TotalPages(total, norm.Limit),
	})
}

// Overdue godoc
//
//	@Summary	List overdue debts
//	@Tags		Debts
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.Response{data=[]dto.DebtResponseDTO}
//	@Router		/api/debts/overdue [get]
func (h *DebtHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	debts, err := h.debtService.Overdue(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	items := make([]dto.DebtResponseDTO, 0, len(debts))
	for i := range debts {
		items = append(items, h.respond(r.Context(), &debts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// Get godoc
//
//	@Summary	Get a debt
//	@Tags		Debts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Debt ID"
//	@Success	200	{object}	utils.Response{data=dto.DebtResponseDTO}
//	@Failure	403	{object}	utils.Response
//	@Failure	404	{object}	utils.Response
//	@Router		/api/debts/{id} [get]
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	debt, err := h.debtService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), debt))
}

// Create godoc
//
//	@Summary	Create a debt
//	@Tags		Debts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.DebtRequestDTO	true	"Debt"
//	@Success	201		{object}	utils.Response{data=dto.DebtResponseDTO}
//	@Router		/api/debts [post]
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DebtRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid dueDate format")
		return
	}

	debt, err := h.debtService.Create(r.Context(), &domain.Debt{
		UserID:       auth.UserID(r.Context()),
		Title:        req.Title,
		Amount:       *req.Amount,
		Currency:     req.Currency,
		Type:         req.Type,
		Counterparty: req.Counterparty,
		DueDate:      dueDate,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.respond(r.Context(), debt))
}

// Update godoc
//
//	@Summary	Update a debt
//	@Tags		Debts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Debt ID"
//	@Param		request	body		dto.DebtUpdateDTO	true	"Fields to change"
//	@Success	200		{object}	utils.Response{data=dto.DebtResponseDTO}
//	@Router		/api/debts/{id} [put]
func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.DebtUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := domain.DebtUpdate{
		Title:        req.Title,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Type:         req.Type,
		Counterparty: req.Counterparty,
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid dueDate format")
			return
		}
		upd.DueDate = &dueDate
	}

	userID := auth.UserID(r.Context())
	debt, err := h.debtService.Update(r.Context(), userID, chi.URLParam(r, "id"), upd)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), debt))
}

// SetPaid godoc
//
//	@Summary	Mark a debt paid or unpaid
//	@Tags		Debts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Debt ID"
//	@Param		request	body		dto.DebtPaidRequestDTO	true	"Paid flag"
//	@Success	200		{object}	utils.Response{data=dto.DebtResponseDTO}
//	@Router		/api/debts/{id}/paid [patch]
func (h *DebtHandler) SetPaid(w http.ResponseWriter, r *http.Request) {
	var req dto.DebtPaidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := auth.UserID(r.Context())
	debt, err := h.debtService.SetPaid(r.Context(), userID, chi.URLParam(r, "id"), *req.Paid)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), debt))
}

// Delete godoc
//
//	@Summary	Delete a debt
//	@Tags		Debts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Debt ID"
//	@Success	200	{object}	utils.Response
//	@Router		/api/debts/{id} [delete]
func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if err := h.debtService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Debt deleted")
}
