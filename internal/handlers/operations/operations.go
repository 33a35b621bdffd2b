package operations

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
	operationservice "github.com/mkorobeynikov/fintrack/internal/service/operationservice"
	"github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

type Service interface {
	List(ctx context.Context, params operationservice.ListParams) ([]domain.Operation, int, error)
	GetOwned(ctx context.Context, userID, id, language string) (*domain.Operation, error)
	Create(ctx context.Context, op *domain.Operation, language string) (*domain.Operation, error)
	CreateBatch(ctx context.Context, userID string, ops []domain.Operation) error
	Update(ctx context.Context, userID, id string, upd domain.OperationUpdate, language string) (*domain.Operation, error)
	Delete(ctx context.Context, userID, id string) error
	Balance(ctx context.Context, userID string) (float64, error)
}

type OperationHandler struct {
	operationService Service
	decorator        *currency.Decorator
}

func New(operationService Service, decorator *currency.Decorator) *OperationHandler {
	return &OperationHandler{
		operationService: operationService,
		decorator:        decorator,
	}
}

func language(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		return domain.DefaultLanguage
	}
	return lang
}

func (h *OperationHandler) respond(ctx context.Context, op *domain.Operation) dto.OperationResponseDTO {
	return dto.NewOperationResponseDTO(op, h.decorator.Decorate(ctx, op.Amount, op.Currency))
}

func (h *OperationHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, operationservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, operationservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, operationservice.ErrInvalidType):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, operationservice.ErrBadDateRange):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// List godoc
//
//	@Summary		List operations
//	@Description	List the user's operations, newest first, with optional local-day date window
//	@Tags			Operations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page			query	int		false	"Page number"
//	@Param			limit			query	int		false	"Page size"
//	@Param			startDate		query	string	false	"Window start, YYYY-MM-DD"
//	@Param			endDate			query	string	false	"Window end, YYYY-MM-DD"
//	@Param			timezoneOffset	query	int		false	"Minutes, UTC minus local"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response
//	@Router			/api/operations [get]
func (h *OperationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	page, limit := utils.ParsePagination(r)
	offset, _ := strconv.Atoi(r.URL.Query().Get("timezoneOffset"))

	params := operationservice.ListParams{
		UserID:         userID,
		StartDate:      r.URL.Query().Get("startDate"),
		EndDate:        r.URL.Query().Get("endDate"),
		TimezoneOffset: offset,
		Language:       language(r),
		Page:           domain.Page{Page: page, Limit: limit}.Normalize(),
	}

	ops, total, err := h.operationService.List(r.Context(), params)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response := make([]dto.OperationResponseDTO, 0, len(ops))
	for i := range ops {
		response = append(response, h.respond(r.Context(), &ops[i]))
	}
	utils.RespondWithPagination(w, http.StatusOK, response, utils.Pagination{
		Page:       params.Page.Page,
		Limit:      params.Page.Limit,
		Total:      total,
		TotalPages: domain.TotalPages(total, params.Page.Limit),
	})
}

// Get godoc
//
//	@Summary	Get one operation
//	@Tags		Operations
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response
//	@Failure	404	{object}	utils.Response
//	@Router		/api/operations/{id} [get]
func (h *OperationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	op, err := h.operationService.GetOwned(r.Context(), userID, chi.URLParam(r, "id"), language(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), op))
}

func operationFromRequest(req *dto.OperationRequestDTO, userID string) (*domain.Operation, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Operation{
		UserID:        userID,
		Title:         req.Title,
		Amount:        *req.Amount,
		Currency:      req.Currency,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Type:          req.Type,
		Date:          date,
		Timestamp:     req.Timestamp,
		FromAccount:   req.FromAccount,
		ToAccount:     req.ToAccount,
	}, nil
}

// Create godoc
//
//	@Summary	Create an operation
//	@Tags		Operations
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OperationRequestDTO	true	"Operation payload"
//	@Success	201		{object}	utils.Response
//	@Failure	400		{object}	utils.Response
//	@Router		/api/operations [post]
func (h *OperationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.OperationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	op, err := operationFromRequest(&req, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format", err.Error())
		return
	}

	created, err := h.operationService.Create(r.Context(), op, language(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.respond(r.Context(), created))
}

// CreateBatch godoc
//
//	@Summary		Create operations in bulk
//	@Description	Insert the whole list atomically: either every operation lands or none do
//	@Tags			Operations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BatchOperationsRequestDTO	true	"Batch payload"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response
//	@Router			/api/operations/batch [post]
func (h *OperationHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.BatchOperationsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ops := make([]domain.Operation, 0, len(req.Operations))
	for i := range req.Operations {
		op, err := operationFromRequest(&req.Operations[i], userID)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format", err.Error())
			return
		}
		ops = append(ops, *op)
	}

	if err := h.operationService.CreateBatch(r.Context(), userID, ops); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusCreated, "Operations created")
}

// Balance godoc
//
//	@Summary		Get total balance
//	@Description	Sum of all the user's operation amounts, optionally converted to the secondary currency
//	@Tags			Operations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Router			/api/operations/balance [get]
func (h *OperationHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	balance, err := h.operationService.Balance(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:   balance,
		Converted: h.decorator.Decorate(r.Context(), balance, currency.DefaultCurrency),
	})
}

// Update godoc
//
//	@Summary	Update an operation
//	@Tags		Operations
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OperationUpdateDTO	true	"Fields to change"
//	@Success	200		{object}	utils.Response
//	@Failure	403		{object}	utils.Response
//	@Failure	404		{object}	utils.Response
//	@Router		/api/operations/{id} [put]
func (h *OperationHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.OperationUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := domain.OperationUpdate{
		Title:         req.Title,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Type:          req.Type,
		Timestamp:     req.Timestamp,
		FromAccount:   req.FromAccount,
		ToAccount:     req.ToAccount,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format", err.Error())
			return
		}
		upd.Date = &date
	}

	updated, err := h.operationService.Update(r.Context(), userID, chi.URLParam(r, "id"), upd, language(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), updated))
}

// Delete godoc
//
//	@Summary	Delete an operation
//	@Tags		Operations
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response
//	@Failure	404	{object}	utils.Response
//	@Router		/api/operations/{id} [delete]
func (h *OperationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	if err := h.operationService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Operation deleted")
}
