package budgets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/dto"
	"github.com/mkorobeynikov/fintrack/internal/service/budgetservice"
	"github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID string, page domain.Page) ([]domain.Budget, int, error)
	Get(ctx context.Context, userID, id string) (*domain.Budget, error)
	Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error)
	Update(ctx context.Context, userID, id string, upd domain.BudgetUpdate) (*domain.Budget, error)
	Delete(ctx context.Context, userID, id string) error
}

type BudgetHandler struct {
	budgetService Service
	decorator     *currency.Decorator
}

func New(budgetService Service, decorator *currency.Decorator) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		decorator:     decorator,
	}
}

// Budget limits are stored in the default currency.
func (h *BudgetHandler) respond(ctx context.Context, b *domain.Budget) dto.BudgetResponseDTO {
	return dto.NewBudgetResponseDTO(b, h.decorator.Decorate(ctx, b.Limit, currency.DefaultCurrency))
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, budgetservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Budget not found")
	case errors.Is(err, budgetservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Access denied")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// List godoc
//
//	@Summary	List budgets
//	@Tags		Budgets
//	@Security	BearerAuth
//	@Produce	json
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	utils.Response{data=[]dto.BudgetResponseDTO}
//	@Router		/api/budgets [get]
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	page, limit := utils.ParsePagination(r)

	norm := domain.Page{Page: page, Limit: limit}.Normalize()
	budgets, total, err := h.budgetService.List(r.Context(), userID, norm)
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]dto.BudgetResponseDTO, 0, len(budgets))
	for i := range budgets {
		items = append(items, h.respond(r.Context(), &budgets[i]))
	}
	utils.RespondWithPagination(w, http.StatusOK, items, utils.Pagination{
		Page:       norm.Page,
		Limit:      norm.Limit,
		Total:      total,
		TotalPages: domain.TotalPages(total, norm.Limit),
	})
}

// Get godoc
//
//	@Summary	Get a budget
//	@Tags		Budgets
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Budget ID"
//	@Success	200	{object}	utils.Response{data=dto.BudgetResponseDTO}
//	@Failure	403	{object}	utils.Response
//	@Failure	404	{object}	utils.Response
//	@Router		/api/budgets/{id} [get]
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	budget, err := h.budgetService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), budget))
}

// Create godoc
//
//	@Summary	Create a budget
//	@Tags		Budgets
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.BudgetRequestDTO	true	"Budget"
//	@Success	201		{object}	utils.Response{data=dto.BudgetResponseDTO}
//	@Router		/api/budgets [post]
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BudgetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	budget, err := h.budgetService.Create(r.Context(), &domain.Budget{
		UserID:       auth.UserID(r.Context()),
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
		Limit:        *req.Limit,
		Color:        req.Color,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.respond(r.Context(), budget))
}

// Update godoc
//
//	@Summary	Update a budget
//	@Tags		Budgets
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Budget ID"
//	@Param		request	body		dto.BudgetUpdateDTO	true	"Fields to change"
//	@Success	200		{object}	utils.Response{data=dto.BudgetResponseDTO}
//	@Router		/api/budgets/{id} [put]
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.BudgetUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := auth.UserID(r.Context())
	budget, err := h.budgetService.Update(r.Context(), userID, chi.URLParam(r, "id"), domain.BudgetUpdate{
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
		Spent:        req.Spent,
		Limit:        req.Limit,
		Color:        req.Color,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), budget))
}

// Delete godoc
//
//	@Summary	Delete a budget
//	@Tags		Budgets
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Budget ID"
//	@Success	200	{object}	utils.Response
//	@Router		/api/budgets/{id} [delete]
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if err := h.budgetService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Budget deleted")
}
