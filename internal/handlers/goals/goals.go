package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/dto"
	"github.com/mkorobeynikov/fintrack/internal/service/goalservice"
	"github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID string, page domain.Page) ([]domain.Goal, int, error)
	Get(ctx context.Context, userID, id string) (*domain.Goal, error)
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, userID, id string, upd domain.GoalUpdate) (*domain.Goal, error)
	Delete(ctx context.Context, userID, id string) error
}

type GoalHandler struct {
	goalService Service
	decorator   *currency.Decorator
}

func New(goalService Service, decorator *currency.Decorator) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		decorator:   decorator,
	}
}

func (h *GoalHandler) respond(ctx context.Context, g *domain.Goal) dto.GoalResponseDTO {
	return dto.NewGoalResponseDTO(g, h.decorator.Decorate(ctx, g.TargetAmount, currency.DefaultCurrency))
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, goalservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Goal not found")
	case errors.Is(err, goalservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Access denied")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// List godoc
//
//	@Summary	List goals
//	@Tags		Goals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	utils.Response{data=[]dto.GoalResponseDTO}
//	@Router		/api/goals [get]
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	page, limit := utils.ParsePagination(r)

	norm := domain.Page{Page: page, Limit: limit}.Normalize()
	goals, total, err := h.goalService.List(r.Context(), userID, norm)
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]dto.GoalResponseDTO, 0, len(goals))
	for i := range goals {
		items = append(items, h.respond(r.Context(), &goals[i]))
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
//	@Summary	Get a goal
//	@Tags		Goals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Goal ID"
//	@Success	200	{object}	utils.Response{data=dto.GoalResponseDTO}
//	@Failure	403	{object}	utils.Response
//	@Failure	404	{object}	utils.Response
//	@Router		/api/goals/{id} [get]
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	goal, err := h.goalService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), goal))
}

// Create godoc
//
//	@Summary	Create a goal
//	@Tags		Goals
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.GoalRequestDTO	true	"Goal"
//	@Success	201		{object}	utils.Response{data=dto.GoalResponseDTO}
//	@Router		/api/goals [post]
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.GoalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deadline format")
		return
	}

	goal, err := h.goalService.Create(r.Context(), &domain.Goal{
		UserID:       auth.UserID(r.Context()),
		Title:        req.Title,
		TargetAmount: *req.TargetAmount,
		Deadline:     deadline,
		AutoFill:     req.AutoFill,
		AutoFillPct:  req.AutoFillPct,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.respond(r.Context(), goal))
}

// Update godoc
//
//	@Summary	Update a goal
//	@Tags		Goals
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Goal ID"
//	@Param		request	body		dto.GoalUpdateDTO	true	"Fields to change"
//	@Success	200		{object}	utils.Response{data=dto.GoalResponseDTO}
//	@Router		/api/goals/{id} [put]
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.GoalUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := domain.GoalUpdate{
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		AutoFill:      req.AutoFill,
		AutoFillPct:   req.AutoFillPct,
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid deadline format")
			return
		}
		upd.Deadline = &deadline
	}

	userID := auth.UserID(r.Context())
	goal, err := h.goalService.Update(r.Context(), userID, chi.URLParam(r, "id"), upd)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.respond(r.Context(), goal))
}

// Delete godoc
//
//	@Summary	Delete a goal
//	@Tags		Goals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Goal ID"
//	@Success	200	{object}	utils.Response
//	@Router		/api/goals/{id} [delete]
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if err := h.goalService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Goal deleted")
}
