package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/dto"
	"github.com/mkorobeynikov/fintrack/internal/service/categoryservice"
	"github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID, language, operationType string) ([]categoryservice.CategoryWithSubs, error)
	Create(ctx context.Context, userID, name, language string) (*domain.Category, error)
	CreateSubcategory(ctx context.Context, categoryID int, name string) (*domain.Subcategory, error)
	Delete(ctx context.Context, userID string, id int) error
	DeleteSubcategory(ctx context.Context, id int) error
}

type CategoryHandler struct {
	categoryService Service
}

func New(categoryService Service) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func language(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return domain.DefaultLanguage
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, categoryservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, categoryservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "System categories cannot be modified")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// List godoc
//
//	@Summary		List categories
//	@Description	System categories plus the caller's own, names resolved for the requested language
//	@Tags			Categories
//	@Security		BearerAuth
//	@Produce		json
//	@Param			lang	query		string	false	"Language code"	default(en)
//	@Param			type	query		string	false	"Filter: income or expense"
//	@Success		200		{object}	utils.Response{data=[]dto.CategoryResponseDTO}
//	@Router			/api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	operationType := r.URL.Query().Get("type")

	categories, err := h.categoryService.List(r.Context(), userID, language(r), operationType)
	if err != nil {
		respondError(w, err)
		return
	}

	items := make([]dto.CategoryResponseDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.NewCategoryResponseDTO(c))
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// Create godoc
//
//	@Summary	Create a custom category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CategoryRequestDTO	true	"Category"
//	@Success	201		{object}	utils.Response
//	@Router		/api/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := auth.UserID(r.Context())
	category, err := h.categoryService.Create(r.Context(), userID, req.Name, language(r))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCategoryResponseDTO(categoryservice.CategoryWithSubs{Category: *category}))
}

// Delete godoc
//
//	@Summary	Delete a custom category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"System or foreign category"
//	@Router		/api/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	userID := auth.UserID(r.Context())
	if err := h.categoryService.Delete(r.Context(), userID, id); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Category deleted")
}

// CreateSubcategory godoc
//
//	@Summary	Add a subcategory
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Parent category ID"
//	@Param		request	body		dto.SubcategoryRequestDTO	true	"Subcategory"
//	@Success	201		{object}	utils.Response{data=dto.SubcategoryResponseDTO}
//	@Router		/api/categories/{id}/subcategories [post]
func (h *CategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req dto.SubcategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.categoryService.CreateSubcategory(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSubcategoryResponseDTO(sub))
}

// DeleteSubcategory godoc
//
//	@Summary	Delete a subcategory
//	@Tags		Categories
//	@Security	BearerAuth
//	@Produce	json
//	@Param		subId	path		int	true	"Subcategory ID"
//	@Success	200		{object}	utils.Response
//	@Router		/api/categories/subcategories/{subId} [delete]
func (h *CategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	subID, err := pathID(r, "subId")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid subcategory ID")
		return
	}

	if err := h.categoryService.DeleteSubcategory(r.Context(), subID); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Subcategory deleted")
}
