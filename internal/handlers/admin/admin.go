package admin

import (
	"context"
	"net/http"

	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/dto"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

type Service interface {
	Users(ctx context.Context, page domain.Page) ([]domain.User, int, error)
}

type AdminHandler struct {
	authService Service
}

func New(authService Service) *AdminHandler {
	return &AdminHandler{
		authService: authService,
	}
}

// Users godoc
//
//	@Summary	List registered users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	utils.Response{data=[]dto.UserDTO}
//	@Router		/api/admin/users [get]
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r)

	norm := domain.Page{Page: page, Limit: limit}.Normalize()
	users, total, err := h.authService.Users(r.Context(), norm)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	items := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		items = append(items, *dto.NewUserDTO(&users[i]))
	}
	utils.RespondWithPagination(w, http.StatusOK, items, utils.Pagination{
		Page:       norm.Page,
		Limit:      norm.Limit,
		Total:      total,
		TotalPages: domain.TotalPages(total, norm.Limit),
	})
}
