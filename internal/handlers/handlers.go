package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkorobeynikov/fintrack/internal/currency"
	adminhandlers "github.com/mkorobeynikov/fintrack/internal/handlers/admin"
	aihandlers "github.com/mkorobeynikov/fintrack/internal/handlers/aichat"
	authhandlers "github.com/mkorobeynikov/fintrack/internal/handlers/auth"
	budgethandlers "github.com/mkorobeynikov/fintrack/internal/handlers/budgets"
	categoryhandlers "github.com/mkorobeynikov/fintrack/internal/handlers/categories"
	currencyhandlers "github.com/mkorobeynikov/fintrack/internal/handlers/currencies"
	debthandlers "github.com/mkorobeynikov/fintrack/internal/handlers/debts"
	goalhandlers "github.com/mkorobeynikov/fintrack/internal/handlers/goals"
	operationhandlers "github.com/mkorobeynikov/fintrack/internal/handlers/operations"
	"github.com/mkorobeynikov/fintrack/internal/service"
	"github.com/mkorobeynikov/fintrack/pkg/metrics"
)

type AuthHandler interface {
	SendCode(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	CreateTelegramSession(w http.ResponseWriter, r *http.Request)
	ExchangeTelegramSession(w http.ResponseWriter, r *http.Request)
}

type OperationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	CreateBatch(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BudgetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type GoalHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DebtHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Overdue(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetPaid(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CategoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CreateSubcategory(w http.ResponseWriter, r *http.Request)
	DeleteSubcategory(w http.ResponseWriter, r *http.Request)
}

type CurrencyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Rates(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Users(w http.ResponseWriter, r *http.Request)
}

type AIHandler interface {
	Chat(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	OperationHandler OperationHandler
	BudgetHandler    BudgetHandler
	GoalHandler      GoalHandler
	DebtHandler      DebtHandler
	CategoryHandler  CategoryHandler
	CurrencyHandler  CurrencyHandler
	AdminHandler     AdminHandler
	AIHandler        AIHandler

	authMiddleware func(http.Handler) http.Handler
}

func New(s *service.Services, authMiddleware func(http.Handler) http.Handler) *Handlers {
	decorator := currency.NewDecorator(s.RateService)

	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		OperationHandler: operationhandlers.New(s.OperationService, decorator),
		BudgetHandler:    budgethandlers.New(s.BudgetService, decorator),
		GoalHandler:      goalhandlers.New(s.GoalService, decorator),
		DebtHandler:      debthandlers.New(s.DebtService, decorator),
		CategoryHandler:  categoryhandlers.New(s.CategoryService),
		CurrencyHandler:  currencyhandlers.New(s.RateService),
		AdminHandler:     adminhandlers.New(s.AdminService),
		AIHandler:        aihandlers.New(s.AIProvider),

		authMiddleware: authMiddleware,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
		currency.Middleware,
	)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register/send-code", h.AuthHandler.SendCode)
			r.Post("/register/verify", h.AuthHandler.Verify)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/telegram/session", h.AuthHandler.CreateTelegramSession)
			r.Post("/telegram/exchange", h.AuthHandler.ExchangeTelegramSession)

			r.Group(func(r chi.Router) {
				r.Use(h.authMiddleware)
				r.Get("/me", h.AuthHandler.Me)
			})
		})

		r.Route("/currencies", func(r chi.Router) {
			r.Get("/", h.CurrencyHandler.List)
			r.Get("/rates", h.CurrencyHandler.Rates)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware)

			r.Route("/operations", func(r chi.Router) {
				r.Get("/", h.OperationHandler.List)
				r.Post("/", h.OperationHandler.Create)
				r.Post("/batch", h.OperationHandler.CreateBatch)
				r.Get("/balance", h.OperationHandler.Balance)
				r.Get("/{id}", h.OperationHandler.Get)
				r.Put("/{id}", h.OperationHandler.Update)
				r.Delete("/{id}", h.OperationHandler.Delete)
			})

			r.Route("/budgets", func(r chi.Router) {
				r.Get("/", h.BudgetHandler.List)
				r.Post("/", h.BudgetHandler.Create)
				r.Get("/{id}", h.BudgetHandler.Get)
				r.Put("/{id}", h.BudgetHandler.Update)
				r.Delete("/{id}", h.BudgetHandler.Delete)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", h.GoalHandler.List)
				r.Post("/", h.GoalHandler.Create)
				r.Get("/{id}", h.GoalHandler.Get)
				r.Put("/{id}", h.GoalHandler.Update)
				r.Delete("/{id}", h.GoalHandler.Delete)
			})

			r.Route("/debts", func(r chi.Router) {
				r.Get("/", h.DebtHandler.List)
				r.Post("/", h.DebtHandler.Create)
				r.Get("/overdue", h.DebtHandler.Overdue)
				r.Get("/{id}", h.DebtHandler.Get)
				r.Put("/{id}", h.DebtHandler.Update)
				r.Patch("/{id}/paid", h.DebtHandler.SetPaid)
				r.Delete("/{id}", h.DebtHandler.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.CategoryHandler.List)
				r.Post("/", h.CategoryHandler.Create)
				r.Delete("/{id}", h.CategoryHandler.Delete)
				r.Post("/{id}/subcategories", h.CategoryHandler.CreateSubcategory)
				r.Delete("/subcategories/{subId}", h.CategoryHandler.DeleteSubcategory)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", h.AdminHandler.Users)
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/chat", h.AIHandler.Chat)
				r.Post("/chat/stream", h.AIHandler.Stream)
			})
		})
	})

	return r
}
