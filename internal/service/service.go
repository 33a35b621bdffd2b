package service

import (
	"github.com/mkorobeynikov/fintrack/internal/ai"
	"github.com/mkorobeynikov/fintrack/internal/config"
	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/internal/handlers/admin"
	"github.com/mkorobeynikov/fintrack/internal/handlers/aichat"
	authhandlers "github.com/mkorobeynikov/fintrack/internal/handlers/auth"
	"github.com/mkorobeynikov/fintrack/internal/handlers/budgets"
	"github.com/mkorobeynikov/fintrack/internal/handlers/categories"
	"github.com/mkorobeynikov/fintrack/internal/handlers/debts"
	"github.com/mkorobeynikov/fintrack/internal/handlers/goals"
	"github.com/mkorobeynikov/fintrack/internal/handlers/operations"

	pkgauth "github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/clients"

	"github.com/mkorobeynikov/fintrack/internal/repo"
	authservice "github.com/mkorobeynikov/fintrack/internal/service/authservice"
	budgetservice "github.com/mkorobeynikov/fintrack/internal/service/budgetservice"
	categoryservice "github.com/mkorobeynikov/fintrack/internal/service/categoryservice"
	debtservice "github.com/mkorobeynikov/fintrack/internal/service/debtservice"
	goalservice "github.com/mkorobeynikov/fintrack/internal/service/goalservice"
	operationservice "github.com/mkorobeynikov/fintrack/internal/service/operationservice"
)

type Services struct {
	AuthService      authhandlers.Service
	OperationService operations.Service
	BudgetService    budgets.Service
	GoalService      goals.Service
	DebtService      debts.Service
	CategoryService  categories.Service
	AdminService     admin.Service
	AIProvider       aichat.Provider
	RateService      *currency.Service

	// the concrete auth service doubles as the telegram confirmation
	// backend and the sweeper owner
	Auth *authservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config, jwtService *pkgauth.JWTService) *Services {
	authService := authservice.New(
		repo.UserRepo,
		repo.VerificationRepo,
		repo.SessionRepo,
		authservice.LogSender{},
		&pkgauth.HashService{},
		jwtService,
	)
	rateService := currency.New(cfg.RatesAddress, clients.NewHTTPClient())

	return &Services{
		AuthService:      authService,
		OperationService: operationservice.New(repo.OperationRepo),
		BudgetService:    budgetservice.New(repo.BudgetRepo),
		GoalService:      goalservice.New(repo.GoalRepo),
		DebtService:      debtservice.New(repo.DebtRepo),
		CategoryService:  categoryservice.New(repo.CategoryRepo),
		AdminService:     authService,
		AIProvider:       ai.New(cfg.AIAddress, cfg.AIModel, cfg.AIToken),
		RateService:      rateService,

		Auth: authService,
	}
}
