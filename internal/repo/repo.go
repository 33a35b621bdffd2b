package repo

import (
	"github.com/mkorobeynikov/fintrack/internal/pg"
	budgetrepo "github.com/mkorobeynikov/fintrack/internal/repo/budget-repo"
	categoryrepo "github.com/mkorobeynikov/fintrack/internal/repo/category-repo"
	debtrepo "github.com/mkorobeynikov/fintrack/internal/repo/debt-repo"
	goalrepo "github.com/mkorobeynikov/fintrack/internal/repo/goal-repo"
	operationrepo "github.com/mkorobeynikov/fintrack/internal/repo/operation-repo"
	sessionrepo "github.com/mkorobeynikov/fintrack/internal/repo/session-repo"
	userrepo "github.com/mkorobeynikov/fintrack/internal/repo/user-repo"
	verificationrepo "github.com/mkorobeynikov/fintrack/internal/repo/verification-repo"
	"github.com/mkorobeynikov/fintrack/internal/service/authservice"
	"github.com/mkorobeynikov/fintrack/internal/service/budgetservice"
	"github.com/mkorobeynikov/fintrack/internal/service/categoryservice"
	"github.com/mkorobeynikov/fintrack/internal/service/debtservice"
	"github.com/mkorobeynikov/fintrack/internal/service/goalservice"
	"github.com/mkorobeynikov/fintrack/internal/service/operationservice"
)

type Repositories struct {
	UserRepo         authservice.UserRepo
	VerificationRepo authservice.VerificationRepo
	SessionRepo      authservice.SessionRepo
	OperationRepo    operationservice.Repo
	BudgetRepo       budgetservice.Repo
	GoalRepo         goalservice.Repo
	DebtRepo         debtservice.Repo
	CategoryRepo     categoryservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		VerificationRepo: verificationrepo.New(conn),
		SessionRepo:      sessionrepo.New(conn),
		OperationRepo:    operationrepo.New(conn, txManager),
		BudgetRepo:       budgetrepo.New(conn),
		GoalRepo:         goalrepo.New(conn),
		DebtRepo:         debtrepo.New(conn),
		CategoryRepo:     categoryrepo.New(conn, txManager),
	}
}
