package domain

import "time"

const DefaultLanguage = "en"

type OperationFilter struct {
	UserID   string
	DateFrom *time.Time
	DateTo   *time.Time
	Language string
	Page     Page
}

type DebtFilter struct {
	UserID string
	Paid   *bool
	Page   Page
}

// Partial updates: nil means "leave unchanged". Identifier, owner and
// computed columns are deliberately absent.

type OperationUpdate struct {
	Title         *string
	Amount        *float64
	Currency      *string
	CategoryID    *int
	SubcategoryID *int
	Type          *string
	Date          *time.Time
	Timestamp     *int64
	FromAccount   *string
	ToAccount     *string
}

type BudgetUpdate struct {
	CategoryID   *int
	CategoryName *string
	Spent        *float64
	Limit        *float64
	Color        *string
}

type GoalUpdate struct {
	Title         *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
	AutoFill      *bool
	AutoFillPct   *float64
}

type DebtUpdate struct {
	Title        *string
	Amount       *float64
	Currency     *string
	Type         *string
	Counterparty *string
	DueDate      *time.Time
}
