package domain

import "time"

const (
	OperationIncome   = "income"
	OperationExpense  = "expense"
	OperationTransfer = "transfer"
)

const (
	DebtLent     = "lent"
	DebtBorrowed = "borrowed"
)

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        *string   `db:"email"`
	Phone        *string   `db:"phone"`
	PasswordHash string    `db:"password_hash"`
	TelegramID   *int64    `db:"telegram_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Operation struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	Title         string    `db:"title"`
	Amount        float64   `db:"amount"`
	Currency      string    `db:"currency"`
	CategoryID    *int      `db:"category_id"`
	SubcategoryID *int      `db:"subcategory_id"`
	CategoryName  string    `db:"category_name"`
	Type          string    `db:"type"`
	Date          time.Time `db:"date"`
	Timestamp     *int64    `db:"ts"`
	FromAccount   *string   `db:"from_account"`
	ToAccount     *string   `db:"to_account"`
	CreatedAt     time.Time `db:"created_at"`
}

type Budget struct {
	ID           string  `db:"id"`
	UserID       string  `db:"user_id"`
	CategoryID   *int    `db:"category_id"`
	CategoryName string  `db:"category_name"`
	Spent        float64 `db:"spent"`
	Limit        float64 `db:"limit_amount"`
	Color        string  `db:"color"`
}

type Goal struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	Title         string    `db:"title"`
	TargetAmount  float64   `db:"target_amount"`
	CurrentAmount float64   `db:"current_amount"`
	Deadline      time.Time `db:"deadline"`
	AutoFill      bool      `db:"auto_fill"`
	AutoFillPct   *float64  `db:"auto_fill_pct"`
}

type Debt struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	Title        string     `db:"title"`
	Amount       float64    `db:"amount"`
	Currency     string     `db:"currency"`
	Type         string     `db:"type"`
	Counterparty string     `db:"counterparty"`
	DueDate      time.Time  `db:"due_date"`
	Paid         bool       `db:"paid"`
	PaidAt       *time.Time `db:"paid_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Category struct {
	ID       int     `db:"id"`
	UserID   *string `db:"user_id"`
	NameKey  string  `db:"name_key"`
	Name     string  `db:"name"`
	IsSystem bool    `db:"is_system"`
}

type Subcategory struct {
	ID         int    `db:"id"`
	CategoryID int    `db:"category_id"`
	NameKey    string `db:"name_key"`
	Name       string `db:"name"`
}

type Verification struct {
	ID        string    `db:"id"`
	Target    string    `db:"target"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	Verified  bool      `db:"verified"`
}

type TelegramSession struct {
	ID         string    `db:"id"`
	Token      string    `db:"token"`
	TelegramID *int64    `db:"telegram_id"`
	UserID     *string   `db:"user_id"`
	ExpiresAt  time.Time `db:"expires_at"`
	Used       bool      `db:"used"`
}
