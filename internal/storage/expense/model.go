package expense

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents an expense record. Amounts are stored non-negative;
// direction is implied by the record type.
type Expense struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	Category  string          `db:"category"`
	Date      time.Time       `db:"date"`
	Source    string          `db:"source"`
	CreatedAt time.Time       `db:"created_at"`
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	UserID   uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Source   string
}

// ExpenseUpdate is the input for updating an existing expense.
// A zero Date keeps the stored date.
type ExpenseUpdate struct {
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Source   string
}

// CategoryTotal is a per-category aggregate row.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

// IExpenseTable defines the interface for expense storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name IExpenseTable --inpackage
type IExpenseTable interface {
	Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Expense, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Expense, error)
	ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Expense, error)
	SumCategoryInRange(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *ExpenseUpdate) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	SumAll(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) (map[int]decimal.Decimal, error)
	CategoryTotalsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CategoryTotal, error)
	DailyTotalsSince(ctx context.Context, userID uuid.UUID, start time.Time) (map[string]decimal.Decimal, error)
}
