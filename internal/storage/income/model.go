package income

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Income represents an income record. Amounts are stored non-negative.
type Income struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Source    string          `db:"source"`
	Amount    decimal.Decimal `db:"amount"`
	Category  string          `db:"category"`
	Date      time.Time       `db:"date"`
	Note      string          `db:"note"`
	CreatedAt time.Time       `db:"created_at"`
}

// IncomeCreate is the input for creating a new income.
type IncomeCreate struct {
	UserID   uuid.UUID
	Source   string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Note     string
}

// IncomeUpdate is the input for updating an existing income.
// A zero Date keeps the stored date.
type IncomeUpdate struct {
	Source string
	Amount decimal.Decimal
	Date   time.Time
	Note   string
}

// IIncomeTable defines the interface for income storage operations.
//
//go:generate mockery --name IIncomeTable --inpackage
type IIncomeTable interface {
	Insert(ctx context.Context, create *IncomeCreate) (uuid.UUID, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Income, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *IncomeUpdate) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	SumAll(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) (map[int]decimal.Decimal, error)
	DailyTotalsSince(ctx context.Context, userID uuid.UUID, start time.Time) (map[string]decimal.Decimal, error)
}
