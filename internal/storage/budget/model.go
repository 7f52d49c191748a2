package budget

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending ceiling for one category. One row
// exists per (user_id, month, category); the triple carries a uniqueness
// constraint at the store level.
type Budget struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Month       string          `db:"month"`
	Category    string          `db:"category"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID      uuid.UUID
	Month       string
	Category    string
	LimitAmount decimal.Decimal
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable --inpackage
type IBudgetTable interface {
	FindByKey(ctx context.Context, userID uuid.UUID, month, category string) (*Budget, error)
	List(ctx context.Context, userID uuid.UUID, month string) ([]*Budget, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

// IBudgetWriter defines the transaction-scoped budget mutations.
//
//go:generate mockery --name IBudgetWriter --inpackage
type IBudgetWriter interface {
	FindByKeyForUpdate(ctx context.Context, userID uuid.UUID, month, category string) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	UpdateLimit(ctx context.Context, id uuid.UUID, limit decimal.Decimal) error
}
