package goal

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal. SavedAmount only grows, and only by
// contribution inserts applied through the Writer.
type Goal struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	Name         string          `db:"name"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	SavedAmount  decimal.Decimal `db:"saved_amount"`
	Deadline     *time.Time      `db:"deadline"`
	CreatedAt    time.Time       `db:"created_at"`
}

// Contribution is one payment toward a goal. Rows are removed with their
// parent goal (cascade).
type Contribution struct {
	ID     uuid.UUID       `db:"id"`
	GoalID uuid.UUID       `db:"goal_id"`
	Amount decimal.Decimal `db:"amount"`
	Date   time.Time       `db:"date"`
	Note   string          `db:"note"`
}

// GoalCreate is the input for creating a new goal.
type GoalCreate struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

// ContributionCreate is the input for appending a contribution.
type ContributionCreate struct {
	GoalID uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
	Note   string
}

// IGoalTable defines the interface for goal storage operations. The
// contribution/saved-amount pair is written through the Writer only.
//
//go:generate mockery --name IGoalTable --inpackage
type IGoalTable interface {
	Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	ListContributions(ctx context.Context, goalID uuid.UUID) ([]*Contribution, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

// IGoalWriter defines the transaction-scoped goal mutations.
//
//go:generate mockery --name IGoalWriter --inpackage
type IGoalWriter interface {
	FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*Goal, error)
	InsertContribution(ctx context.Context, create *ContributionCreate) (uuid.UUID, error)
	UpdateSavedAmount(ctx context.Context, id uuid.UUID, saved decimal.Decimal) error
}
