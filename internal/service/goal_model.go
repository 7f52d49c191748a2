package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal in the service layer. ProgressPercent is
// derived, never stored.
type Goal struct {
	ID              uuid.UUID
	Name            string
	TargetAmount    decimal.Decimal
	SavedAmount     decimal.Decimal
	Deadline        *time.Time
	CreatedAt       time.Time
	ProgressPercent decimal.Decimal
}

// Contribution represents one payment toward a goal.
type Contribution struct {
	ID     uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
	Note   string
}

var oneHundred = decimal.NewFromInt(100)

// ProgressPercent computes saved/target x 100, clamped to [0, 100] and
// rounded to 2 decimal places. A target of zero or less yields 0 rather
// than a division by zero.
func ProgressPercent(saved, target decimal.Decimal) decimal.Decimal {
	if target.Sign() <= 0 {
		return decimal.Zero
	}
	progress := saved.Div(target).Mul(oneHundred)
	if progress.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if progress.GreaterThan(oneHundred) {
		return oneHundred
	}
	return progress.Round(2)
}
