package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/budget"
)

// UpsertBudget creates the budget row for (user, month, category) or, when
// the row already exists, updates only its limit. Result holds the row as
// it stands after the transaction commits.
type UpsertBudget struct {
	UserID      uuid.UUID
	Month       string
	Category    string
	LimitAmount decimal.Decimal

	Result *budget.Budget

	IAction
}

func (u *UpsertBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Budget.FindByKeyForUpdate(ctx, u.UserID, u.Month, u.Category)
	if err != nil {
		return err
	}

	if existing == nil {
		id, err := writer.Budget.Insert(ctx, &budget.BudgetCreate{
			UserID:      u.UserID,
			Month:       u.Month,
			Category:    u.Category,
			LimitAmount: u.LimitAmount,
		})
		if err != nil {
			return err
		}
		u.Result = &budget.Budget{
			ID:          id,
			UserID:      u.UserID,
			Month:       u.Month,
			Category:    u.Category,
			LimitAmount: u.LimitAmount,
		}
		return nil
	}

	if err := writer.Budget.UpdateLimit(ctx, existing.ID, u.LimitAmount); err != nil {
		return err
	}

	existing.LimitAmount = u.LimitAmount
	u.Result = existing
	return nil
}
