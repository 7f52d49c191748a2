package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/goal"
)

// ErrGoalNotFound reports a goal that is absent or not owned by the caller.
var ErrGoalNotFound = errors.New("goal not found")

// AddGoalContribution appends a contribution and increments the parent
// goal's saved amount by the same delta. Both writes land in one
// transaction; a failure of either rolls back the pair.
type AddGoalContribution struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
	Note   string

	Result *goal.Goal

	IAction
}

func (a *AddGoalContribution) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Goal.FindByIDForUpdate(ctx, a.UserID, a.GoalID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrGoalNotFound
	}

	_, err = writer.Goal.InsertContribution(ctx, &goal.ContributionCreate{
		GoalID: a.GoalID,
		Amount: a.Amount,
		Date:   a.Date,
		Note:   a.Note,
	})
	if err != nil {
		return err
	}

	newSaved := row.SavedAmount.Add(a.Amount)
	if err := writer.Goal.UpdateSavedAmount(ctx, a.GoalID, newSaved); err != nil {
		return err
	}

	row.SavedAmount = newSaved
	a.Result = row
	return nil
}
