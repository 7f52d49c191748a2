package goal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IGoalWriter = (*Writer)(nil)

// Writer performs goal mutations inside a transaction. The contribution
// insert and the saved-amount update must land in the same transaction.
type Writer struct {
	tx bob.Tx
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{tx: tx}
}

// FindByIDForUpdate locks and returns the owner's goal, or nil when it
// does not exist.
func (w *Writer) FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("goals"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Goal]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// InsertContribution appends a contribution row.
func (w *Writer) InsertContribution(ctx context.Context, create *ContributionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("goal_contributions", "goal_id", "amount", "date", "note"),
		im.Values(psql.Arg(create.GoalID, create.Amount, create.Date, create.Note)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
}

// UpdateSavedAmount sets the goal's accumulated saved amount.
func (w *Writer) UpdateSavedAmount(ctx context.Context, id uuid.UUID, saved decimal.Decimal) error {
	q := psql.Update(
		um.Table("goals"),
		um.SetCol("saved_amount").ToArg(saved),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
