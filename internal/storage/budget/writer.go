package budget

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

var _ IBudgetWriter = (*Writer)(nil)

// Writer performs budget mutations inside a transaction.
type Writer struct {
	tx bob.Tx
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{tx: tx}
}

// FindByKeyForUpdate locks and returns the budget row for the triple, or
// nil when no row exists yet.
func (w *Writer) FindByKeyForUpdate(ctx context.Context, userID uuid.UUID, month, category string) (*Budget, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("category").EQ(psql.Arg(category))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Budget]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new budget row and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("budgets", "user_id", "month", "category", "limit_amount"),
		im.Values(psql.Arg(create.UserID, create.Month, create.Category, create.LimitAmount)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
}

// UpdateLimit changes the ceiling of an existing budget. Month and
// category are immutable once the row exists under its key.
func (w *Writer) UpdateLimit(ctx context.Context, id uuid.UUID, limit decimal.Decimal) error {
	q := psql.Update(
		um.Table("budgets"),
		um.SetCol("limit_amount").ToArg(limit),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
