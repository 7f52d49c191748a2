package income

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IIncomeTable = (*IncomesTable)(nil)

// IncomesTable provides access to the incomes table.
type IncomesTable struct {
	exec bob.Executor
}

func NewIncomesTable(db *sql.DB) *IncomesTable {
	return &IncomesTable{exec: bob.NewDB(db)}
}

var columns = []any{"id", "user_id", "source", "amount", "category", "date", "note", "created_at"}

// Insert creates a new income and returns its generated ID.
func (t *IncomesTable) Insert(ctx context.Context, create *IncomeCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("incomes", "user_id", "source", "amount", "category", "date", "note"),
		im.Values(psql.Arg(create.UserID, create.Source, create.Amount, create.Category, create.Date, create.Note)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns the owner's incomes, most recent date first.
func (t *IncomesTable) List(ctx context.Context, userID uuid.UUID) ([]*Income, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("incomes"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Income]())
}

// Update modifies an owned income and reports the number of rows changed.
func (t *IncomesTable) Update(ctx context.Context, userID, id uuid.UUID, update *IncomeUpdate) (int64, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("incomes"),
		um.SetCol("source").ToArg(update.Source),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("note").ToArg(update.Note),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if !update.Date.IsZero() {
		mods = append(mods, um.SetCol("date").ToArg(update.Date))
	}
	result, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Delete removes an owned income and reports the number of rows removed.
func (t *IncomesTable) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("incomes"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// SumAll returns the owner's total recorded income amount.
func (t *IncomesTable) SumAll(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("coalesce(sum(amount), 0)")),
		sm.From("incomes"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}

type monthTotal struct {
	Month int             `db:"month"`
	Total decimal.Decimal `db:"total"`
}

// MonthlyTotals returns the owner's income total per calendar month of the
// given year, keyed 1-12. Months with no incomes are absent.
func (t *IncomesTable) MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) (map[int]decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("extract(month from date)::int as month"),
			psql.Raw("coalesce(sum(amount), 0) as total"),
		),
		sm.From("incomes"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Raw("extract(year from date)::int = ?", year)),
		sm.GroupBy(psql.Raw("extract(month from date)")),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[monthTotal]())
	if err != nil {
		return nil, err
	}
	totals := make(map[int]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Month] = row.Total
	}
	return totals, nil
}

type dayTotal struct {
	Day   time.Time       `db:"day"`
	Total decimal.Decimal `db:"total"`
}

// DailyTotalsSince returns per-day totals from start onwards, keyed by
// the day formatted as 2006-01-02.
func (t *IncomesTable) DailyTotalsSince(ctx context.Context, userID uuid.UUID, start time.Time) (map[string]decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("date_trunc('day', date) as day"),
			psql.Raw("coalesce(sum(amount), 0) as total"),
		),
		sm.From("incomes"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(start))),
		sm.GroupBy(psql.Raw("date_trunc('day', date)")),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[dayTotal]())
	if err != nil {
		return nil, err
	}
	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Day.Format("2006-01-02")] = row.Total
	}
	return totals, nil
}
