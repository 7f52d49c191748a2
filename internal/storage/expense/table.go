package expense

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

var _ IExpenseTable = (*ExpensesTable)(nil)

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

func NewExpensesTable(db *sql.DB) *ExpensesTable {
	return &ExpensesTable{exec: bob.NewDB(db)}
}

var columns = []any{"id", "user_id", "title", "amount", "category", "date", "source", "created_at"}

// Insert creates a new expense and returns its generated ID.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("expenses", "user_id", "title", "amount", "category", "date", "source"),
		im.Values(psql.Arg(create.UserID, create.Title, create.Amount, create.Category, create.Date, create.Source)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// FindByID retrieves an expense by primary key, scoped to its owner.
func (t *ExpensesTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Expense, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
}

// List returns the owner's expenses, most recent date first.
func (t *ExpensesTable) List(ctx context.Context, userID uuid.UUID) ([]*Expense, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Expense]())
}

// ListInRange returns the owner's expenses with date in [start, end).
func (t *ExpensesTable) ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Expense, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("date").LT(psql.Arg(end))),
		sm.OrderBy("date").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Expense]())
}

// SumCategoryInRange returns the total spent for one category with date in
// [start, end). Category matching is exact string equality.
func (t *ExpensesTable) SumCategoryInRange(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("coalesce(sum(amount), 0)")),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("category").EQ(psql.Arg(category))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("date").LT(psql.Arg(end))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}

// Update modifies an owned expense and reports the number of rows changed.
func (t *ExpensesTable) Update(ctx context.Context, userID, id uuid.UUID, update *ExpenseUpdate) (int64, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("expenses"),
		um.SetCol("title").ToArg(update.Title),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("category").ToArg(update.Category),
		um.SetCol("source").ToArg(update.Source),
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

// Delete removes an owned expense and reports the number of rows removed.
func (t *ExpensesTable) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// SumAll returns the owner's total recorded expense amount.
func (t *ExpensesTable) SumAll(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("coalesce(sum(amount), 0)")),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}

type monthTotal struct {
	Month int             `db:"month"`
	Total decimal.Decimal `db:"total"`
}

// MonthlyTotals returns the owner's expense total per calendar month of the
// given year, keyed 1-12. Months with no expenses are absent.
func (t *ExpensesTable) MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) (map[int]decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("extract(month from date)::int as month"),
			psql.Raw("coalesce(sum(amount), 0) as total"),
		),
		sm.From("expenses"),
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

// CategoryTotalsInRange returns per-category totals for dates in
// [start, end), largest first.
func (t *ExpensesTable) CategoryTotalsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CategoryTotal, error) {
	q := psql.Select(
		sm.Columns(
			psql.Quote("category"),
			psql.Raw("coalesce(sum(amount), 0) as total"),
		),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("date").LT(psql.Arg(end))),
		sm.GroupBy(psql.Quote("category")),
		sm.OrderBy("total").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[CategoryTotal]())
}

type dayTotal struct {
	Day   time.Time       `db:"day"`
	Total decimal.Decimal `db:"total"`
}

// DailyTotalsSince returns per-day totals from start onwards, keyed by
// the day formatted as 2006-01-02.
func (t *ExpensesTable) DailyTotalsSince(ctx context.Context, userID uuid.UUID, start time.Time) (map[string]decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("date_trunc('day', date) as day"),
			psql.Raw("coalesce(sum(amount), 0) as total"),
		),
		sm.From("expenses"),
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
