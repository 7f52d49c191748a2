package budget

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides read access to the budgets table. Writes go
// through the Writer so the upsert is transactional.
type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(db *sql.DB) *BudgetsTable {
	return &BudgetsTable{exec: bob.NewDB(db)}
}

var columns = []any{"id", "user_id", "month", "category", "limit_amount"}

// FindByKey retrieves the budget for an exact (owner, month, category) triple.
func (t *BudgetsTable) FindByKey(ctx context.Context, userID uuid.UUID, month, category string) (*Budget, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("category").EQ(psql.Arg(category))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
}

// List returns the owner's budgets, optionally filtered to one month,
// ordered by month then category.
func (t *BudgetsTable) List(ctx context.Context, userID uuid.UUID, month string) ([]*Budget, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("month").Asc(),
		sm.OrderBy("category").Asc(),
	}
	if month != "" {
		mods = append(mods, sm.Where(psql.Quote("month").EQ(psql.Arg(month))))
	}
	return bob.All(ctx, t.exec, psql.Select(mods...), scan.StructMapper[*Budget]())
}

// Delete removes an owned budget and reports the number of rows removed.
func (t *BudgetsTable) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
