package goal

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IGoalTable = (*GoalsTable)(nil)

// GoalsTable provides access to the goals table.
type GoalsTable struct {
	exec bob.Executor
}

func NewGoalsTable(db *sql.DB) *GoalsTable {
	return &GoalsTable{exec: bob.NewDB(db)}
}

var columns = []any{"id", "user_id", "name", "target_amount", "saved_amount", "deadline", "created_at"}

// Insert creates a new goal and returns its generated ID.
func (t *GoalsTable) Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("goals", "user_id", "name", "target_amount", "deadline"),
		im.Values(psql.Arg(create.UserID, create.Name, create.TargetAmount, create.Deadline)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// FindByID retrieves a goal by primary key, scoped to its owner.
func (t *GoalsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("goals"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Goal]())
}

// List returns the owner's goals, newest first.
func (t *GoalsTable) List(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("goals"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Goal]())
}

// ListContributions returns a goal's contributions, newest first.
func (t *GoalsTable) ListContributions(ctx context.Context, goalID uuid.UUID) ([]*Contribution, error) {
	q := psql.Select(
		sm.Columns("id", "goal_id", "amount", "date", "note"),
		sm.From("goal_contributions"),
		sm.Where(psql.Quote("goal_id").EQ(psql.Arg(goalID))),
		sm.OrderBy("date").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Contribution]())
}

// Delete removes an owned goal; contributions go with it via cascade.
func (t *GoalsTable) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("goals"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
