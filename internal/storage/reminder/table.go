package reminder

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IReminderTable = (*RemindersTable)(nil)

// RemindersTable provides access to the reminders table.
type RemindersTable struct {
	exec bob.Executor
}

func NewRemindersTable(db *sql.DB) *RemindersTable {
	return &RemindersTable{exec: bob.NewDB(db)}
}

var columns = []any{"id", "user_id", "title", "message", "due_at", "notify", "sent", "sent_at", "recipient", "created_at"}

// Insert creates a new reminder and returns its generated ID.
func (t *RemindersTable) Insert(ctx context.Context, create *ReminderCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("reminders", "user_id", "title", "message", "due_at", "notify", "recipient"),
		im.Values(psql.Arg(create.UserID, create.Title, create.Message, create.DueAt, create.Notify, create.Recipient)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns the owner's reminders, latest due first.
func (t *RemindersTable) List(ctx context.Context, userID uuid.UUID) ([]*Reminder, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("reminders"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("due_at").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Reminder]())
}

// ListDue returns unsent, notification-enabled reminders whose due time
// has passed, across all owners. Used by the sweep loop.
func (t *RemindersTable) ListDue(ctx context.Context, now time.Time) ([]*Reminder, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("reminders"),
		sm.Where(psql.Quote("sent").EQ(psql.Arg(false))),
		sm.Where(psql.Quote("notify").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("due_at").LTE(psql.Arg(now))),
		sm.OrderBy("due_at").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Reminder]())
}

// MarkSent records the terminal sent transition.
func (t *RemindersTable) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	q := psql.Update(
		um.Table("reminders"),
		um.SetCol("sent").ToArg(true),
		um.SetCol("sent_at").ToArg(sentAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
