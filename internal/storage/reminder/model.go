package reminder

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Reminder represents a due-date reminder. Lifecycle: created unsent,
// transitions to sent exactly once, never reverts.
type Reminder struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Title     string     `db:"title"`
	Message   string     `db:"message"`
	DueAt     time.Time  `db:"due_at"`
	Notify    bool       `db:"notify"`
	Sent      bool       `db:"sent"`
	SentAt    *time.Time `db:"sent_at"`
	Recipient string     `db:"recipient"`
	CreatedAt time.Time  `db:"created_at"`
}

// ReminderCreate is the input for creating a new reminder.
type ReminderCreate struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	DueAt     time.Time
	Notify    bool
	Recipient string
}

// IReminderTable defines the interface for reminder storage operations.
//
//go:generate mockery --name IReminderTable --inpackage
type IReminderTable interface {
	Insert(ctx context.Context, create *ReminderCreate) (uuid.UUID, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Reminder, error)
	ListDue(ctx context.Context, now time.Time) ([]*Reminder, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
}
