package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/reminder"
)

// Reminder represents a reminder in the service layer.
type Reminder struct {
	ID        uuid.UUID
	Title     string
	Message   string
	DueAt     time.Time
	Notify    bool
	Sent      bool
	SentAt    *time.Time
	Recipient string
	CreatedAt time.Time
}

// ReminderService handles reminder business logic. Dispatch of due
// reminders is the sweeper's job, not this service's.
type ReminderService struct {
	storage *storage.Storage
}

// NewReminderService creates a new ReminderService.
func NewReminderService(store *storage.Storage) *ReminderService {
	return &ReminderService{storage: store}
}

// Create records a reminder. An empty recipient falls back to the owner's
// registered email address.
func (s *ReminderService) Create(ctx context.Context, userID uuid.UUID, in Reminder) (*Reminder, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.DueAt.IsZero() {
		return nil, fmt.Errorf("%w: dueAt is required", ErrValidation)
	}

	recipient := in.Recipient
	if recipient == "" {
		owner, err := s.storage.Users.FindByID(ctx, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		recipient = owner.Email
	}

	id, err := s.storage.Reminders.Insert(ctx, &reminder.ReminderCreate{
		UserID:    userID,
		Title:     in.Title,
		Message:   in.Message,
		DueAt:     in.DueAt,
		Notify:    in.Notify,
		Recipient: recipient,
	})
	if err != nil {
		return nil, err
	}

	return &Reminder{
		ID:        id,
		Title:     in.Title,
		Message:   in.Message,
		DueAt:     in.DueAt,
		Notify:    in.Notify,
		Recipient: recipient,
	}, nil
}

// List returns the owner's reminders, latest due first.
func (s *ReminderService) List(ctx context.Context, userID uuid.UUID) ([]Reminder, error) {
	rows, err := s.storage.Reminders.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	reminders := make([]Reminder, len(rows))
	for i, row := range rows {
		reminders[i] = Reminder{
			ID:        row.ID,
			Title:     row.Title,
			Message:   row.Message,
			DueAt:     row.DueAt,
			Notify:    row.Notify,
			Sent:      row.Sent,
			SentAt:    row.SentAt,
			Recipient: row.Recipient,
			CreatedAt: row.CreatedAt,
		}
	}
	return reminders, nil
}
