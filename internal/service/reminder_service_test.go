package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/reminder"
	"github.com/finwise/finwise-server/internal/storage/user"
)

func newReminderTestService(t *testing.T) (*ReminderService, *reminder.MockIReminderTable, *user.MockIUserTable) {
	t.Helper()
	mockReminders := reminder.NewMockIReminderTable(t)
	mockUsers := user.NewMockIUserTable(t)
	store := &storage.Storage{Reminders: mockReminders, Users: mockUsers}
	return NewReminderService(store), mockReminders, mockUsers
}

func TestCreateReminder_ExplicitRecipient(t *testing.T) {
	svc, mockReminders, _ := newReminderTestService(t)
	userID := uuid.Must(uuid.NewV4())
	reminderID := uuid.Must(uuid.NewV4())
	dueAt := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	mockReminders.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *reminder.ReminderCreate) bool {
		return c.UserID == userID && c.Title == "Pay rent" &&
			c.Recipient == "billing@example.com" && c.Notify
	})).Return(reminderID, nil)

	result, err := svc.Create(context.Background(), userID, Reminder{
		Title:     "Pay rent",
		DueAt:     dueAt,
		Notify:    true,
		Recipient: "billing@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, reminderID, result.ID)
	assert.Equal(t, "billing@example.com", result.Recipient)
}

func TestCreateReminder_RecipientDefaultsToOwnerEmail(t *testing.T) {
	svc, mockReminders, mockUsers := newReminderTestService(t)
	userID := uuid.Must(uuid.NewV4())
	dueAt := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	mockUsers.EXPECT().FindByID(mock.Anything, userID).Return(&user.User{
		ID:    userID,
		Name:  "Priya",
		Email: "priya@example.com",
	}, nil)
	mockReminders.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *reminder.ReminderCreate) bool {
		return c.Recipient == "priya@example.com"
	})).Return(uuid.Must(uuid.NewV4()), nil)

	result, err := svc.Create(context.Background(), userID, Reminder{
		Title:  "Pay rent",
		DueAt:  dueAt,
		Notify: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "priya@example.com", result.Recipient)
}

func TestCreateReminder_UnknownOwner(t *testing.T) {
	svc, _, mockUsers := newReminderTestService(t)
	userID := uuid.Must(uuid.NewV4())

	mockUsers.EXPECT().FindByID(mock.Anything, userID).Return(nil, sql.ErrNoRows)

	_, err := svc.Create(context.Background(), userID, Reminder{
		Title: "Pay rent",
		DueAt: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateReminder_MissingTitle(t *testing.T) {
	svc, _, _ := newReminderTestService(t)

	_, err := svc.Create(context.Background(), uuid.Must(uuid.NewV4()), Reminder{
		DueAt: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateReminder_MissingDueAt(t *testing.T) {
	svc, _, _ := newReminderTestService(t)

	_, err := svc.Create(context.Background(), uuid.Must(uuid.NewV4()), Reminder{
		Title: "Pay rent",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestListReminders(t *testing.T) {
	svc, mockReminders, _ := newReminderTestService(t)
	userID := uuid.Must(uuid.NewV4())
	sentAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	mockReminders.EXPECT().List(mock.Anything, userID).Return([]*reminder.Reminder{
		{ID: uuid.Must(uuid.NewV4()), Title: "Pay rent", Sent: true, SentAt: &sentAt},
		{ID: uuid.Must(uuid.NewV4()), Title: "Renew insurance"},
	}, nil)

	reminders, err := svc.List(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, reminders, 2)
	assert.True(t, reminders[0].Sent)
	assert.NotNil(t, reminders[0].SentAt)
	assert.False(t, reminders[1].Sent)
}
