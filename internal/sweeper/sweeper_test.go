package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/storage/reminder"
)

type sentMessage struct {
	recipient string
	subject   string
	body      string
}

// fakeSender records outgoing notifications and can fail per recipient.
type fakeSender struct {
	sent    []sentMessage
	failFor map[string]error
}

func (f *fakeSender) Send(ctx context.Context, recipient, subject, body string) error {
	if err := f.failFor[recipient]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentMessage{recipient: recipient, subject: subject, body: body})
	return nil
}

func newTestSweeper(t *testing.T) (*Sweeper, *reminder.MockIReminderTable, *fakeSender) {
	t.Helper()
	mockReminders := reminder.NewMockIReminderTable(t)
	sender := &fakeSender{failFor: map[string]error{}}
	logger := logrus.New()
	sw := New(mockReminders, sender, logger, time.Minute)
	return sw, mockReminders, sender
}

func TestSweepOnce_DispatchesAndMarksSent(t *testing.T) {
	sw, mockReminders, sender := newTestSweeper(t)
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	sw.now = func() time.Time { return now }
	due := &reminder.Reminder{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "Pay rent",
		Message:   "Rent is due tomorrow",
		DueAt:     now.Add(-time.Hour),
		Notify:    true,
		Recipient: "priya@example.com",
	}

	mockReminders.EXPECT().ListDue(mock.Anything, now).Return([]*reminder.Reminder{due}, nil)
	mockReminders.EXPECT().MarkSent(mock.Anything, due.ID, now.UTC()).Return(nil)

	sent, err := sw.SweepOnce(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "priya@example.com", sender.sent[0].recipient)
	assert.Equal(t, "Reminder: Pay rent", sender.sent[0].subject)
	assert.Equal(t, "Rent is due tomorrow", sender.sent[0].body)
}

func TestSweepOnce_EmptyMessageFallsBackToTitle(t *testing.T) {
	sw, mockReminders, sender := newTestSweeper(t)
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	sw.now = func() time.Time { return now }
	due := &reminder.Reminder{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "Renew insurance",
		DueAt:     now,
		Notify:    true,
		Recipient: "priya@example.com",
	}

	mockReminders.EXPECT().ListDue(mock.Anything, now).Return([]*reminder.Reminder{due}, nil)
	mockReminders.EXPECT().MarkSent(mock.Anything, due.ID, now.UTC()).Return(nil)

	_, err := sw.SweepOnce(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, "Renew insurance", sender.sent[0].body)
}

func TestSweepOnce_SendFailureLeavesReminderPending(t *testing.T) {
	sw, mockReminders, sender := newTestSweeper(t)
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	sw.now = func() time.Time { return now }
	failing := &reminder.Reminder{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "Pay rent",
		DueAt:     now,
		Notify:    true,
		Recipient: "broken@example.com",
	}
	healthy := &reminder.Reminder{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "Renew insurance",
		DueAt:     now,
		Notify:    true,
		Recipient: "priya@example.com",
	}
	sender.failFor["broken@example.com"] = errors.New("broker unavailable")

	mockReminders.EXPECT().ListDue(mock.Anything, now).Return([]*reminder.Reminder{failing, healthy}, nil)
	// Only the healthy reminder is marked; the failed one stays pending
	// and is retried on the next sweep.
	mockReminders.EXPECT().MarkSent(mock.Anything, healthy.ID, now.UTC()).Return(nil)

	sent, err := sw.SweepOnce(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "priya@example.com", sender.sent[0].recipient)
}

func TestSweepOnce_ListError(t *testing.T) {
	sw, mockReminders, sender := newTestSweeper(t)
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	mockReminders.EXPECT().ListDue(mock.Anything, now).Return(nil, errors.New("db down"))

	_, err := sw.SweepOnce(context.Background(), now)

	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	sw, mockReminders, _ := newTestSweeper(t)
	sw.interval = 10 * time.Millisecond

	mockReminders.EXPECT().ListDue(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sw.Run(ctx)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancel")
	}
}
