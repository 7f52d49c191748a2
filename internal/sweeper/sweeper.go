package sweeper

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finwise/finwise-server/internal/notify"
	"github.com/finwise/finwise-server/internal/storage/reminder"
)

// Sweeper polls for due reminders on a fixed interval and dispatches a
// notification for each. A reminder moves from pending to sent exactly
// once; the transition is terminal. Errors within a sweep are logged and
// swallowed so the loop survives to the next tick.
type Sweeper struct {
	reminders reminder.IReminderTable
	sender    notify.Sender
	logger    *logrus.Logger
	interval  time.Duration
	now       func() time.Time
}

func New(reminders reminder.IReminderTable, sender notify.Sender, logger *logrus.Logger, interval time.Duration) *Sweeper {
	return &Sweeper{
		reminders: reminders,
		sender:    sender,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
	}
}

// Run sweeps once immediately, then on every tick until the context is
// cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweeper.Run.shutting down")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	sent, err := s.SweepOnce(ctx, s.now())
	if err != nil {
		s.logger.WithError(err).Error("Sweeper.sweep.error")
		return
	}
	if sent > 0 {
		s.logger.WithField("sent", sent).Info("Sweeper.sweep.dispatched")
	}
}

// SweepOnce dispatches every reminder that is unsent, notification-enabled,
// and due at or before now, then marks each one sent. A send failure skips
// the mark so the next sweep retries that reminder; it does not stop the
// rest of the batch. Returns the number of reminders dispatched.
func (s *Sweeper) SweepOnce(ctx context.Context, now time.Time) (int, error) {
	due, err := s.reminders.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, r := range due {
		subject := "Reminder: " + r.Title
		body := r.Message
		if body == "" {
			body = r.Title
		}

		if err := s.sender.Send(ctx, r.Recipient, subject, body); err != nil {
			s.logger.WithError(err).WithField("reminderID", r.ID.String()).
				Error("Sweeper.SweepOnce.send failed")
			continue
		}

		if err := s.reminders.MarkSent(ctx, r.ID, s.now().UTC()); err != nil {
			s.logger.WithError(err).WithField("reminderID", r.ID.String()).
				Error("Sweeper.SweepOnce.mark sent failed")
			continue
		}
		sent++
	}
	return sent, nil
}
