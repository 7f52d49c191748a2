package reminder

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

// Reminder is the API response model for a reminder.
type Reminder struct {
	ID        string `json:"id" doc:"Reminder UUID"`
	Title     string `json:"title" doc:"Short title"`
	Message   string `json:"message" doc:"Notification body, title is used when empty"`
	DueAt     string `json:"dueAt" doc:"RFC 3339 timestamp the reminder becomes due"`
	Notify    bool   `json:"notify" doc:"Whether the sweeper should dispatch a notification"`
	Sent      bool   `json:"sent" doc:"Whether the notification went out"`
	SentAt    string `json:"sentAt,omitempty" doc:"RFC 3339 dispatch time, absent while pending"`
	Recipient string `json:"recipient" doc:"Notification recipient"`
}

func reminderFromService(r service.Reminder) Reminder {
	converted := Reminder{
		ID:        r.ID.String(),
		Title:     r.Title,
		Message:   r.Message,
		DueAt:     r.DueAt.Format(time.RFC3339),
		Notify:    r.Notify,
		Sent:      r.Sent,
		Recipient: r.Recipient,
	}
	if r.SentAt != nil {
		converted.SentAt = r.SentAt.Format(time.RFC3339)
	}
	return converted
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	return userID, nil
}

func serviceError(err error, action string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "owner not found")
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to "+action, err)
	}
}
