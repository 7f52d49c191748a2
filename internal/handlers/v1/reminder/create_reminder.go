package reminder

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type reminderCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in service.Reminder) (*service.Reminder, error)
}

type CreateReminderHandler struct {
	service reminderCreator
}

func NewCreateReminderHandler(service reminderCreator) *CreateReminderHandler {
	return &CreateReminderHandler{service: service}
}

func (h *CreateReminderHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-reminder",
		Method:        http.MethodPost,
		Path:          "/v1/reminders",
		Summary:       "Create a reminder",
		Description:   "Schedules a reminder. When the recipient is omitted the owner's registered email is used.",
		Tags:          []string{"Reminders"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

type CreateReminderInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Body   struct {
		Title     string `json:"title" doc:"Short title"`
		Message   string `json:"message" required:"false" doc:"Notification body, title is used when empty"`
		DueAt     string `json:"dueAt" doc:"RFC 3339 timestamp the reminder becomes due"`
		Notify    bool   `json:"notify" required:"false" doc:"Whether the sweeper should dispatch a notification"`
		Recipient string `json:"recipient" required:"false" doc:"Notification recipient, defaults to the owner's email"`
	}
}

type CreateReminderOutput struct {
	Body Reminder
}

func (h *CreateReminderHandler) handle(ctx context.Context, input *CreateReminderInput) (*CreateReminderOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	var dueAt time.Time
	if input.Body.DueAt != "" {
		dueAt, err = time.Parse(time.RFC3339, input.Body.DueAt)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid dueAt, expected RFC 3339", err)
		}
	}

	result, err := h.service.Create(ctx, userID, service.Reminder{
		Title:     input.Body.Title,
		Message:   input.Body.Message,
		DueAt:     dueAt,
		Notify:    input.Body.Notify,
		Recipient: input.Body.Recipient,
	})
	if err != nil {
		return nil, serviceError(err, "create reminder")
	}

	return &CreateReminderOutput{Body: reminderFromService(*result)}, nil
}
