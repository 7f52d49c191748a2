package reminder

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type reminderLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]service.Reminder, error)
}

type ListRemindersHandler struct {
	service reminderLister
}

func NewListRemindersHandler(service reminderLister) *ListRemindersHandler {
	return &ListRemindersHandler{service: service}
}

func (h *ListRemindersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-reminders",
		Method:      http.MethodGet,
		Path:        "/v1/reminders",
		Summary:     "List reminders",
		Description: "Lists the caller's reminders, latest due first.",
		Tags:        []string{"Reminders"},
	}, h.handle)
}

type ListRemindersInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
}

type ListRemindersOutput struct {
	Body struct {
		Reminders []Reminder `json:"reminders"`
	}
}

func (h *ListRemindersHandler) handle(ctx context.Context, input *ListRemindersInput) (*ListRemindersOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	reminders, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, serviceError(err, "list reminders")
	}

	output := &ListRemindersOutput{}
	output.Body.Reminders = make([]Reminder, len(reminders))
	for i, r := range reminders {
		output.Body.Reminders[i] = reminderFromService(r)
	}
	return output, nil
}
