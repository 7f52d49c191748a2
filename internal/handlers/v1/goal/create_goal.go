package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type goalCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string, target decimal.Decimal, deadline *time.Time) (uuid.UUID, error)
}

type CreateGoalHandler struct {
	service goalCreator
}

func NewCreateGoalHandler(service goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{service: service}
}

func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goals",
		Summary:       "Create a savings goal",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

type CreateGoalInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Body   struct {
		Name         string `json:"name" doc:"Goal name"`
		TargetAmount string `json:"targetAmount" doc:"Decimal target"`
		Deadline     string `json:"deadline" required:"false" doc:"RFC 3339 deadline, omit for open-ended"`
	}
}

type CreateGoalOutput struct {
	Body struct {
		ID string `json:"id" doc:"UUID of the new goal"`
	}
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}

	var deadline *time.Time
	if input.Body.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, input.Body.Deadline)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid deadline, expected RFC 3339", err)
		}
		deadline = &parsed
	}

	id, err := h.service.Create(ctx, userID, input.Body.Name, target, deadline)
	if err != nil {
		return nil, serviceError(err, "create goal")
	}

	output := &CreateGoalOutput{}
	output.Body.ID = id.String()
	return output, nil
}
