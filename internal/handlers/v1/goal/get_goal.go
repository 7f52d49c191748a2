package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type goalGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*service.Goal, error)
}

type GetGoalHandler struct {
	service goalGetter
}

func NewGetGoalHandler(service goalGetter) *GetGoalHandler {
	return &GetGoalHandler{service: service}
}

func (h *GetGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-goal",
		Method:      http.MethodGet,
		Path:        "/v1/goals/{id}",
		Summary:     "Get a savings goal",
		Tags:        []string{"Goals"},
	}, h.handle)
}

type GetGoalInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Goal UUID"`
}

type GetGoalOutput struct {
	Body Goal
}

func (h *GetGoalHandler) handle(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	result, err := h.service.Get(ctx, userID, id)
	if err != nil {
		return nil, serviceError(err, "get goal")
	}

	return &GetGoalOutput{Body: goalFromService(*result)}, nil
}
