package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type goalDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type DeleteGoalHandler struct {
	service goalDeleter
}

func NewDeleteGoalHandler(service goalDeleter) *DeleteGoalHandler {
	return &DeleteGoalHandler{service: service}
}

func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-goal",
		Method:        http.MethodDelete,
		Path:          "/v1/goals/{id}",
		Summary:       "Delete a savings goal",
		Description:   "Removes a goal together with its contributions.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

type DeleteGoalInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Goal UUID"`
}

type DeleteGoalOutput struct{}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*DeleteGoalOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, serviceError(err, "delete goal")
	}
	return &DeleteGoalOutput{}, nil
}
