package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type goalLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]service.Goal, error)
}

type ListGoalsHandler struct {
	service goalLister
}

func NewListGoalsHandler(service goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{service: service}
}

func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goals",
		Summary:     "List savings goals",
		Description: "Lists the caller's goals with progress, newest first.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

type ListGoalsInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
}

type ListGoalsOutput struct {
	Body struct {
		Goals []Goal `json:"goals"`
	}
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	goals, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, serviceError(err, "list goals")
	}

	output := &ListGoalsOutput{}
	output.Body.Goals = make([]Goal, len(goals))
	for i, g := range goals {
		output.Body.Goals[i] = goalFromService(g)
	}
	return output, nil
}
