package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type contributionLister interface {
	ListContributions(ctx context.Context, userID, goalID uuid.UUID) ([]service.Contribution, error)
}

type ListContributionsHandler struct {
	service contributionLister
}

func NewListContributionsHandler(service contributionLister) *ListContributionsHandler {
	return &ListContributionsHandler{service: service}
}

func (h *ListContributionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goal-contributions",
		Method:      http.MethodGet,
		Path:        "/v1/goals/{id}/contributions",
		Summary:     "List a goal's contributions",
		Description: "Lists the contributions recorded against an owned goal, newest first.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

type ListContributionsInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Goal UUID"`
}

type ListContributionsOutput struct {
	Body struct {
		Contributions []Contribution `json:"contributions"`
	}
}

func (h *ListContributionsHandler) handle(ctx context.Context, input *ListContributionsInput) (*ListContributionsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	goalID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	contributions, err := h.service.ListContributions(ctx, userID, goalID)
	if err != nil {
		return nil, serviceError(err, "list contributions")
	}

	output := &ListContributionsOutput{}
	output.Body.Contributions = make([]Contribution, len(contributions))
	for i, c := range contributions {
		output.Body.Contributions[i] = Contribution{
			ID:     c.ID.String(),
			Amount: c.Amount.String(),
			Date:   c.Date.Format(time.RFC3339),
			Note:   c.Note,
		}
	}
	return output, nil
}
