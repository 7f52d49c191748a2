package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/service"
)

type goalContributor interface {
	Contribute(ctx context.Context, userID, goalID uuid.UUID, amount decimal.Decimal, note string, date time.Time) (*service.Goal, error)
}

type ContributeGoalHandler struct {
	service goalContributor
}

func NewContributeGoalHandler(service goalContributor) *ContributeGoalHandler {
	return &ContributeGoalHandler{service: service}
}

func (h *ContributeGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "contribute-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goals/{id}/contributions",
		Summary:       "Contribute to a savings goal",
		Description:   "Appends a contribution and raises the goal's saved amount in a single transaction.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

type ContributeGoalInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Goal UUID"`
	Body   struct {
		Amount string `json:"amount" doc:"Decimal contribution amount"`
		Date   string `json:"date" required:"false" doc:"RFC 3339 timestamp, defaults to now"`
		Note   string `json:"note" required:"false" doc:"Free-form note"`
	}
}

type ContributeGoalOutput struct {
	Body Goal
}

func (h *ContributeGoalHandler) handle(ctx context.Context, input *ContributeGoalInput) (*ContributeGoalOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	goalID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date, expected RFC 3339", err)
		}
	}

	result, err := h.service.Contribute(ctx, userID, goalID, amount, input.Body.Note, date)
	if err != nil {
		return nil, serviceError(err, "contribute to goal")
	}

	return &ContributeGoalOutput{Body: goalFromService(*result)}, nil
}
