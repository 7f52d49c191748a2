package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type budgetLister interface {
	List(ctx context.Context, userID uuid.UUID, month string) ([]service.Budget, error)
}

type ListBudgetsHandler struct {
	service budgetLister
}

func NewListBudgetsHandler(service budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{service: service}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Lists the caller's budgets, optionally filtered to a single month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

type ListBudgetsInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Month  string `query:"month" required:"false" doc:"Optional month key filter, YYYY-MM"`
}

type ListBudgetsOutput struct {
	Body struct {
		Budgets []Budget `json:"budgets"`
	}
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	budgets, err := h.service.List(ctx, userID, input.Month)
	if err != nil {
		return nil, serviceError(err, "list budgets")
	}

	output := &ListBudgetsOutput{}
	output.Body.Budgets = make([]Budget, len(budgets))
	for i, b := range budgets {
		output.Body.Budgets[i] = budgetFromService(b)
	}
	return output, nil
}
