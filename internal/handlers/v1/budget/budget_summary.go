package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type budgetSummarizer interface {
	Summary(ctx context.Context, userID uuid.UUID, month string) ([]service.BudgetStatus, error)
}

type BudgetSummaryHandler struct {
	service budgetSummarizer
}

func NewBudgetSummaryHandler(service budgetSummarizer) *BudgetSummaryHandler {
	return &BudgetSummaryHandler{service: service}
}

func (h *BudgetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-summary",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/summary",
		Summary:     "Budget summary for a month",
		Description: "Reconciles each budget defined in the month against the expenses recorded in that month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

type BudgetSummaryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Month  string `query:"month" required:"true" doc:"Month key, YYYY-MM"`
}

type BudgetSummaryOutput struct {
	Body struct {
		Month   string         `json:"month"`
		Budgets []BudgetStatus `json:"budgets"`
	}
}

func (h *BudgetSummaryHandler) handle(ctx context.Context, input *BudgetSummaryInput) (*BudgetSummaryOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	statuses, err := h.service.Summary(ctx, userID, input.Month)
	if err != nil {
		return nil, serviceError(err, "summarize budgets")
	}

	output := &BudgetSummaryOutput{}
	output.Body.Month = input.Month
	output.Body.Budgets = make([]BudgetStatus, len(statuses))
	for i, s := range statuses {
		output.Body.Budgets[i] = statusFromService(s)
	}
	return output, nil
}
