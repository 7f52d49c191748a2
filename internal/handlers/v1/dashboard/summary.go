package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type summarizer interface {
	Summary(ctx context.Context, userID uuid.UUID) (*service.Summary, error)
}

type SummaryHandler struct {
	service summarizer
}

func NewSummaryHandler(service summarizer) *SummaryHandler {
	return &SummaryHandler{service: service}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-summary",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/summary",
		Summary:     "All-time totals",
		Description: "Returns the caller's total income, total expense, and balance across all records.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

type SummaryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
}

type SummaryOutput struct {
	Body struct {
		TotalIncome  string `json:"totalIncome" doc:"Decimal sum of all incomes"`
		TotalExpense string `json:"totalExpense" doc:"Decimal sum of all expenses"`
		Balance      string `json:"balance" doc:"Decimal income minus expense"`
	}
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	summary, err := h.service.Summary(ctx, userID)
	if err != nil {
		return nil, serviceError(err, "compute summary")
	}

	output := &SummaryOutput{}
	output.Body.TotalIncome = summary.TotalIncome.String()
	output.Body.TotalExpense = summary.TotalExpense.String()
	output.Body.Balance = summary.Balance.String()
	return output, nil
}
