package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/service"
)

type budgetUpserter interface {
	Upsert(ctx context.Context, userID uuid.UUID, budget service.Budget) (*service.Budget, error)
}

type UpsertBudgetHandler struct {
	service budgetUpserter
}

func NewUpsertBudgetHandler(service budgetUpserter) *UpsertBudgetHandler {
	return &UpsertBudgetHandler{service: service}
}

func (h *UpsertBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budgets",
		Summary:     "Upsert a budget",
		Description: "Creates a budget for the month and category, or updates the limit if one already exists.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

type UpsertBudgetInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Body   struct {
		Month       string `json:"month" doc:"Month key, YYYY-MM"`
		Category    string `json:"category" doc:"Category label"`
		LimitAmount string `json:"limitAmount" doc:"Decimal monthly limit"`
	}
}

type UpsertBudgetOutput struct {
	Body Budget
}

func (h *UpsertBudgetHandler) handle(ctx context.Context, input *UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	limitAmount, err := decimal.NewFromString(input.Body.LimitAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid limitAmount", err)
	}

	result, err := h.service.Upsert(ctx, userID, service.Budget{
		Month:       input.Body.Month,
		Category:    input.Body.Category,
		LimitAmount: limitAmount,
	})
	if err != nil {
		return nil, serviceError(err, "upsert budget")
	}

	return &UpsertBudgetOutput{Body: budgetFromService(*result)}, nil
}
