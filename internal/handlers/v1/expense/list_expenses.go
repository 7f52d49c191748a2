package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type expenseLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]service.Expense, error)
}

type ListExpensesHandler struct {
	service expenseLister
}

func NewListExpensesHandler(service expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{service: service}
}

func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expenses",
		Summary:     "List expenses",
		Description: "Lists the caller's expenses, most recent date first.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

type ListExpensesInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
}

type ListExpensesOutput struct {
	Body struct {
		Expenses []Expense `json:"expenses"`
	}
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	expenses, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, serviceError(err, "list expenses")
	}

	output := &ListExpensesOutput{}
	output.Body.Expenses = make([]Expense, len(expenses))
	for i, e := range expenses {
		output.Body.Expenses[i] = expenseFromService(e)
	}
	return output, nil
}
