package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

type expenseGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*service.Expense, error)
}

type GetExpenseHandler struct {
	service expenseGetter
}

func NewGetExpenseHandler(service expenseGetter) *GetExpenseHandler {
	return &GetExpenseHandler{service: service}
}

func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/{id}",
		Summary:     "Get an expense",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

type GetExpenseInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Expense UUID"`
}

type GetExpenseOutput struct {
	Body Expense
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	result, err := h.service.Get(ctx, userID, id)
	if err != nil {
		return nil, serviceError(err, "get expense")
	}

	return &GetExpenseOutput{Body: expenseFromService(*result)}, nil
}
