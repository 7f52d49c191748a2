package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type expenseDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type DeleteExpenseHandler struct {
	service expenseDeleter
}

func NewDeleteExpenseHandler(service expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{service: service}
}

func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-expense",
		Method:        http.MethodDelete,
		Path:          "/v1/expenses/{id}",
		Summary:       "Delete an expense",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

type DeleteExpenseInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Expense UUID"`
}

type DeleteExpenseOutput struct{}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, serviceError(err, "delete expense")
	}
	return &DeleteExpenseOutput{}, nil
}
