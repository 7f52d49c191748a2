package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type budgetDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type DeleteBudgetHandler struct {
	service budgetDeleter
}

func NewDeleteBudgetHandler(service budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{service: service}
}

func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/v1/budgets/{id}",
		Summary:       "Delete a budget",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

type DeleteBudgetInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Budget UUID"`
}

type DeleteBudgetOutput struct{}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, serviceError(err, "delete budget")
	}
	return &DeleteBudgetOutput{}, nil
}
