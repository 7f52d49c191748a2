package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type incomeDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type DeleteIncomeHandler struct {
	service incomeDeleter
}

func NewDeleteIncomeHandler(service incomeDeleter) *DeleteIncomeHandler {
	return &DeleteIncomeHandler{service: service}
}

func (h *DeleteIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-income",
		Method:        http.MethodDelete,
		Path:          "/v1/incomes/{id}",
		Summary:       "Delete an income",
		Tags:          []string{"Incomes"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

type DeleteIncomeInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Income UUID"`
}

type DeleteIncomeOutput struct{}

func (h *DeleteIncomeHandler) handle(ctx context.Context, input *DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid income id", err)
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, serviceError(err, "delete income")
	}
	return &DeleteIncomeOutput{}, nil
}
