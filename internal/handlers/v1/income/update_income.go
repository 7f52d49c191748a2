package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/service"
)

type incomeUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, in service.Income) error
}

type UpdateIncomeHandler struct {
	service incomeUpdater
}

func NewUpdateIncomeHandler(service incomeUpdater) *UpdateIncomeHandler {
	return &UpdateIncomeHandler{service: service}
}

func (h *UpdateIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-income",
		Method:        http.MethodPut,
		Path:          "/v1/incomes/{id}",
		Summary:       "Update an income",
		Tags:          []string{"Incomes"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

type UpdateIncomeInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Income UUID"`
	Body   struct {
		Source string `json:"source" doc:"Where the money came from"`
		Amount string `json:"amount" doc:"Decimal amount"`
		Date   string `json:"date" required:"false" doc:"RFC 3339 timestamp, omit to keep the stored date"`
		Note   string `json:"note" required:"false" doc:"Free-form note"`
	}
}

type UpdateIncomeOutput struct{}

func (h *UpdateIncomeHandler) handle(ctx context.Context, input *UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid income id", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date, err := parseDate(input.Body.Date)
	if err != nil {
		return nil, err
	}

	err = h.service.Update(ctx, userID, id, service.Income{
		Source: input.Body.Source,
		Amount: amount,
		Date:   date,
		Note:   input.Body.Note,
	})
	if err != nil {
		return nil, serviceError(err, "update income")
	}
	return &UpdateIncomeOutput{}, nil
}
