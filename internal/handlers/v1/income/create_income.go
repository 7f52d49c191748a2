package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/service"
)

type incomeCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in service.Income) (*service.Income, error)
}

type CreateIncomeHandler struct {
	service incomeCreator
}

func NewCreateIncomeHandler(service incomeCreator) *CreateIncomeHandler {
	return &CreateIncomeHandler{service: service}
}

func (h *CreateIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-income",
		Method:        http.MethodPost,
		Path:          "/v1/incomes",
		Summary:       "Record an income",
		Tags:          []string{"Incomes"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

type CreateIncomeInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Body   struct {
		Source   string `json:"source" doc:"Where the money came from"`
		Amount   string `json:"amount" doc:"Decimal amount"`
		Category string `json:"category" required:"false" doc:"Category label"`
		Date     string `json:"date" required:"false" doc:"RFC 3339 timestamp, defaults to now"`
		Note     string `json:"note" required:"false" doc:"Free-form note"`
	}
}

type CreateIncomeOutput struct {
	Body Income
}

func (h *CreateIncomeHandler) handle(ctx context.Context, input *CreateIncomeInput) (*CreateIncomeOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date, err := parseDate(input.Body.Date)
	if err != nil {
		return nil, err
	}

	result, err := h.service.Create(ctx, userID, service.Income{
		Source:   input.Body.Source,
		Amount:   amount,
		Category: input.Body.Category,
		Date:     date,
		Note:     input.Body.Note,
	})
	if err != nil {
		return nil, serviceError(err, "create income")
	}

	return &CreateIncomeOutput{Body: incomeFromService(*result)}, nil
}
