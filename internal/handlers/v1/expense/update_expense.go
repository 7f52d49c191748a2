package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/service"
)

type expenseUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, in service.Expense) error
}

type UpdateExpenseHandler struct {
	service expenseUpdater
}

func NewUpdateExpenseHandler(service expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{service: service}
}

func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-expense",
		Method:        http.MethodPut,
		Path:          "/v1/expenses/{id}",
		Summary:       "Update an expense",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

type UpdateExpenseInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	ID     string `path:"id" format:"uuid" doc:"Expense UUID"`
	Body   struct {
		Title    string `json:"title" doc:"Short description"`
		Amount   string `json:"amount" doc:"Decimal amount"`
		Category string `json:"category" required:"false" doc:"Category label"`
		Date     string `json:"date" required:"false" doc:"RFC 3339 timestamp, omit to keep the stored date"`
		Source   string `json:"source" required:"false" doc:"Payment source"`
	}
}

type UpdateExpenseOutput struct{}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date, err := parseDate(input.Body.Date)
	if err != nil {
		return nil, err
	}

	err = h.service.Update(ctx, userID, id, service.Expense{
		Title:    input.Body.Title,
		Amount:   amount,
		Category: input.Body.Category,
		Date:     date,
		Source:   input.Body.Source,
	})
	if err != nil {
		return nil, serviceError(err, "update expense")
	}
	return &UpdateExpenseOutput{}, nil
}
