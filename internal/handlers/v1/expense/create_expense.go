package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/logging"
	"github.com/finwise/finwise-server/internal/service"
)

type expenseCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in service.Expense) (*service.ExpenseReceipt, error)
}

type CreateExpenseHandler struct {
	service expenseCreator
}

func NewCreateExpenseHandler(service expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{service: service}
}

func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expenses",
		Summary:       "Record an expense",
		Description:   "Records an expense and reports its effect on the budget for the expense's month and category, if one exists.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

type CreateExpenseInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated owner UUID"`
	Body   struct {
		Title    string `json:"title" doc:"Short description"`
		Amount   string `json:"amount" doc:"Decimal amount"`
		Category string `json:"category" required:"false" doc:"Category label"`
		Date     string `json:"date" required:"false" doc:"RFC 3339 timestamp, defaults to now"`
		Source   string `json:"source" required:"false" doc:"Payment source"`
	}
}

type CreateExpenseOutput struct {
	Body struct {
		Message string        `json:"message" doc:"Budget outcome in words"`
		Expense Expense       `json:"expense"`
		Budget  *BudgetImpact `json:"budget,omitempty" doc:"Absent when no budget matches the expense"`
	}
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

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

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createExpenseMs")
	}
	receipt, err := h.service.Create(ctx, userID, service.Expense{
		Title:    input.Body.Title,
		Amount:   amount,
		Category: input.Body.Category,
		Date:     date,
		Source:   input.Body.Source,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "create expense")
	}

	if logData != nil {
		logData.AddData("expenseID", receipt.Expense.ID.String())
		logData.AddData("budgetMatched", receipt.Budget != nil)
	}

	output := &CreateExpenseOutput{}
	output.Body.Message = receipt.Message
	output.Body.Expense = expenseFromService(receipt.Expense)
	output.Body.Budget = impactFromService(receipt.Budget)
	return output, nil
}
