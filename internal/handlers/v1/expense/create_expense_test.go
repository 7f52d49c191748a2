package expense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/logging"
	"github.com/finwise/finwise-server/internal/service"
)

// mockExpenseCreator is a mock for expenseCreator.
type mockExpenseCreator struct {
	mock.Mock
}

func (m *mockExpenseCreator) Create(ctx context.Context, userID uuid.UUID, in service.Expense) (*service.ExpenseReceipt, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExpenseReceipt), args.Error(1)
}

func newCreateTestAPI(t *testing.T, svc expenseCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateExpenseHandler(svc).Register(api)
	return api
}

func userHeader(userID uuid.UUID) string {
	return fmt.Sprintf("X-User-ID: %s", userID)
}

type createExpenseResponse struct {
	Message string        `json:"message"`
	Expense Expense       `json:"expense"`
	Budget  *BudgetImpact `json:"budget"`
}

func storedExpense(title, amount, category string, date time.Time) service.Expense {
	return service.Expense{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
		Source:   "card",
	}
}

func TestHTTP_CreateExpense_WithinBudget(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockExpenseCreator)
	mockSvc.On("Create", mock.Anything, userID, mock.MatchedBy(func(e service.Expense) bool {
		return e.Title == "Groceries" &&
			e.Amount.Equal(decimal.RequireFromString("1250")) &&
			e.Category == "Food" &&
			e.Date.Equal(date)
	})).Return(&service.ExpenseReceipt{
		Message: "Expense added. Remaining budget for Food (2025-07): 3750.",
		Expense: storedExpense("Groceries", "1250", "Food", date),
		Budget: &service.BudgetStatus{
			Month:       "2025-07",
			Category:    "Food",
			LimitAmount: decimal.RequireFromString("5000"),
			Spent:       decimal.RequireFromString("1250"),
			Remaining:   decimal.RequireFromString("3750"),
		},
	}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/expenses", userHeader(userID), map[string]any{
		"title":    "Groceries",
		"amount":   "1250",
		"category": "Food",
		"date":     date.Format(time.RFC3339),
		"source":   "card",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body createExpenseResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Expense added. Remaining budget for Food (2025-07): 3750.", body.Message)
	assert.Equal(t, "Groceries", body.Expense.Title)
	if assert.NotNil(t, body.Budget) {
		assert.Equal(t, "3750", body.Budget.Remaining)
		assert.False(t, body.Budget.IsOverspent)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_BudgetExceeded(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockExpenseCreator)
	mockSvc.On("Create", mock.Anything, userID, mock.Anything).Return(&service.ExpenseReceipt{
		Message: "Budget exceeded for Food (2025-07). Exceeded by 1200.",
		Expense: storedExpense("Restaurant", "2200", "Food", date),
		Budget: &service.BudgetStatus{
			Month:       "2025-07",
			Category:    "Food",
			LimitAmount: decimal.RequireFromString("5000"),
			Spent:       decimal.RequireFromString("6200"),
			Remaining:   decimal.RequireFromString("-1200"),
			IsOverspent: true,
		},
	}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/expenses", userHeader(userID), map[string]any{
		"title":    "Restaurant",
		"amount":   "2200",
		"category": "Food",
		"date":     date.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body createExpenseResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Budget exceeded for Food (2025-07). Exceeded by 1200.", body.Message)
	if assert.NotNil(t, body.Budget) {
		assert.True(t, body.Budget.IsOverspent)
		assert.Equal(t, "-1200", body.Budget.Remaining)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_NoBudget_OmitsBudgetField(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockExpenseCreator)
	mockSvc.On("Create", mock.Anything, userID, mock.Anything).Return(&service.ExpenseReceipt{
		Message: "Expense added. No budget set for Travel (2025-07).",
		Expense: storedExpense("Train ticket", "450", "Travel", date),
		Budget:  nil,
	}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/expenses", userHeader(userID), map[string]any{
		"title":    "Train ticket",
		"amount":   "450",
		"category": "Travel",
		"date":     date.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var raw map[string]json.RawMessage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.NotContains(t, raw, "budget")
	var body createExpenseResponse
	assert.NoError(t, json.Unmarshal(raw["message"], &body.Message))
	assert.Equal(t, "Expense added. No budget set for Travel (2025-07).", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_RecordsRequestLogFields(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	stored := storedExpense("Groceries", "100", "Food", date)

	mockSvc := new(mockExpenseCreator)
	mockSvc.On("Create", mock.Anything, userID, mock.Anything).Return(&service.ExpenseReceipt{
		Message: "Expense added. No budget set for Food (2025-07).",
		Expense: stored,
	}, nil)

	logger, hook := logrustest.NewNullLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(logging.Middleware(logger))
	NewCreateExpenseHandler(mockSvc).Register(api)

	resp := api.Post("/v1/expenses", userHeader(userID), map[string]any{
		"title":    "Groceries",
		"amount":   "100",
		"category": "Food",
		"date":     date.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	if assert.NotNil(t, hook.LastEntry()) {
		entry := hook.LastEntry()
		assert.Equal(t, "create-expense", entry.Data["operation"])
		assert.Equal(t, stored.ID.String(), entry.Data["expenseID"])
		assert.Equal(t, false, entry.Data["budgetMatched"])
		assert.Contains(t, entry.Data, "createExpenseMs")
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_InvalidAmount(t *testing.T) {
	mockSvc := new(mockExpenseCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/expenses", userHeader(uuid.Must(uuid.NewV4())), map[string]any{
		"title":  "Groceries",
		"amount": "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateExpense_InvalidDate(t *testing.T) {
	mockSvc := new(mockExpenseCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/expenses", userHeader(uuid.Must(uuid.NewV4())), map[string]any{
		"title":  "Groceries",
		"amount": "100",
		"date":   "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateExpense_NegativeAmountRejectedByService(t *testing.T) {
	mockSvc := new(mockExpenseCreator)
	mockSvc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: amount must be positive", service.ErrValidation))

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/expenses", userHeader(uuid.Must(uuid.NewV4())), map[string]any{
		"title":  "Groceries",
		"amount": "-100",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_MissingUserHeader(t *testing.T) {
	mockSvc := new(mockExpenseCreator)

	// Huma's required:"true" header validation rejects this before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/expenses", map[string]any{
		"title":  "Groceries",
		"amount": "100",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateExpense_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseCreator)
	mockSvc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/expenses", userHeader(uuid.Must(uuid.NewV4())), map[string]any{
		"title":  "Groceries",
		"amount": "100",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
