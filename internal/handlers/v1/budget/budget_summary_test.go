package budget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/service"
)

// mockBudgetSummarizer is a mock for budgetSummarizer.
type mockBudgetSummarizer struct {
	mock.Mock
}

func (m *mockBudgetSummarizer) Summary(ctx context.Context, userID uuid.UUID, month string) ([]service.BudgetStatus, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.BudgetStatus), args.Error(1)
}

func newSummaryTestAPI(t *testing.T, svc budgetSummarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewBudgetSummaryHandler(svc).Register(api)
	return api
}

func TestHTTP_BudgetSummary_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBudgetSummarizer)
	mockSvc.On("Summary", mock.Anything, userID, "2025-07").Return([]service.BudgetStatus{
		{
			Month:       "2025-07",
			Category:    "Food",
			LimitAmount: decimal.RequireFromString("5000"),
			Spent:       decimal.RequireFromString("6200"),
			Remaining:   decimal.RequireFromString("-1200"),
			IsOverspent: true,
		},
		{
			Month:       "2025-07",
			Category:    "Transport",
			LimitAmount: decimal.RequireFromString("1500"),
			Spent:       decimal.Zero,
			Remaining:   decimal.RequireFromString("1500"),
		},
	}, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/budgets/summary?month=2025-07", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Month   string         `json:"month"`
		Budgets []BudgetStatus `json:"budgets"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07", body.Month)
	assert.Len(t, body.Budgets, 2)
	assert.Equal(t, "Food", body.Budgets[0].Category)
	assert.Equal(t, "-1200", body.Budgets[0].Remaining)
	assert.True(t, body.Budgets[0].IsOverspent)
	assert.Equal(t, "Transport", body.Budgets[1].Category)
	assert.Equal(t, "0", body.Budgets[1].Spent)
	assert.False(t, body.Budgets[1].IsOverspent)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BudgetSummary_NoBudgets(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBudgetSummarizer)
	mockSvc.On("Summary", mock.Anything, userID, "2025-07").Return([]service.BudgetStatus{}, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/budgets/summary?month=2025-07", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Budgets []BudgetStatus `json:"budgets"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Budgets)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BudgetSummary_MissingMonth(t *testing.T) {
	mockSvc := new(mockBudgetSummarizer)

	// Huma's required:"true" query validation rejects this before the handler runs.
	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/budgets/summary", userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Summary")
}

func TestHTTP_BudgetSummary_InvalidMonth(t *testing.T) {
	mockSvc := new(mockBudgetSummarizer)
	mockSvc.On("Summary", mock.Anything, mock.Anything, "2025-13").
		Return(nil, fmt.Errorf("%w: month must be in YYYY-MM format", service.ErrValidation))

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/budgets/summary?month=2025-13", userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BudgetSummary_ServiceError(t *testing.T) {
	mockSvc := new(mockBudgetSummarizer)
	mockSvc.On("Summary", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/budgets/summary?month=2025-07", userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
