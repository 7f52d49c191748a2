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

// mockBudgetUpserter is a mock for budgetUpserter.
type mockBudgetUpserter struct {
	mock.Mock
}

func (m *mockBudgetUpserter) Upsert(ctx context.Context, userID uuid.UUID, budget service.Budget) (*service.Budget, error) {
	args := m.Called(ctx, userID, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Budget), args.Error(1)
}

func newUpsertTestAPI(t *testing.T, svc budgetUpserter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpsertBudgetHandler(svc).Register(api)
	return api
}

func userHeader(userID uuid.UUID) string {
	return fmt.Sprintf("X-User-ID: %s", userID)
}

func TestHTTP_UpsertBudget_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBudgetUpserter)
	mockSvc.On("Upsert", mock.Anything, userID, mock.MatchedBy(func(b service.Budget) bool {
		return b.Month == "2025-07" &&
			b.Category == "Food" &&
			b.LimitAmount.Equal(decimal.RequireFromString("5000"))
	})).Return(&service.Budget{
		ID:          budgetID,
		Month:       "2025-07",
		Category:    "Food",
		LimitAmount: decimal.RequireFromString("5000"),
	}, nil)

	resp := newUpsertTestAPI(t, mockSvc).Put("/v1/budgets", userHeader(userID), map[string]any{
		"month":       "2025-07",
		"category":    "Food",
		"limitAmount": "5000",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Budget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, budgetID.String(), body.ID)
	assert.Equal(t, "2025-07", body.Month)
	assert.Equal(t, "Food", body.Category)
	assert.Equal(t, "5000", body.LimitAmount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpsertBudget_MissingUserHeader(t *testing.T) {
	mockSvc := new(mockBudgetUpserter)

	// Huma's required:"true" header validation rejects this before the handler runs.
	resp := newUpsertTestAPI(t, mockSvc).Put("/v1/budgets", map[string]any{
		"month":       "2025-07",
		"category":    "Food",
		"limitAmount": "5000",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Upsert")
}

func TestHTTP_UpsertBudget_InvalidLimitAmount(t *testing.T) {
	mockSvc := new(mockBudgetUpserter)

	resp := newUpsertTestAPI(t, mockSvc).Put("/v1/budgets", userHeader(uuid.Must(uuid.NewV4())), map[string]any{
		"month":       "2025-07",
		"category":    "Food",
		"limitAmount": "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Upsert")
}

func TestHTTP_UpsertBudget_ValidationError(t *testing.T) {
	mockSvc := new(mockBudgetUpserter)
	mockSvc.On("Upsert", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: month must be in YYYY-MM format", service.ErrValidation))

	resp := newUpsertTestAPI(t, mockSvc).Put("/v1/budgets", userHeader(uuid.Must(uuid.NewV4())), map[string]any{
		"month":       "july-2025",
		"category":    "Food",
		"limitAmount": "5000",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpsertBudget_ServiceError(t *testing.T) {
	mockSvc := new(mockBudgetUpserter)
	mockSvc.On("Upsert", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newUpsertTestAPI(t, mockSvc).Put("/v1/budgets", userHeader(uuid.Must(uuid.NewV4())), map[string]any{
		"month":       "2025-07",
		"category":    "Food",
		"limitAmount": "5000",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
