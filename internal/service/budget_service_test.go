package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/operator/actions"
	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/budget"
	"github.com/finwise/finwise-server/internal/storage/expense"
)

// fakeProcessor stands in for the operator. run mimics what Perform would
// do to the action inside the transaction.
type fakeProcessor struct {
	err error
	run func(action actions.IAction)
}

func (f *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	if f.err != nil {
		return f.err
	}
	if f.run != nil {
		f.run(action)
	}
	return nil
}

func newBudgetTestService(t *testing.T, processor actionProcessor) (*BudgetService, *budget.MockIBudgetTable, *expense.MockIExpenseTable) {
	t.Helper()
	mockBudgets := budget.NewMockIBudgetTable(t)
	mockExpenses := expense.NewMockIExpenseTable(t)
	store := &storage.Storage{Budgets: mockBudgets, Expenses: mockExpenses}
	return NewBudgetService(store, processor), mockBudgets, mockExpenses
}

// -- Upsert tests --

func TestUpsertBudget_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())
	limit := decimal.RequireFromString("5000.00")

	processor := &fakeProcessor{run: func(action actions.IAction) {
		upsert := action.(*actions.UpsertBudget)
		assert.Equal(t, userID, upsert.UserID)
		assert.Equal(t, "2025-07", upsert.Month)
		assert.Equal(t, "Groceries", upsert.Category)
		assert.True(t, upsert.LimitAmount.Equal(limit))
		upsert.Result = &budget.Budget{
			ID:          budgetID,
			UserID:      userID,
			Month:       "2025-07",
			Category:    "Groceries",
			LimitAmount: limit,
		}
	}}
	svc, _, _ := newBudgetTestService(t, processor)

	result, err := svc.Upsert(context.Background(), userID, Budget{
		Month:       "2025-07",
		Category:    "Groceries",
		LimitAmount: limit,
	})

	assert.NoError(t, err)
	assert.Equal(t, budgetID, result.ID)
	assert.Equal(t, "2025-07", result.Month)
	assert.True(t, result.LimitAmount.Equal(limit))
}

func TestUpsertBudget_InvalidMonth(t *testing.T) {
	svc, _, _ := newBudgetTestService(t, &fakeProcessor{})

	_, err := svc.Upsert(context.Background(), uuid.Must(uuid.NewV4()), Budget{
		Month:       "2025-13",
		Category:    "Groceries",
		LimitAmount: decimal.New(100, 0),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpsertBudget_MissingCategory(t *testing.T) {
	svc, _, _ := newBudgetTestService(t, &fakeProcessor{})

	_, err := svc.Upsert(context.Background(), uuid.Must(uuid.NewV4()), Budget{
		Month:       "2025-07",
		LimitAmount: decimal.New(100, 0),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpsertBudget_NonPositiveLimit(t *testing.T) {
	svc, _, _ := newBudgetTestService(t, &fakeProcessor{})

	_, err := svc.Upsert(context.Background(), uuid.Must(uuid.NewV4()), Budget{
		Month:       "2025-07",
		Category:    "Groceries",
		LimitAmount: decimal.Zero,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpsertBudget_ProcessorError(t *testing.T) {
	svc, _, _ := newBudgetTestService(t, &fakeProcessor{err: errors.New("tx failed")})

	_, err := svc.Upsert(context.Background(), uuid.Must(uuid.NewV4()), Budget{
		Month:       "2025-07",
		Category:    "Groceries",
		LimitAmount: decimal.New(100, 0),
	})

	assert.Error(t, err)
	assert.Equal(t, "tx failed", err.Error())
}

// -- Delete tests --

func TestDeleteBudget_NotFound(t *testing.T) {
	svc, mockBudgets, _ := newBudgetTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mockBudgets.EXPECT().Delete(mock.Anything, userID, id).Return(int64(0), nil)

	err := svc.Delete(context.Background(), userID, id)

	assert.ErrorIs(t, err, ErrNotFound)
}

// -- Summary tests --

func TestBudgetSummary_NoExpenses(t *testing.T) {
	svc, mockBudgets, mockExpenses := newBudgetTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())
	limit := decimal.RequireFromString("5000.00")

	mockBudgets.EXPECT().List(mock.Anything, userID, "2025-07").Return([]*budget.Budget{
		{ID: uuid.Must(uuid.NewV4()), UserID: userID, Month: "2025-07", Category: "Groceries", LimitAmount: limit},
	}, nil)
	mockExpenses.EXPECT().ListInRange(mock.Anything, userID,
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)).Return(nil, nil)

	statuses, err := svc.Summary(context.Background(), userID, "2025-07")

	assert.NoError(t, err)
	assert.Len(t, statuses, 1)
	assert.True(t, statuses[0].Spent.IsZero())
	assert.True(t, statuses[0].Remaining.Equal(limit))
	assert.False(t, statuses[0].IsOverspent)
}

func TestBudgetSummary_Overspent(t *testing.T) {
	svc, mockBudgets, mockExpenses := newBudgetTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())

	mockBudgets.EXPECT().List(mock.Anything, userID, "2025-07").Return([]*budget.Budget{
		{Month: "2025-07", Category: "Groceries", LimitAmount: decimal.RequireFromString("5000.00")},
	}, nil)
	mockExpenses.EXPECT().ListInRange(mock.Anything, userID, mock.Anything, mock.Anything).Return([]*expense.Expense{
		{Category: "Groceries", Amount: decimal.RequireFromString("4000.00")},
		{Category: "Groceries", Amount: decimal.RequireFromString("2200.00")},
		{Category: "Transport", Amount: decimal.RequireFromString("900.00")},
	}, nil)

	statuses, err := svc.Summary(context.Background(), userID, "2025-07")

	assert.NoError(t, err)
	assert.Len(t, statuses, 1)
	assert.True(t, statuses[0].Spent.Equal(decimal.RequireFromString("6200.00")))
	assert.True(t, statuses[0].Remaining.Equal(decimal.RequireFromString("-1200.00")))
	assert.True(t, statuses[0].IsOverspent)
}

func TestBudgetSummary_SpendAtLimitIsNotOverspent(t *testing.T) {
	svc, mockBudgets, mockExpenses := newBudgetTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())

	mockBudgets.EXPECT().List(mock.Anything, userID, "2025-07").Return([]*budget.Budget{
		{Month: "2025-07", Category: "Groceries", LimitAmount: decimal.RequireFromString("100.00")},
	}, nil)
	mockExpenses.EXPECT().ListInRange(mock.Anything, userID, mock.Anything, mock.Anything).Return([]*expense.Expense{
		{Category: "Groceries", Amount: decimal.RequireFromString("100.00")},
	}, nil)

	statuses, err := svc.Summary(context.Background(), userID, "2025-07")

	assert.NoError(t, err)
	assert.True(t, statuses[0].Remaining.IsZero())
	assert.False(t, statuses[0].IsOverspent)
}

func TestBudgetSummary_CategoryMatchIsExact(t *testing.T) {
	svc, mockBudgets, mockExpenses := newBudgetTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())

	mockBudgets.EXPECT().List(mock.Anything, userID, "2025-07").Return([]*budget.Budget{
		{Month: "2025-07", Category: "Groceries", LimitAmount: decimal.RequireFromString("100.00")},
	}, nil)
	mockExpenses.EXPECT().ListInRange(mock.Anything, userID, mock.Anything, mock.Anything).Return([]*expense.Expense{
		{Category: "groceries", Amount: decimal.RequireFromString("40.00")},
	}, nil)

	statuses, err := svc.Summary(context.Background(), userID, "2025-07")

	assert.NoError(t, err)
	assert.True(t, statuses[0].Spent.IsZero())
}

func TestBudgetSummary_InvalidMonth(t *testing.T) {
	svc, _, _ := newBudgetTestService(t, &fakeProcessor{})

	_, err := svc.Summary(context.Background(), uuid.Must(uuid.NewV4()), "2025-13")

	assert.ErrorIs(t, err, ErrValidation)
}
