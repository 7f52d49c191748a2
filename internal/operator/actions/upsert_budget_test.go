package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/budget"
)

func TestUpsertBudget_Perform_InsertsWhenMissing(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())

	mockWriter := budget.NewMockIBudgetWriter(t)
	mockWriter.EXPECT().FindByKeyForUpdate(mock.Anything, userID, "2025-07", "Food").Return(nil, nil)
	mockWriter.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(create *budget.BudgetCreate) bool {
		return create.UserID == userID &&
			create.Month == "2025-07" &&
			create.Category == "Food" &&
			create.LimitAmount.Equal(decimal.RequireFromString("5000"))
	})).Return(budgetID, nil)

	action := &UpsertBudget{
		UserID:      userID,
		Month:       "2025-07",
		Category:    "Food",
		LimitAmount: decimal.RequireFromString("5000"),
	}

	err := action.Perform(context.Background(), &storage.Writer{Budget: mockWriter})

	assert.NoError(t, err)
	if assert.NotNil(t, action.Result) {
		assert.Equal(t, budgetID, action.Result.ID)
		assert.Equal(t, "2025-07", action.Result.Month)
	}
}

func TestUpsertBudget_Perform_UpdatesOnlyLimitWhenPresent(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())

	// No Insert expectation: an existing row must never gain a sibling.
	mockWriter := budget.NewMockIBudgetWriter(t)
	mockWriter.EXPECT().FindByKeyForUpdate(mock.Anything, userID, "2025-07", "Food").Return(&budget.Budget{
		ID:          budgetID,
		UserID:      userID,
		Month:       "2025-07",
		Category:    "Food",
		LimitAmount: decimal.RequireFromString("5000"),
	}, nil)
	mockWriter.EXPECT().UpdateLimit(mock.Anything, budgetID, mock.MatchedBy(func(limit decimal.Decimal) bool {
		return limit.Equal(decimal.RequireFromString("6500"))
	})).Return(nil)

	action := &UpsertBudget{
		UserID:      userID,
		Month:       "2025-07",
		Category:    "Food",
		LimitAmount: decimal.RequireFromString("6500"),
	}

	err := action.Perform(context.Background(), &storage.Writer{Budget: mockWriter})

	assert.NoError(t, err)
	if assert.NotNil(t, action.Result) {
		assert.Equal(t, budgetID, action.Result.ID)
		assert.True(t, action.Result.LimitAmount.Equal(decimal.RequireFromString("6500")))
	}
}

func TestUpsertBudget_Perform_InsertErrorPropagates(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	insertErr := errors.New("unique violation")

	mockWriter := budget.NewMockIBudgetWriter(t)
	mockWriter.EXPECT().FindByKeyForUpdate(mock.Anything, userID, "2025-07", "Food").Return(nil, nil)
	mockWriter.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, insertErr)

	action := &UpsertBudget{
		UserID:      userID,
		Month:       "2025-07",
		Category:    "Food",
		LimitAmount: decimal.RequireFromString("5000"),
	}

	err := action.Perform(context.Background(), &storage.Writer{Budget: mockWriter})

	assert.ErrorIs(t, err, insertErr)
	assert.Nil(t, action.Result)
}

func TestUpsertBudget_Perform_FindErrorPropagates(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	findErr := errors.New("lock timeout")

	mockWriter := budget.NewMockIBudgetWriter(t)
	mockWriter.EXPECT().FindByKeyForUpdate(mock.Anything, userID, "2025-07", "Food").Return(nil, findErr)

	action := &UpsertBudget{
		UserID:      userID,
		Month:       "2025-07",
		Category:    "Food",
		LimitAmount: decimal.RequireFromString("5000"),
	}

	err := action.Perform(context.Background(), &storage.Writer{Budget: mockWriter})

	assert.ErrorIs(t, err, findErr)
	assert.Nil(t, action.Result)
}
