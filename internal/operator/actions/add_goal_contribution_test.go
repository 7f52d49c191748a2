package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/goal"
)

func TestAddGoalContribution_Perform_AppliesBothWrites(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	mockWriter := goal.NewMockIGoalWriter(t)
	mockWriter.EXPECT().FindByIDForUpdate(mock.Anything, userID, goalID).Return(&goal.Goal{
		ID:           goalID,
		UserID:       userID,
		Name:         "Emergency fund",
		TargetAmount: decimal.RequireFromString("50000"),
		SavedAmount:  decimal.RequireFromString("1000"),
	}, nil)
	mockWriter.EXPECT().InsertContribution(mock.Anything, mock.MatchedBy(func(create *goal.ContributionCreate) bool {
		return create.GoalID == goalID &&
			create.Amount.Equal(decimal.RequireFromString("250")) &&
			create.Date.Equal(date) &&
			create.Note == "July top-up"
	})).Return(uuid.Must(uuid.NewV4()), nil)
	mockWriter.EXPECT().UpdateSavedAmount(mock.Anything, goalID, mock.MatchedBy(func(saved decimal.Decimal) bool {
		return saved.Equal(decimal.RequireFromString("1250"))
	})).Return(nil)

	action := &AddGoalContribution{
		UserID: userID,
		GoalID: goalID,
		Amount: decimal.RequireFromString("250"),
		Date:   date,
		Note:   "July top-up",
	}

	err := action.Perform(context.Background(), &storage.Writer{Goal: mockWriter})

	assert.NoError(t, err)
	if assert.NotNil(t, action.Result) {
		assert.True(t, action.Result.SavedAmount.Equal(decimal.RequireFromString("1250")))
	}
}

func TestAddGoalContribution_Perform_InsertFailureSkipsSavedAmount(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())
	insertErr := errors.New("insert failed")

	// No UpdateSavedAmount expectation: the mock fails the test if the
	// saved-amount write happens after the contribution insert errored.
	mockWriter := goal.NewMockIGoalWriter(t)
	mockWriter.EXPECT().FindByIDForUpdate(mock.Anything, userID, goalID).Return(&goal.Goal{
		ID:           goalID,
		UserID:       userID,
		TargetAmount: decimal.RequireFromString("50000"),
		SavedAmount:  decimal.RequireFromString("1000"),
	}, nil)
	mockWriter.EXPECT().InsertContribution(mock.Anything, mock.Anything).Return(uuid.Nil, insertErr)

	action := &AddGoalContribution{
		UserID: userID,
		GoalID: goalID,
		Amount: decimal.RequireFromString("250"),
		Date:   time.Now(),
	}

	err := action.Perform(context.Background(), &storage.Writer{Goal: mockWriter})

	assert.ErrorIs(t, err, insertErr)
	assert.Nil(t, action.Result)
}

func TestAddGoalContribution_Perform_FindFailureStopsEverything(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())
	findErr := errors.New("lock timeout")

	mockWriter := goal.NewMockIGoalWriter(t)
	mockWriter.EXPECT().FindByIDForUpdate(mock.Anything, userID, goalID).Return(nil, findErr)

	action := &AddGoalContribution{
		UserID: userID,
		GoalID: goalID,
		Amount: decimal.RequireFromString("250"),
		Date:   time.Now(),
	}

	err := action.Perform(context.Background(), &storage.Writer{Goal: mockWriter})

	assert.ErrorIs(t, err, findErr)
	assert.Nil(t, action.Result)
}

func TestAddGoalContribution_Perform_MissingGoal(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())

	mockWriter := goal.NewMockIGoalWriter(t)
	mockWriter.EXPECT().FindByIDForUpdate(mock.Anything, userID, goalID).Return(nil, nil)

	action := &AddGoalContribution{
		UserID: userID,
		GoalID: goalID,
		Amount: decimal.RequireFromString("250"),
		Date:   time.Now(),
	}

	err := action.Perform(context.Background(), &storage.Writer{Goal: mockWriter})

	assert.ErrorIs(t, err, ErrGoalNotFound)
	assert.Nil(t, action.Result)
}
