package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finwise/finwise-server/internal/operator/actions"
	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/goal"
)

func newGoalTestService(t *testing.T, processor actionProcessor) (*GoalService, *goal.MockIGoalTable) {
	t.Helper()
	mockGoals := goal.NewMockIGoalTable(t)
	store := &storage.Storage{Goals: mockGoals}
	return NewGoalService(store, processor), mockGoals
}

// -- ProgressPercent tests --

func TestProgressPercent_Halfway(t *testing.T) {
	progress := ProgressPercent(
		decimal.RequireFromString("2500.00"),
		decimal.RequireFromString("5000.00"),
	)
	assert.Equal(t, "50.00", progress.StringFixed(2))
}

func TestProgressPercent_RoundsToTwoPlaces(t *testing.T) {
	progress := ProgressPercent(
		decimal.RequireFromString("1.00"),
		decimal.RequireFromString("3.00"),
	)
	assert.Equal(t, "33.33", progress.StringFixed(2))
}

func TestProgressPercent_ClampsAboveHundred(t *testing.T) {
	progress := ProgressPercent(
		decimal.RequireFromString("7500.00"),
		decimal.RequireFromString("5000.00"),
	)
	assert.True(t, progress.Equal(decimal.NewFromInt(100)))
}

func TestProgressPercent_ZeroTarget(t *testing.T) {
	progress := ProgressPercent(decimal.RequireFromString("100.00"), decimal.Zero)
	assert.True(t, progress.IsZero())
}

func TestProgressPercent_NegativeTarget(t *testing.T) {
	progress := ProgressPercent(decimal.RequireFromString("100.00"), decimal.RequireFromString("-5.00"))
	assert.True(t, progress.IsZero())
}

// -- Create tests --

func TestCreateGoal_Success(t *testing.T) {
	processor := &fakeProcessor{}
	svc, mockGoals := newGoalTestService(t, processor)
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())

	mockGoals.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *goal.GoalCreate) bool {
		return c.UserID == userID && c.Name == "Emergency Fund" &&
			c.TargetAmount.Equal(decimal.RequireFromString("10000.00"))
	})).Return(goalID, nil)

	id, err := svc.Create(context.Background(), userID, "  Emergency Fund  ",
		decimal.RequireFromString("10000.00"), nil)

	assert.NoError(t, err)
	assert.Equal(t, goalID, id)
}

func TestCreateGoal_BlankName(t *testing.T) {
	svc, _ := newGoalTestService(t, &fakeProcessor{})

	_, err := svc.Create(context.Background(), uuid.Must(uuid.NewV4()), "   ",
		decimal.RequireFromString("100.00"), nil)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateGoal_NonPositiveTarget(t *testing.T) {
	svc, _ := newGoalTestService(t, &fakeProcessor{})

	_, err := svc.Create(context.Background(), uuid.Must(uuid.NewV4()), "Car", decimal.Zero, nil)

	assert.ErrorIs(t, err, ErrValidation)
}

// -- Get tests --

func TestGetGoal_ComputesProgress(t *testing.T) {
	svc, mockGoals := newGoalTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mockGoals.EXPECT().FindByID(mock.Anything, userID, id).Return(&goal.Goal{
		ID:           id,
		UserID:       userID,
		Name:         "Emergency Fund",
		TargetAmount: decimal.RequireFromString("5000.00"),
		SavedAmount:  decimal.RequireFromString("2500.00"),
	}, nil)

	result, err := svc.Get(context.Background(), userID, id)

	assert.NoError(t, err)
	assert.Equal(t, "50.00", result.ProgressPercent.StringFixed(2))
}

func TestGetGoal_NotFound(t *testing.T) {
	svc, mockGoals := newGoalTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mockGoals.EXPECT().FindByID(mock.Anything, userID, id).Return(nil, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), userID, id)

	assert.ErrorIs(t, err, ErrNotFound)
}

// -- ListContributions tests --

func TestListContributions_Success(t *testing.T) {
	svc, mockGoals := newGoalTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())

	mockGoals.EXPECT().FindByID(mock.Anything, userID, goalID).Return(&goal.Goal{
		ID:           goalID,
		UserID:       userID,
		TargetAmount: decimal.RequireFromString("5000.00"),
	}, nil)
	mockGoals.EXPECT().ListContributions(mock.Anything, goalID).Return([]*goal.Contribution{
		{
			ID:     uuid.Must(uuid.NewV4()),
			GoalID: goalID,
			Amount: decimal.RequireFromString("250.00"),
			Date:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			Note:   "July top-up",
		},
		{
			ID:     uuid.Must(uuid.NewV4()),
			GoalID: goalID,
			Amount: decimal.RequireFromString("100.00"),
			Date:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	contributions, err := svc.ListContributions(context.Background(), userID, goalID)

	assert.NoError(t, err)
	assert.Len(t, contributions, 2)
	assert.True(t, contributions[0].Amount.Equal(decimal.RequireFromString("250.00")))
	assert.Equal(t, "July top-up", contributions[0].Note)
	assert.Equal(t, goalID, contributions[1].GoalID)
}

func TestListContributions_GoalNotFound(t *testing.T) {
	svc, mockGoals := newGoalTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())

	// Ownership check fails before any contribution read.
	mockGoals.EXPECT().FindByID(mock.Anything, userID, goalID).Return(nil, sql.ErrNoRows)

	_, err := svc.ListContributions(context.Background(), userID, goalID)

	assert.ErrorIs(t, err, ErrNotFound)
}

// -- Contribute tests --

func TestContribute_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("500.00")
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	processor := &fakeProcessor{run: func(action actions.IAction) {
		contribution := action.(*actions.AddGoalContribution)
		assert.Equal(t, userID, contribution.UserID)
		assert.Equal(t, goalID, contribution.GoalID)
		assert.True(t, contribution.Amount.Equal(amount))
		assert.True(t, contribution.Date.Equal(date))
		contribution.Result = &goal.Goal{
			ID:           goalID,
			UserID:       userID,
			Name:         "Emergency Fund",
			TargetAmount: decimal.RequireFromString("5000.00"),
			SavedAmount:  decimal.RequireFromString("2500.00"),
		}
	}}
	svc, _ := newGoalTestService(t, processor)

	result, err := svc.Contribute(context.Background(), userID, goalID, amount, "bonus", date)

	assert.NoError(t, err)
	assert.True(t, result.SavedAmount.Equal(decimal.RequireFromString("2500.00")))
	assert.Equal(t, "50.00", result.ProgressPercent.StringFixed(2))
}

func TestContribute_NonPositiveAmount(t *testing.T) {
	svc, _ := newGoalTestService(t, &fakeProcessor{})

	_, err := svc.Contribute(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()),
		decimal.Zero, "", time.Time{})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestContribute_GoalNotFound(t *testing.T) {
	svc, _ := newGoalTestService(t, &fakeProcessor{err: actions.ErrGoalNotFound})

	_, err := svc.Contribute(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()),
		decimal.RequireFromString("10.00"), "", time.Time{})

	assert.ErrorIs(t, err, ErrNotFound)
}

// -- Delete tests --

func TestDeleteGoal_NotFound(t *testing.T) {
	svc, mockGoals := newGoalTestService(t, &fakeProcessor{})
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mockGoals.EXPECT().Delete(mock.Anything, userID, id).Return(int64(0), nil)

	err := svc.Delete(context.Background(), userID, id)

	assert.ErrorIs(t, err, ErrNotFound)
}
