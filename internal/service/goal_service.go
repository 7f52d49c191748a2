package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/operator/actions"
	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/goal"
)

// GoalService handles savings goal business logic.
type GoalService struct {
	storage   *storage.Storage
	processor actionProcessor
	now       func() time.Time
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage, processor actionProcessor) *GoalService {
	return &GoalService{storage: store, processor: processor, now: time.Now}
}

// Create creates a new goal and returns its ID.
func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, name string, target decimal.Decimal, deadline *time.Time) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if target.Sign() <= 0 {
		return uuid.Nil, fmt.Errorf("%w: targetAmount must be greater than zero", ErrValidation)
	}

	return s.storage.Goals.Insert(ctx, &goal.GoalCreate{
		UserID:       userID,
		Name:         name,
		TargetAmount: target,
		Deadline:     deadline,
	})
}

// Get retrieves an owned goal with its progress.
func (s *GoalService) Get(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	row, err := s.storage.Goals.FindByID(ctx, userID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	converted := goalFromStorage(row)
	return &converted, nil
}

// List returns the owner's goals with progress, newest first.
func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	rows, err := s.storage.Goals.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals := make([]Goal, len(rows))
	for i, row := range rows {
		goals[i] = goalFromStorage(row)
	}
	return goals, nil
}

// ListContributions returns an owned goal's contributions, newest first.
// The goal must exist and belong to the caller.
func (s *GoalService) ListContributions(ctx context.Context, userID, goalID uuid.UUID) ([]Contribution, error) {
	if _, err := s.storage.Goals.FindByID(ctx, userID, goalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := s.storage.Goals.ListContributions(ctx, goalID)
	if err != nil {
		return nil, err
	}
	contributions := make([]Contribution, len(rows))
	for i, row := range rows {
		contributions[i] = Contribution{
			ID:     row.ID,
			GoalID: row.GoalID,
			Amount: row.Amount,
			Date:   row.Date,
			Note:   row.Note,
		}
	}
	return contributions, nil
}

// Contribute appends a contribution and bumps the goal's saved amount in
// one transaction, then returns the updated goal snapshot. The pair of
// writes is all-or-nothing; no state exists where one landed without the
// other.
func (s *GoalService) Contribute(ctx context.Context, userID, goalID uuid.UUID, amount decimal.Decimal, note string, date time.Time) (*Goal, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if date.IsZero() {
		date = s.now().UTC()
	}

	action := &actions.AddGoalContribution{
		UserID: userID,
		GoalID: goalID,
		Amount: amount,
		Date:   date,
		Note:   strings.TrimSpace(note),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrGoalNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	converted := goalFromStorage(action.Result)
	return &converted, nil
}

// Delete removes an owned goal together with its contributions.
func (s *GoalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.storage.Goals.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func goalFromStorage(row *goal.Goal) Goal {
	return Goal{
		ID:              row.ID,
		Name:            row.Name,
		TargetAmount:    row.TargetAmount,
		SavedAmount:     row.SavedAmount,
		Deadline:        row.Deadline,
		CreatedAt:       row.CreatedAt,
		ProgressPercent: ProgressPercent(row.SavedAmount, row.TargetAmount),
	}
}
