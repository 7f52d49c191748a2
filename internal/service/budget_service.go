package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finwise/finwise-server/internal/operator/actions"
	"github.com/finwise/finwise-server/internal/storage"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, processor actionProcessor) *BudgetService {
	return &BudgetService{storage: store, processor: processor}
}

// Upsert creates or updates the budget for (owner, month, category). An
// existing row keeps its key; only the limit changes.
func (s *BudgetService) Upsert(ctx context.Context, userID uuid.UUID, budget Budget) (*Budget, error) {
	if budget.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if budget.LimitAmount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: limitAmount must be greater than zero", ErrValidation)
	}
	if _, _, err := ParseMonthKey(budget.Month); err != nil {
		return nil, err
	}

	action := &actions.UpsertBudget{
		UserID:      userID,
		Month:       budget.Month,
		Category:    budget.Category,
		LimitAmount: budget.LimitAmount,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return &Budget{
		ID:          action.Result.ID,
		Month:       action.Result.Month,
		Category:    action.Result.Category,
		LimitAmount: action.Result.LimitAmount,
	}, nil
}

// List returns the owner's budgets, optionally filtered to one month.
func (s *BudgetService) List(ctx context.Context, userID uuid.UUID, month string) ([]Budget, error) {
	if month != "" {
		if _, _, err := ParseMonthKey(month); err != nil {
			return nil, err
		}
	}

	rows, err := s.storage.Budgets.List(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = Budget{
			ID:          row.ID,
			Month:       row.Month,
			Category:    row.Category,
			LimitAmount: row.LimitAmount,
		}
	}
	return budgets, nil
}

// Delete removes an owned budget.
func (s *BudgetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.storage.Budgets.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary reconciles every budget the owner defined in the month against
// the expenses recorded in that calendar month. Spent sums expenses whose
// category matches the budget's exactly and whose date falls in
// [first-of-month, first-of-next-month). Remaining may go negative;
// overspent means spent strictly above the limit.
func (s *BudgetService) Summary(ctx context.Context, userID uuid.UUID, month string) ([]BudgetStatus, error) {
	start, end, err := ParseMonthKey(month)
	if err != nil {
		return nil, err
	}

	budgets, err := s.storage.Budgets.List(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	expenses, err := s.storage.Expenses.ListInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount.Abs())
	}

	statuses := make([]BudgetStatus, len(budgets))
	for i, b := range budgets {
		spent := spentByCategory[b.Category]
		statuses[i] = BudgetStatus{
			Month:       b.Month,
			Category:    b.Category,
			LimitAmount: b.LimitAmount,
			Spent:       spent,
			Remaining:   b.LimitAmount.Sub(spent),
			IsOverspent: spent.GreaterThan(b.LimitAmount),
		}
	}
	return statuses, nil
}
