package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/storage/expense"
)

// ExpenseService handles expense business logic.
type ExpenseService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store, now: time.Now}
}

// Create records an expense and reports its effect on the matching
// budget. The spend total is re-queried after the insert so it includes
// the new row; a cached running total could drift under concurrent
// writers.
func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, in Expense) (*ExpenseReceipt, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now().UTC()
	}

	amount := in.Amount.Abs()
	id, err := s.storage.Expenses.Insert(ctx, &expense.ExpenseCreate{
		UserID:   userID,
		Title:    in.Title,
		Amount:   amount,
		Category: in.Category,
		Date:     date,
		Source:   in.Source,
	})
	if err != nil {
		return nil, err
	}

	stored := Expense{
		ID:       id,
		Title:    in.Title,
		Amount:   amount,
		Category: in.Category,
		Date:     date,
		Source:   in.Source,
	}

	month := MonthKeyOf(date)
	budgetRow, err := s.storage.Budgets.FindByKey(ctx, userID, month, in.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return &ExpenseReceipt{
			Message: fmt.Sprintf("Expense added. No budget set for %v (%v).", in.Category, month),
			Expense: stored,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	start, end, err := ParseMonthKey(month)
	if err != nil {
		return nil, err
	}
	spent, err := s.storage.Expenses.SumCategoryInRange(ctx, userID, in.Category, start, end)
	if err != nil {
		return nil, err
	}

	remaining := budgetRow.LimitAmount.Sub(spent)
	status := &BudgetStatus{
		Month:       budgetRow.Month,
		Category:    budgetRow.Category,
		LimitAmount: budgetRow.LimitAmount,
		Spent:       spent,
		Remaining:   remaining,
		IsOverspent: spent.GreaterThan(budgetRow.LimitAmount),
	}

	receipt := &ExpenseReceipt{Expense: stored, Budget: status}
	if status.IsOverspent {
		receipt.Message = fmt.Sprintf("Budget exceeded for %v (%v). Exceeded by %v.",
			in.Category, month, spent.Sub(budgetRow.LimitAmount))
	} else {
		receipt.Message = fmt.Sprintf("Expense added. Remaining budget for %v (%v) is %v.",
			in.Category, month, remaining)
	}
	return receipt, nil
}

// Get retrieves an owned expense.
func (s *ExpenseService) Get(ctx context.Context, userID, id uuid.UUID) (*Expense, error) {
	row, err := s.storage.Expenses.FindByID(ctx, userID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	converted := expenseFromStorage(row)
	return &converted, nil
}

// List returns the owner's expenses, most recent date first.
func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID) ([]Expense, error) {
	rows, err := s.storage.Expenses.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}
	return expenses, nil
}

// Update modifies an owned expense. A zero date keeps the stored date.
func (s *ExpenseService) Update(ctx context.Context, userID, id uuid.UUID, in Expense) error {
	if in.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	affected, err := s.storage.Expenses.Update(ctx, userID, id, &expense.ExpenseUpdate{
		Title:    in.Title,
		Amount:   in.Amount.Abs(),
		Category: in.Category,
		Date:     in.Date,
		Source:   in.Source,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an owned expense.
func (s *ExpenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.storage.Expenses.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func expenseFromStorage(row *expense.Expense) Expense {
	return Expense{
		ID:        row.ID,
		Title:     row.Title,
		Amount:    row.Amount,
		Category:  row.Category,
		Date:      row.Date,
		Source:    row.Source,
		CreatedAt: row.CreatedAt,
	}
}
