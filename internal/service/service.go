package service

import (
	"context"

	"github.com/finwise/finwise-server/internal/operator/actions"
	"github.com/finwise/finwise-server/internal/storage"
)

// actionProcessor runs an action inside one storage transaction.
// Satisfied by operator.Delegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	User     *UserService
	Income   *IncomeService
	Expense  *ExpenseService
	Budget   *BudgetService
	Goal     *GoalService
	Reminder *ReminderService
	Report   *ReportService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, processor actionProcessor) *Service {
	return &Service{
		User:     NewUserService(store),
		Income:   NewIncomeService(store),
		Expense:  NewExpenseService(store),
		Budget:   NewBudgetService(store, processor),
		Goal:     NewGoalService(store, processor),
		Reminder: NewReminderService(store),
		Report:   NewReportService(store),
	}
}
