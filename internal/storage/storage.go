package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/finwise/finwise-server/internal/config"
	"github.com/finwise/finwise-server/internal/storage/budget"
	"github.com/finwise/finwise-server/internal/storage/expense"
	"github.com/finwise/finwise-server/internal/storage/goal"
	"github.com/finwise/finwise-server/internal/storage/income"
	"github.com/finwise/finwise-server/internal/storage/reminder"
	"github.com/finwise/finwise-server/internal/storage/user"
)

type Storage struct {
	DB *sql.DB

	Users     user.IUserTable
	Incomes   income.IIncomeTable
	Expenses  expense.IExpenseTable
	Budgets   budget.IBudgetTable
	Goals     goal.IGoalTable
	Reminders reminder.IReminderTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:        db,
		Users:     user.NewUsersTable(db),
		Incomes:   income.NewIncomesTable(db),
		Expenses:  expense.NewExpensesTable(db),
		Budgets:   budget.NewBudgetsTable(db),
		Goals:     goal.NewGoalsTable(db),
		Reminders: reminder.NewRemindersTable(db),
		bobDB:     bob.NewDB(db),
	}
}

// Write begins a transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
