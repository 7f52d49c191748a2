package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/finwise/finwise-server/internal/handlers/v1/budget"
	"github.com/finwise/finwise-server/internal/handlers/v1/dashboard"
	"github.com/finwise/finwise-server/internal/handlers/v1/expense"
	"github.com/finwise/finwise-server/internal/handlers/v1/goal"
	"github.com/finwise/finwise-server/internal/handlers/v1/income"
	"github.com/finwise/finwise-server/internal/handlers/v1/reminder"
	"github.com/finwise/finwise-server/internal/handlers/v1/status"
	"github.com/finwise/finwise-server/internal/handlers/v1/user"
	"github.com/finwise/finwise-server/internal/logging"
	"github.com/finwise/finwise-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("finwise-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	r.registerHandlers(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) registerHandlers(humaAPI huma.API) {
	status.NewHandler().Register(humaAPI)

	user.NewCreateUserHandler(r.Service.User).Register(humaAPI)
	user.NewGetUserHandler(r.Service.User).Register(humaAPI)

	income.NewCreateIncomeHandler(r.Service.Income).Register(humaAPI)
	income.NewListIncomesHandler(r.Service.Income).Register(humaAPI)
	income.NewUpdateIncomeHandler(r.Service.Income).Register(humaAPI)
	income.NewDeleteIncomeHandler(r.Service.Income).Register(humaAPI)

	expense.NewCreateExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewListExpensesHandler(r.Service.Expense).Register(humaAPI)
	expense.NewGetExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewUpdateExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewDeleteExpenseHandler(r.Service.Expense).Register(humaAPI)

	budget.NewUpsertBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI)
	budget.NewBudgetSummaryHandler(r.Service.Budget).Register(humaAPI)
	budget.NewDeleteBudgetHandler(r.Service.Budget).Register(humaAPI)

	goal.NewCreateGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewGetGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewContributeGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewListContributionsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewDeleteGoalHandler(r.Service.Goal).Register(humaAPI)

	reminder.NewCreateReminderHandler(r.Service.Reminder).Register(humaAPI)
	reminder.NewListRemindersHandler(r.Service.Reminder).Register(humaAPI)

	dashboard.NewSummaryHandler(r.Service.Report).Register(humaAPI)
	dashboard.NewMonthlyHandler(r.Service.Report).Register(humaAPI)
	dashboard.NewCategoryHandler(r.Service.Report).Register(humaAPI)
	dashboard.NewLast7DaysHandler(r.Service.Report).Register(humaAPI)
}
