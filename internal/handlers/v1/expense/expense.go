package expense

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

// Expense is the API response model for an expense.
type Expense struct {
	ID       string `json:"id" doc:"Expense UUID"`
	Title    string `json:"title" doc:"Short description"`
	Amount   string `json:"amount" doc:"Decimal amount, always positive"`
	Category string `json:"category" doc:"Category label"`
	Date     string `json:"date" doc:"RFC 3339 timestamp the expense occurred"`
	Source   string `json:"source" doc:"Payment source"`
}

// BudgetImpact reports the state of the matching budget after a write.
type BudgetImpact struct {
	Month       string `json:"month" doc:"Month key, YYYY-MM"`
	Category    string `json:"category" doc:"Category label"`
	LimitAmount string `json:"limitAmount" doc:"Decimal monthly limit"`
	Spent       string `json:"spent" doc:"Decimal spend in the month, including this expense"`
	Remaining   string `json:"remaining" doc:"Decimal limit minus spend, may be negative"`
	IsOverspent bool   `json:"isOverspent" doc:"True when spend strictly exceeds the limit"`
}

func expenseFromService(e service.Expense) Expense {
	return Expense{
		ID:       e.ID.String(),
		Title:    e.Title,
		Amount:   e.Amount.String(),
		Category: e.Category,
		Date:     e.Date.Format(time.RFC3339),
		Source:   e.Source,
	}
}

func impactFromService(s *service.BudgetStatus) *BudgetImpact {
	if s == nil {
		return nil
	}
	return &BudgetImpact{
		Month:       s.Month,
		Category:    s.Category,
		LimitAmount: s.LimitAmount.String(),
		Spent:       s.Spent.String(),
		Remaining:   s.Remaining.String(),
		IsOverspent: s.IsOverspent,
	}
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	return userID, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date, expected RFC 3339", err)
	}
	return date, nil
}

func serviceError(err error, action string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "expense not found")
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to "+action, err)
	}
}
