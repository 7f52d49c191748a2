package budget

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/finwise/finwise-server/internal/service"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID          string `json:"id" doc:"Budget UUID"`
	Month       string `json:"month" doc:"Month key, YYYY-MM"`
	Category    string `json:"category" doc:"Category label"`
	LimitAmount string `json:"limitAmount" doc:"Decimal monthly limit"`
}

// BudgetStatus is the API response model for a reconciled budget.
type BudgetStatus struct {
	Month       string `json:"month" doc:"Month key, YYYY-MM"`
	Category    string `json:"category" doc:"Category label"`
	LimitAmount string `json:"limitAmount" doc:"Decimal monthly limit"`
	Spent       string `json:"spent" doc:"Decimal spend in the month"`
	Remaining   string `json:"remaining" doc:"Decimal limit minus spend, may be negative"`
	IsOverspent bool   `json:"isOverspent" doc:"True when spend strictly exceeds the limit"`
}

func budgetFromService(b service.Budget) Budget {
	return Budget{
		ID:          b.ID.String(),
		Month:       b.Month,
		Category:    b.Category,
		LimitAmount: b.LimitAmount.String(),
	}
}

func statusFromService(s service.BudgetStatus) BudgetStatus {
	return BudgetStatus{
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

func serviceError(err error, action string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "budget not found")
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to "+action, err)
	}
}
