package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget in the service layer.
type Budget struct {
	ID          uuid.UUID
	Month       string
	Category    string
	LimitAmount decimal.Decimal
}

// BudgetStatus is the reconciled state of one budget: its ceiling against
// the matching month/category spend.
type BudgetStatus struct {
	Month       string
	Category    string
	LimitAmount decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	IsOverspent bool
}
