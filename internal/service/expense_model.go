package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Category  string
	Date      time.Time
	Source    string
	CreatedAt time.Time
}

// ExpenseReceipt is the result of recording an expense: the stored row
// plus, when a budget covers its month and category, the budget state
// including the just-inserted amount.
type ExpenseReceipt struct {
	Message string
	Expense Expense
	Budget  *BudgetStatus
}
