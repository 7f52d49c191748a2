package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/finwise/finwise-server/internal/storage/budget"
	"github.com/finwise/finwise-server/internal/storage/goal"
)

// Tx is the commit/rollback surface of the transaction a Writer owns.
// Satisfied by bob.Tx.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer bundles the tx-scoped writers over one open transaction. The
// fields are interfaces for the same reason Storage's table fields are:
// tests assemble a Writer without a database.
type Writer struct {
	Tx     Tx
	Budget budget.IBudgetWriter
	Goal   goal.IGoalWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		Tx:     tx,
		Budget: budget.NewWriter(tx),
		Goal:   goal.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
