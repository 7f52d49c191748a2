package actions

import (
	"context"

	"github.com/finwise/finwise-server/internal/storage"
)

// IAction is a storage mutation that must land atomically. Perform runs
// inside a transaction the operator already opened; implementations must
// not commit or roll back themselves.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
