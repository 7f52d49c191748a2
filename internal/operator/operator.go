package operator

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/finwise/finwise-server/internal/operator/actions"
	"github.com/finwise/finwise-server/internal/storage"
)

// job carries one action through the queue to a worker and back.
type job struct {
	ctx    context.Context
	action actions.IAction
	done   chan error
}

// writeStorage begins the transaction a job runs in. Satisfied by
// *storage.Storage.
type writeStorage interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Delegator owns the job queue and a pool of workers. Each worker applies
// one action at a time inside its own transaction: begin, Perform, then
// commit on success or roll back on failure. Callers block in Process until
// their action has been applied or their context expires.
type Delegator struct {
	storage  writeStorage
	logger   *logrus.Logger
	jobs     chan job
	workers  int
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewDelegator(s writeStorage, logger *logrus.Logger, workers int) *Delegator {
	if workers < 1 {
		workers = 1
	}
	return &Delegator{
		storage: s,
		logger:  logger,
		jobs:    make(chan job, 1000),
		workers: workers,
	}
}

func (d *Delegator) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for j := range d.jobs {
				j.done <- d.apply(j)
			}
		}()
	}
}

// Stop closes the queue and waits for in-flight jobs to finish. Safe to
// call more than once.
func (d *Delegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.jobs)
		d.wg.Wait()
	})
}

// Process enqueues the action and waits for its outcome.
func (d *Delegator) Process(ctx context.Context, action actions.IAction) error {
	done := make(chan error, 1)
	d.jobs <- job{ctx: ctx, action: action, done: done}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Delegator) apply(j job) error {
	// The caller may have given up while the job sat in the queue.
	if err := j.ctx.Err(); err != nil {
		return err
	}

	writer, err := d.storage.Write(j.ctx)
	if err != nil {
		return err
	}

	if err := j.action.Perform(j.ctx, writer); err != nil {
		if rollbackErr := writer.Rollback(); rollbackErr != nil {
			d.logger.WithError(rollbackErr).Error("Delegator.apply.rollback failed")
		}
		return err
	}

	return writer.Commit()
}
