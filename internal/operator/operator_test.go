package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/finwise/finwise-server/internal/storage"
)

// fakeTx counts commit/rollback calls and can fail either.
type fakeTx struct {
	commits     int
	rollbacks   int
	commitErr   error
	rollbackErr error
}

func (t *fakeTx) Commit(context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rollbacks++
	return t.rollbackErr
}

// fakeWriteStorage hands out a prepared Writer instead of opening a
// database transaction.
type fakeWriteStorage struct {
	mu         sync.Mutex
	writer     *storage.Writer
	beginErr   error
	beginCalls int
}

func (f *fakeWriteStorage) Write(ctx context.Context) (*storage.Writer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.beginCalls++
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.writer, nil
}

type stubAction struct {
	err       error
	performed bool
}

func (a *stubAction) Perform(ctx context.Context, writer *storage.Writer) error {
	a.performed = true
	return a.err
}

func newTestDelegator(t *testing.T, fs *fakeWriteStorage, logger *logrus.Logger) *Delegator {
	t.Helper()
	d := NewDelegator(fs, logger, 1)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CommitsWhenActionSucceeds(t *testing.T) {
	tx := &fakeTx{}
	fs := &fakeWriteStorage{writer: &storage.Writer{Tx: tx}}
	d := newTestDelegator(t, fs, logrus.New())
	action := &stubAction{}

	err := d.Process(context.Background(), action)

	assert.NoError(t, err)
	assert.True(t, action.performed)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestProcess_RollsBackWhenActionFails(t *testing.T) {
	tx := &fakeTx{}
	fs := &fakeWriteStorage{writer: &storage.Writer{Tx: tx}}
	d := newTestDelegator(t, fs, logrus.New())
	actionErr := errors.New("constraint violation")

	err := d.Process(context.Background(), &stubAction{err: actionErr})

	assert.ErrorIs(t, err, actionErr)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestProcess_RollbackFailureIsLogged(t *testing.T) {
	tx := &fakeTx{rollbackErr: errors.New("connection lost")}
	fs := &fakeWriteStorage{writer: &storage.Writer{Tx: tx}}
	logger, hook := test.NewNullLogger()
	d := newTestDelegator(t, fs, logger)
	actionErr := errors.New("constraint violation")

	err := d.Process(context.Background(), &stubAction{err: actionErr})

	// The caller still sees the action's error, not the rollback's.
	assert.ErrorIs(t, err, actionErr)
	assert.Equal(t, 1, tx.rollbacks)
	if assert.Len(t, hook.Entries, 1) {
		assert.Equal(t, logrus.ErrorLevel, hook.Entries[0].Level)
		assert.Equal(t, "Delegator.apply.rollback failed", hook.Entries[0].Message)
	}
}

func TestProcess_BeginErrorPropagates(t *testing.T) {
	beginErr := errors.New("database unavailable")
	fs := &fakeWriteStorage{beginErr: beginErr}
	d := newTestDelegator(t, fs, logrus.New())
	action := &stubAction{}

	err := d.Process(context.Background(), action)

	assert.ErrorIs(t, err, beginErr)
	assert.False(t, action.performed)
}

func TestProcess_CommitErrorPropagates(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("serialization failure")}
	fs := &fakeWriteStorage{writer: &storage.Writer{Tx: tx}}
	d := newTestDelegator(t, fs, logrus.New())

	err := d.Process(context.Background(), &stubAction{})

	assert.ErrorIs(t, err, tx.commitErr)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestProcess_CancelledContextSkipsTransaction(t *testing.T) {
	fs := &fakeWriteStorage{writer: &storage.Writer{Tx: &fakeTx{}}}
	d := newTestDelegator(t, fs, logrus.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &stubAction{})

	assert.ErrorIs(t, err, context.Canceled)
	// Drain the worker before inspecting the fake.
	d.Stop()
	assert.Equal(t, 0, fs.beginCalls)
}
