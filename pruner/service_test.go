package pruner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/ledger-node/store"
)

func TestService_StartStop(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)

	s, _ := newTestStore(t)
	serv, err := NewService(s, NewRegistry(newFakePruner("ledger", 0)))
	require.NoError(t, err)

	err = serv.Wake(ctx, 100)
	require.ErrorIs(t, err, ErrNotStarted)
	require.ErrorIs(t, serv.Stop(ctx), ErrNotStarted)

	require.NoError(t, serv.Start(ctx))
	require.ErrorIs(t, serv.Start(ctx), ErrStarted)
	require.NoError(t, serv.Stop(ctx))
	require.NoError(t, serv.Stop(ctx))
}

func TestService_WakeAndWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)

	ledger, state := newFakePruner("ledger", 0), newFakePruner("state", 0)
	s, _ := newTestStore(t)
	serv, err := NewService(s, NewRegistry(ledger, state),
		WithBatchSize(7),
		WithPruneWindow(LedgerDomain, 10),
		WithPruneWindow(StateDomain, 50),
		WithPollInterval(time.Millisecond),
	)
	require.NoError(t, err)
	require.NoError(t, serv.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, serv.Stop(ctx))
	})

	require.NoError(t, serv.WakeAndWait(ctx, 100))
	assert.Equal(t, Snapshot{Some(90), Some(50)}, serv.Progress())

	// versions below the window saturate at zero
	require.NoError(t, serv.WakeAndWait(ctx, 20))
	assert.Equal(t, Snapshot{Some(90), Some(50)}, serv.Progress())

	v, ok := serv.MinReadableVersion(LedgerDomain)
	require.True(t, ok)
	assert.Equal(t, Version(90), v)
	assert.Equal(t, uint64(50), serv.PruneWindow(StateDomain))
}

func TestService_MaybeWake(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)

	ledger := newFakePruner("ledger", 0)
	s, _ := newTestStore(t)
	serv, err := NewService(s, NewRegistry(ledger),
		WithBatchSize(10),
		WithPruneWindow(LedgerDomain, 0),
	)
	require.NoError(t, err)
	require.NoError(t, serv.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, serv.Stop(ctx))
	})

	require.NoError(t, serv.MaybeWake(ctx, 5))
	assert.Zero(t, serv.lastSent)

	require.NoError(t, serv.MaybeWake(ctx, 10))
	require.Eventually(t, func() bool {
		v, _ := serv.MinReadableVersion(LedgerDomain)
		return v == 10
	}, time.Second, time.Millisecond)

	require.NoError(t, serv.MaybeWake(ctx, 15))
	assert.Equal(t, Version(10), serv.lastSent)
}

func TestService_DisabledDomain(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)

	state := newFakePruner("state", 3)
	s, _ := newTestStore(t)
	serv, err := NewService(s, NewRegistry(nil, state), WithPruneWindow(StateDomain, 0))
	require.NoError(t, err)

	// initial progress is recovered from the pruners
	assert.Equal(t, Snapshot{{}, Some(3)}, serv.Progress())

	require.NoError(t, serv.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, serv.Stop(ctx))
	})

	require.NoError(t, serv.WakeAndWait(ctx, 42))
	_, ok := serv.MinReadableVersion(LedgerDomain)
	assert.False(t, ok)
	v, ok := serv.MinReadableVersion(StateDomain)
	require.True(t, ok)
	assert.Equal(t, Version(42), v)
}

func TestService_WakeAndWaitRecovers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)

	s, fds := newTestStore(t)
	fds.failCommit.Store(true)
	serv, err := NewService(s, NewRegistry(newFakePruner("ledger", 0)),
		WithPruneWindow(LedgerDomain, 0),
		WithPollInterval(time.Millisecond),
	)
	require.NoError(t, err)
	require.NoError(t, serv.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, serv.Stop(ctx))
	})

	// pruning stalls while the store keeps failing
	waitCtx, waitCancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer waitCancel()
	err = serv.WakeAndWait(waitCtx, 10)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, Snapshot{Some(0)}, serv.Progress())

	// and resumes on the next wake once the fault clears, same version included
	fds.failCommit.Store(false)
	require.NoError(t, serv.WakeAndWait(ctx, 10))
	assert.Equal(t, Snapshot{Some(10)}, serv.Progress())
}

func TestService_FailedWakeDoesNotSuppressNext(t *testing.T) {
	s, _ := newTestStore(t)
	serv, err := NewService(s, NewRegistry(newFakePruner("ledger", 0)),
		WithBatchSize(10),
		WithCommandBuffer(0),
	)
	require.NoError(t, err)
	// nothing receives, so every send waits on ctx
	serv.started.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, serv.Wake(ctx, 100), context.Canceled)
	assert.Zero(t, serv.lastSent)
	// still due, so it tries to send again
	require.ErrorIs(t, serv.MaybeWake(ctx, 100), context.Canceled)
}

// blockingCommitter holds every write until released.
type blockingCommitter struct {
	entered chan struct{}
	release chan struct{}
}

func (c *blockingCommitter) Write(context.Context, *store.Batch) error {
	select {
	case c.entered <- struct{}{}:
	default:
	}
	<-c.release
	return nil
}

func TestService_StopTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)

	committer := &blockingCommitter{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	serv, err := NewService(committer, NewRegistry(newFakePruner("ledger", 0)),
		WithPruneWindow(LedgerDomain, 0),
		WithCommandBuffer(0),
	)
	require.NoError(t, err)
	require.NoError(t, serv.Start(ctx))

	require.NoError(t, serv.Wake(ctx, 10))
	<-committer.entered

	// the worker is stuck in a cycle and cannot take Quit in time
	stopCtx, stopCancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer stopCancel()
	require.ErrorIs(t, serv.Stop(stopCtx), context.DeadlineExceeded)

	// it still quits once the cycle is over
	close(committer.release)
	select {
	case <-serv.done:
	case <-ctx.Done():
		t.Fatal("worker did not quit after a timed out stop")
	}

	// stopping again is a no-op
	require.NoError(t, serv.Stop(ctx))
}

func TestParams_Validate(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := NewService(s, NewRegistry(), WithBatchSize(0))
	require.Error(t, err)
	_, err = NewService(s, NewRegistry(), WithPollInterval(0))
	require.Error(t, err)
	_, err = NewService(s, NewRegistry(), WithClock(nil))
	require.Error(t, err)
}
