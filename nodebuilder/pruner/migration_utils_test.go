package pruner

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	ds_sync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/ledger-node/pruner"
)

func TestCheckPruningMode(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("FirstRunArchival", func(t *testing.T) {
		ds := ds_sync.MutexWrap(datastore.NewMapDatastore())

		err := checkPruningMode(ctx, pruner.LedgerDomain, false, ds, 0)
		assert.NoError(t, err)

		prevMode, err := ds.Get(ctx, modeKey(pruner.LedgerDomain))
		require.NoError(t, err)
		assert.Equal(t, []byte("archival"), prevMode)
	})

	t.Run("FirstRunPruned", func(t *testing.T) {
		ds := ds_sync.MutexWrap(datastore.NewMapDatastore())

		err := checkPruningMode(ctx, pruner.StateDomain, true, ds, 0)
		assert.NoError(t, err)

		prevMode, err := ds.Get(ctx, modeKey(pruner.StateDomain))
		require.NoError(t, err)
		assert.Equal(t, []byte("pruned"), prevMode)
	})

	t.Run("RevertToArchivalNotAllowed", func(t *testing.T) {
		ds := ds_sync.MutexWrap(datastore.NewMapDatastore())

		// pruned up to 500 before the mode got recorded
		err := checkPruningMode(ctx, pruner.LedgerDomain, false, ds, 500)
		assert.ErrorIs(t, err, ErrDisallowRevertToArchival)

		ds = ds_sync.MutexWrap(datastore.NewMapDatastore())
		require.NoError(t, checkPruningMode(ctx, pruner.LedgerDomain, true, ds, 0))
		err = checkPruningMode(ctx, pruner.LedgerDomain, false, ds, 0)
		assert.ErrorIs(t, err, ErrDisallowRevertToArchival)
	})

	t.Run("ArchivalToPruned", func(t *testing.T) {
		ds := ds_sync.MutexWrap(datastore.NewMapDatastore())

		require.NoError(t, checkPruningMode(ctx, pruner.StateDomain, false, ds, 0))
		require.NoError(t, checkPruningMode(ctx, pruner.StateDomain, true, ds, 0))

		prevMode, err := ds.Get(ctx, modeKey(pruner.StateDomain))
		require.NoError(t, err)
		assert.Equal(t, []byte("pruned"), prevMode)

		// the other domain is tracked independently
		require.NoError(t, checkPruningMode(ctx, pruner.LedgerDomain, false, ds, 0))
	})
}
