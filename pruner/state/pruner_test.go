package state

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	ds_sync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/ledger-node/store"
)

func TestPruner_Prune(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	s := newTestStore(ctx, t, 5)
	p, err := NewPruner(ctx, s)
	require.NoError(t, err)

	p.SetTargetVersion(2)
	batch := store.NewBatch()
	n, err := p.Prune(ctx, batch, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
	assert.Zero(t, p.MinReadableVersion())

	require.NoError(t, s.Write(ctx, batch))
	assert.Equal(t, uint64(2), p.MinReadableVersion())
	assert.False(t, p.IsPruningPending())

	// everything readable as of the min readable version survives
	val, err := s.StateValue(ctx, []byte("key"), 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, val)
	val, err = s.StateValue(ctx, []byte("even"), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, val)

	// nodes superseded at or below it are gone
	_, err = s.StateValue(ctx, []byte("key"), 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	stale, err := s.StaleNodes(ctx, 10)
	require.NoError(t, err)
	for _, node := range stale {
		assert.Greater(t, node.StaleSince, uint64(2))
	}
}

func TestPruner_PruneRespectsLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	s := newTestStore(ctx, t, 5)
	p, err := NewPruner(ctx, s)
	require.NoError(t, err)

	p.SetTargetVersion(4)
	batch := store.NewBatch()
	n, err := p.Prune(ctx, batch, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
	require.NoError(t, s.Write(ctx, batch))
	assert.Equal(t, uint64(1), p.MinReadableVersion())
	assert.True(t, p.IsPruningPending())

	// "key" at 0 went stale at 1, "key" at 1 is still readable
	_, err = s.StateValue(ctx, []byte("key"), 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
	val, err := s.StateValue(ctx, []byte("key"), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, val)

	restarted, err := NewPruner(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), restarted.MinReadableVersion())
}

// newTestStore commits versions where "key" is written at every version and
// "even" at even versions only.
func newTestStore(ctx context.Context, t *testing.T, versions int) *store.Store {
	s, err := store.NewStore(ds_sync.MutexWrap(datastore.NewMapDatastore()))
	require.NoError(t, err)
	for i := 0; i < versions; i++ {
		state := map[string][]byte{"key": {byte(i)}}
		if i%2 == 0 {
			state["even"] = []byte{byte(i)}
		}
		_, err := s.SaveVersion(ctx, store.VersionChange{
			Transaction: []byte{byte(i)},
			State:       state,
		})
		require.NoError(t, err)
	}
	return s
}
