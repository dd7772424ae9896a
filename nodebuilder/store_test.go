package nodebuilder

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenStore(dir)
	assert.ErrorIs(t, err, ErrNotInited)

	err = Init(*DefaultConfig(), dir)
	require.NoError(t, err)

	store, err := OpenStore(dir)
	require.NoError(t, err)

	_, err = OpenStore(dir)
	assert.ErrorIs(t, err, ErrOpened)

	data, err := store.Datastore()
	require.NoError(t, err)
	assert.NotNil(t, data)

	ctx := context.Background()
	require.NoError(t, data.Put(ctx, datastore.NewKey("key"), []byte("value")))

	cfg, err := store.Config()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	cfg.Pruner.BatchSize = 7
	require.NoError(t, store.PutConfig(cfg))

	err = store.Close()
	assert.NoError(t, err)

	// reopening sees what was written before
	store, err = OpenStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	cfg, err = store.Config()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Pruner.BatchSize)

	data, err = store.Datastore()
	require.NoError(t, err)
	value, err := data.Get(ctx, datastore.NewKey("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}
