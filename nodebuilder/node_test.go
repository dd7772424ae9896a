package nodebuilder

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/ledger-node/ledgerdb"
	"github.com/celestiaorg/ledger-node/pruner"
	"github.com/celestiaorg/ledger-node/store"
)

func TestNode_PrunesInBackground(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	t.Cleanup(cancel)

	dir := t.TempDir()
	cfg := testConfig()
	require.NoError(t, Init(*cfg, dir))

	nd, st := newTestNode(t, dir)
	require.NoError(t, nd.Start(ctx))

	saveVersions(ctx, t, nd, 10)
	require.NoError(t, nd.Pruner.WakeAndWait(ctx, 9))

	_, err := nd.LedgerServ.Transaction(ctx, 5)
	require.ErrorIs(t, err, ledgerdb.ErrPruned)
	txn, err := nd.LedgerServ.Transaction(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, []byte{6}, txn)

	progress, err := nd.LedgerServ.PrunerProgress(ctx)
	require.NoError(t, err)
	require.Len(t, progress, pruner.NumDomains)
	assert.Equal(t, uint64(6), progress[pruner.LedgerDomain].MinReadableVersion)
	assert.Equal(t, uint64(7), progress[pruner.StateDomain].MinReadableVersion)

	require.NotNil(t, nd.GatewayServer)
	resp, err := http.Get(fmt.Sprintf("http://%s/ledger/txn/5", nd.GatewayServer.ListenAddr()))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusGone, resp.StatusCode)

	require.NoError(t, nd.Stop(ctx))
	require.NoError(t, st.Close())

	// progress survives restarts
	nd, st = newTestNode(t, dir)
	require.NoError(t, nd.Start(ctx))
	assert.Equal(t, pruner.Snapshot{pruner.Some(6), pruner.Some(7)}, nd.Pruner.Progress())
	require.NoError(t, nd.Stop(ctx))
	require.NoError(t, st.Close())
}

func TestNode_DisallowRevertToArchival(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	t.Cleanup(cancel)

	dir := t.TempDir()
	require.NoError(t, Init(*testConfig(), dir))

	nd, st := newTestNode(t, dir)
	require.NoError(t, nd.Start(ctx))
	require.NoError(t, nd.Stop(ctx))
	require.NoError(t, st.Close())

	st, err := OpenStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})

	cfg := testConfig()
	cfg.Pruner.EnableLedger = false
	_, err = NewWithConfig(st, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archival node")
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Pruner.BatchSize = 2
	cfg.Pruner.LedgerWindow = 3
	cfg.Pruner.StateWindow = 2
	cfg.Gateway.Enabled = true
	cfg.Gateway.Address = "127.0.0.1"
	cfg.Gateway.Port = "0"
	return cfg
}

func newTestNode(t *testing.T, dir string) (*Node, Store) {
	st, err := OpenStore(dir)
	require.NoError(t, err)
	nd, err := New(st)
	require.NoError(t, err)
	return nd, st
}

func saveVersions(ctx context.Context, t *testing.T, nd *Node, n int) {
	for i := 0; i < n; i++ {
		v, err := nd.LedgerServ.SaveVersion(ctx, store.VersionChange{
			Transaction: []byte{byte(i)},
			Events:      [][]byte{{byte(i)}},
			State:       map[string][]byte{"key": {byte(i)}},
		})
		require.NoError(t, err)
		require.Equal(t, uint64(i), v)
	}
}
