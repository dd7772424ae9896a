package nodebuilder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWriteRead(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	in := DefaultConfig()

	err := in.Encode(buf)
	require.NoError(t, err)

	var out Config
	err = out.Decode(buf)
	require.NoError(t, err)
	assert.EqualValues(t, in, &out)
}

func TestUpdateConfig(t *testing.T) {
	// an old config missing the values added later
	cfg := &Config{}
	cfg.Pruner.BatchSize = 10
	cfg.Gateway.Port = "8080"

	cfg, err := updateConfig(cfg, DefaultConfig())
	require.NoError(t, err)

	// set values are kept, missing ones come from the defaults
	assert.Equal(t, uint64(10), cfg.Pruner.BatchSize)
	assert.Equal(t, "8080", cfg.Gateway.Port)
	assert.Equal(t, DefaultConfig().Pruner.LedgerWindow, cfg.Pruner.LedgerWindow)
	assert.Equal(t, DefaultConfig().Ledger.TxnCacheSize, cfg.Ledger.TxnCacheSize)
	require.NoError(t, cfg.Validate())
}

func TestUpdateConfigOnDisk(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Ledger.TxnCacheSize = 0
	require.NoError(t, Init(*cfg, dir))

	require.NoError(t, UpdateConfig(dir))

	updated, err := LoadConfig(configPath(dir))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Ledger.TxnCacheSize, updated.Ledger.TxnCacheSize)
}
