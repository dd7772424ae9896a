package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/ledger-node/nodebuilder"
)

func TestInit(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), ".ledger-node")

	t.Run("init", func(t *testing.T) {
		output := &bytes.Buffer{}
		rootCmd.SetOut(output)
		rootCmd.SetArgs([]string{
			"init",
			"--node.store", storePath,
			"--pruner.ledger-window", "100",
			"--gateway.read-only",
		})
		err := rootCmd.ExecuteContext(context.Background())
		require.NoError(t, err)
		assert.True(t, nodebuilder.IsInit(storePath))

		cfg, err := nodebuilder.LoadConfig(filepath.Join(storePath, "config.toml"))
		require.NoError(t, err)
		assert.Equal(t, uint64(100), cfg.Pruner.LedgerWindow)
		assert.True(t, cfg.Gateway.ReadOnly)
	})

	t.Run("config-update", func(t *testing.T) {
		rootCmd.SetArgs([]string{
			"config-update",
			"--node.store", storePath,
		})
		err := rootCmd.ExecuteContext(context.Background())
		require.NoError(t, err)

		// the custom values survive the update
		cfg, err := nodebuilder.LoadConfig(filepath.Join(storePath, "config.toml"))
		require.NoError(t, err)
		assert.Equal(t, uint64(100), cfg.Pruner.LedgerWindow)
	})

	t.Run("config-remove", func(t *testing.T) {
		rootCmd.SetArgs([]string{
			"config-remove",
			"--node.store", storePath,
		})
		err := rootCmd.ExecuteContext(context.Background())
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(storePath, "config.toml"))
		assert.True(t, os.IsNotExist(err))
		assert.False(t, nodebuilder.IsInit(storePath))
	})
}

func TestVersion(t *testing.T) {
	output := &bytes.Buffer{}
	rootCmd.SetOut(output)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, output.String(), "Golang version")
}
