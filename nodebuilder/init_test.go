package nodebuilder

import (
	"os"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	require.NoError(t, Init(*cfg, dir))
	assert.True(t, IsInit(dir))

	// initializing twice keeps the store usable
	require.NoError(t, Init(*cfg, dir))
	assert.True(t, IsInit(dir))
}

func TestIsInitWithBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(configPath(dir))
	require.NoError(t, err)
	defer f.Close()
	//nolint:errcheck
	f.Write([]byte(`
		[Pruner]
		  BatchSize = "many"
    `))
	assert.False(t, IsInit(dir))
}

func TestIsInitForNonExistDir(t *testing.T) {
	path := "/invalid_path"
	assert.False(t, IsInit(path))
}

func TestInitErrForLockedDir(t *testing.T) {
	dir := t.TempDir()
	flk := flock.New(lockPath(dir))
	_, err := flk.TryLock()
	require.NoError(t, err)
	defer flk.Unlock() //nolint:errcheck

	cfg := DefaultConfig()
	require.ErrorIs(t, Init(*cfg, dir), ErrOpened)
}
