package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	settings, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", settings.Log.Level)
	assert.Equal(t, DefaultTimeLayout, settings.Log.Layout)
	assert.True(t, settings.Log.Colored)
	assert.False(t, settings.Log.JSON)
	assert.Equal(t, "buntdb", settings.Storage.Driver)
	assert.Equal(t, DefaultStoragePath, settings.Storage.Path)
	assert.Empty(t, settings.Feed.Timeframe)
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TAFX_LOG_LEVEL", "debug")
	t.Setenv("TAFX_LOG_JSON", "true")
	t.Setenv("TAFX_STORAGE_DRIVER", "memory")
	t.Setenv("TAFX_FEED_HEIKIN_ASHI", "1")
	t.Setenv("TAFX_BINANCE_API_KEY", "key")

	settings, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", settings.Log.Level)
	assert.True(t, settings.Log.JSON)
	assert.Equal(t, "memory", settings.Storage.Driver)
	assert.True(t, settings.Feed.HeikinAshi)
	assert.Equal(t, "key", settings.Binance.APIKey)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
  colored: false
storage:
  path: /tmp/results.db
feed:
  timeframe: 4h
`), 0o600))

	settings, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "warn", settings.Log.Level)
	assert.False(t, settings.Log.Colored)
	assert.Equal(t, "/tmp/results.db", settings.Storage.Path)
	assert.Equal(t, "4h", settings.Feed.Timeframe)
	assert.Equal(t, "buntdb", settings.Storage.Driver)

	_, err = Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
