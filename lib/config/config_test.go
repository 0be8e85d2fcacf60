package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "BDCrimes.csv", cfg.Data.File)
	assert.Equal(t, uint(2427), cfg.Server.Port)
	assert.Equal(t, 30.0, cfg.Dashboard.SizeMax)
}

func TestLoadFromFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bdcrime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\ndata:\n  file: other.csv\n"), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, uint(8080), cfg.Server.Port)
	assert.Equal(t, "other.csv", cfg.Data.File)
	assert.Equal(t, "carto-positron", cfg.Dashboard.MapStyle)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sub", "bdcrime.yaml")

	cfg := DefaultConfig()
	cfg.Dashboard.MapZoom = 7
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Data.File = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Dashboard.SizeMax = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Dashboard.MapZoom = 30
	assert.Error(t, cfg.Validate())
}

func TestMerge(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Merge(&Config{Server: ServerConfig{Port: 9000}, Data: DataConfig{Dataset: "bd"}})

	assert.Equal(t, uint(9000), cfg.Server.Port)
	assert.Equal(t, "bd", cfg.Data.Dataset)
	assert.Equal(t, "BDCrimes.csv", cfg.Data.File)

	cfg.Merge(nil)
	assert.Equal(t, uint(9000), cfg.Server.Port)
}
