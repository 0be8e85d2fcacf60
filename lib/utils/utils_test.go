package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Max(3, 1, 2))
	assert.Equal(t, 5.0, Max(5.0))
}

func TestCoalesce(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", Coalesce("", "a", "b"))
	assert.Equal(t, "", Coalesce[string]())
}

func TestPathAbsHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	p, err := PathAbs("~/x/y")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x", "y"), p)
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	ok, err := FileExists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "b.csv"))
	require.NoError(t, err)
	assert.False(t, ok)
}
