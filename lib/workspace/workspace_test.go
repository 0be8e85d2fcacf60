package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/bdcrime/lib/config"
	"github.com/pescuma/bdcrime/lib/consoles"
	"github.com/pescuma/bdcrime/lib/importers/csv"
	"github.com/pescuma/bdcrime/lib/storages"
)

const contents = "" +
	"Year,Area,Dacoity,Robbery,Murder,Speedy Trial,Riot,Women & Child Repression,Kidnapping,Police Assault,Burglary,Theft,Other Cases,lat,lon\n" +
	"2015,Dhaka,1,2,0,0,0,0,0,0,0,0,0,23.8,90.4\n" +
	"2016,Sylhet,3,1,0,0,0,0,0,0,0,0,0,24.9,91.8\n"

func newWorkspace(t *testing.T) (*Workspace, string) {
	dir := t.TempDir()

	ws, err := NewWorkspaceWithConsole(filepath.Join(dir, ".bdcrime", "bdcrime.sqlite"), consoles.NewNullConsole())
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	file := filepath.Join(dir, "BDCrimes.csv")
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))

	return ws, file
}

func TestUnknownStorage(t *testing.T) {
	t.Parallel()

	_, err := NewWorkspaceWithConsole(filepath.Join(t.TempDir(), "ws.db"), consoles.NewNullConsole())
	assert.Error(t, err)
}

func TestLoadConfiguredFile(t *testing.T) {
	t.Parallel()

	ws, file := newWorkspace(t)
	require.NoError(t, ws.MergeConfig(&config.Config{Data: config.DataConfig{File: file}}))

	ds, err := ws.LoadDataset("")
	require.NoError(t, err)

	assert.Equal(t, "BDCrimes", ds.Name)
	assert.Equal(t, 2, ds.Len())
}

func TestLoadFileByName(t *testing.T) {
	t.Parallel()

	ws, file := newWorkspace(t)

	ds, err := ws.LoadDataset(file)
	require.NoError(t, err)

	assert.Equal(t, []int{2015, 2016}, ds.Years())
}

func TestImportedDatasetIsTheSame(t *testing.T) {
	t.Parallel()

	ws, file := newWorkspace(t)

	imported, err := ws.ImportCSV([]string{file}, &csv.Options{Name: "bd", SetDefault: true})
	require.NoError(t, err)
	require.Len(t, imported, 1)

	ds, err := ws.LoadDataset("")
	require.NoError(t, err)

	loaded, err := csv.Load(file)
	require.NoError(t, err)

	assert.Equal(t, "bd", ds.Name)
	assert.Equal(t, loaded.Columns(), ds.Columns())
	assert.Equal(t, loaded.Years(), ds.Years())
	assert.Equal(t, loaded.Areas(), ds.Areas())
	for i, r := range ds.Records() {
		assert.Equal(t, loaded.Records()[i].Counts, r.Counts)
		assert.Equal(t, loaded.Records()[i].Line, r.Line)
	}

	infos, err := ws.ListDatasets()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, 2, infos[0].Records)
}

func TestConfigDatasetWins(t *testing.T) {
	t.Parallel()

	ws, file := newWorkspace(t)

	_, err := ws.ImportCSV([]string{file}, &csv.Options{Name: "a", SetDefault: true})
	require.NoError(t, err)
	_, err = ws.ImportCSV([]string{file}, &csv.Options{Name: "b"})
	require.NoError(t, err)

	ds, err := ws.LoadDataset("")
	require.NoError(t, err)
	assert.Equal(t, "a", ds.Name)

	require.NoError(t, ws.MergeConfig(&config.Config{Data: config.DataConfig{Dataset: "b"}}))

	ds, err = ws.LoadDataset("")
	require.NoError(t, err)
	assert.Equal(t, "b", ds.Name)
}

func TestMissingDataset(t *testing.T) {
	t.Parallel()

	ws, _ := newWorkspace(t)

	_, err := ws.LoadDataset("nothing")
	assert.True(t, errors.Is(err, storages.ErrDatasetNotFound))
}

func TestGlobalConfig(t *testing.T) {
	t.Parallel()

	ws, _ := newWorkspace(t)

	changed, err := ws.SetGlobalConfig(storages.ConfigDefaultDataset, "bd")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = ws.SetGlobalConfig(storages.ConfigDefaultDataset, "bd")
	require.NoError(t, err)
	assert.False(t, changed)

	v, err := ws.GetGlobalConfig(storages.ConfigDefaultDataset)
	require.NoError(t, err)
	assert.Equal(t, "bd", v)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	ws, _ := newWorkspace(t)

	path := filepath.Join(t.TempDir(), "bdcrime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\ndashboard:\n  mapZoom: 6\n"), 0o600))

	require.NoError(t, ws.LoadConfigFile(path))

	assert.Equal(t, uint(8080), ws.Config().Server.Port)
	assert.Equal(t, 6.0, ws.Config().Dashboard.MapZoom)
	assert.Equal(t, "carto-positron", ws.Config().Dashboard.MapStyle)
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	ws, file := newWorkspace(t)

	d, err := ws.Dashboard(file)
	require.NoError(t, err)

	page, err := d.Render(d.DefaultState())
	require.NoError(t, err)
	assert.Equal(t, 1, page.Rows)
}
