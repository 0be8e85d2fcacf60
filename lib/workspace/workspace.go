package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/bdcrime/lib/config"
	"github.com/pescuma/bdcrime/lib/consoles"
	"github.com/pescuma/bdcrime/lib/dashboard"
	"github.com/pescuma/bdcrime/lib/importers"
	"github.com/pescuma/bdcrime/lib/importers/csv"
	"github.com/pescuma/bdcrime/lib/importers/mysql"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/storages"
	"github.com/pescuma/bdcrime/lib/storages/orm"
	"github.com/pescuma/bdcrime/lib/utils"
)

type Workspace struct {
	console consoles.Console
	storage storages.Storage
	config  *config.Config
}

func NewWorkspace(file string) (*Workspace, error) {
	return NewWorkspaceWithConsole(file, consoles.NewStdOutConsole())
}

func NewWorkspaceWithConsole(file string, console consoles.Console) (*Workspace, error) {
	if file == "" {
		if _, err := os.Stat("./.bdcrime"); err == nil {
			file = "./.bdcrime/bdcrime.sqlite"
		} else {
			file = "~/.bdcrime/bdcrime.sqlite"
		}
	}

	var storage storages.Storage
	var err error
	switch {
	case file == ":memory:":
		storage, err = orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(console, file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console: console,
		storage: storage,
		config:  config.DefaultConfig(),
	}, nil
}

func createWorkspaceDir(console consoles.Console, file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		console.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Config() *config.Config {
	return w.config
}

// LoadConfigFile reads a YAML file over the defaults.
func (w *Workspace) LoadConfigFile(path string) error {
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}

	err = cfg.Validate()
	if err != nil {
		return errors.Wrapf(err, "invalid config file %v", path)
	}

	w.config = cfg
	return nil
}

// MergeConfig overrides the current configuration with the non-zero fields of cfg.
func (w *Workspace) MergeConfig(cfg *config.Config) error {
	merged := *w.config
	merged.Merge(cfg)

	err := merged.Validate()
	if err != nil {
		return err
	}

	w.config = &merged
	return nil
}

func (w *Workspace) Execute(f func(consoles.Console, storages.Storage) error) error {
	return f(w.console, w.storage)
}

// SetGlobalConfig stores a key in the workspace. Returns false if it already had that value.
func (w *Workspace) SetGlobalConfig(key string, value string) (bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return false, err
	}

	if v, ok := (*cfg)[key]; ok && v == value {
		return false, nil
	}

	(*cfg)[key] = value

	err = w.storage.WriteConfig()
	if err != nil {
		return false, err
	}

	return true, nil
}

func (w *Workspace) GetGlobalConfig(key string) (string, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return "", err
	}

	return (*cfg)[key], nil
}

func (w *Workspace) ImportCSV(paths []string, opts *csv.Options) ([]*model.Dataset, error) {
	return w.runImporter("csv: ", csv.NewImporter(w.console, w.storage, paths, opts))
}

func (w *Workspace) ImportMySql(connectionString string, opts *mysql.Options) ([]*model.Dataset, error) {
	return w.runImporter("mysql: ", mysql.NewImporter(w.console, w.storage, connectionString, opts))
}

func (w *Workspace) runImporter(prefix string, importer importers.Importer) ([]*model.Dataset, error) {
	w.console.PushPrefix(prefix)
	defer w.console.PopPrefix()

	return importer.Import()
}

func (w *Workspace) ListDatasets() ([]*storages.DatasetInfo, error) {
	return w.storage.ListDatasets()
}

func (w *Workspace) DeleteDataset(name string) error {
	return w.storage.DeleteDataset(name)
}

// LoadDataset finds the dataset to show. name can be a CSV file or the name of an
// imported dataset. Without a name it uses, in order, the dataset from the config file,
// the workspace default dataset and the CSV file from the config file.
func (w *Workspace) LoadDataset(name string) (*model.Dataset, error) {
	if name != "" {
		return w.loadNamed(name)
	}

	if w.config.Data.Dataset != "" {
		return w.storage.LoadDataset(w.config.Data.Dataset)
	}

	def, err := w.GetGlobalConfig(storages.ConfigDefaultDataset)
	if err != nil {
		return nil, err
	}
	if def != "" {
		return w.storage.LoadDataset(def)
	}

	return w.loadFile(w.config.Data.File)
}

func (w *Workspace) loadNamed(name string) (*model.Dataset, error) {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		exists, err := utils.FileExists(name)
		if err != nil {
			return nil, err
		}
		if exists {
			return w.loadFile(name)
		}
	}

	return w.storage.LoadDataset(name)
}

func (w *Workspace) loadFile(path string) (*model.Dataset, error) {
	path, err := utils.PathAbs(path)
	if err != nil {
		return nil, err
	}

	w.console.Printf("Loading %v\n", path)

	return csv.Load(path)
}

func (w *Workspace) Dashboard(dataset string) (*dashboard.Dashboard, error) {
	ds, err := w.LoadDataset(dataset)
	if err != nil {
		return nil, err
	}

	return dashboard.New(ds, &w.config.Dashboard), nil
}
