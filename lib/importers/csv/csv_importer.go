package csv

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/bdcrime/lib/consoles"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/storages"
	"github.com/pescuma/bdcrime/lib/utils"
)

type Options struct {
	// Name overrides the dataset name. Only valid when a single file is imported.
	Name string
	// SetDefault makes the (last) imported dataset the one served by default.
	SetDefault bool
}

type Importer struct {
	console consoles.Console
	storage storages.Storage
	paths   []string
	opts    *Options
}

func NewImporter(console consoles.Console, storage storages.Storage, paths []string, opts *Options) *Importer {
	if opts == nil {
		opts = &Options{}
	}

	return &Importer{
		console: console,
		storage: storage,
		paths:   paths,
		opts:    opts,
	}
}

func (i *Importer) Import() ([]*model.Dataset, error) {
	files, err := i.findFiles()
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no CSV files found in %v", i.paths)
	}
	if i.opts.Name != "" && len(files) > 1 {
		return nil, errors.Errorf("dataset name can only be used when importing one file (found %v)", len(files))
	}

	i.console.Printf("Importing %v files...\n", len(files))

	var result []*model.Dataset

	bar := utils.NewProgressBar(len(files))
	for _, file := range files {
		ds, err := Load(file)
		if err != nil {
			_ = bar.Clear()
			return nil, err
		}

		if i.opts.Name != "" {
			ds = model.NewDatasetEx(&ds.ID, i.opts.Name, ds.Source, ds.Columns(), ds.Records())
		}

		err = i.storage.WriteDataset(ds)
		if err != nil {
			_ = bar.Clear()
			return nil, err
		}

		result = append(result, ds)

		_ = bar.Add(1)
	}

	for _, ds := range result {
		i.console.Printf("Imported %v: %v records, %v areas, years %v\n", ds.Name, ds.Len(), len(ds.Areas()), formatYears(ds.Years()))
	}

	if i.opts.SetDefault {
		cfg, err := i.storage.LoadConfig()
		if err != nil {
			return nil, err
		}

		(*cfg)[storages.ConfigDefaultDataset] = result[len(result)-1].Name

		err = i.storage.WriteConfig()
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (i *Importer) findFiles() ([]string, error) {
	var result []string

	for _, path := range i.paths {
		matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid path: %v", path)
		}

		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, err
			}

			result = append(result, abs)
		}
	}

	return lo.Uniq(result), nil
}

func formatYears(years []int) string {
	switch len(years) {
	case 0:
		return "-"
	case 1:
		return fmt.Sprintf("%v", years[0])
	default:
		return fmt.Sprintf("%v-%v", years[0], years[len(years)-1])
	}
}
