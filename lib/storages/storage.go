package storages

import (
	"time"

	"github.com/pkg/errors"

	"github.com/pescuma/bdcrime/lib/model"
)

type Storage interface {
	ListDatasets() ([]*DatasetInfo, error)
	LoadDataset(name string) (*model.Dataset, error)
	WriteDataset(ds *model.Dataset) error
	DeleteDataset(name string) error

	LoadConfig() (*map[string]string, error)
	WriteConfig() error

	Close() error
}

type DatasetInfo struct {
	ID       model.UUID
	Name     string
	Source   string
	Records  int
	Years    int
	Areas    int
	LoadedAt time.Time
}

const ConfigDefaultDataset = "dataset.default"

var ErrDatasetNotFound = errors.New("dataset not found")
