package importers

import (
	"github.com/pescuma/bdcrime/lib/model"
)

// Importer reads datasets from an external source into the workspace storage.
type Importer interface {
	Import() ([]*model.Dataset, error)
}
