package charts

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/pescuma/bdcrime/lib/model"
)

var hiddenTableColumns = []string{model.ColumnYear, model.ColumnLat, model.ColumnLon}

// TableColumns are the dataset columns shown in the data table, followed by Total Crimes.
func TableColumns(ds *model.Dataset) []string {
	columns := lo.Without(ds.Columns(), hiddenTableColumns...)
	return append(columns, model.ColumnTotalCrimes)
}

// TableRow returns the values of a row in the same order as TableColumns.
func TableRow(columns []string, row *model.Row) []any {
	return lo.Map(columns, func(c string, _ int) any {
		switch c {
		case model.ColumnYear:
			return row.Year
		case model.ColumnArea:
			return row.Area
		case model.ColumnLat:
			return row.Lat
		case model.ColumnLon:
			return row.Lon
		case model.ColumnTotalCrimes:
			return row.TotalCrimes
		default:
			t, err := model.ParseCrimeType(c)
			if err != nil {
				return nil
			}
			return row.Counts[t]
		}
	})
}

func buildTable(in *Input, _ *Options) *Chart {
	columns := TableColumns(in.View.Dataset)

	rows := make([][]any, 0, in.View.Len())
	for _, r := range in.View.Rows {
		rows = append(rows, TableRow(columns, r))
	}

	return &Chart{
		Kind:  KindTable,
		Title: fmt.Sprintf("Crime Data for %v", in.Year),
		Table: &Table{
			Columns: columns,
			Rows:    rows,
		},
		Data:   []*Trace{},
		Layout: &Layout{},
	}
}
