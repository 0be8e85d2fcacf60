// Package xlsx writes the current dashboard selection as a spreadsheet.
package xlsx

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/pescuma/bdcrime/lib/aggregates"
	"github.com/pescuma/bdcrime/lib/charts"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/utils"
)

const (
	sheetTotals = "Totals by Area"
	sheetTrend  = "Trend"
)

func DataSheetName(year int) string {
	return fmt.Sprintf("Crime Data %v", year)
}

// Export writes three sheets: the filtered rows, the totals by area and the trend of
// the selected crime type.
func Export(w io.Writer, in *charts.Input) error {
	f := excelize.NewFile()
	defer f.Close()

	err := writeData(f, in)
	if err != nil {
		return err
	}

	err = writeTotals(f, in)
	if err != nil {
		return err
	}

	err = writeTrend(f, in)
	if err != nil {
		return err
	}

	return f.Write(w)
}

func ExportFile(path string, in *charts.Input) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %v", path)
	}

	err = Export(file, in)
	if err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func writeData(f *excelize.File, in *charts.Input) error {
	sheet := DataSheetName(in.Year)

	err := f.SetSheetName("Sheet1", sheet)
	if err != nil {
		return err
	}

	columns := charts.TableColumns(in.View.Dataset)

	err = writeHeader(f, sheet, columns, 14)
	if err != nil {
		return err
	}

	for i, r := range in.View.Rows {
		err = writeRow(f, sheet, i+2, charts.TableRow(columns, r))
		if err != nil {
			return err
		}
	}

	return nil
}

func writeTotals(f *excelize.File, in *charts.Input) error {
	_, err := f.NewSheet(sheetTotals)
	if err != nil {
		return err
	}

	err = writeHeader(f, sheetTotals, []string{model.ColumnArea, model.ColumnTotalCrimes, in.Encoding.Column}, 20)
	if err != nil {
		return err
	}

	counts := aggregates.CountsByArea(in.View, in.Encoding.CrimeType)
	for i, at := range aggregates.TotalsByArea(in.View) {
		err = writeRow(f, sheetTotals, i+2, []any{at.Area, at.Total, counts[i].Total})
		if err != nil {
			return err
		}
	}

	return nil
}

func writeTrend(f *excelize.File, in *charts.Input) error {
	_, err := f.NewSheet(sheetTrend)
	if err != nil {
		return err
	}

	err = writeHeader(f, sheetTrend, []string{model.ColumnYear, model.ColumnArea, in.Encoding.Column}, 20)
	if err != nil {
		return err
	}

	for i, r := range in.Trend.Rows {
		err = writeRow(f, sheetTrend, i+2, []any{r.Year, r.Area, r.Counts[in.Encoding.CrimeType]})
		if err != nil {
			return err
		}
	}

	return nil
}

func writeHeader(f *excelize.File, sheet string, columns []string, width float64) error {
	err := writeRow(f, sheet, 1, lo.ToAnySlice(columns))
	if err != nil {
		return err
	}

	first, _ := excelize.ColumnNumberToName(1)
	last, _ := excelize.ColumnNumberToName(utils.Max(len(columns), 1))

	return f.SetColWidth(sheet, first, last, width)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}

		err = f.SetCellValue(sheet, cell, v)
		if err != nil {
			return err
		}
	}

	return nil
}
