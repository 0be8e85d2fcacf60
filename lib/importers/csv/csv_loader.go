package csv

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/bdcrime/lib/model"
)

// Load reads a crime statistics CSV file into a Dataset named after the file.
func Load(path string) (*model.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &model.LoadError{Source: path, Err: err}
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return Read(name, path, file)
}

// Read parses CSV contents. source is only used in error messages and stored on the Dataset.
func Read(name string, source string, r io.Reader) (*model.Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &model.LoadError{Source: source, Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, &model.LoadError{Source: source, Err: errors.Wrap(err, "invalid header")}
	}

	cols, columns, err := mapColumns(header)
	if err != nil {
		return nil, &model.LoadError{Source: source, Line: 1, Err: err}
	}

	var records []*model.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &model.LoadError{Source: source, Line: perr.StartLine, Err: perr.Err}
			}
			return nil, &model.LoadError{Source: source, Err: err}
		}

		line, _ := reader.FieldPos(0)

		record, err := parseRow(line, row, cols)
		if err != nil {
			return nil, &model.LoadError{Source: source, Line: line, Err: err}
		}

		records = append(records, record)
	}

	return model.NewDataset(name, source, columns, records), nil
}

type columnIndexes struct {
	year   int
	area   int
	lat    int
	lon    int
	counts [model.CrimeTypeCount]int
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

func mapColumns(header []string) (*columnIndexes, []string, error) {
	known := make(map[string]bool)
	for _, c := range model.RequiredColumns() {
		known[c] = true
	}

	positions := make(map[string]int)
	var columns []string
	for i, h := range header {
		h = normalizeHeader(h)

		if !known[h] {
			continue
		}
		if _, ok := positions[h]; ok {
			return nil, nil, errors.Errorf("duplicated column '%v'", h)
		}

		positions[h] = i
		columns = append(columns, h)
	}

	var missing []string
	for _, c := range model.RequiredColumns() {
		if _, ok := positions[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, nil, errors.Errorf("missing required columns: %v", strings.Join(missing, ", "))
	}

	result := &columnIndexes{
		year: positions[model.ColumnYear],
		area: positions[model.ColumnArea],
		lat:  positions[model.ColumnLat],
		lon:  positions[model.ColumnLon],
	}
	for _, t := range model.AllCrimeTypes {
		result.counts[t] = positions[t.String()]
	}

	return result, columns, nil
}

func parseRow(line int, row []string, cols *columnIndexes) (*model.Record, error) {
	year, err := parseWholeNumber(row[cols.year])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %v", model.ColumnYear)
	}

	area := strings.TrimSpace(row[cols.area])
	if area == "" {
		return nil, errors.Errorf("empty %v", model.ColumnArea)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(row[cols.lat]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %v", model.ColumnLat)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(row[cols.lon]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %v", model.ColumnLon)
	}

	record := model.NewRecord(line, year, area, lat, lon)

	for _, t := range model.AllCrimeTypes {
		raw := row[cols.counts[t]]

		v, err := parseWholeNumber(raw)
		if err != nil {
			record.SetInvalid(t, raw)
		} else {
			record.SetCount(t, v)
		}
	}

	return record, nil
}

// parseWholeNumber accepts integers and integral floats ("12", "12.0").
func parseWholeNumber(s string) (int, error) {
	s = strings.TrimSpace(s)

	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("'%v' is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errors.Errorf("'%v' is not a whole number", s)
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, errors.Errorf("'%v' is out of range", s)
	}

	return int(f), nil
}
