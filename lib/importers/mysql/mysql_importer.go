package mysql

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/bdcrime/lib/consoles"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/storages"
)

type Options struct {
	// Table holding one row per year and area, with the same columns as the CSV file.
	Table string
	// Name of the dataset to create. Defaults to the table name.
	Name       string
	SetDefault bool
}

type Importer struct {
	console          consoles.Console
	storage          storages.Storage
	connectionString string
	opts             *Options
}

func NewImporter(console consoles.Console, storage storages.Storage, connectionString string, opts *Options) *Importer {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Table == "" {
		opts.Table = "crimes"
	}
	if opts.Name == "" {
		opts.Name = opts.Table
	}

	return &Importer{
		console:          console,
		storage:          storage,
		connectionString: connectionString,
		opts:             opts,
	}
}

func (i *Importer) Import() ([]*model.Dataset, error) {
	db, err := sql.Open("mysql", i.connectionString)
	if err != nil {
		return nil, errors.Wrapf(err, "error connecting to MySQL using %v", i.connectionString)
	}

	defer db.Close()

	db.SetConnMaxLifetime(time.Minute)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	i.console.Printf("Importing table %v...\n", i.opts.Table)

	records, err := i.importRows(db)
	if err != nil {
		return nil, err
	}

	ds := model.NewDataset(i.opts.Name, "mysql:"+i.opts.Table, model.RequiredColumns(), records)

	i.console.Printf("Imported %v rows (%v areas) into %v\n",
		humanize.Comma(int64(ds.Len())), len(ds.Areas()), ds.Name)

	i.console.Printf("Writing results...\n")

	err = i.storage.WriteDataset(ds)
	if err != nil {
		return nil, err
	}

	if i.opts.SetDefault {
		cfg, err := i.storage.LoadConfig()
		if err != nil {
			return nil, err
		}

		(*cfg)[storages.ConfigDefaultDataset] = ds.Name

		err = i.storage.WriteConfig()
		if err != nil {
			return nil, err
		}
	}

	return []*model.Dataset{ds}, nil
}

func (i *Importer) importRows(db *sql.DB) ([]*model.Record, error) {
	query := buildQuery(i.opts.Table)

	results, err := db.Query(query)
	if err != nil {
		return nil, errors.Wrapf(err, "error querying table %v", i.opts.Table)
	}

	defer results.Close()

	return readRecords("mysql:"+i.opts.Table, results)
}

// rows is the part of *sql.Rows the records are read from.
type rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func readRecords(source string, results rows) ([]*model.Record, error) {
	var records []*model.Record

	// Row numbers start after a virtual header, so they match the line of the same row in an exported CSV.
	line := 1
	for results.Next() {
		line++

		var year sql.NullInt64
		var area sql.NullString
		var lat, lon sql.NullFloat64
		var counts [model.CrimeTypeCount]sql.NullInt64

		dest := []any{&year, &area, &lat, &lon}
		for j := range counts {
			dest = append(dest, &counts[j])
		}

		err := results.Scan(dest...)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading %v", source)
		}

		if !year.Valid || !area.Valid || strings.TrimSpace(area.String) == "" || !lat.Valid || !lon.Valid {
			return nil, &model.LoadError{
				Source: source,
				Line:   line,
				Err:    errors.New("Year, Area, lat and lon can not be empty"),
			}
		}

		record := model.NewRecord(line, int(year.Int64), strings.TrimSpace(area.String), lat.Float64, lon.Float64)

		for _, t := range model.AllCrimeTypes {
			c := counts[t]
			if c.Valid {
				record.SetCount(t, int(c.Int64))
			} else {
				record.SetInvalid(t, "")
			}
		}

		records = append(records, record)
	}

	err := results.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", source)
	}

	return records, nil
}

func buildQuery(table string) string {
	columns := append([]string{model.ColumnYear, model.ColumnArea, model.ColumnLat, model.ColumnLon}, model.CrimeTypeNames()...)

	return fmt.Sprintf("select %v from %v order by %v, %v",
		strings.Join(lo.Map(columns, func(c string, _ int) string { return quote(c) }), ", "),
		quote(table),
		quote(model.ColumnYear), quote(model.ColumnArea))
}

func quote(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
