package main

import (
	"github.com/pescuma/bdcrime/lib/importers/csv"
	"github.com/pescuma/bdcrime/lib/importers/mysql"
)

type ImportCsvCmd struct {
	Paths   []string `arg:"" help:"CSV files to import. Globs are accepted, including **."`
	Name    string   `short:"n" help:"Name of the dataset. Only valid for one file. Default is the file name."`
	Default bool     `help:"Make the imported dataset the one served by default."`
}

func (c *ImportCsvCmd) Run(ctx *context) error {
	_, err := ctx.ws.ImportCSV(c.Paths, &csv.Options{
		Name:       c.Name,
		SetDefault: c.Default,
	})
	return err
}

type ImportMySqlCmd struct {
	ConnectionString string `arg:"" help:"MySQL connection string, like user:password@tcp(host:3306)/database."`
	Table            string `default:"crimes" help:"Table with one row per year and area."`
	Name             string `short:"n" help:"Name of the dataset. Default is the table name."`
	Default          bool   `help:"Make the imported dataset the one served by default."`
}

func (c *ImportMySqlCmd) Run(ctx *context) error {
	_, err := ctx.ws.ImportMySql(c.ConnectionString, &mysql.Options{
		Table:      c.Table,
		Name:       c.Name,
		SetDefault: c.Default,
	})
	return err
}
