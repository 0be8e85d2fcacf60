package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/bdcrime/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store imported datasets. Default is ./.bdcrime or ~/.bdcrime if that does not exist." type:"path"`
	Config    string `short:"c" help:"YAML file with the dashboard configuration." type:"existingfile"`

	Serve ServeCmd `cmd:"" help:"Start the dashboard web server."`
	Show  ShowCmd  `cmd:"" help:"Print the rows and totals of a selection."`

	Datasets struct {
		List   DatasetsListCmd   `cmd:"" default:"1" help:"List imported datasets."`
		Delete DatasetsDeleteCmd `cmd:"" help:"Delete an imported dataset."`
	} `cmd:""`

	Import struct {
		Csv   ImportCsvCmd   `cmd:"" help:"Import crime statistics from CSV files."`
		Mysql ImportMySqlCmd `cmd:"" help:"Import crime statistics from a MySQL table."`
	} `cmd:""`

	Export struct {
		Xlsx ExportXlsxCmd `cmd:"" help:"Export a selection as a spreadsheet."`
		Png  ExportPngCmd  `cmd:"" help:"Render charts of a selection as PNG images."`
	} `cmd:""`

	ConfigCmd struct {
		Set ConfigSetCmd `cmd:"" help:"Set workspace configuration parameters."`
	} `cmd:"" name:"config"`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Workspace)
	ctx.FatalIfErrorf(err)

	defer ws.Close()

	if cli.Config != "" {
		err = ws.LoadConfigFile(cli.Config)
		ctx.FatalIfErrorf(err)
	}

	err = ctx.Run(&context{
		ws: ws,
	})
	ctx.FatalIfErrorf(err)
}
