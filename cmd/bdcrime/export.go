package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/pescuma/bdcrime/lib/charts"
	"github.com/pescuma/bdcrime/lib/exporters/xlsx"
	"github.com/pescuma/bdcrime/lib/renderers/png"
	"github.com/pescuma/bdcrime/lib/utils"
)

type ExportXlsxCmd struct {
	cmdWithSelection

	Output string `short:"o" help:"File to write. Default is <dataset>-<year>.xlsx." type:"path"`
}

func (c *ExportXlsxCmd) Run(ctx *context) error {
	dash, state, err := c.load(ctx)
	if err != nil {
		return err
	}

	in, err := dash.Input(state)
	if err != nil {
		return err
	}

	output := utils.Coalesce(c.Output, fmt.Sprintf("%v-%v.xlsx", dash.Dataset().Name, state.Year))

	ctx.ws.Console().Printf("Writing %v\n", output)

	return xlsx.ExportFile(output, in)
}

type ExportPngCmd struct {
	cmdWithSelection

	Kinds  []string `short:"k" help:"Charts to render: bar, breakdown, box, trend or map. Default is all of them."`
	Output string   `short:"o" default:"." help:"Folder to write the images to." type:"path"`
	Width  float64  `default:"10" help:"Image width in inches."`
	Height float64  `default:"6" help:"Image height in inches."`
}

func (c *ExportPngCmd) Run(ctx *context) error {
	dash, state, err := c.load(ctx)
	if err != nil {
		return err
	}

	kinds := png.Kinds
	if len(c.Kinds) > 0 {
		kinds = nil
		for _, k := range c.Kinds {
			kind, err := charts.ParseKind(k)
			if err != nil {
				return err
			}
			if !png.Supports(kind) {
				return fmt.Errorf("chart %v can not be exported as PNG", kind)
			}

			kinds = append(kinds, kind)
		}
	}

	err = os.MkdirAll(c.Output, 0o755)
	if err != nil {
		return err
	}

	opts := &png.Options{
		Width:  vg.Length(c.Width) * vg.Inch,
		Height: vg.Length(c.Height) * vg.Inch,
	}

	bar := utils.NewProgressBar(len(kinds))
	for _, kind := range kinds {
		chart, err := dash.Chart(state, kind)
		if err != nil {
			_ = bar.Clear()
			return err
		}

		err = writePng(filepath.Join(c.Output, fmt.Sprintf("%v-%v-%v.png", dash.Dataset().Name, state.Year, kind)), chart, opts)
		if err != nil {
			_ = bar.Clear()
			return err
		}

		_ = bar.Add(1)
	}

	ctx.ws.Console().Printf("Wrote %v images to %v\n", len(kinds), c.Output)

	return nil
}

func writePng(path string, chart *charts.Chart, opts *png.Options) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = png.Render(file, chart, opts)
	if err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
