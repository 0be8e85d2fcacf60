package main

import (
	"github.com/pescuma/bdcrime/lib/dashboard"
	"github.com/pescuma/bdcrime/lib/filters"
)

type cmdWithSelection struct {
	Dataset string   `short:"d" help:"Imported dataset name or CSV file. Default is taken from the configuration."`
	Year    int      `short:"y" help:"Year to show. Default is the first year of the dataset."`
	Area    []string `short:"a" sep:"none" help:"Areas to show, separated by commas, wildcards allowed. Default is all areas."`
	Crime   string   `short:"t" help:"Crime type used to color the charts." default:"Dacoity"`
}

func (c *cmdWithSelection) load(ctx *context) (*dashboard.Dashboard, *dashboard.State, error) {
	dash, err := ctx.ws.Dashboard(c.Dataset)
	if err != nil {
		return nil, nil, err
	}

	state := dash.DefaultState()
	state.CrimeType = c.Crime

	if c.Year != 0 {
		state.Year = c.Year
	}

	if len(c.Area) > 0 {
		state.Areas, err = filters.ParseAreas(dash.Dataset(), c.Area)
		if err != nil {
			return nil, nil, err
		}
	}

	return dash, state, nil
}
