// Package dashboard runs the select, filter, annotate and build pipeline for a selection.
package dashboard

import (
	"github.com/pescuma/bdcrime/lib/aggregates"
	"github.com/pescuma/bdcrime/lib/charts"
	"github.com/pescuma/bdcrime/lib/config"
	"github.com/pescuma/bdcrime/lib/filters"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/views"
)

// Dashboard is safe for concurrent use: the dataset is never modified.
type Dashboard struct {
	dataset *model.Dataset
	title   string
	footer  string
	charts  *charts.Options
}

// Controls describes the options of the selectors.
type Controls struct {
	Title      string   `json:"title"`
	Footer     string   `json:"footer"`
	Dataset    string   `json:"dataset"`
	Years      []int    `json:"years"`
	Areas      []string `json:"areas"`
	CrimeTypes []string `json:"crimeTypes"`
	Default    *State   `json:"default"`
}

// Page is everything shown for one selection.
type Page struct {
	State  *State          `json:"state"`
	Rows   int             `json:"rows"`
	Charts []*charts.Chart `json:"charts"`
}

func New(ds *model.Dataset, cfg *config.DashboardConfig) *Dashboard {
	if cfg == nil {
		cfg = &config.DefaultConfig().Dashboard
	}

	return &Dashboard{
		dataset: ds,
		title:   cfg.Title,
		footer:  cfg.Footer,
		charts: &charts.Options{
			MapStyle: cfg.MapStyle,
			MapZoom:  cfg.MapZoom,
			SizeMax:  cfg.SizeMax,
		},
	}
}

func (d *Dashboard) Dataset() *model.Dataset {
	return d.dataset
}

func (d *Dashboard) Controls() *Controls {
	return &Controls{
		Title:      d.title,
		Footer:     d.footer,
		Dataset:    d.dataset.Name,
		Years:      d.dataset.Years(),
		Areas:      d.dataset.Areas(),
		CrimeTypes: model.CrimeTypeNames(),
		Default:    d.DefaultState(),
	}
}

// DefaultState selects the first year, every area and the first crime type.
func (d *Dashboard) DefaultState() *State {
	result := &State{
		Areas:     d.dataset.Areas(),
		CrimeType: model.AllCrimeTypes[0].String(),
	}

	if years := d.dataset.Years(); len(years) > 0 {
		result.Year = years[0]
	}

	return result
}

// Input runs the data pipeline for a selection. The crime type is checked first, so
// an unknown one fails before any filtering is done.
func (d *Dashboard) Input(state *State) (*charts.Input, error) {
	enc, err := views.Select(state.CrimeType)
	if err != nil {
		return nil, err
	}

	view, err := filters.Filter(d.dataset, state.Year, state.Areas)
	if err != nil {
		return nil, err
	}

	view, err = aggregates.Annotate(view)
	if err != nil {
		return nil, err
	}

	trend, err := filters.FilterAreas(d.dataset, state.Areas)
	if err != nil {
		return nil, err
	}

	err = aggregates.CheckColumn(trend, enc.CrimeType)
	if err != nil {
		return nil, err
	}

	return &charts.Input{
		Encoding: enc,
		Year:     state.Year,
		View:     view,
		Trend:    trend,
	}, nil
}

func (d *Dashboard) Render(state *State) (*Page, error) {
	in, err := d.Input(state)
	if err != nil {
		return nil, err
	}

	cs, err := charts.BuildAll(in, d.charts)
	if err != nil {
		return nil, err
	}

	return &Page{
		State:  state.Clone(),
		Rows:   in.View.Len(),
		Charts: cs,
	}, nil
}

func (d *Dashboard) Chart(state *State, kind charts.Kind) (*charts.Chart, error) {
	in, err := d.Input(state)
	if err != nil {
		return nil, err
	}

	return charts.Build(kind, in, d.charts)
}

// Handle applies an event and renders the resulting state. On error the caller keeps
// the previous state.
func (d *Dashboard) Handle(state *State, event Event) (*State, *Page, error) {
	next := event.Apply(state)

	page, err := d.Render(next)
	if err != nil {
		return nil, nil, err
	}

	return next, page, nil
}
