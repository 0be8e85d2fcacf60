// Package charts builds the figure descriptions drawn by plotly.js in the dashboard page.
package charts

import (
	"github.com/pkg/errors"

	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/views"
)

type Kind string

const (
	KindTable     Kind = "table"
	KindMap       Kind = "map"
	KindPie       Kind = "pie"
	KindHeatmap   Kind = "heatmap"
	KindBar       Kind = "bar"
	KindBreakdown Kind = "breakdown"
	KindTreemap   Kind = "treemap"
	KindBox       Kind = "box"
	KindTrend     Kind = "trend"
	KindViolin    Kind = "violin"
)

// AllKinds lists the charts in page order.
var AllKinds = []Kind{
	KindTable, KindMap, KindPie, KindHeatmap, KindBar,
	KindBreakdown, KindTreemap, KindBox, KindTrend, KindViolin,
}

var ErrUnknownKind = errors.New("unknown chart")

func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownKind, "'%v'", s)
}

type Chart struct {
	Kind Kind `json:"kind"`
	// Title is the section heading shown above the figure.
	Title  string   `json:"title"`
	Table  *Table   `json:"table,omitempty"`
	Data   []*Trace `json:"data"`
	Layout *Layout  `json:"layout"`
}

type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type Options struct {
	MapStyle string
	MapZoom  float64
	SizeMax  float64
}

func DefaultOptions() *Options {
	return &Options{
		MapStyle: "carto-positron",
		MapZoom:  5,
		SizeMax:  30,
	}
}

// Input is what every chart is built from.
type Input struct {
	Encoding *views.Encoding
	Year     int
	// View holds the annotated rows of the selected year and areas.
	View *model.View
	// Trend holds the rows of all years for the selected areas. Only the selected count is used.
	Trend *model.View
}

type builder func(in *Input, opts *Options) *Chart

var builders = map[Kind]builder{
	KindTable:     buildTable,
	KindMap:       buildMap,
	KindPie:       buildPie,
	KindHeatmap:   buildHeatmap,
	KindBar:       buildBar,
	KindBreakdown: buildBreakdown,
	KindTreemap:   buildTreemap,
	KindBox:       buildBox,
	KindTrend:     buildTrend,
	KindViolin:    buildViolin,
}

// Build creates one chart. The view in the input must already be annotated.
func Build(kind Kind, in *Input, opts *Options) (*Chart, error) {
	b, ok := builders[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "'%v'", kind)
	}

	err := validate(in)
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = DefaultOptions()
	}

	return b(in, opts), nil
}

// BuildAll creates every chart, in page order.
func BuildAll(in *Input, opts *Options) ([]*Chart, error) {
	result := make([]*Chart, 0, len(AllKinds))

	for _, k := range AllKinds {
		c, err := Build(k, in, opts)
		if err != nil {
			return nil, err
		}

		result = append(result, c)
	}

	return result, nil
}

func validate(in *Input) error {
	if in.Encoding == nil {
		return errors.New("missing crime type")
	}
	if in.View == nil || !in.View.Annotated {
		return errors.New("charts need an annotated view")
	}
	if in.Trend == nil {
		return errors.New("charts need a trend view")
	}
	return nil
}
