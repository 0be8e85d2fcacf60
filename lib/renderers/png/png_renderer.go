// Package png draws a subset of the dashboard charts as static images.
package png

import (
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/aquilax/truncate"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pescuma/bdcrime/lib/charts"
)

// Kinds are the charts that can be rendered.
var Kinds = []charts.Kind{charts.KindBar, charts.KindBreakdown, charts.KindBox, charts.KindTrend, charts.KindMap}

var ErrUnsupported = errors.New("chart can not be rendered as PNG")

const maxLabelLen = 14

type Options struct {
	Width  vg.Length
	Height vg.Length
}

func DefaultOptions() *Options {
	return &Options{
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

func Supports(kind charts.Kind) bool {
	return lo.Contains(Kinds, kind)
}

// Render writes the chart as a PNG image.
func Render(w io.Writer, chart *charts.Chart, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	var p *plot.Plot
	var err error

	switch chart.Kind {
	case charts.KindBar:
		p, err = renderBar(chart)
	case charts.KindBreakdown:
		p, err = renderBreakdown(chart)
	case charts.KindBox:
		p, err = renderBox(chart)
	case charts.KindTrend:
		p, err = renderTrend(chart)
	case charts.KindMap:
		p, err = renderMap(chart)
	default:
		return errors.Wrapf(ErrUnsupported, "'%v'", chart.Kind)
	}
	if err != nil {
		return errors.Wrapf(err, "error rendering %v", chart.Kind)
	}

	wt, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return err
	}

	_, err = wt.WriteTo(w)
	return err
}

func newPlot(chart *charts.Chart) *plot.Plot {
	p := plot.New()
	p.Title.Text = chart.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)

	if chart.Layout.XAxis != nil && chart.Layout.XAxis.Title != nil {
		p.X.Label.Text = chart.Layout.XAxis.Title.Text
	}
	if chart.Layout.YAxis != nil && chart.Layout.YAxis.Title != nil {
		p.Y.Label.Text = chart.Layout.YAxis.Title.Text
	}

	p.Add(plotter.NewGrid())

	return p
}

func nominalX(p *plot.Plot, labels []any) {
	p.NominalX(lo.Map(labels, func(l any, _ int) string {
		s, _ := l.(string)
		return truncate.Truncate(s, maxLabelLen, "…", truncate.PositionEnd)
	})...)

	if len(labels) > 6 {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}
}

func values(vs []any) plotter.Values {
	result := make(plotter.Values, 0, len(vs))
	for _, v := range vs {
		result = append(result, toFloat(v))
	}
	return result
}

func toFloat(v any) float64 {
	switch v := v.(type) {
	case int:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

func renderBar(chart *charts.Chart) (*plot.Plot, error) {
	p := newPlot(chart)

	trace := chart.Data[0]
	if len(trace.Y) == 0 {
		return p, nil
	}

	vs := values(trace.Y)
	max := lo.Max(vs)

	// One bar chart per value so every bar gets its own colour.
	for i, v := range vs {
		single := make(plotter.Values, len(vs))
		single[i] = v

		bars, err := plotter.NewBarChart(single, vg.Points(20))
		if err != nil {
			return nil, err
		}

		bars.Color = charts.SeverityScale.At(normalize(v, max))
		bars.LineStyle.Width = vg.Length(0)

		p.Add(bars)
	}

	nominalX(p, trace.X)

	return p, nil
}

func renderBreakdown(chart *charts.Chart) (*plot.Plot, error) {
	p := newPlot(chart)

	if len(chart.Data) == 0 || len(chart.Data[0].Y) == 0 {
		return p, nil
	}

	var below *plotter.BarChart
	for i, trace := range chart.Data {
		bars, err := plotter.NewBarChart(values(trace.Y), vg.Points(20))
		if err != nil {
			return nil, err
		}

		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		if below != nil {
			bars.StackOn(below)
		}

		p.Add(bars)
		p.Legend.Add(trace.Name, bars)

		below = bars
	}

	p.Legend.Top = true
	nominalX(p, chart.Data[0].X)

	return p, nil
}

func renderBox(chart *charts.Chart) (*plot.Plot, error) {
	p := newPlot(chart)

	trace := chart.Data[0]
	if len(trace.Y) == 0 {
		return p, nil
	}

	box, err := plotter.NewBoxPlot(vg.Points(40), 0, values(trace.Y))
	if err != nil {
		return nil, err
	}

	p.Add(box)
	p.NominalX(trace.Name)

	return p, nil
}

func renderTrend(chart *charts.Chart) (*plot.Plot, error) {
	p := newPlot(chart)

	for i, trace := range chart.Data {
		xys := make(plotter.XYs, len(trace.X))
		for j := range trace.X {
			xys[j].X = toFloat(trace.X[j])
			xys[j].Y = toFloat(trace.Y[j])
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}

		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = draw.CircleGlyph{}

		p.Add(line, points)
		p.Legend.Add(truncate.Truncate(trace.Name, maxLabelLen, "…", truncate.PositionEnd), line, points)
	}

	p.X.Tick.Marker = plot.TickerFunc(yearTicks)

	return p, nil
}

func yearTicks(min, max float64) []plot.Tick {
	var result []plot.Tick
	for y := math.Ceil(min); y <= max; y++ {
		result = append(result, plot.Tick{Value: y, Label: strconv.Itoa(int(y))})
	}
	return result
}

func renderMap(chart *charts.Chart) (*plot.Plot, error) {
	p := newPlot(chart)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	trace := chart.Data[0]
	if len(trace.Lat) == 0 {
		return p, nil
	}

	colors, _ := trace.Marker.Color.([]int)
	maxSize := float64(lo.Max(trace.Marker.Size))
	maxColor := lo.Max(colors)

	xys := make(plotter.XYs, len(trace.Lat))
	for i := range trace.Lat {
		xys[i].X = trace.Lon[i]
		xys[i].Y = trace.Lat[i]
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}

	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		radius := vg.Points(3)
		if maxSize > 0 {
			// Marker area is proportional to the size value, as in the interactive map.
			radius = vg.Points(3 + 15*math.Sqrt(float64(trace.Marker.Size[i])/maxSize))
		}

		c := color.Color(color.Gray{Y: 128})
		if i < len(colors) {
			c = charts.SeverityScale.At(normalize(float64(colors[i]), float64(maxColor)))
		}

		return draw.GlyphStyle{Color: c, Radius: radius, Shape: draw.CircleGlyph{}}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: xys,
		Labels: lo.Map(trace.HoverText, func(s string, _ int) string {
			return truncate.Truncate(s, maxLabelLen, "…", truncate.PositionEnd)
		}),
	})
	if err != nil {
		return nil, err
	}

	p.Add(scatter, labels)

	return p, nil
}

func normalize(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}
