package charts

import (
	"github.com/samber/lo"

	"github.com/pescuma/bdcrime/lib/aggregates"
	"github.com/pescuma/bdcrime/lib/model"
)

const (
	labelCrimeCount = "Crime Count"
	labelCrimeType  = "Crime Type"
)

func buildHeatmap(in *Input, _ *Options) *Chart {
	z := make([][]int, 0, in.View.Len())
	for _, r := range in.View.Rows {
		z = append(z, append([]int(nil), r.Counts[:]...))
	}

	trace := &Trace{
		Type:       "heatmap",
		X:          toAny(model.CrimeTypeNames()),
		Y:          toAny(areasOf(in.View)),
		Z:          z,
		ColorScale: SeverityScale,
		ColorBar:   colorBar(labelCrimeCount),
	}

	return &Chart{
		Kind:  KindHeatmap,
		Title: "Crime Type Distribution by Area",
		Data:  []*Trace{trace},
		Layout: &Layout{
			YAxis: &Axis{Title: &Text{Text: model.ColumnArea}, Type: "category"},
		},
	}
}

func buildBar(in *Input, _ *Options) *Chart {
	totals := in.View.Totals()

	trace := &Trace{
		Type: "bar",
		X:    toAny(areasOf(in.View)),
		Y:    toAny(totals),
		Marker: &Marker{
			Color:      totals,
			ColorScale: SeverityScale,
			ShowScale:  true,
			ColorBar:   colorBar(model.ColumnTotalCrimes),
		},
	}

	return &Chart{
		Kind:  KindBar,
		Title: "Total Crimes by Area",
		Data:  []*Trace{trace},
		Layout: &Layout{
			XAxis: axis(model.ColumnArea),
			YAxis: axis(model.ColumnTotalCrimes),
		},
	}
}

func buildBreakdown(in *Input, _ *Options) *Chart {
	cells := aggregates.Melt(in.View)

	traces := make([]*Trace, 0, model.CrimeTypeCount)
	for _, t := range model.AllCrimeTypes {
		ofType := lo.Filter(cells, func(c *aggregates.Cell, _ int) bool { return c.CrimeType == t })

		traces = append(traces, &Trace{
			Type: "bar",
			Name: t.String(),
			X:    lo.Map(ofType, func(c *aggregates.Cell, _ int) any { return c.Area }),
			Y:    lo.Map(ofType, func(c *aggregates.Cell, _ int) any { return c.Count }),
		})
	}

	return &Chart{
		Kind:  KindBreakdown,
		Title: "Crime Type Breakdown by Area",
		Data:  traces,
		Layout: &Layout{
			BarMode: "relative",
			XAxis:   axis(model.ColumnArea),
			YAxis:   axis(labelCrimeCount),
			Legend:  &Legend{Title: &Text{Text: labelCrimeType}},
		},
	}
}

func buildTreemap(in *Input, _ *Options) *Chart {
	trace := &Trace{
		Type:         "treemap",
		BranchValues: "total",
	}

	totals := aggregates.TotalsByArea(in.View)

	for _, at := range totals {
		trace.IDs = append(trace.IDs, at.Area)
		trace.Labels = append(trace.Labels, at.Area)
		trace.Parents = append(trace.Parents, "")
		trace.Values = append(trace.Values, at.Total)
	}

	byType := make(map[string]*[model.CrimeTypeCount]int)
	for _, c := range aggregates.Melt(in.View) {
		counts, ok := byType[c.Area]
		if !ok {
			counts = &[model.CrimeTypeCount]int{}
			byType[c.Area] = counts
		}

		counts[c.CrimeType] += c.Count
	}

	for _, at := range totals {
		for _, t := range model.AllCrimeTypes {
			trace.IDs = append(trace.IDs, at.Area+"/"+t.String())
			trace.Labels = append(trace.Labels, t.String())
			trace.Parents = append(trace.Parents, at.Area)
			trace.Values = append(trace.Values, byType[at.Area][t])
		}
	}

	return &Chart{
		Kind:   KindTreemap,
		Title:  "Treemap of Crime Composition by Area",
		Data:   []*Trace{trace},
		Layout: &Layout{Margin: &Margin{T: 30}},
	}
}
