package charts

import (
	"fmt"
	"sort"

	"github.com/pescuma/bdcrime/lib/model"
)

type yearCount struct {
	year  int
	count int
}

func buildTrend(in *Input, _ *Options) *Chart {
	crime := in.Encoding.Column

	var areas []string
	byArea := make(map[string][]*yearCount)
	for _, r := range in.Trend.Rows {
		if _, ok := byArea[r.Area]; !ok {
			areas = append(areas, r.Area)
		}

		byArea[r.Area] = append(byArea[r.Area], &yearCount{r.Year, r.Counts[in.Encoding.CrimeType]})
	}

	traces := make([]*Trace, 0, len(areas))
	for _, area := range areas {
		points := byArea[area]
		sort.SliceStable(points, func(i, j int) bool { return points[i].year < points[j].year })

		trace := &Trace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: area,
		}
		for _, p := range points {
			trace.X = append(trace.X, p.year)
			trace.Y = append(trace.Y, p.count)
		}

		traces = append(traces, trace)
	}

	return &Chart{
		Kind:  KindTrend,
		Title: fmt.Sprintf("%v Trend Over the Years", crime),
		Data:  traces,
		Layout: &Layout{
			XAxis:  axis(model.ColumnYear),
			YAxis:  axis(crime),
			Legend: &Legend{Title: &Text{Text: model.ColumnArea}},
		},
	}
}
