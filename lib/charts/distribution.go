package charts

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/pescuma/bdcrime/lib/aggregates"
	"github.com/pescuma/bdcrime/lib/model"
)

func buildPie(in *Input, _ *Options) *Chart {
	crime := in.Encoding.Column
	byArea := aggregates.CountsByArea(in.View, in.Encoding.CrimeType)

	colors := make([]string, 0, len(byArea))
	for i := range byArea {
		colors = append(colors, Reds[i%len(Reds)])
	}

	trace := &Trace{
		Type:   "pie",
		Labels: lo.Map(byArea, func(a *aggregates.AreaTotal, _ int) string { return a.Area }),
		Values: lo.Map(byArea, func(a *aggregates.AreaTotal, _ int) int { return a.Total }),
		Marker: &Marker{
			Colors: colors,
		},
	}

	return &Chart{
		Kind:  KindPie,
		Title: fmt.Sprintf("%v Contribution by Area", crime),
		Data:  []*Trace{trace},
		Layout: &Layout{
			Title:  &Text{Text: fmt.Sprintf("Distribution of %v in %v", crime, in.Year)},
			Legend: &Legend{Title: &Text{Text: model.ColumnArea}},
		},
	}
}

func buildBox(in *Input, _ *Options) *Chart {
	crime := in.Encoding.Column

	trace := &Trace{
		Type:      "box",
		Name:      crime,
		Y:         toAny(in.Encoding.Values(in.View)),
		Text:      areasOf(in.View),
		BoxPoints: "all",
	}

	return &Chart{
		Kind:  KindBox,
		Title: fmt.Sprintf("Distribution of %v Across Areas", crime),
		Data:  []*Trace{trace},
		Layout: &Layout{
			YAxis: axis(in.Encoding.AxisLabel),
		},
	}
}

func buildViolin(in *Input, _ *Options) *Chart {
	crime := in.Encoding.Column

	trace := &Trace{
		Type:   "violin",
		Name:   crime,
		X:      toAny(areasOf(in.View)),
		Y:      toAny(in.Encoding.Values(in.View)),
		Box:    &Visible{Visible: true},
		Points: "all",
	}

	return &Chart{
		Kind:  KindViolin,
		Title: fmt.Sprintf("Distribution of %v Across Areas", crime),
		Data:  []*Trace{trace},
		Layout: &Layout{
			XAxis: axis(model.ColumnArea),
			YAxis: axis(crime),
		},
	}
}

func areasOf(view *model.View) []string {
	return lo.Map(view.Rows, func(r *model.Row, _ int) string { return r.Area })
}

func toAny[T any](vs []T) []any {
	return lo.Map(vs, func(v T, _ int) any { return v })
}
