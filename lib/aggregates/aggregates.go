package aggregates

import (
	"math"
	"strconv"

	"github.com/samber/lo"

	"github.com/pescuma/bdcrime/lib/model"
)

// Annotate returns a copy of the view whose rows carry the sum of all crime counts.
// It fails on the first row with a missing, non-numeric or negative count, or whose total overflows.
func Annotate(view *model.View) (*model.View, error) {
	rows := make([]*model.Row, 0, len(view.Rows))

	for _, r := range view.Rows {
		total := 0

		for _, t := range model.AllCrimeTypes {
			v, ok := r.Count(t)
			if !ok {
				return nil, newAggregationError(r.Record, t, r.Invalid[t])
			}
			if v < 0 {
				return nil, newAggregationError(r.Record, t, strconv.Itoa(v))
			}
			if total > math.MaxInt-v {
				return nil, newAggregationError(r.Record, t, strconv.Itoa(v))
			}

			total += v
		}

		rows = append(rows, &model.Row{Record: r.Record, TotalCrimes: total})
	}

	result := *view
	result.Areas = append([]string(nil), view.Areas...)
	result.Rows = rows
	result.Annotated = true

	return &result, nil
}

// CheckColumn fails on the first row whose count for t is missing, non-numeric or negative.
// Other crime types are not looked at.
func CheckColumn(view *model.View, t model.CrimeType) error {
	for _, r := range view.Rows {
		v, ok := r.Count(t)
		if !ok {
			return newAggregationError(r.Record, t, r.Invalid[t])
		}
		if v < 0 {
			return newAggregationError(r.Record, t, strconv.Itoa(v))
		}
	}

	return nil
}

func newAggregationError(r *model.Record, t model.CrimeType, value string) *model.AggregationError {
	return &model.AggregationError{
		Line:      r.Line,
		Year:      r.Year,
		Area:      r.Area,
		CrimeType: t,
		Value:     value,
	}
}

// Cell is one count of the long format table.
type Cell struct {
	Area      string
	Year      int
	CrimeType model.CrimeType
	Count     int
}

// Melt unpivots the crime counts: one cell per row and crime type, rows first.
func Melt(view *model.View) []*Cell {
	result := make([]*Cell, 0, len(view.Rows)*model.CrimeTypeCount)

	for _, r := range view.Rows {
		for _, t := range model.AllCrimeTypes {
			result = append(result, &Cell{
				Area:      r.Area,
				Year:      r.Year,
				CrimeType: t,
				Count:     r.Counts[t],
			})
		}
	}

	return result
}

type AreaTotal struct {
	Area  string
	Total int
}

// TotalsByArea sums Total Crimes per area, in order of first appearance.
func TotalsByArea(view *model.View) []*AreaTotal {
	return sumByArea(view, func(r *model.Row) int { return r.TotalCrimes })
}

// CountsByArea sums one crime type per area, in order of first appearance.
func CountsByArea(view *model.View, t model.CrimeType) []*AreaTotal {
	return sumByArea(view, func(r *model.Row) int { return r.Counts[t] })
}

func sumByArea(view *model.View, value func(*model.Row) int) []*AreaTotal {
	byArea := make(map[string]*AreaTotal)
	var result []*AreaTotal

	for _, r := range view.Rows {
		at, ok := byArea[r.Area]
		if !ok {
			at = &AreaTotal{Area: r.Area}
			byArea[r.Area] = at
			result = append(result, at)
		}

		at.Total += value(r)
	}

	return result
}

// Max returns the largest Total Crimes of the view, or 0 when it is empty.
func Max(view *model.View) int {
	return lo.Max(view.Totals())
}
