package aggregates

import (
	"math"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/pkg/errors"

	"github.com/pescuma/bdcrime/lib/model"
)

func TestAggregates(t *testing.T) {
	testgroup.RunInParallel(t, &AggregateTests{})
}

type AggregateTests struct{}

func newView(records ...*model.Record) *model.View {
	ds := model.NewDataset("test", "test.csv", model.RequiredColumns(), records)
	year := 2015
	return model.NewView(ds, &year, ds.Areas(), ds.Records())
}

func newRecord(line int, area string, counts map[model.CrimeType]int) *model.Record {
	r := model.NewRecord(line, 2015, area, 23.8, 90.4)
	for t, c := range counts {
		r.SetCount(t, c)
	}
	return r
}

func (g *AggregateTests) SumsAllCounts(t *testgroup.T) {
	view := newView(newRecord(2, "Dhaka", map[model.CrimeType]int{model.Dacoity: 2, model.Robbery: 3, model.Murder: 1}))

	annotated, err := Annotate(view)
	t.Require.NoError(err)

	t.True(annotated.Annotated)
	t.Equal([]int{6}, annotated.Totals())
}

func (g *AggregateTests) DoesNotChangeInput(t *testgroup.T) {
	view := newView(newRecord(2, "Dhaka", map[model.CrimeType]int{model.Theft: 4}))

	annotated, err := Annotate(view)
	t.Require.NoError(err)

	t.False(view.Annotated)
	t.Equal([]int{0}, view.Totals())
	t.Equal([]int{4}, annotated.Totals())
	t.Same(view.Rows[0].Record, annotated.Rows[0].Record)
}

func (g *AggregateTests) EmptyView(t *testgroup.T) {
	annotated, err := Annotate(newView())
	t.Require.NoError(err)

	t.True(annotated.IsEmpty())
	t.Equal(0, Max(annotated))
	t.Empty(TotalsByArea(annotated))
}

func (g *AggregateTests) InvalidCount(t *testgroup.T) {
	r := newRecord(7, "Sylhet", nil)
	r.SetInvalid(model.Kidnapping, "n/a")

	_, err := Annotate(newView(newRecord(2, "Dhaka", nil), r))

	var aerr *model.AggregationError
	t.Require.True(errors.As(err, &aerr))
	t.Equal(7, aerr.Line)
	t.Equal("Sylhet", aerr.Area)
	t.Equal(2015, aerr.Year)
	t.Equal(model.Kidnapping, aerr.CrimeType)
	t.Equal("n/a", aerr.Value)
}

func (g *AggregateTests) EmptyCount(t *testgroup.T) {
	r := newRecord(3, "Dhaka", nil)
	r.SetInvalid(model.Theft, "")

	_, err := Annotate(newView(r))

	var aerr *model.AggregationError
	t.Require.True(errors.As(err, &aerr))
	t.Equal(model.Theft, aerr.CrimeType)
}

func (g *AggregateTests) NegativeCount(t *testgroup.T) {
	_, err := Annotate(newView(newRecord(2, "Dhaka", map[model.CrimeType]int{model.Riot: -1})))

	var aerr *model.AggregationError
	t.Require.True(errors.As(err, &aerr))
	t.Equal("-1", aerr.Value)
	t.Equal(model.Riot, aerr.CrimeType)
}

func (g *AggregateTests) TotalOverflow(t *testgroup.T) {
	r := newRecord(4, "Dhaka", map[model.CrimeType]int{model.Dacoity: math.MaxInt, model.Robbery: 1})

	_, err := Annotate(newView(r))

	var aerr *model.AggregationError
	t.Require.True(errors.As(err, &aerr))
	t.Equal(4, aerr.Line)
	t.Equal(model.Robbery, aerr.CrimeType)
	t.Equal("1", aerr.Value)
}

func (g *AggregateTests) LargestTotal(t *testgroup.T) {
	r := newRecord(4, "Dhaka", map[model.CrimeType]int{model.Dacoity: math.MaxInt - 1, model.Robbery: 1})

	annotated, err := Annotate(newView(r))
	t.Require.NoError(err)

	t.Equal([]int{math.MaxInt}, annotated.Totals())
}

func (g *AggregateTests) CheckColumnIgnoresOtherTypes(t *testgroup.T) {
	r := newRecord(5, "Dhaka", map[model.CrimeType]int{model.Robbery: 2})
	r.SetInvalid(model.Theft, "x")
	view := newView(r)

	t.NoError(CheckColumn(view, model.Robbery))

	var aerr *model.AggregationError
	t.Require.True(errors.As(CheckColumn(view, model.Theft), &aerr))
	t.Equal(5, aerr.Line)
	t.Equal("x", aerr.Value)
}

func (g *AggregateTests) CheckColumnNegative(t *testgroup.T) {
	view := newView(newRecord(2, "Dhaka", map[model.CrimeType]int{model.Riot: -3}))

	var aerr *model.AggregationError
	t.Require.True(errors.As(CheckColumn(view, model.Riot), &aerr))
	t.Equal("-3", aerr.Value)
	t.NoError(CheckColumn(view, model.Dacoity))
}

func (g *AggregateTests) MeltIsRowMajor(t *testgroup.T) {
	view := newView(
		newRecord(2, "Dhaka", map[model.CrimeType]int{model.Dacoity: 1}),
		newRecord(3, "Sylhet", map[model.CrimeType]int{model.OtherCases: 9}),
	)

	cells := Melt(view)

	t.Require.Len(cells, 2*model.CrimeTypeCount)
	t.Equal(&Cell{Area: "Dhaka", Year: 2015, CrimeType: model.Dacoity, Count: 1}, cells[0])
	t.Equal(&Cell{Area: "Dhaka", Year: 2015, CrimeType: model.OtherCases, Count: 0}, cells[model.CrimeTypeCount-1])
	t.Equal(&Cell{Area: "Sylhet", Year: 2015, CrimeType: model.Dacoity, Count: 0}, cells[model.CrimeTypeCount])
	t.Equal(&Cell{Area: "Sylhet", Year: 2015, CrimeType: model.OtherCases, Count: 9}, cells[len(cells)-1])
}

func (g *AggregateTests) ByArea(t *testgroup.T) {
	annotated, err := Annotate(newView(
		newRecord(2, "Dhaka", map[model.CrimeType]int{model.Dacoity: 1, model.Murder: 2}),
		newRecord(3, "Sylhet", map[model.CrimeType]int{model.Dacoity: 5}),
		newRecord(4, "Dhaka", map[model.CrimeType]int{model.Dacoity: 4}),
	))
	t.Require.NoError(err)

	t.Equal([]*AreaTotal{{"Dhaka", 7}, {"Sylhet", 5}}, TotalsByArea(annotated))
	t.Equal([]*AreaTotal{{"Dhaka", 5}, {"Sylhet", 5}}, CountsByArea(annotated, model.Dacoity))
	t.Equal(5, Max(annotated))
}
