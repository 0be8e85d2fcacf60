package filters

import (
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/pkg/errors"

	"github.com/pescuma/bdcrime/lib/model"
)

func newDataset() *model.Dataset {
	row := func(line, year int, area string, dacoity int) *model.Record {
		r := model.NewRecord(line, year, area, 23, 90)
		r.SetCount(model.Dacoity, dacoity)
		return r
	}

	return model.NewDataset("test", "test.csv", model.RequiredColumns(), []*model.Record{
		row(2, 2015, "Dhaka", 1),
		row(3, 2015, "Sylhet", 2),
		row(4, 2016, "Dhaka", 3),
		row(5, 2015, "Rajshahi", 4),
		row(6, 2016, "Sylhet", 5),
		row(7, 2015, "Dhaka", 6),
	})
}

func lines(v *model.View) []int {
	var result []int
	for _, r := range v.Rows {
		result = append(result, r.Line)
	}
	return result
}

func TestFilters(t *testing.T) {
	testgroup.RunInParallel(t, &FilterTests{})
}

type FilterTests struct{}

func (g *FilterTests) MatchesYearAndAreas(t *testgroup.T) {
	v, err := Filter(newDataset(), 2015, []string{"Dhaka", "Rajshahi"})
	t.Require.NoError(err)

	t.Equal([]int{2, 5, 7}, lines(v))
	t.Equal(2015, *v.Year)
	t.False(v.Annotated)
}

func (g *FilterTests) KeepsDatasetOrder(t *testgroup.T) {
	v, err := Filter(newDataset(), 2015, []string{"Rajshahi", "Sylhet", "Dhaka"})
	t.Require.NoError(err)

	t.Equal([]int{2, 3, 5, 7}, lines(v))
}

func (g *FilterTests) IsIdempotent(t *testgroup.T) {
	ds := newDataset()

	a, err := Filter(ds, 2016, []string{"Dhaka", "Sylhet"})
	t.Require.NoError(err)
	b, err := Filter(ds, 2016, []string{"Dhaka", "Sylhet"})
	t.Require.NoError(err)

	t.Equal(lines(a), lines(b))
	t.Equal(6, ds.Len())
}

func (g *FilterTests) EmptyAreas(t *testgroup.T) {
	v, err := Filter(newDataset(), 2015, nil)
	t.Require.NoError(err)

	t.True(v.IsEmpty())
}

func (g *FilterTests) UnknownYear(t *testgroup.T) {
	_, err := Filter(newDataset(), 2009, []string{"Dhaka"})

	var ferr *model.FilterError
	t.Require.True(errors.As(err, &ferr))
	t.Contains(ferr.Error(), "2009")
}

func (g *FilterTests) UnknownArea(t *testgroup.T) {
	_, err := Filter(newDataset(), 2015, []string{"Dhaka", "Gotham"})

	var ferr *model.FilterError
	t.Require.True(errors.As(err, &ferr))
	t.Contains(ferr.Error(), "Gotham")
}

func (g *FilterTests) AllYears(t *testgroup.T) {
	v, err := FilterAreas(newDataset(), []string{"Dhaka"})
	t.Require.NoError(err)

	t.Equal([]int{2, 4, 7}, lines(v))
	t.Nil(v.Year)
}

func (g *FilterTests) AllYearsUnknownArea(t *testgroup.T) {
	_, err := FilterAreas(newDataset(), []string{"dhaka"})

	var ferr *model.FilterError
	t.True(errors.As(err, &ferr))
}

func TestResolveAreas(t *testing.T) {
	testgroup.RunInParallel(t, &ResolveTests{})
}

type ResolveTests struct{}

func (g *ResolveTests) IgnoresCase(t *testgroup.T) {
	areas, err := ResolveAreas(newDataset(), []string{" dhaka ", "SYLHET"})
	t.Require.NoError(err)

	t.Equal([]string{"Dhaka", "Sylhet"}, areas)
}

func (g *ResolveTests) Wildcards(t *testgroup.T) {
	areas, err := ResolveAreas(newDataset(), []string{"*a"})
	t.Require.NoError(err)

	t.Equal([]string{"Dhaka"}, areas)

	areas, err = ResolveAreas(newDataset(), []string{"*"})
	t.Require.NoError(err)

	t.Equal([]string{"Dhaka", "Sylhet", "Rajshahi"}, areas)
}

func (g *ResolveTests) NoDuplicates(t *testgroup.T) {
	areas, err := ResolveAreas(newDataset(), []string{"r*", "Rajshahi", "?hak?"})
	t.Require.NoError(err)

	t.Equal([]string{"Dhaka", "Rajshahi"}, areas)
}

func (g *ResolveTests) Empty(t *testgroup.T) {
	areas, err := ResolveAreas(newDataset(), []string{"", "  "})
	t.Require.NoError(err)

	t.Empty(areas)
}

func (g *ResolveTests) ExactNameIsLiteral(t *testgroup.T) {
	ds := model.NewDataset("test", "test.csv", model.RequiredColumns(), []*model.Record{
		model.NewRecord(2, 2015, "Dhaka [North]", 23, 90),
		model.NewRecord(3, 2015, "Dhaka*", 23, 90),
		model.NewRecord(4, 2015, "Dhakax", 23, 90),
		model.NewRecord(5, 2015, "Sylhet {A}", 23, 90),
	})

	areas, err := ResolveAreas(ds, []string{"Dhaka [North]", "Dhaka*"})
	t.Require.NoError(err)
	t.Equal([]string{"Dhaka [North]", "Dhaka*"}, areas)

	areas, err = ResolveAreas(ds, []string{"Sylhet {A}"})
	t.Require.NoError(err)
	t.Equal([]string{"Sylhet {A}"}, areas)

	areas, err = ResolveAreas(ds, []string{"dhaka*"})
	t.Require.NoError(err)
	t.Equal([]string{"Dhaka [North]", "Dhaka*", "Dhakax"}, areas)
}

func (g *ResolveTests) ParseAreas(t *testgroup.T) {
	ds := model.NewDataset("test", "test.csv", model.RequiredColumns(), []*model.Record{
		model.NewRecord(2, 2015, "Dhaka, North", 23, 90),
		model.NewRecord(3, 2015, "Dhaka", 23, 90),
		model.NewRecord(4, 2015, "Sylhet", 23, 90),
	})

	areas, err := ParseAreas(ds, []string{"Dhaka, North"})
	t.Require.NoError(err)
	t.Equal([]string{"Dhaka, North"}, areas)

	areas, err = ParseAreas(ds, []string{"sylhet, dhaka", "Sylhet"})
	t.Require.NoError(err)
	t.Equal([]string{"Dhaka", "Sylhet"}, areas)

	areas, err = ParseAreas(ds, []string{""})
	t.Require.NoError(err)
	t.Empty(areas)
}

func (g *ResolveTests) NoMatch(t *testgroup.T) {
	_, err := ResolveAreas(newDataset(), []string{"Dhaka", "Chit*"})

	var ferr *model.FilterError
	t.Require.True(errors.As(err, &ferr))
	t.Contains(ferr.Error(), "Chit*")
}
