package png

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/bdcrime/lib/aggregates"
	"github.com/pescuma/bdcrime/lib/charts"
	"github.com/pescuma/bdcrime/lib/filters"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/views"
)

var signature = []byte("\x89PNG\r\n\x1a\n")

func newInput(t *testing.T, areas []string) *charts.Input {
	var records []*model.Record
	for i, area := range []string{"Dhaka", "Chittagong Metropolitan Police", "Sylhet"} {
		for year := 2010; year <= 2012; year++ {
			r := model.NewRecord(len(records)+2, year, area, 23+float64(i), 90+float64(i))
			r.SetCount(model.Robbery, year-2000+i)
			r.SetCount(model.Theft, i)
			records = append(records, r)
		}
	}
	ds := model.NewDataset("test", "test.csv", model.RequiredColumns(), records)

	enc, err := views.Select("Robbery")
	require.NoError(t, err)

	view, err := filters.Filter(ds, 2011, areas)
	require.NoError(t, err)
	view, err = aggregates.Annotate(view)
	require.NoError(t, err)

	trend, err := filters.FilterAreas(ds, areas)
	require.NoError(t, err)
	trend, err = aggregates.Annotate(trend)
	require.NoError(t, err)

	return &charts.Input{Encoding: enc, Year: 2011, View: view, Trend: trend}
}

func render(t *testing.T, kind charts.Kind, in *charts.Input) []byte {
	chart, err := charts.Build(kind, in, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Render(&buf, chart, &Options{Width: 300, Height: 200})
	require.NoError(t, err)

	return buf.Bytes()
}

func TestRenderSupported(t *testing.T) {
	t.Parallel()

	in := newInput(t, []string{"Dhaka", "Chittagong Metropolitan Police", "Sylhet"})

	for _, kind := range Kinds {
		out := render(t, kind, in)
		assert.True(t, bytes.HasPrefix(out, signature), kind)
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	in := newInput(t, nil)

	for _, kind := range Kinds {
		out := render(t, kind, in)
		assert.True(t, bytes.HasPrefix(out, signature), kind)
	}
}

func TestRenderUnsupported(t *testing.T) {
	t.Parallel()

	chart, err := charts.Build(charts.KindTreemap, newInput(t, []string{"Dhaka"}), nil)
	require.NoError(t, err)

	err = Render(&bytes.Buffer{}, chart, nil)

	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.False(t, Supports(charts.KindTreemap))
	assert.True(t, Supports(charts.KindMap))
}
