package views

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/bdcrime/lib/model"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	e, err := Select("Women & Child Repression")
	require.NoError(t, err)

	assert.Equal(t, model.WomenChildRepression, e.CrimeType)
	assert.Equal(t, "Women & Child Repression", e.Column)
	assert.Equal(t, "Women & Child Repression Cases", e.AxisLabel)
}

func TestSelectTrims(t *testing.T) {
	t.Parallel()

	e, err := Select("  Robbery\t")
	require.NoError(t, err)

	assert.Equal(t, model.Robbery, e.CrimeType)
}

func TestSelectEveryType(t *testing.T) {
	t.Parallel()

	for _, name := range model.CrimeTypeNames() {
		e, err := Select(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Column)
	}
}

func TestSelectUnknown(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"", "robbery", "Arson", "Total Crimes"} {
		_, err := Select(label)

		var uerr *model.UnknownCrimeTypeError
		assert.True(t, errors.As(err, &uerr), label)
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	r := model.NewRecord(2, 2015, "Dhaka", 23.8, 90.4)
	r.SetCount(model.Robbery, 2)
	ds := model.NewDataset("test", "test.csv", model.RequiredColumns(), []*model.Record{r})

	e, err := Select("Robbery")
	require.NoError(t, err)

	assert.Equal(t, []int{2}, e.Values(model.NewView(ds, nil, ds.Areas(), ds.Records())))
}
