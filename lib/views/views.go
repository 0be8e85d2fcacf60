package views

import (
	"fmt"

	"github.com/pescuma/bdcrime/lib/model"
)

// Encoding says which column drives the colour, size and value channels of the charts.
type Encoding struct {
	CrimeType model.CrimeType
	Column    string
	// AxisLabel is used by charts that plot the selected count on an axis.
	AxisLabel string
}

// Select maps a crime type label to its encoding.
func Select(label string) (*Encoding, error) {
	t, err := model.ParseCrimeType(label)
	if err != nil {
		return nil, err
	}

	return &Encoding{
		CrimeType: t,
		Column:    t.String(),
		AxisLabel: fmt.Sprintf("%v Cases", t),
	}, nil
}

// Values extracts the encoded count of every row of the view.
func (e *Encoding) Values(view *model.View) []int {
	return view.Values(e.CrimeType)
}
