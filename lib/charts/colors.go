package charts

import (
	"encoding/json"
	"image/color"
)

// ColorStop is one entry of a continuous colour scale. Pos goes from 0 to 1.
type ColorStop struct {
	Pos   float64
	Color string
}

func (s ColorStop) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Pos, s.Color})
}

type ColorScale []ColorStop

// SeverityScale goes from green (low) through yellow to red (high).
var SeverityScale = ColorScale{
	{0, "green"},
	{0.5, "yellow"},
	{1, "red"},
}

// Reds is the sequential palette used for slices of the pie.
var Reds = []string{
	"rgb(255,245,240)",
	"rgb(254,224,210)",
	"rgb(252,187,161)",
	"rgb(252,146,114)",
	"rgb(251,106,74)",
	"rgb(239,59,44)",
	"rgb(203,24,29)",
	"rgb(165,15,21)",
	"rgb(103,0,13)",
}

var namedColors = map[string]color.RGBA{
	"green":  {R: 0, G: 128, B: 0, A: 255},
	"yellow": {R: 255, G: 255, B: 0, A: 255},
	"red":    {R: 255, G: 0, B: 0, A: 255},
}

// At interpolates the scale at v, a value from 0 to 1.
func (s ColorScale) At(v float64) color.RGBA {
	if len(s) == 0 {
		return color.RGBA{A: 255}
	}
	if v <= s[0].Pos {
		return namedColors[s[0].Color]
	}

	for i := 1; i < len(s); i++ {
		if v <= s[i].Pos {
			a := namedColors[s[i-1].Color]
			b := namedColors[s[i].Color]
			f := (v - s[i-1].Pos) / (s[i].Pos - s[i-1].Pos)
			return color.RGBA{
				R: mix(a.R, b.R, f),
				G: mix(a.G, b.G, f),
				B: mix(a.B, b.B, f),
				A: 255,
			}
		}
	}

	return namedColors[s[len(s)-1].Color]
}

func mix(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}
