package charts

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/pescuma/bdcrime/lib/aggregates"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/utils"
)

// DefaultCenter is used when there is nothing to show on the map.
var DefaultCenter = orb.Point{90.3563, 23.6850}

// Center returns the middle of the bounding box of the rows' coordinates.
func Center(view *model.View) orb.Point {
	if view.IsEmpty() {
		return DefaultCenter
	}

	points := make(orb.MultiPoint, 0, view.Len())
	for _, r := range view.Rows {
		points = append(points, orb.Point{r.Lon, r.Lat})
	}

	return points.Bound().Center()
}

// SizeRef scales marker areas so the largest one has a diameter of sizeMax pixels.
func SizeRef(max int, sizeMax float64) float64 {
	if max <= 0 || sizeMax <= 0 {
		return 1
	}

	return 2 * float64(max) / (sizeMax * sizeMax)
}

func buildMap(in *Input, opts *Options) *Chart {
	crime := in.Encoding.Column
	view := in.View

	hover := fmt.Sprintf("<b>%%{hovertext}</b><br><br>%v=%%{customdata[0]}<br>%v=%%{customdata[1]}<extra></extra>",
		model.ColumnTotalCrimes, crime)

	trace := &Trace{
		Type:          "scattermapbox",
		Mode:          "markers",
		Lat:           make([]float64, 0, view.Len()),
		Lon:           make([]float64, 0, view.Len()),
		HoverText:     make([]string, 0, view.Len()),
		CustomData:    make([][]any, 0, view.Len()),
		HoverTemplate: hover,
		Marker: &Marker{
			Size:       view.Totals(),
			SizeMode:   "area",
			SizeRef:    SizeRef(aggregates.Max(view), opts.SizeMax),
			Color:      in.Encoding.Values(view),
			ColorScale: SeverityScale,
			ShowScale:  true,
			ColorBar:   colorBar(crime),
		},
	}

	for _, r := range view.Rows {
		trace.Lat = append(trace.Lat, r.Lat)
		trace.Lon = append(trace.Lon, r.Lon)
		trace.HoverText = append(trace.HoverText, r.Area)
		trace.CustomData = append(trace.CustomData, []any{r.TotalCrimes, r.Counts[in.Encoding.CrimeType]})
	}

	center := Center(view)

	return &Chart{
		Kind:  KindMap,
		Title: fmt.Sprintf("%v across Selected Areas in %v", crime, in.Year),
		Data:  []*Trace{trace},
		Layout: &Layout{
			Mapbox: &Mapbox{
				Style:  opts.MapStyle,
				Zoom:   utils.Max(opts.MapZoom, 0),
				Center: &LatLon{Lat: center.Lat(), Lon: center.Lon()},
			},
			Margin: &Margin{},
		},
	}
}
