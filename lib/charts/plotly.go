package charts

// Trace is the subset of plotly trace attributes used by the dashboard.
type Trace struct {
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Orientation string `json:"orientation,omitempty"`

	X []any   `json:"x,omitempty"`
	Y []any   `json:"y,omitempty"`
	Z [][]int `json:"z,omitempty"`

	Lat []float64 `json:"lat,omitempty"`
	Lon []float64 `json:"lon,omitempty"`

	IDs          []string `json:"ids,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	Parents      []string `json:"parents,omitempty"`
	Values       []int    `json:"values,omitempty"`
	BranchValues string   `json:"branchvalues,omitempty"`

	Text          []string `json:"text,omitempty"`
	HoverText     []string `json:"hovertext,omitempty"`
	CustomData    [][]any  `json:"customdata,omitempty"`
	HoverTemplate string   `json:"hovertemplate,omitempty"`

	ColorScale ColorScale `json:"colorscale,omitempty"`
	ColorBar   *ColorBar  `json:"colorbar,omitempty"`

	BoxPoints string   `json:"boxpoints,omitempty"`
	Points    string   `json:"points,omitempty"`
	Box       *Visible `json:"box,omitempty"`

	Marker *Marker `json:"marker,omitempty"`
}

type Marker struct {
	Size     []int   `json:"size,omitempty"`
	SizeMode string  `json:"sizemode,omitempty"`
	SizeRef  float64 `json:"sizeref,omitempty"`

	// Color is either a single colour or one value per point.
	Color      any        `json:"color,omitempty"`
	Colors     []string   `json:"colors,omitempty"`
	ColorScale ColorScale `json:"colorscale,omitempty"`
	ShowScale  bool       `json:"showscale,omitempty"`
	ColorBar   *ColorBar  `json:"colorbar,omitempty"`
}

type ColorBar struct {
	Title *Text `json:"title,omitempty"`
}

type Visible struct {
	Visible bool `json:"visible"`
}

type Text struct {
	Text string `json:"text"`
}

type Layout struct {
	Title   *Text   `json:"title,omitempty"`
	BarMode string  `json:"barmode,omitempty"`
	XAxis   *Axis   `json:"xaxis,omitempty"`
	YAxis   *Axis   `json:"yaxis,omitempty"`
	Legend  *Legend `json:"legend,omitempty"`
	Mapbox  *Mapbox `json:"mapbox,omitempty"`
	Margin  *Margin `json:"margin,omitempty"`
}

type Axis struct {
	Title *Text  `json:"title,omitempty"`
	Type  string `json:"type,omitempty"`
}

type Legend struct {
	Title *Text `json:"title,omitempty"`
}

type Mapbox struct {
	Style  string  `json:"style"`
	Zoom   float64 `json:"zoom"`
	Center *LatLon `json:"center"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

func axis(title string) *Axis {
	return &Axis{Title: &Text{Text: title}}
}

func colorBar(title string) *ColorBar {
	return &ColorBar{Title: &Text{Text: title}}
}
