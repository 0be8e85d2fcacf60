package model

const (
	ColumnYear        = "Year"
	ColumnArea        = "Area"
	ColumnLat         = "lat"
	ColumnLon         = "lon"
	ColumnTotalCrimes = "Total Crimes"
)

type Record struct {
	Line int
	Year int
	Area string
	Lat  float64
	Lon  float64

	Counts [CrimeTypeCount]int

	// Invalid holds the original text of count cells that could not be read as
	// a whole number. Those entries in Counts are zero and must not be used.
	Invalid map[CrimeType]string
}

func NewRecord(line int, year int, area string, lat, lon float64) *Record {
	return &Record{
		Line: line,
		Year: year,
		Area: area,
		Lat:  lat,
		Lon:  lon,
	}
}

func (r *Record) Count(t CrimeType) (int, bool) {
	if _, bad := r.Invalid[t]; bad {
		return 0, false
	}

	return r.Counts[t], true
}

func (r *Record) SetCount(t CrimeType, v int) {
	r.Counts[t] = v
	delete(r.Invalid, t)
}

func (r *Record) SetInvalid(t CrimeType, raw string) {
	if r.Invalid == nil {
		r.Invalid = make(map[CrimeType]string)
	}

	r.Counts[t] = 0
	r.Invalid[t] = raw
}

func RequiredColumns() []string {
	return append([]string{ColumnYear, ColumnArea, ColumnLat, ColumnLon}, CrimeTypeNames()...)
}
