package model

// Row is a dataset record as seen through a View.
type Row struct {
	*Record

	TotalCrimes int
}

// View is a row subset of a Dataset, kept in dataset order.
type View struct {
	Dataset *Dataset
	Year    *int
	Areas   []string
	Rows    []*Row

	Annotated bool
}

func NewView(ds *Dataset, year *int, areas []string, records []*Record) *View {
	rows := make([]*Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, &Row{Record: r})
	}

	return &View{
		Dataset: ds,
		Year:    year,
		Areas:   append([]string(nil), areas...),
		Rows:    rows,
	}
}

func (v *View) Len() int {
	return len(v.Rows)
}

func (v *View) IsEmpty() bool {
	return len(v.Rows) == 0
}

func (v *View) Records() []*Record {
	result := make([]*Record, 0, len(v.Rows))
	for _, r := range v.Rows {
		result = append(result, r.Record)
	}
	return result
}

// AreasInOrder lists the areas present in the view, in order of first appearance.
func (v *View) AreasInOrder() []string {
	seen := make(map[string]bool)
	var result []string
	for _, r := range v.Rows {
		if !seen[r.Area] {
			seen[r.Area] = true
			result = append(result, r.Area)
		}
	}
	return result
}

// Values returns the count of one crime type for every row. Only meaningful after
// Annotate, which rejects rows with invalid counts.
func (v *View) Values(t CrimeType) []int {
	result := make([]int, 0, len(v.Rows))
	for _, r := range v.Rows {
		result = append(result, r.Counts[t])
	}
	return result
}

func (v *View) Totals() []int {
	result := make([]int, 0, len(v.Rows))
	for _, r := range v.Rows {
		result = append(result, r.TotalCrimes)
	}
	return result
}
