package model

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// Dataset is the immutable table every view is derived from.
type Dataset struct {
	ID       UUID
	Name     string
	Source   string
	LoadedAt time.Time

	columns []string
	records []*Record
	years   []int
	areas   []string
	byArea  map[string]bool
	byYear  map[int]bool
}

func NewDataset(name string, source string, columns []string, records []*Record) *Dataset {
	return NewDatasetEx(nil, name, source, columns, records)
}

func NewDatasetEx(id *UUID, name string, source string, columns []string, records []*Record) *Dataset {
	result := &Dataset{
		Name:     name,
		Source:   source,
		LoadedAt: time.Now(),
		columns:  append([]string(nil), columns...),
		records:  append([]*Record(nil), records...),
		byArea:   make(map[string]bool),
		byYear:   make(map[int]bool),
	}

	if id != nil {
		result.ID = *id
	} else {
		result.ID = NewUUID("d")
	}

	for _, r := range records {
		if !result.byYear[r.Year] {
			result.byYear[r.Year] = true
			result.years = append(result.years, r.Year)
		}
		if !result.byArea[r.Area] {
			result.byArea[r.Area] = true
			result.areas = append(result.areas, r.Area)
		}
	}

	sort.Ints(result.years)

	return result
}

func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

func (d *Dataset) Records() []*Record {
	return append([]*Record(nil), d.records...)
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Years returns the Year domain in ascending order.
func (d *Dataset) Years() []int {
	return append([]int(nil), d.years...)
}

// Areas returns the Area domain in order of first appearance.
func (d *Dataset) Areas() []string {
	return append([]string(nil), d.areas...)
}

func (d *Dataset) HasYear(year int) bool {
	return d.byYear[year]
}

func (d *Dataset) HasArea(area string) bool {
	return d.byArea[area]
}

func (d *Dataset) RecordsOf(area string) []*Record {
	return lo.Filter(d.records, func(r *Record, _ int) bool { return r.Area == area })
}
