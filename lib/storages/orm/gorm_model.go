package orm

import (
	"strconv"
	"strings"
	"time"

	"github.com/pescuma/bdcrime/lib/model"
)

type sqlTable interface {
	CacheKey() string
}

type sqlConfig struct {
	Key   string `gorm:"primaryKey"`
	Value string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlConfig(k string, v string) *sqlConfig {
	return &sqlConfig{
		Key:   k,
		Value: v,
	}
}

func (s *sqlConfig) CacheKey() string {
	return s.Key
}

type sqlDataset struct {
	ID       model.UUID
	Name     string `gorm:"uniqueIndex"`
	Source   string
	Columns  []string `gorm:"serializer:json"`
	LoadedAt time.Time

	Records []sqlRecord `gorm:"foreignKey:DatasetID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlDataset(ds *model.Dataset) *sqlDataset {
	return &sqlDataset{
		ID:       ds.ID,
		Name:     ds.Name,
		Source:   ds.Source,
		Columns:  ds.Columns(),
		LoadedAt: ds.LoadedAt,
	}
}

func (s *sqlDataset) CacheKey() string {
	return s.Name
}

// sqlRecord keeps one column per crime type so the table can be queried directly.
// A nil count means the source cell was not a whole number; its text is in Invalid.
type sqlRecord struct {
	DatasetID model.UUID `gorm:"primaryKey"`
	Line      int        `gorm:"primaryKey"`

	Year int    `gorm:"index"`
	Area string `gorm:"index"`
	Lat  float64
	Lon  float64

	Dacoity              *int
	Robbery              *int
	Murder               *int
	SpeedyTrial          *int
	Riot                 *int
	WomenChildRepression *int
	Kidnapping           *int
	PoliceAssault        *int
	Burglary             *int
	Theft                *int
	OtherCases           *int

	Invalid map[string]string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlRecord(datasetID model.UUID, r *model.Record) *sqlRecord {
	result := &sqlRecord{
		DatasetID: datasetID,
		Line:      r.Line,
		Year:      r.Year,
		Area:      r.Area,
		Lat:       r.Lat,
		Lon:       r.Lon,
	}

	counts := result.counts()
	for _, t := range model.AllCrimeTypes {
		if v, ok := r.Count(t); ok {
			*counts[t] = encodeCount(v)
		}
	}

	if len(r.Invalid) > 0 {
		result.Invalid = make(map[string]string, len(r.Invalid))
		for t, raw := range r.Invalid {
			result.Invalid[t.String()] = raw
		}
	}

	return result
}

func (s *sqlRecord) CacheKey() string {
	return compositeKey(string(s.DatasetID), strconv.Itoa(s.Line))
}

func (s *sqlRecord) counts() [model.CrimeTypeCount]**int {
	return [model.CrimeTypeCount]**int{
		&s.Dacoity,
		&s.Robbery,
		&s.Murder,
		&s.SpeedyTrial,
		&s.Riot,
		&s.WomenChildRepression,
		&s.Kidnapping,
		&s.PoliceAssault,
		&s.Burglary,
		&s.Theft,
		&s.OtherCases,
	}
}

func (s *sqlRecord) ToModel() *model.Record {
	result := model.NewRecord(s.Line, s.Year, s.Area, s.Lat, s.Lon)

	for t, v := range s.counts() {
		ct := model.CrimeType(t)

		if *v != nil {
			result.SetCount(ct, **v)
			continue
		}

		result.SetInvalid(ct, s.Invalid[ct.String()])
	}

	return result
}

func encodeCount(v int) *int {
	return &v
}

func compositeKey(ids ...string) string {
	return strings.Join(ids, "\n")
}
