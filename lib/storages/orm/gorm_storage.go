package orm

import (
	"log"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pescuma/bdcrime/lib/consoles"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	datasets map[string]*model.Dataset
	config   *map[string]string

	sqlConfigs map[string]*sqlConfig
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{},
		Logger:         l,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlDataset{},
		&sqlRecord{},
	)
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:       db,
		console:  console,
		datasets: make(map[string]*model.Dataset),
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func (s *gormStorage) ListDatasets() ([]*storages.DatasetInfo, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var sds []*sqlDataset
	err := s.db.Order("name").Find(&sds).Error
	if err != nil {
		return nil, err
	}

	type stats struct {
		DatasetID model.UUID
		Records   int
		Years     int
		Areas     int
	}

	var ss []*stats
	err = s.db.Raw(`
		select dataset_id, count(*) records, count(distinct year) years, count(distinct area) areas
		from records
		group by dataset_id
	`).Scan(&ss).Error
	if err != nil {
		return nil, err
	}

	byID := lo.KeyBy(ss, func(i *stats) model.UUID { return i.DatasetID })

	return lo.Map(sds, func(sd *sqlDataset, _ int) *storages.DatasetInfo {
		result := &storages.DatasetInfo{
			ID:       sd.ID,
			Name:     sd.Name,
			Source:   sd.Source,
			LoadedAt: sd.LoadedAt,
		}

		if st, ok := byID[sd.ID]; ok {
			result.Records = st.Records
			result.Years = st.Years
			result.Areas = st.Areas
		}

		return result
	}), nil
}

func (s *gormStorage) LoadDataset(name string) (*model.Dataset, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if ds, ok := s.datasets[name]; ok {
		return ds, nil
	}

	s.console.Printf("Loading dataset %v...\n", name)

	var sds []*sqlDataset
	err := s.db.Where("name = ?", name).Limit(1).Find(&sds).Error
	if err != nil {
		return nil, err
	}
	if len(sds) == 0 {
		return nil, errors.Wrapf(storages.ErrDatasetNotFound, "%v", name)
	}

	sd := sds[0]

	var srs []*sqlRecord
	err = s.db.Where("dataset_id = ?", sd.ID).Order("line").Find(&srs).Error
	if err != nil {
		return nil, err
	}

	records := lo.Map(srs, func(sr *sqlRecord, _ int) *model.Record { return sr.ToModel() })

	result := model.NewDatasetEx(&sd.ID, sd.Name, sd.Source, sd.Columns, records)
	result.LoadedAt = sd.LoadedAt

	s.datasets[name] = result
	return result, nil
}

func (s *gormStorage) WriteDataset(ds *model.Dataset) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sd := newSqlDataset(ds)
	srs := lo.Map(ds.Records(), func(r *model.Record, _ int) *sqlRecord { return newSqlRecord(ds.ID, r) })

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	err := db.Transaction(func(tx *gorm.DB) error {
		var old []*sqlDataset
		err := tx.Where("name = ? and id <> ?", ds.Name, ds.ID).Find(&old).Error
		if err != nil {
			return err
		}

		for _, o := range old {
			err = deleteDataset(tx, o)
			if err != nil {
				return err
			}
		}

		err = tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(sd).Error
		if err != nil {
			return err
		}

		err = tx.Where("dataset_id = ?", ds.ID).Delete(&sqlRecord{}).Error
		if err != nil {
			return err
		}

		if len(srs) == 0 {
			return nil
		}

		return tx.Create(&srs).Error
	})
	if err != nil {
		return errors.Wrapf(err, "error writing dataset %v", ds.Name)
	}

	s.datasets[ds.Name] = ds

	return nil
}

func (s *gormStorage) DeleteDataset(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.datasets, name)

	var sds []*sqlDataset
	err := s.db.Where("name = ?", name).Find(&sds).Error
	if err != nil {
		return err
	}
	if len(sds) == 0 {
		return errors.Wrapf(storages.ErrDatasetNotFound, "%v", name)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, sd := range sds {
			err := deleteDataset(tx, sd)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func deleteDataset(tx *gorm.DB, sd *sqlDataset) error {
	err := tx.Where("dataset_id = ?", sd.ID).Delete(&sqlRecord{}).Error
	if err != nil {
		return err
	}

	return tx.Delete(sd).Error
}

func (s *gormStorage) LoadConfig() (*map[string]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.config != nil {
		return s.config, nil
	}

	var configs []*sqlConfig
	err := s.db.Find(&configs).Error
	if err != nil {
		return nil, err
	}

	s.sqlConfigs = createCache(configs)

	result := make(map[string]string, len(configs))
	for _, c := range configs {
		result[c.Key] = c.Value
	}

	s.config = &result
	return s.config, nil
}

func (s *gormStorage) WriteConfig() error {
	if s.config == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	sqlConfigs := prepareChanges(lo.Entries(*s.config), func(e lo.Entry[string, string]) *sqlConfig {
		return newSqlConfig(e.Key, e.Value)
	}, &s.sqlConfigs)

	if len(sqlConfigs) == 0 {
		return nil
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc: func() time.Time { return now },
	})

	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlConfigs).Error
	if err != nil {
		return err
	}

	addList(&s.sqlConfigs, sqlConfigs)

	return nil
}

func addList[T sqlTable](target *map[string]T, toAdd []T) {
	for _, t := range toAdd {
		(*target)[t.CacheKey()] = t
	}
}

func prepareChanges[S sqlTable, M any](models []M, toSql func(M) S, cache *map[string]S) []S {
	var result []S
	for _, m := range models {
		s := toSql(m)
		if prepareChange(cache, s) {
			result = append(result, s)
		}
	}
	return result
}

func prepareChange[T sqlTable](byID *map[string]T, n T) bool {
	o, ok := (*byID)[n.CacheKey()]
	if ok {
		ro := reflect.Indirect(reflect.ValueOf(o))
		rn := reflect.Indirect(reflect.ValueOf(n))

		rn.FieldByName("CreatedAt").Set(ro.FieldByName("CreatedAt"))
		rn.FieldByName("UpdatedAt").Set(ro.FieldByName("UpdatedAt"))
	}

	if reflect.DeepEqual(n, o) {
		return false
	} else {
		(*byID)[n.CacheKey()] = n
		return true
	}
}
