package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/samber/lo"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/raykavin/tafx/pkg/core"
)

// SQLStorage keeps results in any database gorm has a dialector for
type SQLStorage struct {
	db *gorm.DB
}

// FromSQLite opens the SQLite database file at path. The driver is pure
// Go, so the binary needs no cgo.
func FromSQLite(path string, opts ...gorm.Option) (*SQLStorage, error) {
	if len(opts) == 0 {
		opts = []gorm.Option{&gorm.Config{Logger: gormlogger.Discard}}
	}
	return FromSQL(sqlite.Open(path), opts...)
}

// FromSQL opens the database and migrates the result table
func FromSQL(dialect gorm.Dialector, opts ...gorm.Option) (*SQLStorage, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&core.Result{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLStorage{db: db}, nil
}

// Save inserts result. The database assigns its ID.
func (s *SQLStorage) Save(result *core.Result) error {
	if err := s.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

// Get loads the result with the given ID.
func (s *SQLStorage) Get(id int64) (*core.Result, error) {
	var result core.Result
	err := s.db.First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("id %d: %w", id, core.ErrResultNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Results loads every result, oldest first, and filters them in memory
func (s *SQLStorage) Results(filters ...core.ResultFilter) ([]*core.Result, error) {
	var results []*core.Result
	if err := s.db.Order("created_at").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}

	return lo.Filter(results, func(r *core.Result, _ int) bool {
		return matches(*r, filters)
	}), nil
}

// ResultsWithQuery narrows the rows with a gorm query before loading them
func (s *SQLStorage) ResultsWithQuery(query func(*gorm.DB) *gorm.DB) ([]*core.Result, error) {
	var results []*core.Result
	if err := query(s.db).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return results, nil
}

// Close closes the underlying connection pool.
func (s *SQLStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
