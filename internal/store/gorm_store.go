package store

import (
	"context"
	"errors"
	"fmt"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"example.com/checkin-reset/internal/model"
)

// GormStore implements Journal using GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens a MySQL journal. The DSN must be in the format accepted by
// github.com/go-sql-driver/mysql; parseTime is forced on so created_at scans.
func NewGormStore(dsn string) (*GormStore, error) {
	cfg, err := sqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	db, err := gorm.Open(mysql.Open(cfg.FormatDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return NewGormStoreFromDB(db)
}

// NewGormStoreFromDB constructs a GormStore from an existing *gorm.DB, e.g.
// sqlite in-memory for tests.
func NewGormStoreFromDB(db *gorm.DB) (*GormStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func RunMigrations(db *gorm.DB) error {
	mig := db.Migrator()
	if !mig.HasTable(&model.ResetEntry{}) {
		if err := mig.CreateTable(&model.ResetEntry{}); err != nil {
			return err
		}
	}
	for _, idx := range []string{"idx_reset_run", "idx_reset_collection"} {
		if !mig.HasIndex(&model.ResetEntry{}, idx) {
			if err := mig.CreateIndex(&model.ResetEntry{}, idx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *GormStore) Append(ctx context.Context, e *model.ResetEntry) error {
	if e == nil {
		return errors.New("nil entry")
	}
	if e.RunID == "" {
		return errors.New("entry without run id")
	}
	return s.db.WithContext(ctx).Create(e).Error
}

// ListByRun returns the entries of a run in insertion order.
func (s *GormStore) ListByRun(ctx context.Context, runID string) ([]model.ResetEntry, error) {
	var out []model.ResetEntry
	if err := s.db.WithContext(ctx).Where("run_id = ?", runID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
