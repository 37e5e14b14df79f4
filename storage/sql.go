package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrewpaige1/studysync-api/models"
)

// SQL stores records in the storage_records table through gorm. Works with
// the sqlite and postgres drivers.
type SQL struct {
	db *gorm.DB
}

// NewSQL migrates the records table and returns the backend.
func NewSQL(db *gorm.DB) (*SQL, error) {
	if db == nil {
		return nil, fmt.Errorf("sql storage: database required")
	}
	if err := db.AutoMigrate(&models.StorageRecord{}); err != nil {
		return nil, fmt.Errorf("sql storage: migrate: %w", err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record models.StorageRecord
	err := s.db.WithContext(ctx).Where("record_key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sql storage: get %q: %w", key, err)
	}
	return record.Value, true, nil
}

// Set upserts in a single statement.
func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	record := models.StorageRecord{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("sql storage: set %q: %w", key, err)
	}
	return nil
}
