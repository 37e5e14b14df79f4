package models

import "time"

// StorageRecord is one durable key/value row used by the SQL storage backend.
type StorageRecord struct {
	Key       string    `gorm:"column:record_key;primaryKey;size:191"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (StorageRecord) TableName() string {
	return "storage_records"
}
