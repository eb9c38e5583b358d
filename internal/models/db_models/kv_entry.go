package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KVEntry is one row of the key/value table backing the trip store.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;type:text"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_store"
}

// Hooks to manage int64 timestamps
func (e *KVEntry) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

func (e *KVEntry) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now().Unix()
	return nil
}
