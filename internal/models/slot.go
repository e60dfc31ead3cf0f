package models

import "time"

// Slot is one named durable key-value entry. Each collection is stored whole
// as a single JSON document under a fixed key.
type Slot struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
