package models

import "time"

// AuditLog records API operations for later review.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	User      string `gorm:"size:64;index"`
	Method    string `gorm:"size:16"`
	Path      string `gorm:"size:255"`
	Status    int
	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time
}
