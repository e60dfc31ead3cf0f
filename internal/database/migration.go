package database

import (
	"fmt"

	"gelato-pos/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all persisted tables.
// The domain collections themselves live inside slots, not in own tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Slot{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
