package postgres

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vestalumina/vls-api/internal/domain"
)

// Migrate creates or updates the schema and seeds the default brand.
func Migrate(db *gorm.DB, defaultBrandID string) error {
	if err := db.AutoMigrate(
		&domain.Identity{},
		&domain.Brand{},
		&domain.AdminPrincipal{},
		&domain.Tenant{},
		&domain.TenantSettings{},
		&domain.Unit{},
		&domain.Booking{},
		&domain.Device{},
		&domain.AppVersion{},
		&domain.ActionLogEntry{},
		&domain.Notification{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// One active device per unit.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_devices_unit_active
		ON devices (unit_id) WHERE status = 'active'`).Error; err != nil {
		return fmt.Errorf("failed to create active device index: %w", err)
	}

	if defaultBrandID != "" {
		brand := &domain.Brand{ID: defaultBrandID, Name: "Vesta Lumina", CreatedBy: "system"}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(brand).Error; err != nil {
			return fmt.Errorf("failed to seed default brand: %w", err)
		}
	}

	return nil
}
