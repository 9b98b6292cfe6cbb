package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

type DeviceRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewDeviceRepository(writerDB, readerDB *gorm.DB) *DeviceRepository {
	return &DeviceRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// ReplaceActive locks the unit row so that concurrent registrations for the
// same unit serialize; the partial unique index on active devices backs it up.
func (r *DeviceRepository) ReplaceActive(ctx context.Context, device *domain.Device) (int64, error) {
	var replaced int64
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var unit domain.Unit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&unit, "id = ?", device.UnitID).Error; err != nil {
			return err
		}

		res := tx.Model(&domain.Device{}).
			Where("unit_id = ? AND status = ?", device.UnitID, domain.DeviceStatusActive).
			Updates(map[string]interface{}{
				"status":      domain.DeviceStatusReplaced,
				"replaced_at": device.RegisteredAt,
			})
		if res.Error != nil {
			return res.Error
		}
		replaced = res.RowsAffected

		return tx.Create(device).Error
	})
	if err != nil {
		return 0, translateError(err)
	}
	return replaced, nil
}

func (r *DeviceRepository) MutateActive(ctx context.Context, unitID string, fn repository.DeviceMutation) (*domain.Device, error) {
	var device domain.Device
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("unit_id = ? AND status = ?", unitID, domain.DeviceStatusActive).
			Order("registered_at DESC").
			First(&device).Error
		if err != nil {
			return err
		}
		if err := fn(&device); err != nil {
			return err
		}
		return tx.Save(&device).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &device, nil
}

func (r *DeviceRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Device{}).
		Where("status = ?", domain.DeviceStatusActive).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ids, nil
}

// SetPendingUpdate marks the given devices in a single transaction. Devices
// replaced since the id list was read are skipped.
func (r *DeviceRepository) SetPendingUpdate(ctx context.Context, ids []string, update *domain.PendingUpdate) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	payload, err := json.Marshal(update)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal pending update: %w", err)
	}

	var affected int64
	err = r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Device{}).
			Where("id IN ? AND status = ?", ids, domain.DeviceStatusActive).
			Updates(map[string]interface{}{
				"pending_update": datatypes.JSON(payload),
				"update_status":  "",
				"update_error":   "",
			})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, translateError(err)
	}
	return affected, nil
}

func (r *DeviceRepository) List(ctx context.Context, filter domain.DeviceFilter) ([]domain.Device, error) {
	var devices []domain.Device

	db := r.readerDB.WithContext(ctx).Model(&domain.Device{}).Select("devices.*")
	if filter.BrandID != "" {
		db = db.Joins("JOIN tenants ON tenants.id = devices.owner_id").
			Where("tenants.brand_id = ?", filter.BrandID)
	}
	if filter.OwnerID != "" {
		db = db.Where("devices.owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		db = db.Where("devices.status = ?", filter.Status)
	}

	if err := db.Order("devices.last_active_at DESC").Find(&devices).Error; err != nil {
		return nil, translateError(err)
	}
	return devices, nil
}
