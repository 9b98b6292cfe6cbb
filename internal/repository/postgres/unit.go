package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vestalumina/vls-api/internal/domain"
)

type UnitRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUnitRepository(writerDB, readerDB *gorm.DB) *UnitRepository {
	return &UnitRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UnitRepository) Create(ctx context.Context, unit *domain.Unit) error {
	if unit.ID == "" {
		unit.ID = uuid.New().String()
	}
	return translateError(r.writerDB.WithContext(ctx).Create(unit).Error)
}

// GetByID reads from the writer; registration follows unit creation closely.
func (r *UnitRepository) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	var unit domain.Unit
	if err := r.writerDB.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &unit, nil
}

func (r *UnitRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Unit, error) {
	var units []domain.Unit
	err := r.readerDB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&units).Error
	if err != nil {
		return nil, translateError(err)
	}
	return units, nil
}
