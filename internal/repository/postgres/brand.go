package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

type BrandRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBrandRepository(writerDB, readerDB *gorm.DB) *BrandRepository {
	return &BrandRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	return translateError(r.writerDB.WithContext(ctx).Create(brand).Error)
}

func (r *BrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.readerDB.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &brand, nil
}

func (r *BrandRepository) List(ctx context.Context, brandID string) ([]domain.Brand, error) {
	var brands []domain.Brand
	err := r.readerDB.WithContext(ctx).
		Scopes(brandScope("id", brandID)).
		Order("name ASC").
		Find(&brands).Error
	if err != nil {
		return nil, translateError(err)
	}
	return brands, nil
}

// ComputeStats counts the brand's tenants, their units and their bookings.
func (r *BrandRepository) ComputeStats(ctx context.Context, id string) (*domain.BrandStats, error) {
	var stats domain.BrandStats
	db := r.writerDB.WithContext(ctx)

	if err := db.Model(&domain.Tenant{}).Where("brand_id = ?", id).Count(&stats.ClientCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count tenants: %w", err)
	}
	if err := db.Model(&domain.Unit{}).
		Joins("JOIN tenants ON tenants.id = units.owner_id").
		Where("tenants.brand_id = ?", id).
		Count(&stats.TotalUnits).Error; err != nil {
		return nil, fmt.Errorf("failed to count units: %w", err)
	}
	if err := db.Model(&domain.Booking{}).
		Joins("JOIN tenants ON tenants.id = bookings.owner_id").
		Where("tenants.brand_id = ?", id).
		Count(&stats.TotalBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	return &stats, nil
}

func (r *BrandRepository) UpdateStats(ctx context.Context, id string, stats *domain.BrandStats, at time.Time) error {
	res := r.writerDB.WithContext(ctx).Model(&domain.Brand{}).Where("id = ?", id).Updates(map[string]interface{}{
		"client_count":     stats.ClientCount,
		"total_units":      stats.TotalUnits,
		"total_bookings":   stats.TotalBookings,
		"stats_updated_at": at,
		"updated_at":       at,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
