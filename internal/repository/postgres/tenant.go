package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) CreateIfAbsent(ctx context.Context, tenant *domain.Tenant, settings *domain.TenantSettings) error {
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(tenant)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrDuplicateKey
		}
		return tx.Create(settings).Error
	})
	return translateError(err)
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// Mutate reads the tenant under a row lock, applies fn and saves the result.
func (r *TenantRepository) Mutate(ctx context.Context, id string, fn repository.TenantMutation) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tenant, "id = ?", id).Error; err != nil {
			return err
		}
		if err := fn(&tenant); err != nil {
			return err
		}
		return tx.Save(&tenant).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.TenantSettings{}, "owner_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Tenant{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

func (r *TenantRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, error) {
	var tenants []domain.Tenant

	db := r.readerDB.WithContext(ctx).
		Scopes(brandScope("brand_id", filter.BrandID), limitScope(filter.Limit))
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if !filter.CreatedBefore.IsZero() {
		db = db.Where("created_at < ?", filter.CreatedBefore)
	}

	if err := db.Order("created_at DESC").Find(&tenants).Error; err != nil {
		return nil, translateError(err)
	}
	return tenants, nil
}

// ListMissingIdentity returns tenants whose identity record no longer exists.
func (r *TenantRepository) ListMissingIdentity(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	err := r.readerDB.WithContext(ctx).
		Select("tenants.*").
		Joins("LEFT JOIN identities ON identities.uid::text = tenants.identity_ref").
		Where("identities.uid IS NULL").
		Find(&tenants).Error
	if err != nil {
		return nil, translateError(err)
	}
	return tenants, nil
}
