package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

type AdminRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAdminRepository(writerDB, readerDB *gorm.DB) *AdminRepository {
	return &AdminRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// GetByEmail reads from the writer so that grants take effect on the next request.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminPrincipal, error) {
	var principal domain.AdminPrincipal
	if err := r.writerDB.WithContext(ctx).First(&principal, "email = ?", email).Error; err != nil {
		return nil, translateError(err)
	}
	return &principal, nil
}

func (r *AdminRepository) Upsert(ctx context.Context, principal *domain.AdminPrincipal) error {
	err := r.writerDB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "brand_id", "active", "created_by", "updated_at"}),
	}).Create(principal).Error
	return translateError(err)
}

func (r *AdminRepository) Delete(ctx context.Context, email string) error {
	res := r.writerDB.WithContext(ctx).Delete(&domain.AdminPrincipal{}, "email = ?", email)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AdminRepository) List(ctx context.Context, filter domain.AdminPrincipalFilter) ([]domain.AdminPrincipal, error) {
	var principals []domain.AdminPrincipal
	err := r.readerDB.WithContext(ctx).
		Scopes(brandScope("brand_id", filter.BrandID)).
		Order("email ASC").
		Find(&principals).Error
	if err != nil {
		return nil, translateError(err)
	}
	return principals, nil
}
