package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

type AppVersionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAppVersionRepository(writerDB, readerDB *gorm.DB) *AppVersionRepository {
	return &AppVersionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AppVersionRepository) Create(ctx context.Context, version *domain.AppVersion) error {
	if version.ID == "" {
		version.ID = uuid.New().String()
	}
	return translateError(r.writerDB.WithContext(ctx).Create(version).Error)
}

func (r *AppVersionRepository) GetByID(ctx context.Context, id string) (*domain.AppVersion, error) {
	var version domain.AppVersion
	if err := r.writerDB.WithContext(ctx).First(&version, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &version, nil
}

func (r *AppVersionRepository) List(ctx context.Context) ([]domain.AppVersion, error) {
	var versions []domain.AppVersion
	if err := r.readerDB.WithContext(ctx).Order("created_at DESC").Find(&versions).Error; err != nil {
		return nil, translateError(err)
	}
	return versions, nil
}

func (r *AppVersionRepository) MarkDistributed(ctx context.Context, id string, count int64, at time.Time) error {
	res := r.writerDB.WithContext(ctx).Model(&domain.AppVersion{}).Where("id = ?", id).Updates(map[string]interface{}{
		"distributed_count": count,
		"distributed_at":    at,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
