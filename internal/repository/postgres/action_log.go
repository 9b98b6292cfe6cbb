package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vestalumina/vls-api/internal/domain"
)

type ActionLogRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewActionLogRepository(writerDB, readerDB *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ActionLogRepository) Create(ctx context.Context, entry *domain.ActionLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return translateError(r.writerDB.WithContext(ctx).Create(entry).Error)
}

func (r *ActionLogRepository) List(ctx context.Context, filter domain.ActionLogFilter) ([]domain.ActionLogEntry, error) {
	var entries []domain.ActionLogEntry

	db := r.readerDB.WithContext(ctx).
		Scopes(brandScope("brand_id", filter.BrandID), limitScope(filter.Limit))
	if filter.ActorEmail != "" {
		db = db.Where("actor_email = ?", filter.ActorEmail)
	}
	if filter.ActionType != "" {
		db = db.Where("action_type = ?", filter.ActionType)
	}
	if !filter.Since.IsZero() {
		db = db.Where("timestamp >= ?", filter.Since)
	}

	if err := db.Order("timestamp DESC").Find(&entries).Error; err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

func (r *ActionLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("timestamp < ?", before).
		Delete(&domain.ActionLogEntry{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}
