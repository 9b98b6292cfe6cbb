package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vestalumina/vls-api/internal/domain"
)

type NotificationRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewNotificationRepository(writerDB, readerDB *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	return translateError(r.writerDB.WithContext(ctx).Create(notification).Error)
}

func (r *NotificationRepository) SentSince(ctx context.Context, tenantID string, kind domain.NotificationKind, since time.Time) (bool, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("tenant_id = ? AND kind = ? AND status = ? AND created_at >= ?", tenantID, kind, domain.NotificationSent, since).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
