package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// snapshotTables lists the collections included in backups and their sort key.
var snapshotTables = map[string]string{
	"tenants":          "id",
	"tenant_settings":  "owner_id",
	"units":            "id",
	"devices":          "id",
	"admin_principals": "email",
	"brands":           "id",
}

type SnapshotRepository struct {
	readerDB *gorm.DB
}

func NewSnapshotRepository(readerDB *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{readerDB: readerDB}
}

func (r *SnapshotRepository) Export(ctx context.Context, collection string) ([]map[string]interface{}, error) {
	orderBy, ok := snapshotTables[collection]
	if !ok {
		return nil, fmt.Errorf("collection %q is not exportable", collection)
	}

	rows := make([]map[string]interface{}, 0)
	if err := r.readerDB.WithContext(ctx).Table(collection).Order(orderBy).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", collection, err)
	}
	return rows, nil
}
