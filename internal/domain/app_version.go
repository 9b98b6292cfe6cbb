package domain

import "time"

// AppVersion describes a tablet application release that can be distributed.
type AppVersion struct {
	ID               string     `gorm:"primaryKey;type:uuid" json:"id"`
	Version          string     `gorm:"type:text;not null;uniqueIndex" json:"version"`
	DownloadURL      string     `gorm:"type:text;not null" json:"download_url"`
	ForceUpdate      bool       `gorm:"not null;default:false" json:"force_update"`
	Notes            string     `gorm:"type:text" json:"notes"`
	DistributedCount int64      `gorm:"not null;default:0" json:"distributed_count"`
	DistributedAt    *time.Time `gorm:"type:timestamp with time zone" json:"distributed_at,omitempty"`
	CreatedBy        string     `gorm:"type:text" json:"created_by"`
	CreatedAt        time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AppVersion) TableName() string {
	return "app_versions"
}

func (v *AppVersion) PendingUpdate() *PendingUpdate {
	return &PendingUpdate{
		VersionID:   v.ID,
		Version:     v.Version,
		DownloadURL: v.DownloadURL,
		ForceUpdate: v.ForceUpdate,
	}
}
