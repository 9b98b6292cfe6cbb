package domain

import "time"

type NotificationKind string

const (
	NotificationWelcome  NotificationKind = "welcome"
	NotificationReminder NotificationKind = "reminder"
)

type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// Notification records an outbound email attempt.
type Notification struct {
	ID        string             `gorm:"primaryKey;type:uuid" json:"id"`
	Kind      NotificationKind   `gorm:"type:text;not null;index" json:"kind"`
	TenantID  string             `gorm:"type:varchar(12);not null;index" json:"tenant_id"`
	Recipient string             `gorm:"type:text;not null" json:"recipient"`
	Subject   string             `gorm:"type:text" json:"subject"`
	Status    NotificationStatus `gorm:"type:text;not null" json:"status"`
	Error     string             `gorm:"type:text" json:"error,omitempty"`
	CreatedAt time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
