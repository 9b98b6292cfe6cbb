package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type DeviceStatus string

const (
	DeviceStatusActive   DeviceStatus = "active"
	DeviceStatusReplaced DeviceStatus = "replaced"
)

const InitialDeviceAppVersion = "1.0.0"

// Update states reported by a device in its heartbeat.
const (
	UpdateStatusDownloading = "downloading"
	UpdateStatusInstalled   = "installed"
	UpdateStatusFailed      = "failed"
)

func ValidUpdateStatus(s string) bool {
	switch s {
	case UpdateStatusDownloading, UpdateStatusInstalled, UpdateStatusFailed:
		return true
	}
	return false
}

// PendingUpdate is the update marker a device picks up on its next heartbeat.
type PendingUpdate struct {
	VersionID   string `json:"version_id"`
	Version     string `json:"version"`
	DownloadURL string `json:"download_url"`
	ForceUpdate bool   `json:"force_update"`
}

// Device is a tablet bound to one unit. At most one device per unit is active.
type Device struct {
	ID            string         `gorm:"primaryKey;type:uuid" json:"id"`
	IdentityRef   string         `gorm:"type:text;not null;index" json:"identity_ref"`
	OwnerID       string         `gorm:"type:varchar(12);not null;index" json:"owner_id"`
	UnitID        string         `gorm:"type:uuid;not null;index" json:"unit_id"`
	UnitName      string         `gorm:"type:text" json:"unit_name"`
	OwnerName     string         `gorm:"type:text" json:"owner_name"`
	Status        DeviceStatus   `gorm:"type:text;not null;index" json:"status"`
	AppVersion    string         `gorm:"type:text" json:"app_version"`
	BatteryLevel  *int           `json:"battery_level,omitempty"`
	IsCharging    *bool          `json:"is_charging,omitempty"`
	UpdateStatus  string         `gorm:"type:text" json:"update_status,omitempty"`
	UpdateError   string         `gorm:"type:text" json:"update_error,omitempty"`
	PendingUpdate datatypes.JSON `gorm:"type:jsonb" json:"pending_update,omitempty"`
	RegisteredAt  time.Time      `gorm:"type:timestamp with time zone;not null" json:"registered_at"`
	LastActiveAt  time.Time      `gorm:"type:timestamp with time zone;not null" json:"last_active_at"`
	ReplacedAt    *time.Time     `gorm:"type:timestamp with time zone" json:"replaced_at,omitempty"`
}

func (Device) TableName() string {
	return "devices"
}

// Pending decodes the pending update marker, nil when none is set.
func (d *Device) Pending() *PendingUpdate {
	if len(d.PendingUpdate) == 0 || string(d.PendingUpdate) == "null" {
		return nil
	}
	var p PendingUpdate
	if err := json.Unmarshal(d.PendingUpdate, &p); err != nil {
		return nil
	}
	return &p
}

func (d *Device) SetPending(p *PendingUpdate) {
	if p == nil {
		d.PendingUpdate = nil
		return
	}
	raw, _ := json.Marshal(p)
	d.PendingUpdate = datatypes.JSON(raw)
}

// Telemetry is a partial heartbeat update; nil fields are left untouched.
type Telemetry struct {
	AppVersion   *string
	BatteryLevel *int
	IsCharging   *bool
	UpdateStatus *string
	UpdateError  *string
}

// Apply merges the telemetry into the device.
func (t Telemetry) Apply(d *Device, now time.Time) {
	d.LastActiveAt = now
	if t.AppVersion != nil {
		d.AppVersion = *t.AppVersion
	}
	if t.BatteryLevel != nil {
		d.BatteryLevel = t.BatteryLevel
	}
	if t.IsCharging != nil {
		d.IsCharging = t.IsCharging
	}
	if t.UpdateStatus == nil {
		return
	}
	d.UpdateStatus = *t.UpdateStatus
	switch *t.UpdateStatus {
	case UpdateStatusInstalled:
		d.SetPending(nil)
		d.UpdateError = ""
	case UpdateStatusFailed:
		if t.UpdateError != nil {
			d.UpdateError = *t.UpdateError
		}
	}
}

type DeviceFilter struct {
	BrandID string
	OwnerID string
	Status  DeviceStatus
}
