package domain

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

type ActionType string

const (
	ActionCreateTenant        ActionType = "create_tenant"
	ActionDeleteTenant        ActionType = "delete_tenant"
	ActionResetTenantPassword ActionType = "reset_tenant_password"
	ActionToggleTenantStatus  ActionType = "toggle_tenant_status"
	ActionAddAdmin            ActionType = "add_admin"
	ActionRemoveAdmin         ActionType = "remove_admin"
	ActionCreateBrand         ActionType = "create_brand"
	ActionDistributeUpdate    ActionType = "distribute_update"
	ActionCreateAppVersion    ActionType = "create_app_version"
)

var ValidActionTypes = []ActionType{
	ActionCreateTenant, ActionDeleteTenant, ActionResetTenantPassword, ActionToggleTenantStatus,
	ActionAddAdmin, ActionRemoveAdmin, ActionCreateBrand, ActionDistributeUpdate, ActionCreateAppVersion,
}

func IsValidActionType(actionType string) bool {
	return slices.Contains(ValidActionTypes, ActionType(actionType))
}

// ActionLogEntry records one privileged mutation. Entries are append-only.
type ActionLogEntry struct {
	ID         string            `gorm:"primaryKey;type:uuid" json:"id"`
	ActorEmail string            `gorm:"type:text;not null;index" json:"actor_email"`
	ActionType ActionType        `gorm:"type:text;not null;index" json:"action_type"`
	TargetID   string            `gorm:"type:text" json:"target_id"`
	BrandID    string            `gorm:"type:text;index" json:"brand_id"`
	Details    datatypes.JSONMap `gorm:"type:jsonb" json:"details,omitempty"`
	Timestamp  time.Time         `gorm:"type:timestamp with time zone;not null;index" json:"timestamp"`
}

func (ActionLogEntry) TableName() string {
	return "action_log_entries"
}

type ActionLogFilter struct {
	BrandID    string
	ActorEmail string
	ActionType ActionType
	Since      time.Time
	Limit      int
}

// HasSearchCriteria reports whether the filter narrows by anything beyond brand and limit.
func (f ActionLogFilter) HasSearchCriteria() bool {
	return f.ActorEmail != "" || f.ActionType != "" || !f.Since.IsZero()
}
