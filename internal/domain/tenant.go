package domain

import (
	"regexp"
	"strings"
	"time"
)

type TenantStatus string

const (
	TenantStatusPending   TenantStatus = "pending"
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
)

const DefaultTenantType = "owner"

var tenantIDPattern = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)

// Tenant is a property-owner account. ID is the human-typable tenant id.
type Tenant struct {
	ID          string       `gorm:"primaryKey;type:varchar(12)" json:"tenant_id"`
	IdentityRef string       `gorm:"type:text;not null;index" json:"identity_ref"`
	Email       string       `gorm:"type:text;not null;index" json:"email"`
	DisplayName string       `gorm:"type:text" json:"display_name"`
	TenantType  string       `gorm:"type:text;not null;default:'owner'" json:"tenant_type"`
	Status      TenantStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	BrandID     string       `gorm:"type:text;not null;index" json:"brand_id"`
	CreatedBy   string       `gorm:"type:text" json:"created_by"`
	LinkedAt    *time.Time   `gorm:"type:timestamp with time zone" json:"linked_at,omitempty"`
	CreatedAt   time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// ValidTenantID reports whether id has the tenant id shape.
func ValidTenantID(id string) bool {
	return tenantIDPattern.MatchString(id)
}

// NormalizeTenantID trims and upper-cases a tenant id typed by a person.
func NormalizeTenantID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// CheckTransition validates moving the tenant to status. A tenant must have
// been linked before it can be suspended or reactivated.
func (t *Tenant) CheckTransition(status TenantStatus) error {
	switch status {
	case TenantStatusActive, TenantStatusSuspended:
	default:
		return InvalidArgument("status must be active or suspended")
	}
	if t.LinkedAt == nil || t.Status == TenantStatusPending {
		return Conflict("tenant has not been linked yet", ReasonInvalidTransition)
	}
	return nil
}

type TenantFilter struct {
	BrandID       string
	Status        TenantStatus
	CreatedBefore time.Time
	Limit         int
}
