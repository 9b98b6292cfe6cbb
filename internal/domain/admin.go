package domain

import (
	"strings"
	"time"
)

// AdminLevel is the privilege level of an administrative principal.
type AdminLevel int

const (
	AdminLevelNone   AdminLevel = 0
	AdminLevelBrand  AdminLevel = 2
	AdminLevelGlobal AdminLevel = 3
)

func (l AdminLevel) Valid() bool {
	return l == AdminLevelBrand || l == AdminLevelGlobal
}

// AdminPrincipal is a stored admin grant keyed by normalized email.
type AdminPrincipal struct {
	Email     string     `gorm:"primaryKey;type:text" json:"email"`
	Level     AdminLevel `gorm:"not null" json:"level"`
	BrandID   *string    `gorm:"type:text;index" json:"brand_id"`
	Active    bool       `gorm:"not null;default:true" json:"active"`
	CreatedBy string     `gorm:"type:text" json:"created_by"`
	CreatedAt time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AdminPrincipal) TableName() string {
	return "admin_principals"
}

// Principal is the resolved admin standing of a caller.
type Principal struct {
	Email       string     `json:"email"`
	IsAdmin     bool       `json:"is_admin"`
	Level       AdminLevel `json:"level"`
	BrandID     string     `json:"brand_id,omitempty"`
	IsBootstrap bool       `json:"is_bootstrap"`
}

func (p Principal) IsGlobalAdmin() bool {
	return p.IsAdmin && p.Level >= AdminLevelGlobal
}

// CanActOnBrand reports whether the principal may act on records of brandID.
func (p Principal) CanActOnBrand(brandID string) bool {
	if !p.IsAdmin {
		return false
	}
	if p.IsGlobalAdmin() {
		return true
	}
	return p.BrandID != "" && p.BrandID == brandID
}

// ScopeBrand returns the brand filter list queries must apply, empty for global admins.
func (p Principal) ScopeBrand() string {
	if p.IsGlobalAdmin() {
		return ""
	}
	return p.BrandID
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type AdminPrincipalFilter struct {
	BrandID string
}
