package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Identity origins, used to decide which records reconciliation may collect.
const (
	IdentityOriginTenant = "tenant"
	IdentityOriginDevice = "device"
	IdentityOriginManual = "manual"
)

// Identity is an authenticatable principal held by the identity provider.
type Identity struct {
	UID           string            `gorm:"primaryKey;type:uuid" json:"uid"`
	Email         *string           `gorm:"type:text;uniqueIndex" json:"email,omitempty"`
	DisplayName   string            `gorm:"type:text" json:"display_name"`
	PasswordHash  string            `gorm:"type:text" json:"-"`
	EmailVerified bool              `gorm:"not null;default:false" json:"email_verified"`
	Disabled      bool              `gorm:"not null;default:false" json:"disabled"`
	CustomClaims  datatypes.JSONMap `gorm:"type:jsonb" json:"custom_claims,omitempty"`
	Origin        string            `gorm:"type:text;not null;default:'manual'" json:"origin"`
	CreatedAt     time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Identity) TableName() string {
	return "identities"
}

func (i *Identity) EmailAddress() string {
	if i.Email == nil {
		return ""
	}
	return *i.Email
}

// Claims are the custom claims attached to an identity.
type Claims struct {
	OwnerID string `json:"ownerId,omitempty"`
	UnitID  string `json:"unitId,omitempty"`
	Role    Role   `json:"role,omitempty"`
}

func (c Claims) ToMap() datatypes.JSONMap {
	m := datatypes.JSONMap{}
	if c.OwnerID != "" {
		m["ownerId"] = c.OwnerID
	}
	if c.UnitID != "" {
		m["unitId"] = c.UnitID
	}
	if c.Role != "" {
		m["role"] = string(c.Role)
	}
	return m
}

func ClaimsFromMap(m map[string]interface{}) Claims {
	str := func(k string) string {
		v, _ := m[k].(string)
		return v
	}
	return Claims{
		OwnerID: str("ownerId"),
		UnitID:  str("unitId"),
		Role:    Role(str("role")),
	}
}

// Caller is the verified bearer of a request.
type Caller struct {
	UID    string
	Email  string
	Claims Claims
}
