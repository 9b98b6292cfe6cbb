package dto

import (
	"time"
)

type TokenResponse struct {
	IDToken string `json:"idToken"`
}

type PrincipalResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	IsAdmin     bool   `json:"isAdmin"`
	Level       int    `json:"level" example:"3"`
	BrandID     string `json:"brandId,omitempty"`
	IsBootstrap bool   `json:"isBootstrap"`
	Role        string `json:"role,omitempty" example:"owner"`
	OwnerID     string `json:"ownerId,omitempty"`
	UnitID      string `json:"unitId,omitempty"`
}

// CreateTenantResponse carries the one-time temporary credential.
type CreateTenantResponse struct {
	TenantID     string `json:"tenantId" example:"K7M3PQ2X"`
	TempPassword string `json:"tempPassword" example:"Xy7#pQ2!mK9a"`
	BrandID      string `json:"brandId" example:"vesta-lumina"`
	EmailSent    bool   `json:"emailSent"`
}

type TenantResponse struct {
	TenantID    string     `json:"tenantId" example:"K7M3PQ2X"`
	Email       string     `json:"email" example:"owner@example.com"`
	DisplayName string     `json:"displayName" example:"Villa Owner"`
	Type        string     `json:"type" example:"owner"`
	Status      string     `json:"status" example:"active"`
	BrandID     string     `json:"brandId" example:"vesta-lumina"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt" example:"2025-07-17T21:20:48Z"`
	LinkedAt    *time.Time `json:"linkedAt,omitempty" example:"2025-07-18T09:00:00Z"`
}

type LinkTenantResponse struct {
	TenantID string    `json:"tenantId"`
	Status   string    `json:"status" example:"active"`
	LinkedAt time.Time `json:"linkedAt"`
}

type ResetPasswordResponse struct {
	TenantID     string `json:"tenantId"`
	TempPassword string `json:"tempPassword"`
}

type TenantStatusResponse struct {
	TenantID string `json:"tenantId"`
	Status   string `json:"status"`
}

type AdminPrincipalResponse struct {
	Email       string     `json:"email"`
	Level       int        `json:"level"`
	BrandID     string     `json:"brandId,omitempty"`
	Active      bool       `json:"active"`
	IsBootstrap bool       `json:"isBootstrap"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type BrandResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	PrimaryColor   string     `json:"primaryColor,omitempty"`
	SecondaryColor string     `json:"secondaryColor,omitempty"`
	SupportEmail   string     `json:"supportEmail,omitempty"`
	SupportPhone   string     `json:"supportPhone,omitempty"`
	ClientCount    int64      `json:"clientCount"`
	TotalUnits     int64      `json:"totalUnits"`
	TotalBookings  int64      `json:"totalBookings"`
	StatsUpdatedAt *time.Time `json:"statsUpdatedAt,omitempty"`
}

type UnitResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterDeviceResponse struct {
	DeviceID      string `json:"deviceId"`
	IdentityRef   string `json:"identityRef"`
	ExchangeToken string `json:"exchangeToken"`
	ReplacedCount int64  `json:"replacedCount"`
}

type HeartbeatResponse struct {
	PendingUpdate bool   `json:"pendingUpdate"`
	Version       string `json:"version,omitempty" example:"1.2.0"`
	DownloadURL   string `json:"downloadUrl,omitempty"`
	ForceUpdate   bool   `json:"forceUpdate"`
	StaleDevice   bool   `json:"staleDevice"`
}

type DeviceResponse struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"ownerId"`
	UnitID        string     `json:"unitId"`
	UnitName      string     `json:"unitName,omitempty"`
	OwnerName     string     `json:"ownerName,omitempty"`
	Status        string     `json:"status"`
	AppVersion    string     `json:"appVersion"`
	BatteryLevel  *int       `json:"batteryLevel,omitempty"`
	IsCharging    *bool      `json:"isCharging,omitempty"`
	UpdateStatus  string     `json:"updateStatus,omitempty"`
	UpdateError   string     `json:"updateError,omitempty"`
	PendingUpdate bool       `json:"pendingUpdate"`
	RegisteredAt  time.Time  `json:"registeredAt"`
	LastActiveAt  time.Time  `json:"lastActiveAt"`
	ReplacedAt    *time.Time `json:"replacedAt,omitempty"`
}

type AppVersionResponse struct {
	ID               string     `json:"id"`
	Version          string     `json:"version"`
	DownloadURL      string     `json:"downloadUrl"`
	ForceUpdate      bool       `json:"forceUpdate"`
	Notes            string     `json:"notes,omitempty"`
	DistributedCount int64      `json:"distributedCount"`
	DistributedAt    *time.Time `json:"distributedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type DistributeUpdateResponse struct {
	VersionID        string `json:"versionId"`
	Version          string `json:"version"`
	DistributedCount int64  `json:"distributedCount"`
}

// ActionLogResponse represents a single action log entry in the response
type ActionLogResponse struct {
	ID         string                 `json:"id"`
	ActorEmail string                 `json:"actorEmail" example:"vestaluminasystem@gmail.com"`
	ActionType string                 `json:"actionType" example:"create_tenant"`
	TargetID   string                 `json:"targetId,omitempty" example:"K7M3PQ2X"`
	BrandID    string                 `json:"brandId,omitempty" example:"vesta-lumina"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Timestamp  time.Time              `json:"timestamp" example:"2025-07-17T21:20:48Z"`
}

type TranslationResponse struct {
	Translations    map[string]string `json:"translations"`
	FailedLanguages []string          `json:"failedLanguages"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}
