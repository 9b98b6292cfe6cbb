package dto

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"Xy7#pQ2!mK9a"`
}

type ExchangeTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type CreateTenantRequest struct {
	Email       string `json:"email" binding:"required,email" example:"owner@example.com"`
	DisplayName string `json:"displayName" example:"Villa Owner"`
	BrandID     string `json:"brandId" example:"vesta-lumina"`
	Type        string `json:"type" example:"owner"`
}

type LinkTenantRequest struct {
	TenantID string `json:"tenantId" binding:"required" example:"K7M3PQ2X"`
}

type UpdateTenantStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended" example:"suspended"`
}

type AddAdminRequest struct {
	Email   string `json:"email" binding:"required,email" example:"brand.admin@example.com"`
	Level   int    `json:"level" binding:"required" example:"2"`
	BrandID string `json:"brandId" example:"vesta-lumina"`
}

type CreateBrandRequest struct {
	ID             string `json:"id" binding:"required" example:"sunset-villas"`
	Name           string `json:"name" binding:"required" example:"Sunset Villas"`
	PrimaryColor   string `json:"primaryColor" example:"#D4AF37"`
	SecondaryColor string `json:"secondaryColor" example:"#1A1A1A"`
	SupportEmail   string `json:"supportEmail" example:"support@sunset.example"`
	SupportPhone   string `json:"supportPhone" example:"+385 91 000 0000"`
}

type CreateUnitRequest struct {
	Name string `json:"name" binding:"required" example:"Apartment 2"`
}

type RegisterDeviceRequest struct {
	TenantID string `json:"tenantId" binding:"required" example:"K7M3PQ2X"`
	UnitID   string `json:"unitId" binding:"required" example:"3f1c2f44-5a6b-4c1e-9d7f-0a1b2c3d4e5f"`
}

// HeartbeatRequest fields are optional; absent fields leave stored values untouched.
type HeartbeatRequest struct {
	AppVersion   *string `json:"appVersion" example:"1.2.0"`
	BatteryLevel *int    `json:"batteryLevel" example:"87"`
	IsCharging   *bool   `json:"isCharging" example:"true"`
	UpdateStatus *string `json:"updateStatus" example:"installed"`
	UpdateError  *string `json:"updateError"`
}

type CreateAppVersionRequest struct {
	Version     string `json:"version" binding:"required" example:"1.2.0"`
	DownloadURL string `json:"downloadUrl" binding:"required,url" example:"https://cdn.example.com/vls-1.2.0.apk"`
	ForceUpdate bool   `json:"forceUpdate" example:"false"`
	Notes       string `json:"notes" example:"Bug fixes"`
}

type TranslateHouseRulesRequest struct {
	Text            string   `json:"text" binding:"required" example:"No smoking."`
	SourceLanguage  string   `json:"sourceLanguage" binding:"required" example:"en"`
	TargetLanguages []string `json:"targetLanguages" binding:"required,min=1" example:"hr,de"`
}

type TranslateNotificationRequest struct {
	Text            string   `json:"text" binding:"required" example:"Pool closed for maintenance."`
	SourceLanguage  string   `json:"sourceLanguage" binding:"required" example:"en"`
	TargetLanguages []string `json:"targetLanguages" binding:"required,min=1" example:"hr,de"`
}

// ActionLogQuery is bound from the query string; Limit and Since are parsed
// by the handler so malformed values produce a readable error.
type ActionLogQuery struct {
	Limit      int       `form:"-"`
	ActionType string    `form:"action_type"`
	ActorEmail string    `form:"actor_email"`
	Since      time.Time `form:"-"`
}
