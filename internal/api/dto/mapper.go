package dto

import (
	"github.com/vestalumina/vls-api/internal/domain"
)

func FromTenant(t *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		TenantID:    t.ID,
		Email:       t.Email,
		DisplayName: t.DisplayName,
		Type:        t.TenantType,
		Status:      string(t.Status),
		BrandID:     t.BrandID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		LinkedAt:    t.LinkedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = *FromTenant(&tenants[i])
	}
	return out
}

func FromAdminPrincipal(p *domain.AdminPrincipal) AdminPrincipalResponse {
	resp := AdminPrincipalResponse{
		Email:     p.Email,
		Level:     int(p.Level),
		Active:    p.Active,
		CreatedBy: p.CreatedBy,
	}
	if p.BrandID != nil {
		resp.BrandID = *p.BrandID
	}
	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func FromBrand(b *domain.Brand) BrandResponse {
	return BrandResponse{
		ID:             b.ID,
		Name:           b.Name,
		PrimaryColor:   b.PrimaryColor,
		SecondaryColor: b.SecondaryColor,
		SupportEmail:   b.SupportEmail,
		SupportPhone:   b.SupportPhone,
		ClientCount:    b.ClientCount,
		TotalUnits:     b.TotalUnits,
		TotalBookings:  b.TotalBookings,
		StatsUpdatedAt: b.StatsUpdatedAt,
	}
}

func FromBrands(brands []domain.Brand) []BrandResponse {
	out := make([]BrandResponse, len(brands))
	for i := range brands {
		out[i] = FromBrand(&brands[i])
	}
	return out
}

func FromUnit(u *domain.Unit) UnitResponse {
	return UnitResponse{
		ID:        u.ID,
		OwnerID:   u.OwnerID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func FromUnits(units []domain.Unit) []UnitResponse {
	out := make([]UnitResponse, len(units))
	for i := range units {
		out[i] = FromUnit(&units[i])
	}
	return out
}

func FromDevice(d *domain.Device) DeviceResponse {
	return DeviceResponse{
		ID:            d.ID,
		OwnerID:       d.OwnerID,
		UnitID:        d.UnitID,
		UnitName:      d.UnitName,
		OwnerName:     d.OwnerName,
		Status:        string(d.Status),
		AppVersion:    d.AppVersion,
		BatteryLevel:  d.BatteryLevel,
		IsCharging:    d.IsCharging,
		UpdateStatus:  d.UpdateStatus,
		UpdateError:   d.UpdateError,
		PendingUpdate: d.Pending() != nil,
		RegisteredAt:  d.RegisteredAt,
		LastActiveAt:  d.LastActiveAt,
		ReplacedAt:    d.ReplacedAt,
	}
}

func FromDevices(devices []domain.Device) []DeviceResponse {
	out := make([]DeviceResponse, len(devices))
	for i := range devices {
		out[i] = FromDevice(&devices[i])
	}
	return out
}

// FromPendingUpdate builds the heartbeat reply; a nil update yields pendingUpdate=false.
func FromPendingUpdate(p *domain.PendingUpdate) *HeartbeatResponse {
	if p == nil {
		return &HeartbeatResponse{}
	}
	return &HeartbeatResponse{
		PendingUpdate: true,
		Version:       p.Version,
		DownloadURL:   p.DownloadURL,
		ForceUpdate:   p.ForceUpdate,
	}
}

func FromAppVersion(v *domain.AppVersion) AppVersionResponse {
	return AppVersionResponse{
		ID:               v.ID,
		Version:          v.Version,
		DownloadURL:      v.DownloadURL,
		ForceUpdate:      v.ForceUpdate,
		Notes:            v.Notes,
		DistributedCount: v.DistributedCount,
		DistributedAt:    v.DistributedAt,
		CreatedAt:        v.CreatedAt,
	}
}

func FromAppVersions(versions []domain.AppVersion) []AppVersionResponse {
	out := make([]AppVersionResponse, len(versions))
	for i := range versions {
		out[i] = FromAppVersion(&versions[i])
	}
	return out
}

// FromActionLogEntry converts an ActionLogEntry domain model to an ActionLogResponse DTO
func FromActionLogEntry(e *domain.ActionLogEntry) *ActionLogResponse {
	return &ActionLogResponse{
		ID:         e.ID,
		ActorEmail: e.ActorEmail,
		ActionType: string(e.ActionType),
		TargetID:   e.TargetID,
		BrandID:    e.BrandID,
		Details:    e.Details,
		Timestamp:  e.Timestamp,
	}
}

// FromActionLogEntries converts a slice of ActionLogEntry domain models to ActionLogResponse DTOs
func FromActionLogEntries(entries []domain.ActionLogEntry) []ActionLogResponse {
	out := make([]ActionLogResponse, len(entries))
	for i := range entries {
		out[i] = *FromActionLogEntry(&entries[i])
	}
	return out
}
