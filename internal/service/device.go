package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

var appVersionPattern = regexp.MustCompile(`^\d+(\.\d+){1,3}$`)

type DeviceService struct {
	repo       repository.Repository
	identities identity.Provider
	resolver   PrincipalResolver
	recorder   ActionRecorder
	batchSize  int
	logger     *logger.Logger
	now        func() time.Time
}

func NewDeviceService(
	repo repository.Repository,
	identities identity.Provider,
	resolver PrincipalResolver,
	recorder ActionRecorder,
	batchSize int,
	logger *logger.Logger,
) *DeviceService {
	if batchSize <= 0 {
		batchSize = 400
	}
	return &DeviceService{
		repo:       repo,
		identities: identities,
		resolver:   resolver,
		recorder:   recorder,
		batchSize:  batchSize,
		logger:     logger,
		now:        time.Now,
	}
}

// Register provisions a device for a unit, replacing any active device of
// that unit. It is called by the tablet itself and carries no bearer token.
func (s *DeviceService) Register(ctx context.Context, req dto.RegisterDeviceRequest) (*dto.RegisterDeviceResponse, error) {
	tenantID := domain.NormalizeTenantID(req.TenantID)
	if !domain.ValidTenantID(tenantID) {
		return nil, domain.InvalidArgument("tenant id must be 6-12 uppercase letters or digits")
	}
	unitID := strings.TrimSpace(req.UnitID)
	if _, err := uuid.Parse(unitID); err != nil {
		return nil, domain.InvalidArgument("unit id is malformed")
	}

	unit, err := s.repo.Unit().GetByID(ctx, unitID)
	if err != nil {
		return nil, storeError(err, "unit not found")
	}
	if unit.OwnerID != tenantID {
		return nil, domain.Conflict("unit does not belong to this tenant", domain.ReasonOwnershipMismatch)
	}
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return nil, storeError(err, "tenant not found")
	}
	if tenant.Status == domain.TenantStatusSuspended {
		return nil, domain.Conflict("tenant is suspended", domain.ReasonTenantSuspended)
	}

	now := s.now().UTC()
	ident, err := s.identities.Create(ctx, identity.CreateParams{
		DisplayName: fmt.Sprintf("Tablet_%s_%d", unitID, now.UnixMilli()),
		Origin:      domain.IdentityOriginDevice,
	})
	if err != nil {
		return nil, err
	}

	claims := domain.Claims{OwnerID: tenantID, UnitID: unitID, Role: domain.RoleDevice}
	if err := s.identities.SetCustomClaims(ctx, ident.UID, claims); err != nil {
		s.discardIdentity(ctx, ident.UID)
		return nil, err
	}

	device := &domain.Device{
		ID:           uuid.New().String(),
		IdentityRef:  ident.UID,
		OwnerID:      tenantID,
		UnitID:       unitID,
		UnitName:     unit.Name,
		OwnerName:    tenant.DisplayName,
		Status:       domain.DeviceStatusActive,
		AppVersion:   domain.InitialDeviceAppVersion,
		RegisteredAt: now,
		LastActiveAt: now,
	}
	replaced, err := s.repo.Device().ReplaceActive(ctx, device)
	if err != nil {
		s.discardIdentity(ctx, ident.UID)
		return nil, storeError(err, "unit not found")
	}

	token, err := s.identities.MintExchangeToken(ctx, ident.UID, claims)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Device registered",
		zap.String("device_id", device.ID),
		zap.String("tenant_id", tenantID),
		zap.String("unit_id", unitID),
		zap.Int64("replaced", replaced),
	)

	return &dto.RegisterDeviceResponse{
		DeviceID:      device.ID,
		IdentityRef:   ident.UID,
		ExchangeToken: token,
		ReplacedCount: replaced,
	}, nil
}

func (s *DeviceService) discardIdentity(ctx context.Context, uid string) {
	if err := s.identities.Delete(ctx, uid); err != nil && !errors.Is(err, identity.ErrIdentityNotFound) {
		s.logger.Warn("Failed to discard device identity", zap.String("uid", uid), zap.Error(err))
	}
}

// Heartbeat merges telemetry into the unit's active device and returns its
// pending update. The device is found by unit, not by caller identity, so a
// replaced tablet still reaches the current record; the reply marks that case.
func (s *DeviceService) Heartbeat(ctx context.Context, caller domain.Caller, req dto.HeartbeatRequest) (*dto.HeartbeatResponse, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	if caller.Claims.Role != domain.RoleDevice || caller.Claims.UnitID == "" {
		return nil, domain.Forbidden("device role required")
	}
	if req.UpdateStatus != nil && !domain.ValidUpdateStatus(*req.UpdateStatus) {
		return nil, domain.InvalidArgument("updateStatus must be downloading, installed or failed")
	}
	if req.BatteryLevel != nil && (*req.BatteryLevel < 0 || *req.BatteryLevel > 100) {
		return nil, domain.InvalidArgument("batteryLevel must be between 0 and 100")
	}

	telemetry := domain.Telemetry{
		AppVersion:   req.AppVersion,
		BatteryLevel: req.BatteryLevel,
		IsCharging:   req.IsCharging,
		UpdateStatus: req.UpdateStatus,
		UpdateError:  req.UpdateError,
	}

	stale := false
	now := s.now().UTC()
	device, err := s.repo.Device().MutateActive(ctx, caller.Claims.UnitID, func(d *domain.Device) error {
		stale = d.IdentityRef != caller.UID
		telemetry.Apply(d, now)
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Heartbeat for unit without active device",
				zap.String("unit_id", caller.Claims.UnitID),
				zap.String("uid", caller.UID),
			)
			return &dto.HeartbeatResponse{}, nil
		}
		return nil, storeError(err, "device not found")
	}

	if stale {
		s.logger.Warn("Heartbeat from replaced device",
			zap.String("unit_id", caller.Claims.UnitID),
			zap.String("uid", caller.UID),
			zap.String("active_device_id", device.ID),
		)
	}

	resp := dto.FromPendingUpdate(device.Pending())
	resp.StaleDevice = stale
	return resp, nil
}

// DistributeUpdate marks every active device with the version's update,
// writing at most batchSize devices per transaction.
func (s *DeviceService) DistributeUpdate(ctx context.Context, caller domain.Caller, versionID string) (*dto.DistributeUpdateResponse, error) {
	actor, err := requireGlobal(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(versionID); err != nil {
		return nil, domain.NotFound("app version not found")
	}

	version, err := s.repo.AppVersion().GetByID(ctx, versionID)
	if err != nil {
		return nil, storeError(err, "app version not found")
	}

	ids, err := s.repo.Device().ListActiveIDs(ctx)
	if err != nil {
		return nil, storeError(err, "devices not found")
	}

	update := version.PendingUpdate()
	var distributed int64
	for start := 0; start < len(ids); start += s.batchSize {
		end := min(start+s.batchSize, len(ids))
		n, err := s.repo.Device().SetPendingUpdate(ctx, ids[start:end], update)
		if err != nil {
			s.logger.Error("Update distribution interrupted", err,
				zap.String("version", version.Version),
				zap.Int64("distributed", distributed),
			)
			return nil, storeError(err, "devices not found")
		}
		distributed += n
	}

	if err := s.repo.AppVersion().MarkDistributed(ctx, version.ID, distributed, s.now().UTC()); err != nil {
		return nil, storeError(err, "app version not found")
	}

	s.recorder.Record(ctx, &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionDistributeUpdate,
		TargetID:   version.ID,
		Details: map[string]interface{}{
			"version":           version.Version,
			"distributed_count": distributed,
			"force_update":      version.ForceUpdate,
		},
	})

	return &dto.DistributeUpdateResponse{
		VersionID:        version.ID,
		Version:          version.Version,
		DistributedCount: distributed,
	}, nil
}

func (s *DeviceService) CreateAppVersion(ctx context.Context, caller domain.Caller, req dto.CreateAppVersionRequest) (*dto.AppVersionResponse, error) {
	actor, err := requireGlobal(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}

	versionName := strings.TrimSpace(req.Version)
	if !appVersionPattern.MatchString(versionName) {
		return nil, domain.InvalidArgument("version must look like 1.2.3")
	}
	if !strings.HasPrefix(req.DownloadURL, "https://") && !strings.HasPrefix(req.DownloadURL, "http://") {
		return nil, domain.InvalidArgument("downloadUrl must be an http(s) URL")
	}

	version := &domain.AppVersion{
		ID:          uuid.New().String(),
		Version:     versionName,
		DownloadURL: req.DownloadURL,
		ForceUpdate: req.ForceUpdate,
		Notes:       req.Notes,
		CreatedBy:   actor.Email,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.AppVersion().Create(ctx, version); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domain.Conflict("app version already exists", "")
		}
		return nil, storeError(err, "app version not found")
	}

	s.recorder.Record(ctx, &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionCreateAppVersion,
		TargetID:   version.ID,
		Details:    map[string]interface{}{"version": versionName, "force_update": req.ForceUpdate},
	})

	resp := dto.FromAppVersion(version)
	return &resp, nil
}

func (s *DeviceService) ListAppVersions(ctx context.Context, caller domain.Caller) ([]dto.AppVersionResponse, error) {
	if _, err := requireAdmin(ctx, s.resolver, caller); err != nil {
		return nil, err
	}
	versions, err := s.repo.AppVersion().List(ctx)
	if err != nil {
		return nil, storeError(err, "app versions not found")
	}
	return dto.FromAppVersions(versions), nil
}

// ListDevices returns devices of the caller's brand, or all for global admins.
func (s *DeviceService) ListDevices(ctx context.Context, caller domain.Caller, status string) ([]dto.DeviceResponse, error) {
	actor, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}
	filter := domain.DeviceFilter{BrandID: actor.ScopeBrand()}
	switch domain.DeviceStatus(status) {
	case "":
	case domain.DeviceStatusActive, domain.DeviceStatusReplaced:
		filter.Status = domain.DeviceStatus(status)
	default:
		return nil, domain.InvalidArgument("status must be active or replaced")
	}

	devices, err := s.repo.Device().List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "devices not found")
	}
	return dto.FromDevices(devices), nil
}
