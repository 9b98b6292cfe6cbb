package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/mocks"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

const testUnitID = "3f1c2f44-5a6b-4c1e-9d7f-0a1b2c3d4e5f"

type DeviceServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockUnit       *mocks.UnitRepository
	mockTenant     *mocks.TenantRepository
	mockDevice     *mocks.DeviceRepository
	mockVersion    *mocks.AppVersionRepository
	mockIdentities *mocks.IdentityProvider
	mockResolver   *mocks.PrincipalResolver
	mockRecorder   *mocks.ActionRecorder
	service        *DeviceService
}

func (s *DeviceServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUnit = new(mocks.UnitRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockDevice = new(mocks.DeviceRepository)
	s.mockVersion = new(mocks.AppVersionRepository)
	s.mockIdentities = new(mocks.IdentityProvider)
	s.mockResolver = new(mocks.PrincipalResolver)
	s.mockRecorder = new(mocks.ActionRecorder)

	s.mockRepo.On("Unit").Return(s.mockUnit)
	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Device").Return(s.mockDevice)
	s.mockRepo.On("AppVersion").Return(s.mockVersion)

	s.mockResolver.On("Resolve", mock.Anything, "admin@example.com").Return(domain.Principal{
		Email: "admin@example.com", IsAdmin: true, Level: domain.AdminLevelGlobal,
	}, nil).Maybe()
	s.mockResolver.On("Resolve", mock.Anything, "brand@example.com").Return(domain.Principal{
		Email: "brand@example.com", IsAdmin: true, Level: domain.AdminLevelBrand, BrandID: "sunset",
	}, nil).Maybe()
	s.mockRecorder.On("Record", mock.Anything, mock.Anything).Return().Maybe()

	s.service = NewDeviceService(s.mockRepo, s.mockIdentities, s.mockResolver, s.mockRecorder, 2, logger.NewNop())
	s.service.now = func() time.Time { return time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC) }
}

func TestDeviceService(t *testing.T) {
	suite.Run(t, new(DeviceServiceTestSuite))
}

func (s *DeviceServiceTestSuite) TestRegister_Success() {
	// Arrange
	ctx := context.Background()
	claims := domain.Claims{OwnerID: "K7M3PQ2X", UnitID: testUnitID, Role: domain.RoleDevice}
	s.mockUnit.On("GetByID", ctx, testUnitID).Return(&domain.Unit{ID: testUnitID, OwnerID: "K7M3PQ2X", Name: "Apartment 2"}, nil)
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(&domain.Tenant{ID: "K7M3PQ2X", Status: domain.TenantStatusActive, DisplayName: "Villa Owner"}, nil)
	s.mockIdentities.On("Create", ctx, mock.MatchedBy(func(p identity.CreateParams) bool {
		return p.Email == "" && p.Origin == domain.IdentityOriginDevice
	})).Return(&domain.Identity{UID: "dev-1"}, nil)
	s.mockIdentities.On("SetCustomClaims", ctx, "dev-1", claims).Return(nil)
	s.mockDevice.On("ReplaceActive", ctx, mock.MatchedBy(func(d *domain.Device) bool {
		return d.Status == domain.DeviceStatusActive && d.IdentityRef == "dev-1" &&
			d.AppVersion == domain.InitialDeviceAppVersion && d.UnitName == "Apartment 2"
	})).Return(int64(1), nil)
	s.mockIdentities.On("MintExchangeToken", ctx, "dev-1", claims).Return("exchange-token", nil)

	// Act
	resp, err := s.service.Register(ctx, dto.RegisterDeviceRequest{TenantID: "k7m3pq2x", UnitID: testUnitID})

	// Assert
	s.Require().NoError(err)
	s.Equal("dev-1", resp.IdentityRef)
	s.Equal("exchange-token", resp.ExchangeToken)
	s.Equal(int64(1), resp.ReplacedCount)
	s.NotEmpty(resp.DeviceID)
	s.mockIdentities.AssertExpectations(s.T())
	s.mockDevice.AssertExpectations(s.T())
}

func (s *DeviceServiceTestSuite) TestRegister_OwnershipMismatch() {
	// Arrange
	ctx := context.Background()
	s.mockUnit.On("GetByID", ctx, testUnitID).Return(&domain.Unit{ID: testUnitID, OwnerID: "R8T4WZ6N"}, nil)

	// Act
	_, err := s.service.Register(ctx, dto.RegisterDeviceRequest{TenantID: "K7M3PQ2X", UnitID: testUnitID})

	// Assert
	var de *domain.Error
	s.Require().ErrorAs(err, &de)
	s.Equal(domain.ReasonOwnershipMismatch, de.Reason)
	s.mockIdentities.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *DeviceServiceTestSuite) TestRegister_SuspendedTenant() {
	// Arrange
	ctx := context.Background()
	s.mockUnit.On("GetByID", ctx, testUnitID).Return(&domain.Unit{ID: testUnitID, OwnerID: "K7M3PQ2X"}, nil)
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(&domain.Tenant{ID: "K7M3PQ2X", Status: domain.TenantStatusSuspended}, nil)

	// Act
	_, err := s.service.Register(ctx, dto.RegisterDeviceRequest{TenantID: "K7M3PQ2X", UnitID: testUnitID})

	// Assert
	var de *domain.Error
	s.Require().ErrorAs(err, &de)
	s.Equal(domain.ReasonTenantSuspended, de.Reason)
}

func (s *DeviceServiceTestSuite) TestRegister_MalformedInput() {
	_, err := s.service.Register(context.Background(), dto.RegisterDeviceRequest{TenantID: "bad", UnitID: testUnitID})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))

	_, err = s.service.Register(context.Background(), dto.RegisterDeviceRequest{TenantID: "K7M3PQ2X", UnitID: "unit-1"})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))
}

func (s *DeviceServiceTestSuite) TestRegister_StoreFailureDiscardsIdentity() {
	// Arrange
	ctx := context.Background()
	s.mockUnit.On("GetByID", ctx, testUnitID).Return(&domain.Unit{ID: testUnitID, OwnerID: "K7M3PQ2X"}, nil)
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(&domain.Tenant{ID: "K7M3PQ2X", Status: domain.TenantStatusActive}, nil)
	s.mockIdentities.On("Create", ctx, mock.Anything).Return(&domain.Identity{UID: "dev-1"}, nil)
	s.mockIdentities.On("SetCustomClaims", ctx, "dev-1", mock.Anything).Return(nil)
	s.mockDevice.On("ReplaceActive", ctx, mock.Anything).Return(int64(0), errors.New("deadlock detected"))
	s.mockIdentities.On("Delete", ctx, "dev-1").Return(nil)

	// Act
	_, err := s.service.Register(ctx, dto.RegisterDeviceRequest{TenantID: "K7M3PQ2X", UnitID: testUnitID})

	// Assert
	s.True(domain.IsKind(err, domain.KindUnavailable))
	s.mockIdentities.AssertExpectations(s.T())
}

func deviceCaller(uid string) domain.Caller {
	return domain.Caller{
		UID:    uid,
		Claims: domain.Claims{OwnerID: "K7M3PQ2X", UnitID: testUnitID, Role: domain.RoleDevice},
	}
}

func (s *DeviceServiceTestSuite) TestHeartbeat_MergesTelemetryAndReturnsPending() {
	// Arrange
	ctx := context.Background()
	device := &domain.Device{ID: "d-1", IdentityRef: "dev-1", AppVersion: "1.0.0"}
	device.SetPending(&domain.PendingUpdate{VersionID: "v-1", Version: "1.2.0", DownloadURL: "https://cdn/x.apk", ForceUpdate: true})
	s.mockDevice.On("MutateActive", ctx, testUnitID, mock.Anything).Return(
		func(_ context.Context, _ string, fn repository.DeviceMutation) (*domain.Device, error) {
			return device, fn(device)
		})
	battery := 42

	// Act
	resp, err := s.service.Heartbeat(ctx, deviceCaller("dev-1"), dto.HeartbeatRequest{BatteryLevel: &battery})

	// Assert
	s.Require().NoError(err)
	s.True(resp.PendingUpdate)
	s.Equal("1.2.0", resp.Version)
	s.True(resp.ForceUpdate)
	s.False(resp.StaleDevice)
	s.Equal(42, *device.BatteryLevel)
	s.Equal("1.0.0", device.AppVersion)
}

func (s *DeviceServiceTestSuite) TestHeartbeat_InstalledClearsPending() {
	// Arrange
	ctx := context.Background()
	device := &domain.Device{ID: "d-1", IdentityRef: "dev-1", UpdateError: "old"}
	device.SetPending(&domain.PendingUpdate{Version: "1.2.0"})
	s.mockDevice.On("MutateActive", ctx, testUnitID, mock.Anything).Return(
		func(_ context.Context, _ string, fn repository.DeviceMutation) (*domain.Device, error) {
			return device, fn(device)
		})
	installed := domain.UpdateStatusInstalled
	version := "1.2.0"

	// Act
	resp, err := s.service.Heartbeat(ctx, deviceCaller("dev-1"), dto.HeartbeatRequest{UpdateStatus: &installed, AppVersion: &version})

	// Assert
	s.Require().NoError(err)
	s.False(resp.PendingUpdate)
	s.Nil(device.Pending())
	s.Empty(device.UpdateError)
	s.Equal("1.2.0", device.AppVersion)
}

func (s *DeviceServiceTestSuite) TestHeartbeat_ReplacedDeviceIsStale() {
	// Arrange
	ctx := context.Background()
	device := &domain.Device{ID: "d-2", IdentityRef: "dev-2"}
	s.mockDevice.On("MutateActive", ctx, testUnitID, mock.Anything).Return(
		func(_ context.Context, _ string, fn repository.DeviceMutation) (*domain.Device, error) {
			return device, fn(device)
		})

	// Act
	resp, err := s.service.Heartbeat(ctx, deviceCaller("dev-1"), dto.HeartbeatRequest{})

	// Assert
	s.Require().NoError(err)
	s.True(resp.StaleDevice)
}

func (s *DeviceServiceTestSuite) TestHeartbeat_NoActiveDevice() {
	// Arrange
	ctx := context.Background()
	s.mockDevice.On("MutateActive", ctx, testUnitID, mock.Anything).Return(nil, repository.ErrNotFound)

	// Act
	resp, err := s.service.Heartbeat(ctx, deviceCaller("dev-1"), dto.HeartbeatRequest{})

	// Assert
	s.Require().NoError(err)
	s.False(resp.PendingUpdate)
}

func (s *DeviceServiceTestSuite) TestHeartbeat_Validation() {
	ctx := context.Background()

	_, err := s.service.Heartbeat(ctx, domain.Caller{UID: "u-owner", Claims: domain.Claims{Role: domain.RoleOwner}}, dto.HeartbeatRequest{})
	s.True(domain.IsKind(err, domain.KindForbidden))

	bad := "exploded"
	_, err = s.service.Heartbeat(ctx, deviceCaller("dev-1"), dto.HeartbeatRequest{UpdateStatus: &bad})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))

	battery := 101
	_, err = s.service.Heartbeat(ctx, deviceCaller("dev-1"), dto.HeartbeatRequest{BatteryLevel: &battery})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))
}

func (s *DeviceServiceTestSuite) TestDistributeUpdate_WritesInBatches() {
	// Arrange
	ctx := context.Background()
	versionID := "6b0e2f8a-1c2d-4e3f-8a9b-0c1d2e3f4a5b"
	s.mockVersion.On("GetByID", ctx, versionID).Return(&domain.AppVersion{ID: versionID, Version: "1.2.0"}, nil)
	s.mockDevice.On("ListActiveIDs", ctx).Return([]string{"a", "b", "c", "d", "e"}, nil)
	s.mockDevice.On("SetPendingUpdate", ctx, []string{"a", "b"}, mock.Anything).Return(int64(2), nil).Once()
	s.mockDevice.On("SetPendingUpdate", ctx, []string{"c", "d"}, mock.Anything).Return(int64(2), nil).Once()
	s.mockDevice.On("SetPendingUpdate", ctx, []string{"e"}, mock.Anything).Return(int64(1), nil).Once()
	s.mockVersion.On("MarkDistributed", ctx, versionID, int64(5), mock.AnythingOfType("time.Time")).Return(nil)

	// Act
	resp, err := s.service.DistributeUpdate(ctx, globalAdmin, versionID)

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(5), resp.DistributedCount)
	s.mockDevice.AssertExpectations(s.T())
	s.mockVersion.AssertExpectations(s.T())
}

func (s *DeviceServiceTestSuite) TestDistributeUpdate_BrandAdminForbidden() {
	// Act
	_, err := s.service.DistributeUpdate(context.Background(), brandAdmin, "6b0e2f8a-1c2d-4e3f-8a9b-0c1d2e3f4a5b")

	// Assert
	s.True(domain.IsKind(err, domain.KindForbidden))
}

func (s *DeviceServiceTestSuite) TestCreateAppVersion_Validation() {
	_, err := s.service.CreateAppVersion(context.Background(), globalAdmin, dto.CreateAppVersionRequest{
		Version: "latest", DownloadURL: "https://cdn/x.apk",
	})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))

	_, err = s.service.CreateAppVersion(context.Background(), globalAdmin, dto.CreateAppVersionRequest{
		Version: "1.2.0", DownloadURL: "ftp://cdn/x.apk",
	})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))
}

func (s *DeviceServiceTestSuite) TestCreateAppVersion_Duplicate() {
	// Arrange
	ctx := context.Background()
	s.mockVersion.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateKey)

	// Act
	_, err := s.service.CreateAppVersion(ctx, globalAdmin, dto.CreateAppVersionRequest{Version: "1.2.0", DownloadURL: "https://cdn/x.apk"})

	// Assert
	s.True(domain.IsKind(err, domain.KindConflict))
}

func (s *DeviceServiceTestSuite) TestListDevices_ScopedAndFiltered() {
	// Arrange
	ctx := context.Background()
	s.mockDevice.On("List", ctx, domain.DeviceFilter{BrandID: "sunset", Status: domain.DeviceStatusActive}).
		Return([]domain.Device{{ID: "d-1", Status: domain.DeviceStatusActive}}, nil)

	// Act
	result, err := s.service.ListDevices(ctx, brandAdmin, "active")

	// Assert
	s.Require().NoError(err)
	s.Len(result, 1)

	_, err = s.service.ListDevices(ctx, brandAdmin, "broken")
	s.True(domain.IsKind(err, domain.KindInvalidArgument))
}

// memoryDevices keeps devices in a map and replaces under a lock, the way the
// row lock serializes registrations in the database.
type memoryDevices struct {
	mu      sync.Mutex
	devices []*domain.Device
}

func (m *memoryDevices) ReplaceActive(_ context.Context, device *domain.Device) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var replaced int64
	for _, d := range m.devices {
		if d.UnitID == device.UnitID && d.Status == domain.DeviceStatusActive {
			d.Status = domain.DeviceStatusReplaced
			replaced++
		}
	}
	m.devices = append(m.devices, device)
	return replaced, nil
}

func (m *memoryDevices) MutateActive(context.Context, string, repository.DeviceMutation) (*domain.Device, error) {
	return nil, repository.ErrNotFound
}

func (m *memoryDevices) ListActiveIDs(context.Context) ([]string, error) { return nil, nil }

func (m *memoryDevices) SetPendingUpdate(context.Context, []string, *domain.PendingUpdate) (int64, error) {
	return 0, nil
}

func (m *memoryDevices) List(context.Context, domain.DeviceFilter) ([]domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Device, 0, len(m.devices))
	for _, d := range m.devices {
		out = append(out, *d)
	}
	return out, nil
}

func TestRegister_ConcurrentLeavesOneActiveDevice(t *testing.T) {
	ctx := context.Background()
	devices := &memoryDevices{}
	repo := new(mocks.Repository)
	units := new(mocks.UnitRepository)
	tenants := new(mocks.TenantRepository)
	identities := new(mocks.IdentityProvider)

	repo.On("Unit").Return(units)
	repo.On("Tenant").Return(tenants)
	repo.On("Device").Return(devices)
	units.On("GetByID", ctx, testUnitID).Return(&domain.Unit{ID: testUnitID, OwnerID: "K7M3PQ2X"}, nil)
	tenants.On("GetByID", ctx, "K7M3PQ2X").Return(&domain.Tenant{ID: "K7M3PQ2X", Status: domain.TenantStatusActive}, nil)

	var seq atomic.Int64
	identities.On("Create", ctx, mock.Anything).Return(func(context.Context, identity.CreateParams) (*domain.Identity, error) {
		return &domain.Identity{UID: fmt.Sprintf("dev-%d", seq.Add(1))}, nil
	})
	identities.On("SetCustomClaims", ctx, mock.Anything, mock.Anything).Return(nil)
	identities.On("MintExchangeToken", ctx, mock.Anything, mock.Anything).Return("token", nil)

	svc := NewDeviceService(repo, identities, new(mocks.PrincipalResolver), new(mocks.ActionRecorder), 0, logger.NewNop())

	const registrations = 8
	var wg sync.WaitGroup
	for i := 0; i < registrations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, dto.RegisterDeviceRequest{TenantID: "K7M3PQ2X", UnitID: testUnitID})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, _ := devices.List(ctx, domain.DeviceFilter{})
	active := 0
	for _, d := range all {
		if d.Status == domain.DeviceStatusActive {
			active++
		}
	}
	assert.Len(t, all, registrations)
	assert.Equal(t, 1, active)
}
