package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/mocks"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockTenant     *mocks.TenantRepository
	mockBrand      *mocks.BrandRepository
	mockIdentities *mocks.IdentityProvider
	mockResolver   *mocks.PrincipalResolver
	mockRecorder   *mocks.ActionRecorder
	mockSQS        *mocks.SQSService
	mockNotifier   *mocks.TenantNotifier
	service        *TenantService

	ids []string
	now time.Time
}

var (
	globalAdmin = domain.Caller{UID: "u-admin", Email: "admin@example.com"}
	brandAdmin  = domain.Caller{UID: "u-brand", Email: "brand@example.com"}
	ownerCaller = domain.Caller{UID: "u-owner", Email: "owner@example.com"}
)

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockBrand = new(mocks.BrandRepository)
	s.mockIdentities = new(mocks.IdentityProvider)
	s.mockResolver = new(mocks.PrincipalResolver)
	s.mockRecorder = new(mocks.ActionRecorder)
	s.mockSQS = new(mocks.SQSService)
	s.mockNotifier = new(mocks.TenantNotifier)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Brand").Return(s.mockBrand)

	s.mockResolver.On("Resolve", mock.Anything, "admin@example.com").Return(domain.Principal{
		Email: "admin@example.com", IsAdmin: true, Level: domain.AdminLevelGlobal,
	}, nil).Maybe()
	s.mockResolver.On("Resolve", mock.Anything, "brand@example.com").Return(domain.Principal{
		Email: "brand@example.com", IsAdmin: true, Level: domain.AdminLevelBrand, BrandID: "sunset",
	}, nil).Maybe()
	s.mockResolver.On("Resolve", mock.Anything, "owner@example.com").Return(domain.Principal{
		Email: "owner@example.com",
	}, nil).Maybe()

	s.mockRecorder.On("Record", mock.Anything, mock.AnythingOfType("*domain.ActionLogEntry")).Return().Maybe()
	s.mockSQS.On("SendBrandStatsMessage", mock.Anything, mock.Anything).Return(nil).Maybe()

	s.service = NewTenantService(
		s.mockRepo,
		s.mockIdentities,
		s.mockResolver,
		s.mockRecorder,
		s.mockSQS,
		s.mockNotifier,
		&config.Config{DefaultBrandID: "vesta-lumina"},
		logger.NewNop(),
	)

	s.ids = []string{"K7M3PQ2X", "R8T4WZ6N", "B2C3D4E5"}
	s.service.newTenantID = func() (string, error) {
		id := s.ids[0]
		s.ids = s.ids[1:]
		return id, nil
	}
	s.service.newPassword = func() (string, error) { return "Xy7#pQ2!mK9a", nil }
	s.now = time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func linkedTenant(id, brandID string, status domain.TenantStatus) *domain.Tenant {
	linkedAt := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Tenant{
		ID:          id,
		IdentityRef: "ident-" + id,
		Email:       "owner@example.com",
		Status:      status,
		BrandID:     brandID,
		LinkedAt:    &linkedAt,
	}
}

func (s *TenantServiceTestSuite) TestCreate_Success_DefaultsBrandAndSendsWelcome() {
	// Arrange
	ctx := context.Background()
	s.mockBrand.On("GetByID", ctx, "vesta-lumina").Return(&domain.Brand{ID: "vesta-lumina"}, nil)
	s.mockIdentities.On("Create", ctx, identity.CreateParams{
		Email:         "owner@example.com",
		Password:      "Xy7#pQ2!mK9a",
		DisplayName:   "owner",
		EmailVerified: true,
		Origin:        domain.IdentityOriginTenant,
	}).Return(&domain.Identity{UID: "ident-1"}, nil)
	s.mockTenant.On("CreateIfAbsent", ctx, mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.ID == "K7M3PQ2X" && t.IdentityRef == "ident-1" && t.Status == domain.TenantStatusPending &&
			t.TenantType == domain.DefaultTenantType && t.CreatedBy == "admin@example.com"
	}), mock.AnythingOfType("*domain.TenantSettings")).Return(nil)
	s.mockNotifier.On("SendWelcome", ctx, mock.AnythingOfType("*domain.Tenant")).Return(true)

	// Act
	resp, err := s.service.Create(ctx, globalAdmin, dto.CreateTenantRequest{Email: " Owner@Example.com "})

	// Assert
	s.Require().NoError(err)
	s.Equal("K7M3PQ2X", resp.TenantID)
	s.Equal("Xy7#pQ2!mK9a", resp.TempPassword)
	s.Equal("vesta-lumina", resp.BrandID)
	s.True(resp.EmailSent)
	s.mockTenant.AssertExpectations(s.T())
	s.mockIdentities.AssertExpectations(s.T())
	s.mockRecorder.AssertCalled(s.T(), "Record", ctx, mock.MatchedBy(func(e *domain.ActionLogEntry) bool {
		return e.ActionType == domain.ActionCreateTenant && e.TargetID == "K7M3PQ2X"
	}))
	s.mockSQS.AssertCalled(s.T(), "SendBrandStatsMessage", ctx, "vesta-lumina")
}

func (s *TenantServiceTestSuite) TestCreate_RetriesOnceOnCollision() {
	// Arrange
	ctx := context.Background()
	s.mockBrand.On("GetByID", ctx, "vesta-lumina").Return(&domain.Brand{ID: "vesta-lumina"}, nil)
	s.mockIdentities.On("Create", ctx, mock.Anything).Return(&domain.Identity{UID: "ident-1"}, nil)
	s.mockTenant.On("CreateIfAbsent", ctx, mock.MatchedBy(func(t *domain.Tenant) bool { return t.ID == "K7M3PQ2X" }), mock.Anything).
		Return(repository.ErrDuplicateKey).Once()
	s.mockTenant.On("CreateIfAbsent", ctx, mock.MatchedBy(func(t *domain.Tenant) bool { return t.ID == "R8T4WZ6N" }), mock.Anything).
		Return(nil).Once()
	s.mockNotifier.On("SendWelcome", ctx, mock.Anything).Return(false)

	// Act
	resp, err := s.service.Create(ctx, globalAdmin, dto.CreateTenantRequest{Email: "owner@example.com"})

	// Assert
	s.Require().NoError(err)
	s.Equal("R8T4WZ6N", resp.TenantID)
	s.False(resp.EmailSent)
	s.mockTenant.AssertNumberOfCalls(s.T(), "CreateIfAbsent", 2)
}

func (s *TenantServiceTestSuite) TestCreate_CollisionTwiceIsResourceExhaustedAndRollsBackIdentity() {
	// Arrange
	ctx := context.Background()
	s.mockBrand.On("GetByID", ctx, "vesta-lumina").Return(&domain.Brand{ID: "vesta-lumina"}, nil)
	s.mockIdentities.On("Create", ctx, mock.Anything).Return(&domain.Identity{UID: "ident-1"}, nil)
	s.mockTenant.On("CreateIfAbsent", ctx, mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey)
	s.mockIdentities.On("Delete", ctx, "ident-1").Return(nil)

	// Act
	resp, err := s.service.Create(ctx, globalAdmin, dto.CreateTenantRequest{Email: "owner@example.com"})

	// Assert
	s.Nil(resp)
	s.True(domain.IsKind(err, domain.KindResourceExhausted))
	s.mockTenant.AssertNumberOfCalls(s.T(), "CreateIfAbsent", tenantIDAttempts)
	s.mockIdentities.AssertExpectations(s.T())
	s.mockRecorder.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
	s.mockNotifier.AssertNotCalled(s.T(), "SendWelcome", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestCreate_BrandAdminCannotTargetOtherBrand() {
	// Act
	_, err := s.service.Create(context.Background(), brandAdmin, dto.CreateTenantRequest{
		Email:   "owner@example.com",
		BrandID: "vesta-lumina",
	})

	// Assert
	s.True(domain.IsKind(err, domain.KindForbidden))
	s.mockIdentities.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestCreate_BrandAdminDefaultsToOwnBrand() {
	// Arrange
	ctx := context.Background()
	s.mockBrand.On("GetByID", ctx, "sunset").Return(&domain.Brand{ID: "sunset"}, nil)
	s.mockIdentities.On("Create", ctx, mock.Anything).Return(&domain.Identity{UID: "ident-1"}, nil)
	s.mockTenant.On("CreateIfAbsent", ctx, mock.MatchedBy(func(t *domain.Tenant) bool { return t.BrandID == "sunset" }), mock.Anything).
		Return(nil)
	s.mockNotifier.On("SendWelcome", ctx, mock.Anything).Return(true)

	// Act
	resp, err := s.service.Create(ctx, brandAdmin, dto.CreateTenantRequest{Email: "owner@example.com"})

	// Assert
	s.Require().NoError(err)
	s.Equal("sunset", resp.BrandID)
}

func (s *TenantServiceTestSuite) TestCreate_UnknownBrandIsInvalidArgument() {
	// Arrange
	ctx := context.Background()
	s.mockBrand.On("GetByID", ctx, "nope").Return(nil, repository.ErrNotFound)

	// Act
	_, err := s.service.Create(ctx, globalAdmin, dto.CreateTenantRequest{Email: "owner@example.com", BrandID: "nope"})

	// Assert
	s.True(domain.IsKind(err, domain.KindInvalidArgument))
}

func (s *TenantServiceTestSuite) TestCreate_NonAdminForbidden() {
	// Act
	_, err := s.service.Create(context.Background(), ownerCaller, dto.CreateTenantRequest{Email: "x@example.com"})

	// Assert
	s.True(domain.IsKind(err, domain.KindForbidden))
}

func (s *TenantServiceTestSuite) TestLinkIdentity_Success() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "K7M3PQ2X", Email: "owner@example.com", Status: domain.TenantStatusPending}
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(tenant, nil)
	s.mockIdentities.On("SetCustomClaims", ctx, "u-owner", domain.Claims{OwnerID: "K7M3PQ2X", Role: domain.RoleOwner}).Return(nil)
	s.mockTenant.On("Mutate", ctx, "K7M3PQ2X", mock.Anything).Return(
		func(_ context.Context, _ string, fn repository.TenantMutation) (*domain.Tenant, error) {
			if err := fn(tenant); err != nil {
				return nil, err
			}
			return tenant, nil
		})

	// Act
	resp, err := s.service.LinkIdentity(ctx, ownerCaller, " k7m3pq2x ")

	// Assert
	s.Require().NoError(err)
	s.Equal("K7M3PQ2X", resp.TenantID)
	s.Equal(string(domain.TenantStatusActive), resp.Status)
	s.Equal(s.now, resp.LinkedAt)
	s.Equal(domain.TenantStatusActive, tenant.Status)
	s.mockIdentities.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestLinkIdentity_RepeatRestampsLinkedAt() {
	// Arrange
	ctx := context.Background()
	tenant := linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive)
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(tenant, nil)
	s.mockIdentities.On("SetCustomClaims", ctx, "u-owner", mock.Anything).Return(nil)
	s.mockTenant.On("Mutate", ctx, "K7M3PQ2X", mock.Anything).Return(
		func(_ context.Context, _ string, fn repository.TenantMutation) (*domain.Tenant, error) {
			return tenant, fn(tenant)
		})

	// Act
	resp, err := s.service.LinkIdentity(ctx, ownerCaller, "K7M3PQ2X")

	// Assert
	s.Require().NoError(err)
	s.Equal(s.now, *tenant.LinkedAt)
	s.Equal(string(domain.TenantStatusActive), resp.Status)
}

func (s *TenantServiceTestSuite) TestLinkIdentity_EmailMismatch() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(&domain.Tenant{ID: "K7M3PQ2X", Email: "someone@example.com"}, nil)

	// Act
	_, err := s.service.LinkIdentity(ctx, ownerCaller, "K7M3PQ2X")

	// Assert
	var de *domain.Error
	s.Require().ErrorAs(err, &de)
	s.Equal(domain.KindConflict, de.Kind)
	s.Equal(domain.ReasonEmailMismatch, de.Reason)
	s.mockIdentities.AssertNotCalled(s.T(), "SetCustomClaims", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestLinkIdentity_Suspended() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusSuspended), nil)

	// Act
	_, err := s.service.LinkIdentity(ctx, ownerCaller, "K7M3PQ2X")

	// Assert
	var de *domain.Error
	s.Require().ErrorAs(err, &de)
	s.Equal(domain.ReasonTenantSuspended, de.Reason)
}

func (s *TenantServiceTestSuite) TestLinkIdentity_MalformedID() {
	// Act
	_, err := s.service.LinkIdentity(context.Background(), ownerCaller, "abc")

	// Assert
	s.True(domain.IsKind(err, domain.KindInvalidArgument))
}

func (s *TenantServiceTestSuite) TestLinkIdentity_Unknown() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "ZZZZZZZZ").Return(nil, repository.ErrNotFound)

	// Act
	_, err := s.service.LinkIdentity(ctx, ownerCaller, "ZZZZZZZZ")

	// Assert
	s.True(domain.IsKind(err, domain.KindNotFound))
}

func (s *TenantServiceTestSuite) TestDelete_IdentityAlreadyGoneStillDeletes() {
	// Arrange
	ctx := context.Background()
	tenant := linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive)
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(tenant, nil)
	s.mockIdentities.On("Delete", ctx, "ident-K7M3PQ2X").Return(identity.ErrIdentityNotFound)
	s.mockTenant.On("Delete", ctx, "K7M3PQ2X").Return(nil)

	// Act
	err := s.service.Delete(ctx, globalAdmin, "K7M3PQ2X")

	// Assert
	s.NoError(err)
	s.mockTenant.AssertExpectations(s.T())
	s.mockSQS.AssertCalled(s.T(), "SendBrandStatsMessage", ctx, "vesta-lumina")
}

func (s *TenantServiceTestSuite) TestDelete_IdentityFailureAborts() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive), nil)
	s.mockIdentities.On("Delete", ctx, "ident-K7M3PQ2X").Return(domain.Unavailable("identity store unavailable", errors.New("timeout")))

	// Act
	err := s.service.Delete(ctx, globalAdmin, "K7M3PQ2X")

	// Assert
	s.True(domain.IsKind(err, domain.KindUnavailable))
	s.mockTenant.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestDelete_OtherBrandForbidden() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive), nil)

	// Act
	err := s.service.Delete(ctx, brandAdmin, "K7M3PQ2X")

	// Assert
	s.True(domain.IsKind(err, domain.KindForbidden))
}

func (s *TenantServiceTestSuite) TestResetPassword_Success() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(linkedTenant("K7M3PQ2X", "sunset", domain.TenantStatusActive), nil)
	s.mockIdentities.On("UpdatePassword", ctx, "ident-K7M3PQ2X", "Xy7#pQ2!mK9a").Return(nil)

	// Act
	resp, err := s.service.ResetPassword(ctx, brandAdmin, "K7M3PQ2X")

	// Assert
	s.Require().NoError(err)
	s.Equal("Xy7#pQ2!mK9a", resp.TempPassword)
	s.mockIdentities.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestToggleStatus_SuspendMirrorsIdentity() {
	// Arrange
	ctx := context.Background()
	tenant := linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive)
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(tenant, nil)
	s.mockTenant.On("Mutate", ctx, "K7M3PQ2X", mock.Anything).Return(
		func(_ context.Context, _ string, fn repository.TenantMutation) (*domain.Tenant, error) {
			return tenant, fn(tenant)
		})
	s.mockIdentities.On("SetDisabled", ctx, "ident-K7M3PQ2X", true).Return(nil)

	// Act
	resp, err := s.service.ToggleStatus(ctx, globalAdmin, "K7M3PQ2X", "suspended")

	// Assert
	s.Require().NoError(err)
	s.Equal("suspended", resp.Status)
	s.mockIdentities.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestToggleStatus_PendingTenantIsInvalidTransition() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(&domain.Tenant{
		ID: "K7M3PQ2X", BrandID: "vesta-lumina", Status: domain.TenantStatusPending,
	}, nil)

	// Act
	_, err := s.service.ToggleStatus(ctx, globalAdmin, "K7M3PQ2X", "active")

	// Assert
	var de *domain.Error
	s.Require().ErrorAs(err, &de)
	s.Equal(domain.ReasonInvalidTransition, de.Reason)
	s.mockTenant.AssertNotCalled(s.T(), "Mutate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestToggleStatus_RejectsUnknownStatus() {
	// Act
	_, err := s.service.ToggleStatus(context.Background(), globalAdmin, "K7M3PQ2X", "deleted")

	// Assert
	s.True(domain.IsKind(err, domain.KindInvalidArgument))
}

func (s *TenantServiceTestSuite) TestList_ScopesBrandAdmin() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("List", ctx, domain.TenantFilter{BrandID: "sunset"}).Return([]domain.Tenant{
		*linkedTenant("K7M3PQ2X", "sunset", domain.TenantStatusActive),
	}, nil)

	// Act
	result, err := s.service.List(ctx, brandAdmin)

	// Assert
	s.Require().NoError(err)
	s.Len(result, 1)
	s.Equal("sunset", result[0].BrandID)
}

func (s *TenantServiceTestSuite) TestList_GlobalAdminUnscoped() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("List", ctx, domain.TenantFilter{}).Return([]domain.Tenant{}, nil)

	// Act
	result, err := s.service.List(ctx, globalAdmin)

	// Assert
	s.NoError(err)
	s.Empty(result)
}

func (s *TenantServiceTestSuite) TestLinkIdentity_SuspendedDuringLinkRestoresClaims() {
	// Arrange
	ctx := context.Background()
	pending := &domain.Tenant{ID: "K7M3PQ2X", Email: "owner@example.com", Status: domain.TenantStatusPending}
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(pending, nil)
	s.mockIdentities.On("SetCustomClaims", ctx, "u-owner", domain.Claims{OwnerID: "K7M3PQ2X", Role: domain.RoleOwner}).Return(nil).Once()
	s.mockIdentities.On("SetCustomClaims", ctx, "u-owner", domain.Claims{}).Return(nil).Once()
	s.mockTenant.On("Mutate", ctx, "K7M3PQ2X", mock.Anything).Return(
		func(_ context.Context, _ string, fn repository.TenantMutation) (*domain.Tenant, error) {
			locked := *pending
			locked.Status = domain.TenantStatusSuspended
			if err := fn(&locked); err != nil {
				return nil, err
			}
			return &locked, nil
		})

	// Act
	_, err := s.service.LinkIdentity(ctx, ownerCaller, "K7M3PQ2X")

	// Assert
	var de *domain.Error
	s.Require().ErrorAs(err, &de)
	s.Equal(domain.ReasonTenantSuspended, de.Reason)
	s.mockIdentities.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestToggleStatus_IdentityFailureLeavesTenantUntouched() {
	// Arrange
	ctx := context.Background()
	tenant := linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive)
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(tenant, nil)
	s.mockIdentities.On("SetDisabled", ctx, "ident-K7M3PQ2X", true).
		Return(domain.Unavailable("identity store unavailable", errors.New("timeout")))

	// Act
	_, err := s.service.ToggleStatus(ctx, globalAdmin, "K7M3PQ2X", "suspended")

	// Assert
	s.True(domain.IsKind(err, domain.KindUnavailable))
	s.Equal(domain.TenantStatusActive, tenant.Status)
	s.mockTenant.AssertNotCalled(s.T(), "Mutate", mock.Anything, mock.Anything, mock.Anything)
	s.mockRecorder.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestToggleStatus_CommitFailureRestoresIdentity() {
	// Arrange
	ctx := context.Background()
	tenant := linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive)
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(tenant, nil)
	s.mockIdentities.On("SetDisabled", ctx, "ident-K7M3PQ2X", true).Return(nil).Once()
	s.mockIdentities.On("SetDisabled", ctx, "ident-K7M3PQ2X", false).Return(nil).Once()
	s.mockTenant.On("Mutate", ctx, "K7M3PQ2X", mock.Anything).Return(nil, errors.New("connection reset"))

	// Act
	_, err := s.service.ToggleStatus(ctx, globalAdmin, "K7M3PQ2X", "suspended")

	// Assert
	s.True(domain.IsKind(err, domain.KindUnavailable))
	s.mockIdentities.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestResetPassword_OtherBrandForbidden() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive), nil)

	// Act
	_, err := s.service.ResetPassword(ctx, brandAdmin, "K7M3PQ2X")

	// Assert
	s.True(domain.IsKind(err, domain.KindForbidden))
	s.mockIdentities.AssertNotCalled(s.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	s.mockRecorder.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestToggleStatus_OtherBrandForbidden() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "K7M3PQ2X").Return(linkedTenant("K7M3PQ2X", "vesta-lumina", domain.TenantStatusActive), nil)

	// Act
	_, err := s.service.ToggleStatus(ctx, brandAdmin, "K7M3PQ2X", "suspended")

	// Assert
	s.True(domain.IsKind(err, domain.KindForbidden))
	s.mockIdentities.AssertNotCalled(s.T(), "SetDisabled", mock.Anything, mock.Anything, mock.Anything)
	s.mockTenant.AssertNotCalled(s.T(), "Mutate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestList_BrandGrantWithoutBrandSeesNothing() {
	// Arrange
	ctx := context.Background()
	admins := new(mocks.AdminRepository)
	admins.On("GetByEmail", ctx, "nobrand@example.com").Return(&domain.AdminPrincipal{
		Email:  "nobrand@example.com",
		Level:  domain.AdminLevelNone,
		Active: true,
	}, nil)
	s.service.resolver = NewAccessService(admins, "root@example.com")

	// Act
	result, err := s.service.List(ctx, domain.Caller{UID: "u-nobrand", Email: "nobrand@example.com"})

	// Assert
	s.True(domain.IsKind(err, domain.KindForbidden))
	s.Nil(result)
	s.mockTenant.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}
