package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// tenantIDAttempts bounds create-if-absent retries on id collision.
const tenantIDAttempts = 2

type TenantService struct {
	repo           repository.Repository
	identities     identity.Provider
	resolver       PrincipalResolver
	recorder       ActionRecorder
	sqsSvc         SQSService
	notifier       TenantNotifier
	defaultBrandID string
	logger         *logger.Logger

	newTenantID func() (string, error)
	newPassword func() (string, error)
	now         func() time.Time
}

func NewTenantService(
	repo repository.Repository,
	identities identity.Provider,
	resolver PrincipalResolver,
	recorder ActionRecorder,
	sqsSvc SQSService,
	notifier TenantNotifier,
	cfg *config.Config,
	logger *logger.Logger,
) *TenantService {
	return &TenantService{
		repo:           repo,
		identities:     identities,
		resolver:       resolver,
		recorder:       recorder,
		sqsSvc:         sqsSvc,
		notifier:       notifier,
		defaultBrandID: cfg.DefaultBrandID,
		logger:         logger,
		newTenantID:    GenerateTenantID,
		newPassword:    GenerateTempPassword,
		now:            time.Now,
	}
}

func (s *TenantService) Create(ctx context.Context, caller domain.Caller, req dto.CreateTenantRequest) (*dto.CreateTenantResponse, error) {
	actor, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(req.Email)
	if !validEmail(email) {
		return nil, domain.InvalidArgument("a valid email is required")
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}
	tenantType := strings.ToLower(strings.TrimSpace(req.Type))
	if tenantType == "" {
		tenantType = domain.DefaultTenantType
	}

	brandID, err := s.targetBrand(ctx, actor, strings.TrimSpace(req.BrandID))
	if err != nil {
		return nil, err
	}

	password, err := s.newPassword()
	if err != nil {
		return nil, domain.Internal("failed to generate credential", err)
	}

	ident, err := s.identities.Create(ctx, identity.CreateParams{
		Email:         email,
		Password:      password,
		DisplayName:   displayName,
		EmailVerified: true,
		Origin:        domain.IdentityOriginTenant,
	})
	if err != nil {
		return nil, err
	}

	tenant, err := s.insertTenant(ctx, &domain.Tenant{
		IdentityRef: ident.UID,
		Email:       email,
		DisplayName: displayName,
		TenantType:  tenantType,
		Status:      domain.TenantStatusPending,
		BrandID:     brandID,
		CreatedBy:   actor.Email,
	})
	if err != nil {
		// Leftovers are collected by orphan reconciliation if this fails too.
		if delErr := s.identities.Delete(ctx, ident.UID); delErr != nil && !errors.Is(delErr, identity.ErrIdentityNotFound) {
			s.logger.Warn("Failed to roll back tenant identity", zap.String("uid", ident.UID), zap.Error(delErr))
		}
		return nil, err
	}

	s.recorder.Record(ctx, &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionCreateTenant,
		TargetID:   tenant.ID,
		BrandID:    brandID,
		Details:    map[string]interface{}{"email": email, "type": tenantType},
	})
	s.enqueueBrandStats(ctx, brandID)
	emailSent := s.notifier.SendWelcome(ctx, tenant)

	s.logger.Info("Tenant created",
		zap.String("tenant_id", tenant.ID),
		zap.String("brand_id", brandID),
		zap.Bool("email_sent", emailSent),
	)

	return &dto.CreateTenantResponse{
		TenantID:     tenant.ID,
		TempPassword: password,
		BrandID:      brandID,
		EmailSent:    emailSent,
	}, nil
}

// targetBrand picks the explicit brand, then the caller's own, then the default.
func (s *TenantService) targetBrand(ctx context.Context, actor domain.Principal, explicit string) (string, error) {
	brandID := explicit
	if brandID == "" {
		brandID = actor.BrandID
	}
	if brandID == "" {
		brandID = s.defaultBrandID
	}
	if !actor.CanActOnBrand(brandID) {
		return "", domain.Forbidden("cannot create tenants for another brand")
	}

	if _, err := s.repo.Brand().GetByID(ctx, brandID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", domain.InvalidArgument("brand does not exist")
		}
		return "", storeError(err, "brand not found")
	}
	return brandID, nil
}

func (s *TenantService) insertTenant(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	for attempt := 1; attempt <= tenantIDAttempts; attempt++ {
		id, err := s.newTenantID()
		if err != nil {
			return nil, domain.Internal("failed to generate tenant id", err)
		}
		tenant.ID = id

		err = s.repo.Tenant().CreateIfAbsent(ctx, tenant, domain.DefaultTenantSettings(id))
		if err == nil {
			return tenant, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, storeError(err, "tenant not found")
		}
		s.logger.Warn("Tenant id collision", zap.String("tenant_id", id), zap.Int("attempt", attempt))
	}
	return nil, domain.ResourceExhausted("could not allocate a unique tenant id")
}

func (s *TenantService) enqueueBrandStats(ctx context.Context, brandID string) {
	if err := s.sqsSvc.SendBrandStatsMessage(ctx, brandID); err != nil {
		s.logger.Warn("Failed to enqueue brand stats recompute", zap.String("brand_id", brandID), zap.Error(err))
	}
}

// LinkIdentity binds the caller's identity to the tenant whose email matches.
// Repeating a successful link re-stamps linkedAt.
func (s *TenantService) LinkIdentity(ctx context.Context, caller domain.Caller, tenantID string) (*dto.LinkTenantResponse, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	tenantID = domain.NormalizeTenantID(tenantID)
	if !domain.ValidTenantID(tenantID) {
		return nil, domain.InvalidArgument("tenant id must be 6-12 uppercase letters or digits")
	}
	if caller.Email == "" {
		return nil, domain.Conflict("tenant id does not match your email", domain.ReasonEmailMismatch)
	}

	check := func(t *domain.Tenant) error {
		if !strings.EqualFold(t.Email, caller.Email) {
			return domain.Conflict("tenant id does not match your email", domain.ReasonEmailMismatch)
		}
		if t.Status == domain.TenantStatusSuspended {
			return domain.Conflict("tenant is suspended", domain.ReasonTenantSuspended)
		}
		return nil
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return nil, storeError(err, "tenant not found")
	}
	if err := check(tenant); err != nil {
		return nil, err
	}

	claims := domain.Claims{OwnerID: tenantID, Role: domain.RoleOwner}
	if err := s.identities.SetCustomClaims(ctx, caller.UID, claims); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	tenant, err = s.repo.Tenant().Mutate(ctx, tenantID, func(t *domain.Tenant) error {
		if err := check(t); err != nil {
			return err
		}
		t.Status = domain.TenantStatusActive
		t.LinkedAt = &now
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		if restoreErr := s.identities.SetCustomClaims(ctx, caller.UID, caller.Claims); restoreErr != nil {
			s.logger.Error("Failed to restore identity claims after link failure", restoreErr,
				zap.String("tenant_id", tenantID), zap.String("uid", caller.UID))
		}
		return nil, storeError(err, "tenant not found")
	}

	s.logger.Info("Tenant linked", zap.String("tenant_id", tenantID), zap.String("uid", caller.UID))

	return &dto.LinkTenantResponse{
		TenantID: tenant.ID,
		Status:   string(tenant.Status),
		LinkedAt: now,
	}, nil
}

// scopedTenant loads a tenant and checks the actor may act on its brand.
func (s *TenantService) scopedTenant(ctx context.Context, actor domain.Principal, tenantID string) (*domain.Tenant, error) {
	tenantID = domain.NormalizeTenantID(tenantID)
	if !domain.ValidTenantID(tenantID) {
		return nil, domain.NotFound("tenant not found")
	}
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return nil, storeError(err, "tenant not found")
	}
	if !actor.CanActOnBrand(tenant.BrandID) {
		return nil, domain.Forbidden("tenant belongs to another brand")
	}
	return tenant, nil
}

func (s *TenantService) Get(ctx context.Context, caller domain.Caller, tenantID string) (*dto.TenantResponse, error) {
	actor, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}
	tenant, err := s.scopedTenant(ctx, actor, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromTenant(tenant), nil
}

// Delete removes the tenant, its settings and its identity. An identity that
// is already gone is not an error.
func (s *TenantService) Delete(ctx context.Context, caller domain.Caller, tenantID string) error {
	actor, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return err
	}
	tenant, err := s.scopedTenant(ctx, actor, tenantID)
	if err != nil {
		return err
	}

	if tenant.IdentityRef != "" {
		if err := s.identities.Delete(ctx, tenant.IdentityRef); err != nil {
			if !errors.Is(err, identity.ErrIdentityNotFound) {
				return err
			}
			s.logger.Warn("Tenant identity already absent", zap.String("tenant_id", tenant.ID), zap.String("uid", tenant.IdentityRef))
		}
	}

	if err := s.repo.Tenant().Delete(ctx, tenant.ID); err != nil {
		return storeError(err, "tenant not found")
	}

	s.recorder.Record(ctx, &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionDeleteTenant,
		TargetID:   tenant.ID,
		BrandID:    tenant.BrandID,
		Details:    map[string]interface{}{"email": tenant.Email},
	})
	s.enqueueBrandStats(ctx, tenant.BrandID)

	return nil
}

// ResetPassword applies a freshly generated temporary credential.
func (s *TenantService) ResetPassword(ctx context.Context, caller domain.Caller, tenantID string) (*dto.ResetPasswordResponse, error) {
	actor, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}
	tenant, err := s.scopedTenant(ctx, actor, tenantID)
	if err != nil {
		return nil, err
	}

	password, err := s.newPassword()
	if err != nil {
		return nil, domain.Internal("failed to generate credential", err)
	}
	if err := s.identities.UpdatePassword(ctx, tenant.IdentityRef, password); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionResetTenantPassword,
		TargetID:   tenant.ID,
		BrandID:    tenant.BrandID,
	})

	return &dto.ResetPasswordResponse{
		TenantID:     tenant.ID,
		TempPassword: password,
	}, nil
}

// ToggleStatus moves a linked tenant between active and suspended and mirrors
// the state onto the identity. Re-applying the same status is safe.
func (s *TenantService) ToggleStatus(ctx context.Context, caller domain.Caller, tenantID, status string) (*dto.TenantStatusResponse, error) {
	actor, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}
	target := domain.TenantStatus(status)
	if target != domain.TenantStatusActive && target != domain.TenantStatusSuspended {
		return nil, domain.InvalidArgument("status must be active or suspended")
	}

	tenant, err := s.scopedTenant(ctx, actor, tenantID)
	if err != nil {
		return nil, err
	}
	if err := tenant.CheckTransition(target); err != nil {
		return nil, err
	}

	// The identity is mirrored before the status commits so a failure leaves
	// the tenant untouched.
	previous := tenant.Status
	id, identityRef := tenant.ID, tenant.IdentityRef
	if err := s.identities.SetDisabled(ctx, identityRef, target == domain.TenantStatusSuspended); err != nil {
		s.logger.Error("Failed to mirror tenant status onto identity", err, zap.String("tenant_id", tenant.ID))
		return nil, err
	}

	now := s.now().UTC()
	tenant, err = s.repo.Tenant().Mutate(ctx, id, func(t *domain.Tenant) error {
		if err := t.CheckTransition(target); err != nil {
			return err
		}
		t.Status = target
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		if restoreErr := s.identities.SetDisabled(ctx, identityRef, previous == domain.TenantStatusSuspended); restoreErr != nil {
			s.logger.Error("Failed to restore identity state after status change failure", restoreErr,
				zap.String("tenant_id", id), zap.String("uid", identityRef))
		}
		return nil, storeError(err, "tenant not found")
	}

	s.recorder.Record(ctx, &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionToggleTenantStatus,
		TargetID:   tenant.ID,
		BrandID:    tenant.BrandID,
		Details:    map[string]interface{}{"from": string(previous), "to": string(target)},
	})

	return &dto.TenantStatusResponse{
		TenantID: tenant.ID,
		Status:   string(tenant.Status),
	}, nil
}

// List returns the tenants visible to the caller, filtered in the query.
func (s *TenantService) List(ctx context.Context, caller domain.Caller) ([]dto.TenantResponse, error) {
	actor, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}

	tenants, err := s.repo.Tenant().List(ctx, domain.TenantFilter{BrandID: actor.ScopeBrand()})
	if err != nil {
		return nil, storeError(err, "tenants not found")
	}
	return dto.FromTenants(tenants), nil
}
