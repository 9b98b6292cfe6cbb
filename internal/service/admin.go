package service

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

var brandIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}$`)

// AdminService manages admin principals and brands.
type AdminService struct {
	repo     repository.Repository
	resolver PrincipalResolver
	recorder ActionRecorder
	logger   *logger.Logger
	now      func() time.Time
}

func NewAdminService(repo repository.Repository, resolver PrincipalResolver, recorder ActionRecorder, logger *logger.Logger) *AdminService {
	return &AdminService{
		repo:     repo,
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Me returns the caller's resolved standing.
func (s *AdminService) Me(ctx context.Context, caller domain.Caller) (*dto.PrincipalResponse, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	principal, err := s.resolver.Resolve(ctx, caller.Email)
	if err != nil {
		return nil, err
	}
	return &dto.PrincipalResponse{
		UID:         caller.UID,
		Email:       caller.Email,
		IsAdmin:     principal.IsAdmin,
		Level:       int(principal.Level),
		BrandID:     principal.BrandID,
		IsBootstrap: principal.IsBootstrap,
		Role:        string(caller.Claims.Role),
		OwnerID:     caller.Claims.OwnerID,
		UnitID:      caller.Claims.UnitID,
	}, nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (s *AdminService) AddPrincipal(ctx context.Context, caller domain.Caller, req dto.AddAdminRequest) (*dto.AdminPrincipalResponse, error) {
	actor, err := requireBootstrap(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(req.Email)
	if !validEmail(email) {
		return nil, domain.InvalidArgument("a valid email is required")
	}
	level := domain.AdminLevel(req.Level)
	if !level.Valid() {
		return nil, domain.InvalidArgument("level must be 2 (brand) or 3 (global)")
	}

	target, err := s.resolver.Resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if target.IsBootstrap {
		return nil, domain.InvalidArgument("the bootstrap admin cannot be modified")
	}

	principal := &domain.AdminPrincipal{
		Email:     email,
		Level:     level,
		Active:    true,
		CreatedBy: actor.Email,
	}

	brandID := strings.TrimSpace(req.BrandID)
	if level == domain.AdminLevelBrand {
		if brandID == "" {
			return nil, domain.InvalidArgument("brandId is required for brand admins")
		}
		if _, err := s.repo.Brand().GetByID(ctx, brandID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, domain.InvalidArgument("brand does not exist")
			}
			return nil, storeError(err, "brand not found")
		}
		principal.BrandID = &brandID
	} else {
		brandID = ""
	}

	if err := s.repo.Admin().Upsert(ctx, principal); err != nil {
		return nil, storeError(err, "admin principal not found")
	}

	s.recorder.Record(ctx, &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionAddAdmin,
		TargetID:   email,
		BrandID:    brandID,
		Details:    map[string]interface{}{"level": int(level)},
	})
	s.logger.Info("Admin principal saved", zap.String("email", email), zap.Int("level", int(level)))

	resp := dto.FromAdminPrincipal(principal)
	return &resp, nil
}

func (s *AdminService) RemovePrincipal(ctx context.Context, caller domain.Caller, email string) error {
	actor, err := requireBootstrap(ctx, s.resolver, caller)
	if err != nil {
		return err
	}

	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.InvalidArgument("email is required")
	}
	target, err := s.resolver.Resolve(ctx, email)
	if err != nil {
		return err
	}
	if target.IsBootstrap {
		return domain.Forbidden("the bootstrap admin cannot be removed")
	}

	existing, err := s.repo.Admin().GetByEmail(ctx, email)
	if err != nil {
		return storeError(err, "admin principal not found")
	}
	if err := s.repo.Admin().Delete(ctx, email); err != nil {
		return storeError(err, "admin principal not found")
	}

	entry := &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionRemoveAdmin,
		TargetID:   email,
		Details:    map[string]interface{}{"level": int(existing.Level)},
	}
	if existing.BrandID != nil {
		entry.BrandID = *existing.BrandID
	}
	s.recorder.Record(ctx, entry)

	return nil
}

// ListPrincipals lists admins visible to the caller. The bootstrap admin is
// always listed first.
func (s *AdminService) ListPrincipals(ctx context.Context, caller domain.Caller) ([]dto.AdminPrincipalResponse, error) {
	principal, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Admin().List(ctx, domain.AdminPrincipalFilter{BrandID: principal.ScopeBrand()})
	if err != nil {
		return nil, storeError(err, "admin principals not found")
	}

	bootstrap := bootstrapResponse(s.resolver.Bootstrap().Email)
	out := make([]dto.AdminPrincipalResponse, 0, len(records)+1)
	out = append(out, bootstrap)
	for i := range records {
		if records[i].Email == bootstrap.Email {
			continue
		}
		out = append(out, dto.FromAdminPrincipal(&records[i]))
	}
	return out, nil
}

func bootstrapResponse(email string) dto.AdminPrincipalResponse {
	return dto.AdminPrincipalResponse{
		Email:       email,
		Level:       int(domain.AdminLevelGlobal),
		Active:      true,
		IsBootstrap: true,
	}
}
