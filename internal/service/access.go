package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

//go:generate mockery --name PrincipalResolver --output ../mocks
type PrincipalResolver interface {
	Resolve(ctx context.Context, email string) (domain.Principal, error)
	Bootstrap() domain.Principal
}

// AccessService resolves an authenticated email to its admin standing. It is
// the only place that knows the bootstrap address.
type AccessService struct {
	admins         repository.AdminRepository
	bootstrapEmail string
}

func NewAccessService(admins repository.AdminRepository, bootstrapEmail string) *AccessService {
	return &AccessService{
		admins:         admins,
		bootstrapEmail: domain.NormalizeEmail(bootstrapEmail),
	}
}

// Bootstrap returns the always-present global principal.
func (s *AccessService) Bootstrap() domain.Principal {
	return domain.Principal{
		Email:       s.bootstrapEmail,
		IsAdmin:     true,
		Level:       domain.AdminLevelGlobal,
		IsBootstrap: true,
	}
}

func (s *AccessService) Resolve(ctx context.Context, email string) (domain.Principal, error) {
	email = domain.NormalizeEmail(email)
	principal := domain.Principal{Email: email, Level: domain.AdminLevelNone}
	if email == "" {
		return principal, nil
	}

	if email == s.bootstrapEmail {
		return s.Bootstrap(), nil
	}

	record, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return principal, nil
		}
		return principal, domain.Unavailable("admin directory unavailable", err)
	}
	if !record.Active {
		return principal, nil
	}

	level := record.Level
	if level == domain.AdminLevelNone {
		level = domain.AdminLevelBrand
	}
	brandID := ""
	if record.BrandID != nil {
		brandID = strings.TrimSpace(*record.BrandID)
	}
	// A brand grant without a brand has nothing to scope to.
	if level != domain.AdminLevelGlobal && brandID == "" {
		return principal, nil
	}

	principal.IsAdmin = true
	principal.Level = level
	principal.BrandID = brandID
	return principal, nil
}

func requireAuthenticated(caller domain.Caller) error {
	if caller.UID == "" {
		return domain.Unauthenticated("authentication required")
	}
	return nil
}

func requireAdmin(ctx context.Context, resolver PrincipalResolver, caller domain.Caller) (domain.Principal, error) {
	if err := requireAuthenticated(caller); err != nil {
		return domain.Principal{}, err
	}
	principal, err := resolver.Resolve(ctx, caller.Email)
	if err != nil {
		return domain.Principal{}, err
	}
	if !principal.IsAdmin {
		return domain.Principal{}, domain.Forbidden("admin access required")
	}
	if !principal.IsGlobalAdmin() && principal.BrandID == "" {
		return domain.Principal{}, domain.Forbidden("admin access required")
	}
	return principal, nil
}

func requireGlobal(ctx context.Context, resolver PrincipalResolver, caller domain.Caller) (domain.Principal, error) {
	principal, err := requireAdmin(ctx, resolver, caller)
	if err != nil {
		return domain.Principal{}, err
	}
	if !principal.IsGlobalAdmin() {
		return domain.Principal{}, domain.Forbidden("global admin access required")
	}
	return principal, nil
}

func requireBootstrap(ctx context.Context, resolver PrincipalResolver, caller domain.Caller) (domain.Principal, error) {
	principal, err := requireAdmin(ctx, resolver, caller)
	if err != nil {
		return domain.Principal{}, err
	}
	if !principal.IsBootstrap {
		return domain.Principal{}, domain.Forbidden("only the bootstrap admin may manage admins")
	}
	return principal, nil
}

// storeError maps repository failures onto domain errors. Domain errors
// raised inside mutations pass through unchanged.
func storeError(err error, notFound string) error {
	var de *domain.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return domain.NotFound(notFound)
	default:
		return domain.Unavailable("data store unavailable", err)
	}
}
