package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// ErrIdentityNotFound is returned when the identity does not exist.
var ErrIdentityNotFound = domain.NotFound("identity not found")

const unavailableMessage = "identity provider unavailable"

type CreateParams struct {
	Email         string
	Password      string
	DisplayName   string
	EmailVerified bool
	Origin        string
}

//go:generate mockery --name Provider --output ../mocks --structname IdentityProvider
type Provider interface {
	Create(ctx context.Context, params CreateParams) (*domain.Identity, error)
	Get(ctx context.Context, uid string) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Delete(ctx context.Context, uid string) error
	UpdatePassword(ctx context.Context, uid, password string) error
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	SetCustomClaims(ctx context.Context, uid string, claims domain.Claims) error
	MintExchangeToken(ctx context.Context, uid string, claims domain.Claims) (string, error)
	MintIDToken(ctx context.Context, uid string) (string, error)
	ExchangeToken(ctx context.Context, token string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	VerifyIDToken(ctx context.Context, token string) (*domain.Caller, error)
}

// Service is the identity provider backed by the identities table.
type Service struct {
	repo        repository.IdentityRepository
	tokens      *TokenIssuer
	idTTL       time.Duration
	exchangeTTL time.Duration
	timeout     time.Duration
	params      *PasswordParams
	logger      *logger.Logger
}

var _ Provider = (*Service)(nil)

func NewService(repo repository.IdentityRepository, cfg *config.Config, logger *logger.Logger) *Service {
	return &Service{
		repo:        repo,
		tokens:      NewTokenIssuer(cfg.JWTSecretKey),
		idTTL:       cfg.IDTokenTTL,
		exchangeTTL: cfg.ExchangeTokenTTL,
		timeout:     cfg.ExternalCallTimeout,
		params:      DefaultPasswordParams(),
		logger:      logger,
	}
}

func (s *Service) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func storeError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrIdentityNotFound
	}
	return domain.Unavailable(unavailableMessage, err)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Identity, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	identity := &domain.Identity{
		DisplayName:   params.DisplayName,
		EmailVerified: params.EmailVerified,
		Origin:        params.Origin,
		CustomClaims:  domain.Claims{}.ToMap(),
	}
	if identity.Origin == "" {
		identity.Origin = domain.IdentityOriginManual
	}
	if email := domain.NormalizeEmail(params.Email); email != "" {
		identity.Email = &email
	}
	if params.Password != "" {
		hash, err := HashPassword(params.Password, s.params)
		if err != nil {
			return nil, domain.Internal("failed to hash password", err)
		}
		identity.PasswordHash = hash
	}

	if err := s.repo.Create(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domain.Conflict("an account with this email already exists", domain.ReasonEmailExists)
		}
		return nil, domain.Unavailable(unavailableMessage, err)
	}

	return identity, nil
}

func (s *Service) Get(ctx context.Context, uid string) (*domain.Identity, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	identity, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, storeError(err)
	}
	return identity, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	identity, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, storeError(err)
	}
	return identity, nil
}

func (s *Service) Delete(ctx context.Context, uid string) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	if err := s.repo.Delete(ctx, uid); err != nil {
		return storeError(err)
	}
	return nil
}

// update applies fn to the stored identity and persists it.
func (s *Service) update(ctx context.Context, uid string, fn func(*domain.Identity) error) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	identity, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return storeError(err)
	}
	if err := fn(identity); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, identity); err != nil {
		return storeError(err)
	}
	return nil
}

func (s *Service) UpdatePassword(ctx context.Context, uid, password string) error {
	hash, err := HashPassword(password, s.params)
	if err != nil {
		return domain.Internal("failed to hash password", err)
	}
	return s.update(ctx, uid, func(identity *domain.Identity) error {
		identity.PasswordHash = hash
		return nil
	})
}

func (s *Service) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	return s.update(ctx, uid, func(identity *domain.Identity) error {
		identity.Disabled = disabled
		return nil
	})
}

// SetCustomClaims replaces the identity's claim set.
func (s *Service) SetCustomClaims(ctx context.Context, uid string, claims domain.Claims) error {
	return s.update(ctx, uid, func(identity *domain.Identity) error {
		identity.CustomClaims = claims.ToMap()
		return nil
	})
}

func (s *Service) MintExchangeToken(ctx context.Context, uid string, claims domain.Claims) (string, error) {
	token, err := s.tokens.Issue(uid, TokenClaims{
		OwnerID:   claims.OwnerID,
		UnitID:    claims.UnitID,
		Role:      string(claims.Role),
		TokenType: TokenTypeExchange,
	}, s.exchangeTTL)
	if err != nil {
		return "", domain.Internal("failed to mint exchange token", err)
	}
	return token, nil
}

// MintIDToken issues an id token reflecting the identity's current claims.
func (s *Service) MintIDToken(ctx context.Context, uid string) (string, error) {
	identity, err := s.Get(ctx, uid)
	if err != nil {
		return "", err
	}
	if identity.Disabled {
		return "", domain.Unauthenticated("account is disabled")
	}
	return s.issueIDToken(identity)
}

func (s *Service) issueIDToken(identity *domain.Identity) (string, error) {
	claims := domain.ClaimsFromMap(identity.CustomClaims)
	token, err := s.tokens.Issue(identity.UID, TokenClaims{
		Email:     identity.EmailAddress(),
		OwnerID:   claims.OwnerID,
		UnitID:    claims.UnitID,
		Role:      string(claims.Role),
		TokenType: TokenTypeID,
	}, s.idTTL)
	if err != nil {
		return "", domain.Internal("failed to mint id token", err)
	}
	return token, nil
}

func (s *Service) ExchangeToken(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Parse(token, TokenTypeExchange)
	if err != nil {
		return "", domain.Unauthenticated("invalid or expired exchange token")
	}
	identity, err := s.Get(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			return "", domain.Unauthenticated("invalid or expired exchange token")
		}
		return "", err
	}
	if identity.Disabled {
		return "", domain.Unauthenticated("account is disabled")
	}
	return s.issueIDToken(identity)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	identity, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			return "", domain.Unauthenticated("invalid email or password")
		}
		return "", err
	}
	if identity.PasswordHash == "" {
		return "", domain.Unauthenticated("invalid email or password")
	}

	ok, err := VerifyPassword(password, identity.PasswordHash)
	if err != nil {
		s.logger.Error("Stored password hash is unreadable", err, zap.String("uid", identity.UID))
		return "", domain.Unauthenticated("invalid email or password")
	}
	if !ok {
		return "", domain.Unauthenticated("invalid email or password")
	}
	if identity.Disabled {
		return "", domain.Unauthenticated("account is disabled")
	}

	return s.issueIDToken(identity)
}

// VerifyIDToken validates the token and re-reads the identity so that
// disabling an account or changing its claims takes effect immediately.
func (s *Service) VerifyIDToken(ctx context.Context, token string) (*domain.Caller, error) {
	claims, err := s.tokens.Parse(token, TokenTypeID)
	if err != nil {
		return nil, domain.Unauthenticated("invalid or expired token")
	}

	identity, err := s.Get(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			return nil, domain.Unauthenticated("invalid or expired token")
		}
		return nil, err
	}
	if identity.Disabled {
		return nil, domain.Unauthenticated("account is disabled")
	}

	return &domain.Caller{
		UID:    identity.UID,
		Email:  identity.EmailAddress(),
		Claims: domain.ClaimsFromMap(identity.CustomClaims),
	}, nil
}
