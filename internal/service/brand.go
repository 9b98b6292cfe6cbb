package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

type BrandService struct {
	repo     repository.Repository
	resolver PrincipalResolver
	recorder ActionRecorder
	logger   *logger.Logger
	now      func() time.Time
}

func NewBrandService(repo repository.Repository, resolver PrincipalResolver, recorder ActionRecorder, logger *logger.Logger) *BrandService {
	return &BrandService{
		repo:     repo,
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *BrandService) Create(ctx context.Context, caller domain.Caller, req dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	actor, err := requireGlobal(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}

	id := strings.ToLower(strings.TrimSpace(req.ID))
	if !brandIDPattern.MatchString(id) {
		return nil, domain.InvalidArgument("brand id must be 2-63 lowercase letters, digits or dashes")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.InvalidArgument("brand name is required")
	}
	if req.SupportEmail != "" && !validEmail(domain.NormalizeEmail(req.SupportEmail)) {
		return nil, domain.InvalidArgument("supportEmail is not a valid address")
	}

	brand := &domain.Brand{
		ID:             id,
		Name:           name,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		SupportEmail:   domain.NormalizeEmail(req.SupportEmail),
		SupportPhone:   req.SupportPhone,
		CreatedBy:      actor.Email,
	}
	if err := s.repo.Brand().Create(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domain.Conflict("brand already exists", "")
		}
		return nil, storeError(err, "brand not found")
	}

	s.recorder.Record(ctx, &domain.ActionLogEntry{
		ActorEmail: actor.Email,
		ActionType: domain.ActionCreateBrand,
		TargetID:   id,
		BrandID:    id,
		Details:    map[string]interface{}{"name": name},
	})

	resp := dto.FromBrand(brand)
	return &resp, nil
}

func (s *BrandService) List(ctx context.Context, caller domain.Caller) ([]dto.BrandResponse, error) {
	principal, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}

	brands, err := s.repo.Brand().List(ctx, principal.ScopeBrand())
	if err != nil {
		return nil, storeError(err, "brands not found")
	}
	return dto.FromBrands(brands), nil
}

// Recompute refreshes the denormalized counters of one brand.
func (s *BrandService) Recompute(ctx context.Context, brandID string) error {
	stats, err := s.repo.Brand().ComputeStats(ctx, brandID)
	if err != nil {
		return storeError(err, "brand not found")
	}
	if err := s.repo.Brand().UpdateStats(ctx, brandID, stats, s.now().UTC()); err != nil {
		return storeError(err, "brand not found")
	}

	s.logger.Info("Brand stats recomputed",
		zap.String("brand_id", brandID),
		zap.Int64("client_count", stats.ClientCount),
		zap.Int64("total_units", stats.TotalUnits),
		zap.Int64("total_bookings", stats.TotalBookings),
	)
	return nil
}

// RecomputeAll refreshes every brand, continuing past individual failures.
func (s *BrandService) RecomputeAll(ctx context.Context) error {
	brands, err := s.repo.Brand().List(ctx, "")
	if err != nil {
		return storeError(err, "brands not found")
	}

	var errs error
	for i := range brands {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		errs = multierr.Append(errs, s.Recompute(ctx, brands[i].ID))
	}
	return errs
}
