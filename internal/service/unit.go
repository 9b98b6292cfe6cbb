package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

// UnitService manages the rental units of the calling owner.
type UnitService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewUnitService(repo repository.Repository) *UnitService {
	return &UnitService{repo: repo, now: time.Now}
}

func ownerOf(caller domain.Caller) (string, error) {
	if err := requireAuthenticated(caller); err != nil {
		return "", err
	}
	if caller.Claims.Role != domain.RoleOwner || caller.Claims.OwnerID == "" {
		return "", domain.Forbidden("owner role required")
	}
	return caller.Claims.OwnerID, nil
}

func (s *UnitService) Create(ctx context.Context, caller domain.Caller, req dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	ownerID, err := ownerOf(caller)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.InvalidArgument("unit name is required")
	}

	now := s.now().UTC()
	unit := &domain.Unit{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Unit().Create(ctx, unit); err != nil {
		return nil, storeError(err, "unit not found")
	}

	resp := dto.FromUnit(unit)
	return &resp, nil
}

func (s *UnitService) List(ctx context.Context, caller domain.Caller) ([]dto.UnitResponse, error) {
	ownerID, err := ownerOf(caller)
	if err != nil {
		return nil, err
	}
	units, err := s.repo.Unit().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeError(err, "units not found")
	}
	return dto.FromUnits(units), nil
}
