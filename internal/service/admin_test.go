package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/mocks"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockAdmin    *mocks.AdminRepository
	mockBrand    *mocks.BrandRepository
	mockResolver *mocks.PrincipalResolver
	mockRecorder *mocks.ActionRecorder
	service      *AdminService
}

var rootCaller = domain.Caller{UID: "u-root", Email: "root@example.com"}

func (s *AdminServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockAdmin = new(mocks.AdminRepository)
	s.mockBrand = new(mocks.BrandRepository)
	s.mockResolver = stubResolver()
	s.mockRecorder = new(mocks.ActionRecorder)

	s.mockRepo.On("Admin").Return(s.mockAdmin)
	s.mockRepo.On("Brand").Return(s.mockBrand)
	s.mockResolver.On("Resolve", mock.Anything, "new@example.com").Return(domain.Principal{Email: "new@example.com"}, nil).Maybe()
	s.mockRecorder.On("Record", mock.Anything, mock.Anything).Return().Maybe()

	s.service = NewAdminService(s.mockRepo, s.mockResolver, s.mockRecorder, logger.NewNop())
}

func TestAdminService(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

func (s *AdminServiceTestSuite) TestMe_ReportsClaimsAndStanding() {
	// Arrange
	caller := domain.Caller{
		UID:    "u-owner",
		Email:  "owner@example.com",
		Claims: domain.Claims{OwnerID: "K7M3PQ2X", Role: domain.RoleOwner},
	}

	// Act
	resp, err := s.service.Me(context.Background(), caller)

	// Assert
	s.Require().NoError(err)
	s.False(resp.IsAdmin)
	s.Equal("owner", resp.Role)
	s.Equal("K7M3PQ2X", resp.OwnerID)
}

func (s *AdminServiceTestSuite) TestMe_Unauthenticated() {
	_, err := s.service.Me(context.Background(), domain.Caller{})
	s.True(domain.IsKind(err, domain.KindUnauthenticated))
}

func (s *AdminServiceTestSuite) TestAddPrincipal_BrandAdmin() {
	// Arrange
	ctx := context.Background()
	s.mockBrand.On("GetByID", ctx, "sunset").Return(&domain.Brand{ID: "sunset"}, nil)
	s.mockAdmin.On("Upsert", ctx, mock.MatchedBy(func(p *domain.AdminPrincipal) bool {
		return p.Email == "new@example.com" && p.Level == domain.AdminLevelBrand &&
			p.BrandID != nil && *p.BrandID == "sunset" && p.Active && p.CreatedBy == "root@example.com"
	})).Return(nil)

	// Act
	resp, err := s.service.AddPrincipal(ctx, rootCaller, dto.AddAdminRequest{
		Email: "New@Example.com", Level: 2, BrandID: "sunset",
	})

	// Assert
	s.Require().NoError(err)
	s.Equal("new@example.com", resp.Email)
	s.Equal("sunset", resp.BrandID)
	s.mockAdmin.AssertExpectations(s.T())
	s.mockRecorder.AssertCalled(s.T(), "Record", ctx, mock.MatchedBy(func(e *domain.ActionLogEntry) bool {
		return e.ActionType == domain.ActionAddAdmin && e.BrandID == "sunset"
	}))
}

func (s *AdminServiceTestSuite) TestAddPrincipal_GlobalDropsBrand() {
	// Arrange
	ctx := context.Background()
	s.mockAdmin.On("Upsert", ctx, mock.MatchedBy(func(p *domain.AdminPrincipal) bool {
		return p.Level == domain.AdminLevelGlobal && p.BrandID == nil
	})).Return(nil)

	// Act
	resp, err := s.service.AddPrincipal(ctx, rootCaller, dto.AddAdminRequest{
		Email: "new@example.com", Level: 3, BrandID: "sunset",
	})

	// Assert
	s.Require().NoError(err)
	s.Empty(resp.BrandID)
}

func (s *AdminServiceTestSuite) TestAddPrincipal_OnlyBootstrap() {
	_, err := s.service.AddPrincipal(context.Background(), globalAdmin, dto.AddAdminRequest{Email: "new@example.com", Level: 3})
	s.True(domain.IsKind(err, domain.KindForbidden))
}

func (s *AdminServiceTestSuite) TestAddPrincipal_Validation() {
	ctx := context.Background()

	_, err := s.service.AddPrincipal(ctx, rootCaller, dto.AddAdminRequest{Email: "new@example.com", Level: 1})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))

	_, err = s.service.AddPrincipal(ctx, rootCaller, dto.AddAdminRequest{Email: "new@example.com", Level: 2})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))

	_, err = s.service.AddPrincipal(ctx, rootCaller, dto.AddAdminRequest{Email: "root@example.com", Level: 2, BrandID: "sunset"})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))

	s.mockBrand.On("GetByID", ctx, "nope").Return(nil, repository.ErrNotFound)
	_, err = s.service.AddPrincipal(ctx, rootCaller, dto.AddAdminRequest{Email: "new@example.com", Level: 2, BrandID: "nope"})
	s.True(domain.IsKind(err, domain.KindInvalidArgument))

	s.mockAdmin.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *AdminServiceTestSuite) TestRemovePrincipal_Success() {
	// Arrange
	ctx := context.Background()
	brandID := "sunset"
	s.mockAdmin.On("GetByEmail", ctx, "new@example.com").Return(&domain.AdminPrincipal{
		Email: "new@example.com", Level: domain.AdminLevelBrand, BrandID: &brandID,
	}, nil)
	s.mockAdmin.On("Delete", ctx, "new@example.com").Return(nil)

	// Act
	err := s.service.RemovePrincipal(ctx, rootCaller, "new@example.com")

	// Assert
	s.NoError(err)
	s.mockAdmin.AssertExpectations(s.T())
}

func (s *AdminServiceTestSuite) TestRemovePrincipal_BootstrapProtected() {
	// Act
	err := s.service.RemovePrincipal(context.Background(), rootCaller, "Root@Example.com")

	// Assert
	s.True(domain.IsKind(err, domain.KindForbidden))
	s.mockAdmin.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *AdminServiceTestSuite) TestRemovePrincipal_Unknown() {
	// Arrange
	ctx := context.Background()
	s.mockAdmin.On("GetByEmail", ctx, "new@example.com").Return(nil, repository.ErrNotFound)

	// Act
	err := s.service.RemovePrincipal(ctx, rootCaller, "new@example.com")

	// Assert
	s.True(domain.IsKind(err, domain.KindNotFound))
}

func (s *AdminServiceTestSuite) TestListPrincipals_BootstrapFirstAndDeduplicated() {
	// Arrange
	ctx := context.Background()
	s.mockAdmin.On("List", ctx, domain.AdminPrincipalFilter{}).Return([]domain.AdminPrincipal{
		{Email: "root@example.com", Level: domain.AdminLevelGlobal, Active: true},
		{Email: "admin@example.com", Level: domain.AdminLevelGlobal, Active: true},
	}, nil)

	// Act
	result, err := s.service.ListPrincipals(ctx, globalAdmin)

	// Assert
	s.Require().NoError(err)
	s.Len(result, 2)
	s.Equal("root@example.com", result[0].Email)
	s.True(result[0].IsBootstrap)
	s.Equal("admin@example.com", result[1].Email)
}

func (s *AdminServiceTestSuite) TestListPrincipals_BrandScoped() {
	// Arrange
	ctx := context.Background()
	s.mockAdmin.On("List", ctx, domain.AdminPrincipalFilter{BrandID: "sunset"}).Return([]domain.AdminPrincipal{}, nil)

	// Act
	result, err := s.service.ListPrincipals(ctx, brandAdmin)

	// Assert
	s.Require().NoError(err)
	s.Len(result, 1)
	s.mockAdmin.AssertExpectations(s.T())
}
