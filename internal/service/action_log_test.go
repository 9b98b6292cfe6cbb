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
	"github.com/vestalumina/vls-api/internal/mocks"
	"github.com/vestalumina/vls-api/pkg/logger"
)

type ActionLogServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockActionLog  *mocks.ActionLogRepository
	mockOpenSearch *mocks.OpenSearchRepository
	mockSQS        *mocks.SQSService
	mockPublisher  *mocks.LivePublisher
	service        *ActionLogService
	now            time.Time
}

func (s *ActionLogServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockActionLog = new(mocks.ActionLogRepository)
	s.mockOpenSearch = new(mocks.OpenSearchRepository)
	s.mockSQS = new(mocks.SQSService)
	s.mockPublisher = new(mocks.LivePublisher)

	s.mockRepo.On("ActionLog").Return(s.mockActionLog)
	s.mockRepo.On("OpenSearch").Return(s.mockOpenSearch)

	cfg := &config.Config{ActionLogDefaultLimit: 50, ActionLogMaxLimit: 500}
	s.service = NewActionLogService(s.mockRepo, s.mockSQS, stubResolver(), cfg, logger.NewNop())
	s.service.SetLivePublisher(s.mockPublisher)
	s.now = time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func TestActionLogService(t *testing.T) {
	suite.Run(t, new(ActionLogServiceTestSuite))
}

func (s *ActionLogServiceTestSuite) TestRecord_AppendsIndexesAndPublishes() {
	// Arrange
	ctx := context.Background()
	entry := &domain.ActionLogEntry{ActorEmail: "admin@example.com", ActionType: domain.ActionCreateTenant, TargetID: "K7M3PQ2X"}
	s.mockActionLog.On("Create", ctx, entry).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, entry).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(r *dto.ActionLogResponse) bool {
		return r.TargetID == "K7M3PQ2X" && r.ActionType == "create_tenant"
	})).Return(nil)

	// Act
	s.service.Record(ctx, entry)

	// Assert
	s.NotEmpty(entry.ID)
	s.Equal(s.now, entry.Timestamp)
	s.mockActionLog.AssertExpectations(s.T())
	s.mockSQS.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *ActionLogServiceTestSuite) TestRecord_AppendFailureIsSwallowed() {
	// Arrange
	ctx := context.Background()
	entry := &domain.ActionLogEntry{ActionType: domain.ActionDeleteTenant}
	s.mockActionLog.On("Create", ctx, entry).Return(errors.New("disk full"))

	// Act
	s.service.Record(ctx, entry)

	// Assert
	s.mockSQS.AssertNotCalled(s.T(), "SendIndexMessage", mock.Anything, mock.Anything)
	s.mockPublisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *ActionLogServiceTestSuite) TestRecord_QueueFailureStillPublishes() {
	// Arrange
	ctx := context.Background()
	entry := &domain.ActionLogEntry{ActionType: domain.ActionAddAdmin}
	s.mockActionLog.On("Create", ctx, entry).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, entry).Return(errors.New("throttled"))
	s.mockPublisher.On("Publish", ctx, mock.Anything).Return(nil)

	// Act
	s.service.Record(ctx, entry)

	// Assert
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *ActionLogServiceTestSuite) TestList_WithoutCriteriaUsesPostgres() {
	// Arrange
	ctx := context.Background()
	s.mockActionLog.On("List", ctx, domain.ActionLogFilter{Limit: 50}).Return([]domain.ActionLogEntry{
		{ID: "1", ActionType: domain.ActionCreateTenant},
	}, nil)

	// Act
	result, err := s.service.List(ctx, globalAdmin, dto.ActionLogQuery{})

	// Assert
	s.Require().NoError(err)
	s.Len(result, 1)
	s.mockOpenSearch.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything)
}

func (s *ActionLogServiceTestSuite) TestList_WithCriteriaUsesOpenSearchScopedToBrand() {
	// Arrange
	ctx := context.Background()
	want := domain.ActionLogFilter{
		BrandID:    "sunset",
		ActionType: domain.ActionCreateTenant,
		ActorEmail: "brand@example.com",
		Limit:      500,
	}
	s.mockOpenSearch.On("Search", ctx, want).Return([]domain.ActionLogEntry{{ID: "1", BrandID: "sunset"}}, nil)

	// Act
	result, err := s.service.List(ctx, brandAdmin, dto.ActionLogQuery{
		Limit:      10000,
		ActionType: "create_tenant",
		ActorEmail: " Brand@Example.com",
	})

	// Assert
	s.Require().NoError(err)
	s.Len(result, 1)
	s.mockActionLog.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *ActionLogServiceTestSuite) TestList_FallsBackWhenSearchFails() {
	// Arrange
	ctx := context.Background()
	since := s.now.Add(-time.Hour)
	s.mockOpenSearch.On("Search", ctx, mock.Anything).Return(nil, errors.New("index missing"))
	s.mockActionLog.On("List", ctx, domain.ActionLogFilter{Since: since, Limit: 20}).Return([]domain.ActionLogEntry{}, nil)

	// Act
	result, err := s.service.List(ctx, globalAdmin, dto.ActionLogQuery{Since: since, Limit: 20})

	// Assert
	s.NoError(err)
	s.Empty(result)
	s.mockActionLog.AssertExpectations(s.T())
}

func (s *ActionLogServiceTestSuite) TestList_NonAdminForbidden() {
	_, err := s.service.List(context.Background(), ownerCaller, dto.ActionLogQuery{})
	s.True(domain.IsKind(err, domain.KindForbidden))
}

func (s *ActionLogServiceTestSuite) TestCanView() {
	global := domain.Principal{IsAdmin: true, Level: domain.AdminLevelGlobal}
	brand := domain.Principal{IsAdmin: true, Level: domain.AdminLevelBrand, BrandID: "sunset"}

	s.True(CanView(global, &dto.ActionLogResponse{}))
	s.True(CanView(brand, &dto.ActionLogResponse{BrandID: "sunset"}))
	s.False(CanView(brand, &dto.ActionLogResponse{BrandID: "other"}))
	s.False(CanView(brand, &dto.ActionLogResponse{}))
	s.False(CanView(domain.Principal{}, &dto.ActionLogResponse{BrandID: "sunset"}))
}
