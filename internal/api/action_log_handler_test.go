package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/mocks"
)

type ActionLogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.ActionLogService
}

func (s *ActionLogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(mocks.ActionLogService)
	handler := NewActionLogHandler(s.mockService)
	s.router.GET("/action-log", withCaller(testAdmin), handler.ListActionLog)
}

func TestActionLogHandler(t *testing.T) {
	suite.Run(t, new(ActionLogHandlerTestSuite))
}

func (s *ActionLogHandlerTestSuite) TestListActionLog_ParsesQuery() {
	// Arrange
	since := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	s.mockService.On("List", mock.Anything, testAdmin, mock.MatchedBy(func(q dto.ActionLogQuery) bool {
		return q.Limit == 20 && q.ActionType == "create_tenant" &&
			q.ActorEmail == "admin@example.com" && q.Since.Equal(since)
	})).Return([]dto.ActionLogResponse{{ID: "1", ActionType: "create_tenant"}}, nil)

	// Act
	w := performRequest(s.router, http.MethodGet,
		"/action-log?limit=20&action_type=create_tenant&actor_email=admin@example.com&since=2025-07-01", nil)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"actionType":"create_tenant"`)
	s.mockService.AssertExpectations(s.T())
}

func (s *ActionLogHandlerTestSuite) TestListActionLog_RejectsBadInput() {
	for _, target := range []string{
		"/action-log?limit=ten",
		"/action-log?since=yesterday",
		"/action-log?action_type=drop_everything",
	} {
		w := performRequest(s.router, http.MethodGet, target, nil)
		s.Equal(http.StatusBadRequest, w.Code, target)
	}
	s.mockService.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ActionLogHandlerTestSuite) TestListActionLog_Forbidden() {
	// Arrange
	s.mockService.On("List", mock.Anything, testAdmin, mock.Anything).Return(nil, domain.Forbidden("admin access required"))

	// Act
	w := performRequest(s.router, http.MethodGet, "/action-log", nil)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}
