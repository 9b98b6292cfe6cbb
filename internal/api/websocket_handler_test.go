package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/mocks"
	"github.com/vestalumina/vls-api/pkg/logger"
)

var testBrandAdmin = domain.Caller{UID: "u-brand", Email: "brand@example.com"}

type WebSocketHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.ActionLogService
	mockFeed    *mocks.LiveFeed
	handler     *WebSocketHandler
	server      *httptest.Server
	subscribed  chan func(*dto.ActionLogResponse)
}

func (s *WebSocketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(mocks.ActionLogService)
	s.mockFeed = new(mocks.LiveFeed)
	s.subscribed = make(chan func(*dto.ActionLogResponse), 1)

	s.mockFeed.On("Subscribe", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		s.subscribed <- args.Get(1).(func(*dto.ActionLogResponse))
	}).Return(nil).Maybe()
	s.mockFeed.On("Close").Return().Maybe()

	s.handler = NewWebSocketHandler(s.mockService, s.mockFeed, logger.NewNop())
	router := gin.New()
	router.GET("/action-log/stream", withCaller(testBrandAdmin), s.handler.HandleWebSocket)
	s.server = httptest.NewServer(router)
}

func (s *WebSocketHandlerTestSuite) TearDownTest() {
	s.handler.Stop()
	s.server.Close()
}

func TestWebSocketHandler(t *testing.T) {
	suite.Run(t, new(WebSocketHandlerTestSuite))
}

func (s *WebSocketHandlerTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/action-log/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *WebSocketHandlerTestSuite) clientCount() int {
	s.handler.mutex.Lock()
	defer s.handler.mutex.Unlock()
	return len(s.handler.clients)
}

func (s *WebSocketHandlerTestSuite) TestStream_DeliversOnlyOwnBrand() {
	// Arrange
	s.mockService.On("AuthorizeStream", mock.Anything, testBrandAdmin).Return(domain.Principal{
		Email: "brand@example.com", IsAdmin: true, Level: domain.AdminLevelBrand, BrandID: "sunset",
	}, nil)
	go s.handler.Start()
	publish := <-s.subscribed

	conn := s.dial()
	defer conn.Close()
	s.Require().Eventually(func() bool { return s.clientCount() == 1 }, time.Second, 10*time.Millisecond)

	// Act
	publish(&dto.ActionLogResponse{ID: "other-1", ActionType: "create_tenant", BrandID: "harbor"})
	publish(&dto.ActionLogResponse{ID: "own-1", ActionType: "create_tenant", BrandID: "sunset"})

	// Assert
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, message, err := conn.ReadMessage()
	s.Require().NoError(err)
	var entry dto.ActionLogResponse
	s.Require().NoError(json.Unmarshal(message, &entry))
	s.Equal("own-1", entry.ID)
}

func (s *WebSocketHandlerTestSuite) TestHandleWebSocket_AfterStopClosesConnection() {
	// Arrange
	s.mockService.On("AuthorizeStream", mock.Anything, testBrandAdmin).Return(domain.Principal{
		Email: "brand@example.com", IsAdmin: true, Level: domain.AdminLevelBrand, BrandID: "sunset",
	}, nil)
	s.handler.Stop()

	// Act
	conn := s.dial()
	defer conn.Close()
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err := conn.ReadMessage()

	// Assert
	s.Require().Error(err)
	var netErr net.Error
	if errors.As(err, &netErr) {
		s.False(netErr.Timeout(), "handler should close the connection instead of hanging")
	}
	s.Equal(0, s.clientCount())
}

func (s *WebSocketHandlerTestSuite) TestHandleWebSocket_ForbiddenBeforeUpgrade() {
	// Arrange
	s.mockService.On("AuthorizeStream", mock.Anything, testBrandAdmin).Return(domain.Principal{}, domain.Forbidden("admin access required"))

	// Act
	w := performRequest(s.server.Config.Handler, http.MethodGet, "/action-log/stream", nil)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	s.mockFeed.AssertNotCalled(s.T(), "Subscribe", mock.Anything, mock.Anything)
}
