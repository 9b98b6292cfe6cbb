package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/mocks"
	"github.com/vestalumina/vls-api/internal/utils"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	mockVerifier *mocks.TokenVerifier
	router       *gin.Engine
	seen         *domain.Caller
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockVerifier = new(mocks.TokenVerifier)
	s.seen = nil

	auth := NewAuthMiddleware(s.mockVerifier)
	s.router = gin.New()
	handler := func(c *gin.Context) {
		caller, err := utils.GetCaller(contextFromGin(c))
		if err == nil {
			s.seen = &caller
		}
		c.Status(http.StatusOK)
	}
	s.router.GET("/me", auth.BearerAuth(), handler)
	s.router.POST("/heartbeat", auth.BearerAuth(), auth.RequireRole(domain.RoleDevice), handler)
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) serve(method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestBearerAuth_StoresCaller() {
	// Arrange
	caller := &domain.Caller{UID: "u-1", Email: "owner@example.com", Claims: domain.Claims{Role: domain.RoleOwner}}
	s.mockVerifier.On("VerifyIDToken", mock.Anything, "good-token").Return(caller, nil)

	// Act
	w := s.serve(http.MethodGet, "/me", "Bearer good-token")

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Require().NotNil(s.seen)
	s.Equal("u-1", s.seen.UID)
	s.mockVerifier.AssertExpectations(s.T())
}

func (s *AuthMiddlewareTestSuite) TestBearerAuth_MissingOrMalformedHeader() {
	s.Equal(http.StatusUnauthorized, s.serve(http.MethodGet, "/me", "").Code)
	s.Equal(http.StatusUnauthorized, s.serve(http.MethodGet, "/me", "Token abc").Code)
	s.Equal(http.StatusUnauthorized, s.serve(http.MethodGet, "/me", "Bearer").Code)
	s.mockVerifier.AssertNotCalled(s.T(), "VerifyIDToken", mock.Anything, mock.Anything)
}

func (s *AuthMiddlewareTestSuite) TestBearerAuth_InvalidToken() {
	// Arrange
	s.mockVerifier.On("VerifyIDToken", mock.Anything, "bad").Return(nil, domain.Unauthenticated("invalid or expired token"))

	// Act
	w := s.serve(http.MethodGet, "/me", "Bearer bad")

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), `"code":"unauthenticated"`)
	s.Nil(s.seen)
}

func (s *AuthMiddlewareTestSuite) TestBearerAuth_ProviderUnavailable() {
	// Arrange
	s.mockVerifier.On("VerifyIDToken", mock.Anything, "tok").Return(nil, domain.Unavailable("identity provider unavailable", errors.New("timeout")))

	// Act
	w := s.serve(http.MethodGet, "/me", "Bearer tok")

	// Assert
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Contains(w.Body.String(), `"code":"unavailable"`)
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	// Arrange
	s.mockVerifier.On("VerifyIDToken", mock.Anything, "owner").Return(&domain.Caller{UID: "u-1", Claims: domain.Claims{Role: domain.RoleOwner}}, nil)
	s.mockVerifier.On("VerifyIDToken", mock.Anything, "device").Return(&domain.Caller{UID: "u-2", Claims: domain.Claims{Role: domain.RoleDevice}}, nil)

	// Act
	ownerResp := s.serve(http.MethodPost, "/heartbeat", "Bearer owner")
	deviceResp := s.serve(http.MethodPost, "/heartbeat", "Bearer device")

	// Assert
	s.Equal(http.StatusForbidden, ownerResp.Code)
	s.Equal(http.StatusOK, deviceResp.Code)
}
