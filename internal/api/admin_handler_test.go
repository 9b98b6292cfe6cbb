package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/mocks"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.AdminService
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(mocks.AdminService)
	handler := NewAdminHandler(s.mockService)

	group := s.router.Group("/", withCaller(testAdmin))
	group.GET("/me", handler.Me)
	group.POST("/admins", handler.AddAdmin)
	group.GET("/admins", handler.ListAdmins)
	group.DELETE("/admins/:email", handler.RemoveAdmin)
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestMe() {
	// Arrange
	s.mockService.On("Me", mock.Anything, testAdmin).Return(&dto.PrincipalResponse{
		UID:     "u-admin",
		Email:   "admin@example.com",
		IsAdmin: true,
		Level:   int(domain.AdminLevelGlobal),
	}, nil)

	// Act
	w := performRequest(s.router, http.MethodGet, "/me", nil)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.PrincipalResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.IsAdmin)
	s.Equal(3, response.Level)
}

func (s *AdminHandlerTestSuite) TestAddAdmin_Success() {
	// Arrange
	req := dto.AddAdminRequest{Email: "brand@example.com", Level: 2, BrandID: "sunset"}
	s.mockService.On("AddPrincipal", mock.Anything, testAdmin, req).
		Return(&dto.AdminPrincipalResponse{Email: "brand@example.com", Level: 2, BrandID: "sunset", Active: true}, nil)

	// Act
	w := performRequest(s.router, http.MethodPost, "/admins", req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AdminHandlerTestSuite) TestAddAdmin_NotBootstrap() {
	// Arrange
	s.mockService.On("AddPrincipal", mock.Anything, testAdmin, mock.Anything).
		Return(nil, domain.Forbidden("only the bootstrap admin can manage admins"))

	// Act
	w := performRequest(s.router, http.MethodPost, "/admins", dto.AddAdminRequest{Email: "x@example.com", Level: 3})

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AdminHandlerTestSuite) TestRemoveAdmin_UsesPathEmail() {
	// Arrange
	s.mockService.On("RemovePrincipal", mock.Anything, testAdmin, "brand@example.com").Return(nil)

	// Act
	w := performRequest(s.router, http.MethodDelete, "/admins/brand@example.com", nil)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AdminHandlerTestSuite) TestListAdmins() {
	// Arrange
	s.mockService.On("ListPrincipals", mock.Anything, testAdmin).Return([]dto.AdminPrincipalResponse{
		{Email: "root@example.com", Level: 3, Active: true, IsBootstrap: true},
		{Email: "brand@example.com", Level: 2, BrandID: "sunset", Active: true},
	}, nil)

	// Act
	w := performRequest(s.router, http.MethodGet, "/admins", nil)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.AdminPrincipalResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Require().Len(response, 2)
	s.True(response[0].IsBootstrap)
}
