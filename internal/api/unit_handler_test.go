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

var testOwner = domain.Caller{
	UID:    "u-owner",
	Email:  "owner@example.com",
	Claims: domain.Claims{OwnerID: "K7M3PQ2X", Role: domain.RoleOwner},
}

type UnitHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.UnitService
}

func (s *UnitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(mocks.UnitService)
	handler := NewUnitHandler(s.mockService)
	s.router.POST("/units", withCaller(testOwner), handler.CreateUnit)
	s.router.GET("/units", withCaller(testOwner), handler.ListUnits)
}

func TestUnitHandler(t *testing.T) {
	suite.Run(t, new(UnitHandlerTestSuite))
}

func (s *UnitHandlerTestSuite) TestCreateUnit_Success() {
	// Arrange
	created := time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)
	s.mockService.On("Create", mock.Anything, testOwner, dto.CreateUnitRequest{Name: "Apartment 2"}).
		Return(&dto.UnitResponse{ID: "unit-1", OwnerID: "K7M3PQ2X", Name: "Apartment 2", CreatedAt: created}, nil)

	// Act
	w := performRequest(s.router, http.MethodPost, "/units", dto.CreateUnitRequest{Name: "Apartment 2"})

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"ownerId":"K7M3PQ2X"`)
	s.mockService.AssertExpectations(s.T())
}

func (s *UnitHandlerTestSuite) TestCreateUnit_MissingName() {
	// Act
	w := performRequest(s.router, http.MethodPost, "/units", map[string]string{})

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UnitHandlerTestSuite) TestListUnits() {
	// Arrange
	s.mockService.On("List", mock.Anything, testOwner).Return([]dto.UnitResponse{
		{ID: "unit-1", OwnerID: "K7M3PQ2X", Name: "Apartment 2"},
		{ID: "unit-2", OwnerID: "K7M3PQ2X", Name: "Studio"},
	}, nil)

	// Act
	w := performRequest(s.router, http.MethodGet, "/units", nil)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"name":"Studio"`)
}

func (s *UnitHandlerTestSuite) TestListUnits_NotOwner() {
	// Arrange
	s.mockService.On("List", mock.Anything, testOwner).Return(nil, domain.Forbidden("owner access required"))

	// Act
	w := performRequest(s.router, http.MethodGet, "/units", nil)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}
