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

type BrandHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.BrandService
}

func (s *BrandHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(mocks.BrandService)
	handler := NewBrandHandler(s.mockService)
	s.router.POST("/brands", withCaller(testAdmin), handler.CreateBrand)
	s.router.GET("/brands", withCaller(testAdmin), handler.ListBrands)
}

func TestBrandHandler(t *testing.T) {
	suite.Run(t, new(BrandHandlerTestSuite))
}

func (s *BrandHandlerTestSuite) TestCreateBrand_Success() {
	// Arrange
	req := dto.CreateBrandRequest{ID: "sunset-villas", Name: "Sunset Villas", PrimaryColor: "#D4AF37"}
	s.mockService.On("Create", mock.Anything, testAdmin, req).Return(&dto.BrandResponse{
		ID: "sunset-villas", Name: "Sunset Villas", PrimaryColor: "#D4AF37",
	}, nil)

	// Act
	w := performRequest(s.router, http.MethodPost, "/brands", req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.BrandResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("sunset-villas", response.ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *BrandHandlerTestSuite) TestCreateBrand_MissingName() {
	// Act
	w := performRequest(s.router, http.MethodPost, "/brands", map[string]string{"id": "sunset-villas"})

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BrandHandlerTestSuite) TestCreateBrand_Duplicate() {
	// Arrange
	s.mockService.On("Create", mock.Anything, testAdmin, mock.Anything).
		Return(nil, domain.Conflict("brand already exists", ""))

	// Act
	w := performRequest(s.router, http.MethodPost, "/brands", dto.CreateBrandRequest{ID: "sunset-villas", Name: "Sunset"})

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *BrandHandlerTestSuite) TestListBrands() {
	// Arrange
	s.mockService.On("List", mock.Anything, testAdmin).Return([]dto.BrandResponse{
		{ID: "vesta-lumina", ClientCount: 4, TotalUnits: 9},
	}, nil)

	// Act
	w := performRequest(s.router, http.MethodGet, "/brands", nil)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"clientCount":4`)
	s.Contains(w.Body.String(), `"totalUnits":9`)
}

func (s *BrandHandlerTestSuite) TestListBrands_Forbidden() {
	// Arrange
	s.mockService.On("List", mock.Anything, testAdmin).Return(nil, domain.Forbidden("admin access required"))

	// Act
	w := performRequest(s.router, http.MethodGet, "/brands", nil)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}
