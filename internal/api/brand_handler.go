package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
)

//go:generate mockery --name BrandService --output ../mocks
type BrandService interface {
	Create(ctx context.Context, caller domain.Caller, req dto.CreateBrandRequest) (*dto.BrandResponse, error)
	List(ctx context.Context, caller domain.Caller) ([]dto.BrandResponse, error)
}

type BrandHandler struct {
	*BaseHandler
	service BrandService
}

func NewBrandHandler(service BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

// CreateBrand godoc
// @Summary Create a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param body body dto.CreateBrandRequest true "Brand"
// @Success 201 {object} dto.BrandResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /brands [post]
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if !h.BindJSON(c, &req) {
		return
	}

	brand, err := h.service.Create(h.RequestCtx(c), h.Caller(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, brand)
}

// ListBrands godoc
// @Summary List brands
// @Description Brand admins only see their own brand
// @Tags brands
// @Produce json
// @Success 200 {array} dto.BrandResponse
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /brands [get]
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.service.List(h.RequestCtx(c), h.Caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, brands)
}
