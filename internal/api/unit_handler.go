package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
)

//go:generate mockery --name UnitService --output ../mocks
type UnitService interface {
	Create(ctx context.Context, caller domain.Caller, req dto.CreateUnitRequest) (*dto.UnitResponse, error)
	List(ctx context.Context, caller domain.Caller) ([]dto.UnitResponse, error)
}

type UnitHandler struct {
	*BaseHandler
	service UnitService
}

func NewUnitHandler(service UnitService) *UnitHandler {
	return &UnitHandler{service: service}
}

// CreateUnit godoc
// @Summary Create a rental unit
// @Tags units
// @Accept json
// @Produce json
// @Param body body dto.CreateUnitRequest true "Unit"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	unit, err := h.service.Create(h.RequestCtx(c), h.Caller(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, unit)
}

// ListUnits godoc
// @Summary List the caller's units
// @Tags units
// @Produce json
// @Success 200 {array} dto.UnitResponse
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	units, err := h.service.List(h.RequestCtx(c), h.Caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, units)
}
