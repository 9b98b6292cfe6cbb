package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
)

//go:generate mockery --name DeviceService --output ../mocks
type DeviceService interface {
	Register(ctx context.Context, req dto.RegisterDeviceRequest) (*dto.RegisterDeviceResponse, error)
	Heartbeat(ctx context.Context, caller domain.Caller, req dto.HeartbeatRequest) (*dto.HeartbeatResponse, error)
	ListDevices(ctx context.Context, caller domain.Caller, status string) ([]dto.DeviceResponse, error)
	CreateAppVersion(ctx context.Context, caller domain.Caller, req dto.CreateAppVersionRequest) (*dto.AppVersionResponse, error)
	ListAppVersions(ctx context.Context, caller domain.Caller) ([]dto.AppVersionResponse, error)
	DistributeUpdate(ctx context.Context, caller domain.Caller, versionID string) (*dto.DistributeUpdateResponse, error)
}

type DeviceHandler struct {
	*BaseHandler
	service DeviceService
}

func NewDeviceHandler(service DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

// RegisterDevice godoc
// @Summary Register a tablet for a unit
// @Description Replaces any active device of the unit and returns a one-time exchange token
// @Tags devices
// @Accept json
// @Produce json
// @Param body body dto.RegisterDeviceRequest true "Registration"
// @Success 201 {object} dto.RegisterDeviceResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /devices/register [post]
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var req dto.RegisterDeviceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Heartbeat godoc
// @Summary Report device telemetry
// @Description Updates the active device of the caller's unit and returns any pending update
// @Tags devices
// @Accept json
// @Produce json
// @Param body body dto.HeartbeatRequest true "Telemetry"
// @Success 200 {object} dto.HeartbeatResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /devices/heartbeat [post]
func (h *DeviceHandler) Heartbeat(c *gin.Context) {
	var req dto.HeartbeatRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Heartbeat(h.RequestCtx(c), h.Caller(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListDevices godoc
// @Summary List devices
// @Tags devices
// @Produce json
// @Param status query string false "Filter by status (active or replaced)"
// @Success 200 {array} dto.DeviceResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /devices [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	devices, err := h.service.ListDevices(h.RequestCtx(c), h.Caller(c), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, devices)
}

// CreateAppVersion godoc
// @Summary Publish an app version
// @Tags app-versions
// @Accept json
// @Produce json
// @Param body body dto.CreateAppVersionRequest true "Version"
// @Success 201 {object} dto.AppVersionResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /app-versions [post]
func (h *DeviceHandler) CreateAppVersion(c *gin.Context) {
	var req dto.CreateAppVersionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	version, err := h.service.CreateAppVersion(h.RequestCtx(c), h.Caller(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, version)
}

// ListAppVersions godoc
// @Summary List app versions
// @Tags app-versions
// @Produce json
// @Success 200 {array} dto.AppVersionResponse
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /app-versions [get]
func (h *DeviceHandler) ListAppVersions(c *gin.Context) {
	versions, err := h.service.ListAppVersions(h.RequestCtx(c), h.Caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, versions)
}

// DistributeUpdate godoc
// @Summary Push an app version to every active device
// @Tags app-versions
// @Produce json
// @Param id path string true "App version ID"
// @Success 200 {object} dto.DistributeUpdateResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /app-versions/{id}/distribute [post]
func (h *DeviceHandler) DistributeUpdate(c *gin.Context) {
	resp, err := h.service.DistributeUpdate(h.RequestCtx(c), h.Caller(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
