package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, caller domain.Caller, req dto.CreateTenantRequest) (*dto.CreateTenantResponse, error)
	LinkIdentity(ctx context.Context, caller domain.Caller, tenantID string) (*dto.LinkTenantResponse, error)
	Get(ctx context.Context, caller domain.Caller, tenantID string) (*dto.TenantResponse, error)
	Delete(ctx context.Context, caller domain.Caller, tenantID string) error
	ResetPassword(ctx context.Context, caller domain.Caller, tenantID string) (*dto.ResetPasswordResponse, error)
	ToggleStatus(ctx context.Context, caller domain.Caller, tenantID, status string) (*dto.TenantStatusResponse, error)
	List(ctx context.Context, caller domain.Caller) ([]dto.TenantResponse, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant godoc
// @Summary Create a new tenant
// @Description Create an owner account with a generated tenant id and temporary password
// @Tags tenants
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantRequest true "Tenant object"
// @Success 201 {object} dto.CreateTenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 429 {object} dto.Error
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), h.Caller(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// ListTenants godoc
// @Summary List tenants
// @Description List the tenants visible to the calling admin, newest first
// @Tags tenants
// @Produce json
// @Success 200 {array} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.service.List(h.RequestCtx(c), h.Caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetTenant godoc
// @Summary Get a tenant
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.service.Get(h.RequestCtx(c), h.Caller(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant godoc
// @Summary Delete a tenant
// @Description Delete the tenant, its settings and its identity
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), h.Caller(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tenant deleted successfully"})
}

// ResetTenantPassword godoc
// @Summary Reset a tenant password
// @Description Replace the tenant's credential with a new temporary password
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.ResetPasswordResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /tenants/{id}/reset-password [post]
func (h *TenantHandler) ResetTenantPassword(c *gin.Context) {
	resp, err := h.service.ResetPassword(h.RequestCtx(c), h.Caller(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ToggleTenantStatus godoc
// @Summary Suspend or reactivate a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param body body dto.UpdateTenantStatusRequest true "Target status"
// @Success 200 {object} dto.TenantStatusResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /tenants/{id}/status [put]
func (h *TenantHandler) ToggleTenantStatus(c *gin.Context) {
	var req dto.UpdateTenantStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.ToggleStatus(h.RequestCtx(c), h.Caller(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LinkIdentity godoc
// @Summary Link the calling identity to a tenant
// @Description Attach owner claims to the caller and activate the tenant. Repeating the call is harmless.
// @Tags tenants
// @Accept json
// @Produce json
// @Param body body dto.LinkTenantRequest true "Tenant to link"
// @Success 200 {object} dto.LinkTenantResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /tenants/link [post]
func (h *TenantHandler) LinkIdentity(c *gin.Context) {
	var req dto.LinkTenantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.LinkIdentity(h.RequestCtx(c), h.Caller(c), req.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
