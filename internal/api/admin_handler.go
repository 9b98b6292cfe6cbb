package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
)

//go:generate mockery --name AdminService --output ../mocks
type AdminService interface {
	Me(ctx context.Context, caller domain.Caller) (*dto.PrincipalResponse, error)
	AddPrincipal(ctx context.Context, caller domain.Caller, req dto.AddAdminRequest) (*dto.AdminPrincipalResponse, error)
	RemovePrincipal(ctx context.Context, caller domain.Caller, email string) error
	ListPrincipals(ctx context.Context, caller domain.Caller) ([]dto.AdminPrincipalResponse, error)
}

type AdminHandler struct {
	*BaseHandler
	service AdminService
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Me godoc
// @Summary Resolve the calling principal
// @Description Returns the caller's identity, claims and admin standing
// @Tags admins
// @Produce json
// @Success 200 {object} dto.PrincipalResponse
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Security BearerAuth
// @Router /me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	principal, err := h.service.Me(h.RequestCtx(c), h.Caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, principal)
}

// AddAdmin godoc
// @Summary Grant admin access
// @Description Bootstrap admin only. Level 2 admins are bound to a brand, level 3 admins are global.
// @Tags admins
// @Accept json
// @Produce json
// @Param body body dto.AddAdminRequest true "Principal"
// @Success 201 {object} dto.AdminPrincipalResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /admins [post]
func (h *AdminHandler) AddAdmin(c *gin.Context) {
	var req dto.AddAdminRequest
	if !h.BindJSON(c, &req) {
		return
	}

	principal, err := h.service.AddPrincipal(h.RequestCtx(c), h.Caller(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, principal)
}

// RemoveAdmin godoc
// @Summary Revoke admin access
// @Tags admins
// @Produce json
// @Param email path string true "Admin email"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /admins/{email} [delete]
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	if err := h.service.RemovePrincipal(h.RequestCtx(c), h.Caller(c), c.Param("email")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Admin removed successfully"})
}

// ListAdmins godoc
// @Summary List admin principals
// @Description The bootstrap admin is always listed first
// @Tags admins
// @Produce json
// @Success 200 {array} dto.AdminPrincipalResponse
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /admins [get]
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	principals, err := h.service.ListPrincipals(h.RequestCtx(c), h.Caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, principals)
}
