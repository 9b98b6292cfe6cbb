package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	ExchangeToken(ctx context.Context, token string) (string, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, err := h.service.SignIn(h.RequestCtx(c), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{IDToken: token})
}

// ExchangeToken godoc
// @Summary Exchange a device registration token for an id token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ExchangeTokenRequest true "Exchange token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /auth/exchange [post]
func (h *AuthHandler) ExchangeToken(c *gin.Context) {
	var req dto.ExchangeTokenRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, err := h.service.ExchangeToken(h.RequestCtx(c), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{IDToken: token})
}
