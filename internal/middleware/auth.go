package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/utils"
)

//go:generate mockery --name TokenVerifier --output ../mocks
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*domain.Caller, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// BearerAuth verifies the id token in the Authorization header and stores
// the caller in the gin context.
func (m *AuthMiddleware) BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{
				Error: "Authorization header is required",
				Code:  string(domain.KindUnauthenticated),
			})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{
				Error: "Invalid authorization header format",
				Code:  string(domain.KindUnauthenticated),
			})
			return
		}

		caller, err := m.verifier.VerifyIDToken(c.Request.Context(), bearerToken[1])
		if err != nil {
			status := http.StatusUnauthorized
			kind := domain.KindUnauthenticated
			if domain.IsKind(err, domain.KindUnavailable) {
				status = http.StatusServiceUnavailable
				kind = domain.KindUnavailable
			}
			c.AbortWithStatusJSON(status, dto.Error{Error: "Invalid or expired token", Code: string(kind)})
			return
		}

		c.Set(string(utils.CallerKey), *caller)
		c.Next()
	}
}

// RequireRole rejects callers whose claims carry none of roles.
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(string(utils.CallerKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{
				Error: "No authentication found",
				Code:  string(domain.KindUnauthenticated),
			})
			return
		}

		caller, ok := value.(domain.Caller)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error{
				Error: "Invalid caller type",
				Code:  string(domain.KindInternal),
			})
			return
		}

		if !domain.HasAnyRole(caller.Claims.Role, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{
				Error: "Insufficient permissions",
				Code:  string(domain.KindForbidden),
			})
			return
		}

		c.Next()
	}
}
