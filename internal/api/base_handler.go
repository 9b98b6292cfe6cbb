package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// Caller returns the verified caller, or the zero caller on public routes.
func (h *BaseHandler) Caller(ginCtx *gin.Context) domain.Caller {
	value, ok := ginCtx.Get(string(utils.CallerKey))
	if !ok {
		return domain.Caller{}
	}
	caller, _ := value.(domain.Caller)
	return caller
}

// BindJSON decodes the request body, writing a 400 on failure.
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error(), Code: string(domain.KindInvalidArgument)})
		return false
	}
	return true
}
