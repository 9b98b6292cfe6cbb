package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/utils"
	"github.com/vestalumina/vls-api/pkg/logger"
)

const rateLimitWindow = time.Minute

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// PrincipalRateLimit limits requests per verified identity. It must run after
// BearerAuth.
func (m *RateLimitMiddleware) PrincipalRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := utils.GetCaller(contextFromGin(c))
		if err != nil || caller.UID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{
				Error: "Caller required for rate limiting",
				Code:  string(domain.KindUnauthenticated),
			})
			return
		}

		limit := m.config.DefaultRateLimit
		if limit <= 0 {
			limit = 600
		}

		m.enforce(c, fmt.Sprintf("rate_limit:principal:%s", caller.UID), limit, "Rate limit exceeded")
	}
}

// GlobalRateLimit limits requests per client IP.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.enforce(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit, "Global rate limit exceeded")
	}
}

// enforce runs a fixed-window counter in Redis. Redis failures fail open.
func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int, message string) {
	ctx := c.Request.Context()
	reset := strconv.FormatInt(time.Now().Add(rateLimitWindow).Unix(), 10)

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err, zap.String("key", key))
		c.Next()
		return
	}

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Error{
			Error: message,
			Code:  string(domain.KindResourceExhausted),
		})
		return
	}

	if err := m.increment(ctx, key); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err, zap.String("key", key))
	}

	remaining := max(limit-(current+1), 0)
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}

func (m *RateLimitMiddleware) increment(ctx context.Context, key string) error {
	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rateLimitWindow)
	_, err := pipe.Exec(ctx)
	return err
}

// contextFromGin exposes gin keys set by earlier middleware as context values.
func contextFromGin(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if caller, ok := c.Get(string(utils.CallerKey)); ok {
		ctx = context.WithValue(ctx, utils.CallerKey, caller)
	}
	return ctx
}
