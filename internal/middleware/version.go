package middleware

import (
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/utils"
)

const APIVersionHeader = "X-API-Version"

var pathVersionPattern = regexp.MustCompile(`(?i)/(v\d+)(?:/|$)`)

type VersionMiddleware struct {
	cfg *config.APIVersionConfig
}

func NewVersionMiddleware(cfg *config.APIVersionConfig) *VersionMiddleware {
	return &VersionMiddleware{cfg: cfg}
}

// Negotiate resolves the request's API version from the X-API-Version header,
// the version query parameter or the path, in that order, and falls back to
// the current version. Deprecated versions get sunset headers.
func (m *VersionMiddleware) Negotiate() gin.HandlerFunc {
	return func(c *gin.Context) {
		version := normalizeVersion(m.requestedVersion(c))
		if version == "" {
			version = m.cfg.Current
		}

		if !slices.Contains(m.cfg.Supported, version) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":             "unsupported API version",
				"code":              string(domain.KindInvalidArgument),
				"supportedVersions": m.cfg.Supported,
				"currentVersion":    m.cfg.Current,
			})
			c.Abort()
			return
		}

		if sunset, ok := m.cfg.Deprecated[version]; ok {
			c.Header("X-API-Deprecated", "true")
			c.Header("X-API-Sunset-Date", sunset)
			c.Header("Warning", fmt.Sprintf(`299 - "API version %s is deprecated. Please upgrade to %s"`, version, m.cfg.Current))
		}
		c.Header(APIVersionHeader, version)
		c.Set(string(utils.APIVersionKey), version)
		c.Next()
	}
}

func (m *VersionMiddleware) requestedVersion(c *gin.Context) string {
	if v := c.GetHeader(APIVersionHeader); v != "" {
		return v
	}
	if v := c.Query("version"); v != "" {
		return v
	}
	if match := pathVersionPattern.FindStringSubmatch(c.Request.URL.Path); match != nil {
		return match[1]
	}
	return ""
}

func normalizeVersion(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
