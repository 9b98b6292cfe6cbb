package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/utils"
)

func newVersionRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewVersionMiddleware(&config.APIVersionConfig{
		Current:    "v2",
		Supported:  []string{"v1", "v2"},
		Deprecated: map[string]string{"v1": "2025-06-01"},
	})
	r := gin.New()
	handler := func(c *gin.Context) {
		*seen = c.GetString(string(utils.APIVersionKey))
		c.Status(http.StatusOK)
	}
	for _, prefix := range []string{"/api/v1", "/api/v2", "/api/v9", "/api"} {
		r.Group(prefix, m.Negotiate()).GET("/me", handler)
	}
	return r
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		header     string
		want       int
		version    string
		deprecated bool
	}{
		{"current path", "/api/v2/me", "", http.StatusOK, "v2", false},
		{"deprecated path", "/api/v1/me", "", http.StatusOK, "v1", true},
		{"no version falls back", "/api/me", "", http.StatusOK, "v2", false},
		{"header wins over path", "/api/v1/me", "2", http.StatusOK, "v2", false},
		{"query wins over path", "/api/v2/me?version=V1", "", http.StatusOK, "v1", true},
		{"unsupported path", "/api/v9/me", "", http.StatusBadRequest, "", false},
		{"unsupported header", "/api/v2/me", "v3", http.StatusBadRequest, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			r := newVersionRouter(&seen)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(APIVersionHeader, tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, tt.version, seen)
			if tt.want != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"supportedVersions":["v1","v2"]`)
				return
			}
			assert.Equal(t, tt.version, w.Header().Get(APIVersionHeader))
			if tt.deprecated {
				assert.Equal(t, "true", w.Header().Get("X-API-Deprecated"))
				assert.Equal(t, "2025-06-01", w.Header().Get("X-API-Sunset-Date"))
				assert.Contains(t, w.Header().Get("Warning"), "upgrade to v2")
			} else {
				assert.Empty(t, w.Header().Get("X-API-Deprecated"))
			}
		})
	}
}

func TestNormalizeVersion(t *testing.T) {
	assert.Equal(t, "v2", normalizeVersion(" 2 "))
	assert.Equal(t, "v1", normalizeVersion("V1"))
	assert.Equal(t, "", normalizeVersion(""))
}
