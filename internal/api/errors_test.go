package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vestalumina/vls-api/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind domain.ErrorKind
		want int
	}{
		{domain.KindUnauthenticated, http.StatusUnauthorized},
		{domain.KindForbidden, http.StatusForbidden},
		{domain.KindNotFound, http.StatusNotFound},
		{domain.KindInvalidArgument, http.StatusBadRequest},
		{domain.KindConflict, http.StatusConflict},
		{domain.KindResourceExhausted, http.StatusTooManyRequests},
		{domain.KindUnavailable, http.StatusServiceUnavailable},
		{domain.KindInternal, http.StatusInternalServerError},
		{domain.ErrorKind("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.kind))
		})
	}
}

func TestToErrorResponse(t *testing.T) {
	t.Run("wrapped domain error keeps message and reason", func(t *testing.T) {
		err := fmt.Errorf("link: %w", domain.Conflict("tenant is suspended", domain.ReasonTenantSuspended))

		status, body := toErrorResponse(err)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "tenant is suspended", body.Error)
		assert.Equal(t, "conflict", body.Code)
		assert.Equal(t, domain.ReasonTenantSuspended, body.Reason)
	})

	t.Run("internal error hides its cause", func(t *testing.T) {
		status, body := toErrorResponse(domain.Internal("db exploded", errors.New("password=secret")))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal error", body.Error)
		assert.NotContains(t, body.Error, "secret")
	})

	t.Run("plain error is internal", func(t *testing.T) {
		status, body := toErrorResponse(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal", body.Code)
	})
}
