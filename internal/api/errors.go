package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
)

var statusByKind = map[domain.ErrorKind]int{
	domain.KindUnauthenticated:   http.StatusUnauthorized,
	domain.KindForbidden:         http.StatusForbidden,
	domain.KindNotFound:          http.StatusNotFound,
	domain.KindInvalidArgument:   http.StatusBadRequest,
	domain.KindConflict:          http.StatusConflict,
	domain.KindResourceExhausted: http.StatusTooManyRequests,
	domain.KindUnavailable:       http.StatusServiceUnavailable,
	domain.KindInternal:          http.StatusInternalServerError,
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind domain.ErrorKind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// toErrorResponse renders err for callers. Only the safe message of a
// domain error is exposed; causes stay in logs.
func toErrorResponse(err error) (int, dto.Error) {
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind == domain.KindInternal {
		return http.StatusInternalServerError, dto.Error{
			Error: "internal error",
			Code:  string(domain.KindInternal),
		}
	}

	return StatusFor(de.Kind), dto.Error{
		Error:  de.Message,
		Code:   string(de.Kind),
		Reason: de.Reason,
	}
}

func respondError(c *gin.Context, err error) {
	status, body := toErrorResponse(err)
	_ = c.Error(err)
	c.JSON(status, body)
}
