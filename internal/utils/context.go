package utils

import (
	"context"
	"errors"

	"github.com/vestalumina/vls-api/internal/domain"
)

type ContextKey string

const (
	CallerKey     ContextKey = "caller"
	RequestIDKey  ContextKey = "request_id"
	APIVersionKey ContextKey = "api_version"
)

var (
	ErrNoCallerInContext = errors.New("no caller found in context")
	ErrInvalidCallerType = errors.New("invalid caller type")
)

// GetCaller returns the verified caller placed in ctx by the auth middleware.
func GetCaller(c context.Context) (domain.Caller, error) {
	value := c.Value(CallerKey)
	if value == nil {
		return domain.Caller{}, ErrNoCallerInContext
	}

	caller, ok := value.(domain.Caller)
	if !ok {
		return domain.Caller{}, ErrInvalidCallerType
	}

	return caller, nil
}

// CallerOrAnonymous returns the caller in ctx, or the zero caller when the
// request is unauthenticated. Services reject the zero caller themselves.
func CallerOrAnonymous(c context.Context) domain.Caller {
	caller, err := GetCaller(c)
	if err != nil {
		return domain.Caller{}
	}
	return caller
}

func GetRequestID(c context.Context) string {
	id, _ := c.Value(RequestIDKey).(string)
	return id
}
