package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/finance-flow/internal/app"
	"github.com/MKhiriev/finance-flow/internal/ratelimit"
	"github.com/MKhiriev/finance-flow/internal/service"
	"github.com/MKhiriev/finance-flow/internal/store"
	"github.com/MKhiriev/finance-flow/internal/token"
	"github.com/MKhiriev/finance-flow/internal/validators"
)

var (
	ErrRouteNotFound = errors.New("route not found")
	ErrInvalidJSON   = errors.New("invalid JSON was passed")
	ErrBodyTooLarge  = errors.New("request body too large")
)

// errorStatusMap holds client errors only; anything else is a 500.
var errorStatusMap = map[error]int{
	ErrRouteNotFound: http.StatusNotFound,
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrBodyTooLarge:  http.StatusRequestEntityTooLarge,

	token.ErrUnauthenticated:       http.StatusUnauthorized,
	validators.ErrValidationFailed: http.StatusBadRequest,
	ratelimit.ErrRateLimitExceeded: http.StatusTooManyRequests,

	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrWrongCredentials:     http.StatusUnauthorized,
	service.ErrWrongCurrentPassword: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:  http.StatusConflict,
	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrTransactionNotFound: http.StatusNotFound,
}

// errorMessages overrides the public message of an error. Checked in order.
var errorMessages = []struct {
	target  error
	message string
}{
	{token.ErrMissingCredential, app.MsgMissingToken},
	{token.ErrUnauthenticated, app.MsgTokenIsExpiredOrInvalid},
	{ratelimit.ErrRateLimitExceeded, app.MsgTooManyLoginAttempts},
	{store.ErrEmailAlreadyExists, app.MsgEmailAlreadyInUse},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client for err. Server
// errors never leak their cause.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}
