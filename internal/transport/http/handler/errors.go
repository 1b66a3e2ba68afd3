package handler

import (
	"errors"
	"net/http"

	"github.com/go-checkout-api/internal/domain"
)

// statusFor maps domain sentinel errors to HTTP status codes. Unrecognized
// errors are treated as internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNoSession),
		errors.Is(err, domain.ErrOTPExpired),
		errors.Is(err, domain.ErrOTPMismatch),
		errors.Is(err, domain.ErrSignatureMismatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotVerified):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUpstream),
		errors.Is(err, domain.ErrDeliveryFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
