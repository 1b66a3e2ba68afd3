package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	// ErrInvalidInput covers malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")

	// OTP workflow errors. The messages intentionally disclose which step
	// failed so a legitimate user can retry the right thing.
	ErrNoSession   = errors.New("no otp requested for this email")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPMismatch = errors.New("incorrect otp")

	// ErrNotVerified guards order creation behind a verified email.
	ErrNotVerified = errors.New("email not verified")

	// ErrSignatureMismatch means the payment callback failed HMAC authentication.
	ErrSignatureMismatch = errors.New("payment signature mismatch")

	// Collaborator failures.
	ErrUpstream       = errors.New("upstream failure")
	ErrDeliveryFailed = errors.New("email delivery failure")
)
