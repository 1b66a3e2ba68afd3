package domain

import "time"

// OTPSession is the per-email one-time-passcode state. At most one session
// exists per email; re-issuance overwrites the whole record, including the
// Verified flag. Sessions are volatile; losing them on restart is acceptable.
type OTPSession struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
	Verified bool      `json:"verified"`
}

// Expired reports whether the session is older than ttl at the given instant.
// The clock is passed in so callers can test expiry deterministically.
func (s *OTPSession) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.IssuedAt) > ttl
}
