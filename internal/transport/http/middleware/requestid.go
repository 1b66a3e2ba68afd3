package middleware

import (
	"net/http"

	"github.com/go-checkout-api/internal/pkg/requestid"
)

// RequestID tags every request with a fresh ULID, exposed both in the
// response header and in the request context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestid.New()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(requestid.WithRequestID(r.Context(), id)))
	})
}
