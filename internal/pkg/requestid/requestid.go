package requestid

import (
	"context"
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

type ctxKey struct{}

// New generates a ULID request ID. ULIDs sort by creation time, which makes
// correlating log lines for a request window cheap.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// WithRequestID returns a copy of ctx with the request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the request ID from ctx. Returns "" if absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
