package ctxutil

import (
	"context"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

type ctxKey string

const (
	principalKey ctxKey = "principal"
	requestIDKey ctxKey = "request_id"
)

// WithPrincipal stores the authenticated principal in the context.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx extracts the principal from the context.
// Returns false if the value is missing, has no user ID, or has the wrong type.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	if !ok || p.UserID <= 0 {
		return domain.Principal{}, false
	}
	return p, true
}

// UserIDFromCtx extracts the authenticated user ID from the context.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok {
		return 0, false
	}
	return p.UserID, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
