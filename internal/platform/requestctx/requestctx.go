// Package requestctx carries per-request identity values through context.
package requestctx

import "context"

// adminIDContextKey is the context key for the authenticated staff member.
type adminIDContextKey struct{}

// sessionIDContextKey is the context key for the console session id.
type sessionIDContextKey struct{}

// WithAdminID stores an admin identifier in context.
func WithAdminID(ctx context.Context, adminID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, adminIDContextKey{}, adminID)
}

// AdminIDFromContext returns the admin identifier stored in context.
func AdminIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(adminIDContextKey{}).(string)
	return value
}

// WithSessionID stores the console session id in context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionIDContextKey{}, sessionID)
}

// SessionIDFromContext returns the console session id stored in context.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(sessionIDContextKey{}).(string)
	return value
}
