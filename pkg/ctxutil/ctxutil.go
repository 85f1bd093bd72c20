package ctxutil

import (
	"context"
)

type ctxKey string

const (
	usernameKey  ctxKey = "username"
	roleKey      ctxKey = "user_role"
	requestIDKey ctxKey = "request_id"
)

// WithUsername stores the authenticated username in the context.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromCtx extracts the authenticated username from the context.
// Returns "" and false if the value is missing, empty, or of the wrong type.
func UsernameFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// WithUserRole stores the user's role in the context.
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// UserRoleFromCtx extracts the user's role from the context.
// Returns an empty string if absent.
func UserRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// IsAdminCtx reports whether the request was authenticated with the admin role.
func IsAdminCtx(ctx context.Context) bool {
	return UserRoleFromCtx(ctx) == "admin"
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
