package utils

import (
	"context"

	"github.com/google/uuid"
)

// Context keys used by the auth middleware. Raw string keys, shared
// with internal/middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
)

// GetUserIDFromContext returns the authenticated user's id, if any
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

// GetEmailFromContext returns the authenticated user's email, if any
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyEmail).(string)
	return email, ok
}

// GetRoleFromContext returns the authenticated user's role, if any
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(ContextKeyRole).(string)
	return role, ok
}
