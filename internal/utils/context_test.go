package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestContextAccessors(t *testing.T) {
	id := uuid.New()
	ctx := context.WithValue(context.Background(), ContextKeyUserID, id)
	ctx = context.WithValue(ctx, ContextKeyEmail, "alice@example.com")
	ctx = context.WithValue(ctx, ContextKeyRole, "admin")

	if got, ok := GetUserIDFromContext(ctx); !ok || got != id {
		t.Fatalf("user id not recovered: %v %v", got, ok)
	}
	if got, ok := GetEmailFromContext(ctx); !ok || got != "alice@example.com" {
		t.Fatalf("email not recovered: %q %v", got, ok)
	}
	if got, ok := GetRoleFromContext(ctx); !ok || got != "admin" {
		t.Fatalf("role not recovered: %q %v", got, ok)
	}
}

func TestContextAccessorsEmptyContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatalf("expected no user id on empty context")
	}
	if _, ok := GetRoleFromContext(ctx); ok {
		t.Fatalf("expected no role on empty context")
	}
}
