package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"RENTWHEELS_BACK-END/internal/config"
	"RENTWHEELS_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice@example.com", "user", cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := ValidateToken(token, cfg)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: got %s want %s", claims.UserID, userID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email mismatch: %s", claims.Email)
	}
	if claims.Role != "user" {
		t.Fatalf("role mismatch: %s", claims.Role)
	}
	if claims.ExpiresAt.Time.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Hour}

	token, err := GenerateToken(uuid.New(), "alice@example.com", "user", cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token, testJWTConfig()); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "alice@example.com", "user", testJWTConfig())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := &config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour}
	if _, err := ValidateToken(token, other); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	cfg := testJWTConfig()
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not be reached")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareBadHeaderFormat(t *testing.T) {
	cfg := testJWTConfig()
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not be reached")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	cfg := testJWTConfig()
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not be reached")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice@example.com", "admin", cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	called := false
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok || gotID != userID {
			t.Fatalf("user id not propagated: %v %v", gotID, ok)
		}
		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok || role != "admin" {
			t.Fatalf("role not propagated: %q %v", role, ok)
		}
		w.WriteHeader(http.StatusOK)
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !called {
		t.Fatalf("expected handler to be reached")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	cfg := testJWTConfig()

	protected := AuthMiddleware(RequireRole(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "admin"), cfg)

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"user", http.StatusForbidden},
	}
	for _, tc := range cases {
		token, err := GenerateToken(uuid.New(), "x@example.com", tc.role, cfg)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("role %q: expected %d, got %d", tc.role, tc.want, rec.Code)
		}
	}
}

func TestAuthorize(t *testing.T) {
	if !Authorize("admin", "admin") {
		t.Fatalf("expected admin to satisfy admin")
	}
	if Authorize("user", "admin") {
		t.Fatalf("expected user not to satisfy admin")
	}
}
