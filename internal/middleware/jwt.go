package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"RENTWHEELS_BACK-END/internal/config"
	"RENTWHEELS_BACK-END/internal/utils"
)

// JWTClaims represents the claims in the JWT token
type JWTClaims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed JWT token for the given user
func GenerateToken(userID uuid.UUID, email, role string, cfg *config.JWTConfig) (string, error) {
	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, cfg *config.JWTConfig) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// AuthMiddleware validates the bearer token in the Authorization header.
// A missing or malformed header is 401; a token that fails signature or
// expiry checks is 403.
func AuthMiddleware(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
			return
		}

		claims, err := ValidateToken(tokenParts[1], cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Invalid token")
			return
		}

		// Add user info to request context
		ctx := context.WithValue(r.Context(), utils.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, utils.ContextKeyEmail, claims.Email)
		ctx = context.WithValue(ctx, utils.ContextKeyRole, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// Authorize reports whether the given role satisfies the required one
func Authorize(role, required string) bool {
	return role == required
}

// RequireRole gates a handler on the role claim set by AuthMiddleware
func RequireRole(next http.HandlerFunc, required string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok || !Authorize(role, required) {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Access denied")
			return
		}
		next.ServeHTTP(w, r)
	}
}
