package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"RENTWHEELS_BACK-END/internal/config"
	"RENTWHEELS_BACK-END/internal/dto"
	"RENTWHEELS_BACK-END/internal/middleware"
	"RENTWHEELS_BACK-END/internal/models"
	"RENTWHEELS_BACK-END/internal/utils"
)

// uniqueViolation is the Postgres error code for unique-constraint violations
const uniqueViolation = "23505"

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	db     *pgxpool.Pool
	cfg    *config.Config
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(db *pgxpool.Pool, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, logger: logger}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with name, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.RegisterResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	userID := uuid.New()
	_, err = h.db.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, phone, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		userID, req.Name, req.Email, hashed, req.Phone, "user", time.Now())

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Email already exists")
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	h.logger.Info("user registered", zap.String("user_id", userID.String()))
	utils.WriteJSONResponse(w, http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID.String(),
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password, returns a 24h bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	var user models.User
	err := h.db.QueryRow(context.Background(),
		`SELECT id, name, email, password_hash, phone, role, created_at FROM users WHERE email = $1`,
		req.Email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone, &user.Role, &user.CreatedAt)

	// A missing user and a wrong password are deliberately indistinguishable
	if err != nil || !checkPassword(user.PasswordHash, req.Password) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.Role, &h.cfg.JWT)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Profile returns the current user's public projection
// @Summary Get user profile
// @Description Get the current authenticated user's profile information
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "User profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var resp dto.UserResponse
	err := h.db.QueryRow(context.Background(),
		`SELECT name, email, role FROM users WHERE id = $1`,
		userID).Scan(&resp.Name, &resp.Email, &resp.Role)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	resp.ID = userID.String()

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}
