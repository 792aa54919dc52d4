package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"RENTWHEELS_BACK-END/internal/dto"
	"RENTWHEELS_BACK-END/internal/models"
	"RENTWHEELS_BACK-END/internal/utils"
)

// BookingsHandler manages booking endpoints
type BookingsHandler struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewBookingsHandler creates a new BookingsHandler
func NewBookingsHandler(db *pgxpool.Pool, logger *zap.Logger) *BookingsHandler {
	return &BookingsHandler{db: db, logger: logger}
}

// rentalDays is the billable day count for a date range: the elapsed
// time rounded up to whole days. Equal dates yield 0 and a reversed
// range yields a negative count; neither is rejected here, matching the
// established booking contract.
func rentalDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

func totalPrice(pricePerDay float64, start, end time.Time) float64 {
	return pricePerDay * float64(rentalDays(start, end))
}

// CreateBooking handles POST /api/bookings
// @Summary Create a booking
// @Description Book a car for a date range; the total price is price_per_day times the day count
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} dto.ErrorResponse "Car not found"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/bookings [post]
func (h *BookingsHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req dto.CreateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		// Same contract as a missing car
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Car not found")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	var pricePerDay float64
	err = h.db.QueryRow(context.Background(),
		`SELECT price_per_day FROM cars WHERE id = $1`, carID).Scan(&pricePerDay)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			h.logger.Error("failed to look up car price", zap.Error(err))
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Car not found")
		return
	}

	total := totalPrice(pricePerDay, startDate, endDate)

	bookingID := uuid.New()
	_, err = h.db.Exec(context.Background(),
		`INSERT INTO bookings (id, user_id, car_id, start_date, end_date, total_price, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bookingID, userID, carID, startDate, endDate, total, "pending", time.Now())
	if err != nil {
		h.logger.Error("failed to create booking", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Booking failed")
		return
	}

	h.logger.Info("booking created",
		zap.String("booking_id", bookingID.String()),
		zap.String("user_id", userID.String()),
		zap.String("car_id", carID.String()),
		zap.Float64("total_price", total),
	)
	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateBookingResponse{
		Message:    "Booking created successfully",
		BookingID:  bookingID.String(),
		TotalPrice: total,
	})
}

// UserBookings handles GET /api/bookings/user
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserBookingItem
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/bookings/user [get]
func (h *BookingsHandler) UserBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
		return
	}

	rows, err := h.db.Query(context.Background(),
		`SELECT b.id, b.user_id, b.car_id, b.start_date, b.end_date, b.total_price, b.status, b.created_at,
		        c.brand, c.model, c.image_url
		   FROM bookings b
		   JOIN cars c ON b.car_id = c.id
		  WHERE b.user_id = $1
		  ORDER BY b.created_at DESC`, userID)
	if err != nil {
		h.logger.Error("failed to query user bookings", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	defer rows.Close()

	items := make([]dto.UserBookingItem, 0)
	for rows.Next() {
		var (
			id, uid, carID                uuid.UUID
			startDate, endDate, createdAt time.Time
			total                         float64
			status, brand, model          string
			imageURL                      *string
		)
		if err := rows.Scan(&id, &uid, &carID, &startDate, &endDate, &total, &status, &createdAt,
			&brand, &model, &imageURL); err != nil {
			h.logger.Error("failed to scan booking row", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}
		items = append(items, dto.UserBookingItem{
			ID:         id.String(),
			UserID:     uid.String(),
			CarID:      carID.String(),
			StartDate:  utils.FormatDate(startDate),
			EndDate:    utils.FormatDate(endDate),
			TotalPrice: total,
			Status:     status,
			CreatedAt:  utils.FormatTimestamp(createdAt),
			Brand:      brand,
			Model:      model,
			ImageURL:   imageURL,
		})
	}
	if err := rows.Err(); err != nil {
		h.logger.Error("booking rows error", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, items)
}

// BookingDetail handles GET /api/bookings/{id}
// @Summary Get one of the caller's bookings
// @Description A booking owned by another user is indistinguishable from a missing one
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingDetailResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/bookings/{id} [get]
func (h *BookingsHandler) BookingDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/bookings/")
	bookingID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found")
		return
	}

	var (
		b            models.Booking
		pricePerDay  float64
		brand, model string
		imageURL     *string
	)
	err = h.db.QueryRow(context.Background(),
		`SELECT b.id, b.user_id, b.car_id, b.start_date, b.end_date, b.total_price, b.status, b.created_at,
		        c.brand, c.model, c.image_url, c.price_per_day
		   FROM bookings b
		   JOIN cars c ON b.car_id = c.id
		  WHERE b.id = $1 AND b.user_id = $2`, bookingID, userID).Scan(
		&b.ID, &b.UserID, &b.CarID, &b.StartDate, &b.EndDate, &b.TotalPrice, &b.Status, &b.CreatedAt,
		&brand, &model, &imageURL, &pricePerDay)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch booking", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingDetailResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		CarID:       b.CarID.String(),
		StartDate:   utils.FormatDate(b.StartDate),
		EndDate:     utils.FormatDate(b.EndDate),
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
		CreatedAt:   utils.FormatTimestamp(b.CreatedAt),
		Brand:       brand,
		Model:       model,
		ImageURL:    imageURL,
		PricePerDay: pricePerDay,
	})
}

// AdminBookings handles GET /api/admin/bookings
// @Summary List all bookings (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AdminBookingItem
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/bookings [get]
func (h *BookingsHandler) AdminBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rows, err := h.db.Query(context.Background(),
		`SELECT b.id, b.user_id, b.car_id, b.start_date, b.end_date, b.total_price, b.status, b.created_at,
		        c.brand, c.model, u.name AS user_name, u.email AS user_email
		   FROM bookings b
		   JOIN cars c ON b.car_id = c.id
		   JOIN users u ON b.user_id = u.id
		  ORDER BY b.created_at DESC`)
	if err != nil {
		h.logger.Error("failed to query all bookings", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	defer rows.Close()

	items := make([]dto.AdminBookingItem, 0)
	for rows.Next() {
		var (
			id, uid, carID                        uuid.UUID
			startDate, endDate, createdAt         time.Time
			total                                 float64
			status, brand, model, userName, email string
		)
		if err := rows.Scan(&id, &uid, &carID, &startDate, &endDate, &total, &status, &createdAt,
			&brand, &model, &userName, &email); err != nil {
			h.logger.Error("failed to scan booking row", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}
		items = append(items, dto.AdminBookingItem{
			ID:         id.String(),
			UserID:     uid.String(),
			CarID:      carID.String(),
			StartDate:  utils.FormatDate(startDate),
			EndDate:    utils.FormatDate(endDate),
			TotalPrice: total,
			Status:     status,
			CreatedAt:  utils.FormatTimestamp(createdAt),
			Brand:      brand,
			Model:      model,
			UserName:   userName,
			UserEmail:  email,
		})
	}
	if err := rows.Err(); err != nil {
		h.logger.Error("booking rows error", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, items)
}
