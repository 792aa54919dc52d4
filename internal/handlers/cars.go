package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"RENTWHEELS_BACK-END/internal/dto"
	"RENTWHEELS_BACK-END/internal/models"
	"RENTWHEELS_BACK-END/internal/utils"
)

// CarsHandler manages catalog endpoints
type CarsHandler struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewCarsHandler creates a new CarsHandler
func NewCarsHandler(db *pgxpool.Pool, logger *zap.Logger) *CarsHandler {
	return &CarsHandler{db: db, logger: logger}
}

// parseCarFilter reads the optional catalog filters from the query string.
// Unparseable price bounds are treated as absent.
func parseCarFilter(q url.Values) dto.CarFilter {
	f := dto.CarFilter{
		Category:     strings.TrimSpace(q.Get("category")),
		Transmission: strings.TrimSpace(q.Get("transmission")),
	}
	if v := strings.TrimSpace(q.Get("minPrice")); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := strings.TrimSpace(q.Get("maxPrice")); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}

// buildCarListQuery builds the parameterized catalog query. Only available
// cars are returned regardless of filters; filters combine with AND.
func buildCarListQuery(f dto.CarFilter) (string, []any) {
	query := `SELECT id, brand, model, year, price_per_day, category, transmission, seats, fuel_type, image_url, available, description, created_at
	            FROM cars WHERE available = TRUE`
	args := []any{}

	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		query += fmt.Sprintf(" AND price_per_day >= $%d", len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		query += fmt.Sprintf(" AND price_per_day <= $%d", len(args))
	}
	if f.Transmission != "" {
		args = append(args, f.Transmission)
		query += fmt.Sprintf(" AND transmission = $%d", len(args))
	}

	return query, args
}

func carToResponse(c models.Car) dto.CarResponse {
	return dto.CarResponse{
		ID:           c.ID.String(),
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		PricePerDay:  c.PricePerDay,
		Category:     c.Category,
		Transmission: c.Transmission,
		Seats:        c.Seats,
		FuelType:     c.FuelType,
		ImageURL:     c.ImageURL,
		Available:    c.Available,
		Description:  c.Description,
		CreatedAt:    utils.FormatTimestamp(c.CreatedAt),
	}
}

// ListCars handles GET /api/cars
// @Summary List available cars
// @Description List available cars, optionally filtered by category, transmission, and price bounds
// @Tags cars
// @Produce json
// @Param category query string false "Exact category match"
// @Param transmission query string false "Exact transmission match"
// @Param minPrice query number false "Inclusive lower bound on price_per_day"
// @Param maxPrice query number false "Inclusive upper bound on price_per_day"
// @Success 200 {array} dto.CarResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cars [get]
func (h *CarsHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query, args := buildCarListQuery(parseCarFilter(r.URL.Query()))

	rows, err := h.db.Query(context.Background(), query, args...)
	if err != nil {
		h.logger.Error("failed to query cars", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch cars")
		return
	}
	defer rows.Close()

	cars := make([]dto.CarResponse, 0)
	for rows.Next() {
		var c models.Car
		if err := rows.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.PricePerDay, &c.Category,
			&c.Transmission, &c.Seats, &c.FuelType, &c.ImageURL, &c.Available, &c.Description, &c.CreatedAt); err != nil {
			h.logger.Error("failed to scan car row", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch cars")
			return
		}
		cars = append(cars, carToResponse(c))
	}
	if err := rows.Err(); err != nil {
		h.logger.Error("car rows error", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch cars")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, cars)
}

// CarDetail handles GET /api/cars/{id}
// @Summary Get a car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} dto.CarResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cars/{id} [get]
func (h *CarsHandler) CarDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/cars/")
	carID, err := uuid.Parse(idStr)
	if err != nil {
		// An unparseable id matches no car
		utils.WriteErrorResponse(w, http.StatusNotFound, "Car not found")
		return
	}

	var c models.Car
	err = h.db.QueryRow(context.Background(),
		`SELECT id, brand, model, year, price_per_day, category, transmission, seats, fuel_type, image_url, available, description, created_at
		   FROM cars WHERE id = $1`, carID).Scan(
		&c.ID, &c.Brand, &c.Model, &c.Year, &c.PricePerDay, &c.Category,
		&c.Transmission, &c.Seats, &c.FuelType, &c.ImageURL, &c.Available, &c.Description, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Car not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch car", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch car")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, carToResponse(c))
}
