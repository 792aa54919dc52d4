package dto

// CreateBookingRequest represents the request payload for booking creation
type CreateBookingRequest struct {
	CarID     string `json:"car_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required"`   // YYYY-MM-DD
}

// CreateBookingResponse represents the response after successful booking creation
type CreateBookingResponse struct {
	Message    string  `json:"message"`
	BookingID  string  `json:"bookingId"`
	TotalPrice float64 `json:"total_price"`
}

// UserBookingItem represents a booking joined with its car in the
// per-user listing
type UserBookingItem struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	CarID      string  `json:"car_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	ImageURL   *string `json:"image_url"`
}

// BookingDetailResponse represents a single booking joined with its car
type BookingDetailResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	CarID       string  `json:"car_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	ImageURL    *string `json:"image_url"`
	PricePerDay float64 `json:"price_per_day"`
}

// AdminBookingItem represents a booking joined with its car and owner
// in the admin listing
type AdminBookingItem struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	CarID      string  `json:"car_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	UserName   string  `json:"user_name"`
	UserEmail  string  `json:"user_email"`
}
