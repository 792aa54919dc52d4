package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a rental reservation.
// Status is set to "pending" at creation and is only ever changed
// manually by an administrator, never by this service.
type Booking struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	CarID      uuid.UUID `json:"car_id" db:"car_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	TotalPrice float64   `json:"total_price" db:"total_price"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
