package models

import (
	"time"

	"github.com/google/uuid"
)

// Car represents a rental vehicle in the catalog
type Car struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Brand        string    `json:"brand" db:"brand"`
	Model        string    `json:"model" db:"model"`
	Year         int       `json:"year" db:"year"`
	PricePerDay  float64   `json:"price_per_day" db:"price_per_day"`
	Category     string    `json:"category" db:"category"`
	Transmission string    `json:"transmission" db:"transmission"`
	Seats        int       `json:"seats" db:"seats"`
	FuelType     string    `json:"fuel_type" db:"fuel_type"`
	ImageURL     *string   `json:"image_url" db:"image_url"`
	Available    bool      `json:"available" db:"available"`
	Description  *string   `json:"description" db:"description"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
