package dto

// CarFilter holds the optional catalog filters. Absent fields impose
// no constraint; present fields combine with logical AND.
type CarFilter struct {
	Category     string
	Transmission string
	MinPrice     *float64
	MaxPrice     *float64
}

// CarResponse represents a vehicle in API responses
type CarResponse struct {
	ID           string  `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	PricePerDay  float64 `json:"price_per_day"`
	Category     string  `json:"category"`
	Transmission string  `json:"transmission"`
	Seats        int     `json:"seats"`
	FuelType     string  `json:"fuel_type"`
	ImageURL     *string `json:"image_url"`
	Available    bool    `json:"available"`
	Description  *string `json:"description"`
	CreatedAt    string  `json:"created_at"`
}
