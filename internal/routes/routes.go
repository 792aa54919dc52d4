package routes

import (
	"net/http"
	"os"
	"path/filepath"

	httpSwagger "github.com/swaggo/http-swagger"

	"RENTWHEELS_BACK-END/internal/config"
	"RENTWHEELS_BACK-END/internal/handlers"
	"RENTWHEELS_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	carsHandler *handlers.CarsHandler,
	bookingsHandler *handlers.BookingsHandler,
	healthHandler *handlers.HealthHandler,
) {
	jwtCfg := &cfg.JWT

	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(authHandler.Profile, jwtCfg))

	// Catalog routes
	http.HandleFunc("/api/cars", carsHandler.ListCars)
	http.HandleFunc("/api/cars/", carsHandler.CarDetail)

	// Booking routes. The exact /api/bookings/user pattern takes
	// precedence over the /api/bookings/ prefix match.
	http.HandleFunc("/api/bookings", middleware.AuthMiddleware(bookingsHandler.CreateBooking, jwtCfg))
	http.HandleFunc("/api/bookings/user", middleware.AuthMiddleware(bookingsHandler.UserBookings, jwtCfg))
	http.HandleFunc("/api/bookings/", middleware.AuthMiddleware(bookingsHandler.BookingDetail, jwtCfg))

	// Admin routes
	http.HandleFunc("/api/admin/bookings",
		middleware.AuthMiddleware(middleware.RequireRole(bookingsHandler.AdminBookings, "admin"), jwtCfg))

	// API documentation
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Everything else falls through to the client application
	http.HandleFunc("/", spaHandler(cfg.Server.StaticDir))
}

// spaHandler serves the built client application, falling back to
// index.html for client-side routes.
func spaHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
