// @title Car Rental Backend API
// @version 1.0
// @description Car rental catalog and booking API

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "RENTWHEELS_BACK-END/docs" // swagger docs registration
	"RENTWHEELS_BACK-END/internal/config"
	"RENTWHEELS_BACK-END/internal/database"
	"RENTWHEELS_BACK-END/internal/handlers"
	"RENTWHEELS_BACK-END/internal/logger"
	"RENTWHEELS_BACK-END/internal/middleware"
	"RENTWHEELS_BACK-END/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is config-driven, so config failures use stderr directly
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	log.Info("connected to database", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))

	if err := database.Migrate(cfg.GetDSN(), log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(pool, cfg, log)
	carsHandler := handlers.NewCarsHandler(pool, log)
	bookingsHandler := handlers.NewBookingsHandler(pool, log)
	healthHandler := handlers.NewHealthHandler(pool)

	// Setup all routes
	routes.SetupRoutes(cfg, authHandler, carsHandler, bookingsHandler, healthHandler)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := c.Handler(middleware.RequestLogger(log)(http.DefaultServeMux))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}
