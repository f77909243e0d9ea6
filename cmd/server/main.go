package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/gicdev/cinema-booking/internal/booking"    // Booking service layer
	"github.com/gicdev/cinema-booking/internal/config"     // Internal config loader
	"github.com/gicdev/cinema-booking/internal/database"   // MySQL connection pool
	"github.com/gicdev/cinema-booking/internal/handler"    // HTTP handlers
	"github.com/gicdev/cinema-booking/internal/pricing"    // Ticket pricing
	"github.com/gicdev/cinema-booking/internal/queue"      // RabbitMQ consumer for booking events
	"github.com/gicdev/cinema-booking/internal/repository" // Data access layer
	"github.com/gicdev/cinema-booking/internal/router"     // Internal router setup
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	// Open the MySQL pool and fail fast if the database is unreachable.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; a nil client disables the seat-map cache.
	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()

	movies := repository.NewMovieRepo(db)
	seats := repository.NewSeatRepo(db)
	bookings := repository.NewBookingRepo(db)

	svc := booking.NewService(movies, seats, bookings, rdb, cacheCfg, pricing.DefaultConfig(cfg.BasePriceCents))

	authHandler := handler.NewAuthHandler(cfg.JWTSecret, cfg.AccessTTLMin, cfg.AdminPassHash)
	movieHandler := handler.NewMovieHandler(svc)
	bookingHandler := handler.NewBookingHandler(svc)

	// Consume booking.confirmed events in the background; the consumer
	// reconnects on its own and never takes the API down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e, movieHandler, bookingHandler)
	router.RegisterAdmin(e, authHandler, movieHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
