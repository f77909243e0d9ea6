package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/gicdev/cinema-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/gicdev/cinema-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers the unauthenticated routes on the provided
// Echo instance: the health check, the public movie reads and the
// customer booking flow.  Booking is anonymous, so none of these apply
// JWT middleware.
func RegisterRoutes(e *echo.Echo, m *handler.MovieHandler, b *handler.BookingHandler) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)

	// Public movie reads: the active movie with its remaining capacity,
	// and the seat map of any movie by id.
	e.GET("/v1/movies/active", m.GetActive)
	e.GET("/v1/movies/:id/seats", m.SeatMap)

	// The booking flow.  Allocate proposes a selection without reserving
	// anything; Confirm books it atomically.
	e.POST("/v1/bookings/allocate", b.Allocate)
	e.POST("/v1/bookings/confirm", b.Confirm)
	e.GET("/v1/bookings", b.List)
	e.GET("/v1/bookings/:ref", b.Get)
}

// RegisterAdmin registers the admin login and the protected movie
// management endpoints.  Login lives under /v1/auth and does not require
// a session; setup and reset require a valid access token with the
// ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, m *handler.MovieHandler, jwtSecret string) {
	e.POST("/v1/auth/login", a.Login)

	g := e.Group(
		"/v1/movies",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)
	g.POST("", m.Setup)
	g.POST("/reset", m.Reset)
}
