package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gicdev/cinema-booking/internal/booking"
	"github.com/gicdev/cinema-booking/internal/repository"
)

// MovieHandler exposes the movie lifecycle: the public active-movie and
// seat-map reads plus the admin setup and reset operations.
type MovieHandler struct {
	Svc *booking.Service
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(svc *booking.Service) *MovieHandler {
	return &MovieHandler{Svc: svc}
}

// GetActive handles GET /v1/movies/active.  It returns the currently
// active movie together with its remaining seat count.
func (h *MovieHandler) GetActive(c echo.Context) error {
	movie, available, err := h.Svc.ActiveMovie(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no active movie"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie":           movieJSON(movie),
		"seats_available": available,
	})
}

// SeatMap handles GET /v1/movies/:id/seats.  It returns the selection
// projection of the movie's grid with every seat marked available or
// booked.
func (h *MovieHandler) SeatMap(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx := c.Request().Context()
	movie, err := h.Svc.Movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
	}
	seatMap, err := h.Svc.SelectionMap(ctx, movie, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build seat map"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie":    movieJSON(movie),
		"seat_map": seatMap,
	})
}

// Setup handles POST /v1/movies (admin).  It deactivates any previous
// movie, creates the new one and generates its full seat grid.
func (h *MovieHandler) Setup(c echo.Context) error {
	var body struct {
		Title       string `json:"title"`
		Rows        int    `json:"rows"`
		SeatsPerRow int    `json:"seats_per_row"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if body.Rows < 1 || body.Rows > 26 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rows must be between 1 and 26"})
	}
	if body.SeatsPerRow < 1 || body.SeatsPerRow > 50 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats_per_row must be between 1 and 50"})
	}
	movie, err := h.Svc.Setup(c.Request().Context(), body.Title, body.Rows, body.SeatsPerRow)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to set up movie"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"movie": movieJSON(movie)})
}

// Reset handles POST /v1/movies/reset (admin).  It deactivates the
// active movie without creating a replacement.
func (h *MovieHandler) Reset(c echo.Context) error {
	if err := h.Svc.Reset(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reset"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reset complete"})
}
