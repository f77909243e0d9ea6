package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gicdev/cinema-booking/internal/allocation"
	"github.com/gicdev/cinema-booking/internal/booking"
	"github.com/gicdev/cinema-booking/internal/model"
	"github.com/gicdev/cinema-booking/internal/pricing"
	"github.com/gicdev/cinema-booking/internal/repository"
)

// BookingHandler exposes the booking flow: allocating a selection,
// confirming it and reading bookings back.
type BookingHandler struct {
	Svc *booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// Allocate handles POST /v1/bookings/allocate.  It selects seats for
// the active movie, either by the default centering heuristic or from a
// caller-supplied start position, and returns the proposed selection
// with a price quote and the reference the booking would get.  Nothing
// is reserved until Confirm.
func (h *BookingHandler) Allocate(c echo.Context) error {
	var body struct {
		NumTickets    int    `json:"num_tickets"`
		StartPosition string `json:"start_position"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.NumTickets < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "num_tickets must be at least 1"})
	}

	ctx := c.Request().Context()
	movie, _, err := h.Svc.ActiveMovie(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no active movie"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
	}

	movie, seats, err := h.Svc.Allocate(ctx, movie.ID, body.NumTickets, body.StartPosition)
	if err != nil {
		return allocationError(c, err)
	}

	ids := make([]uint64, 0, len(seats))
	for _, seat := range seats {
		ids = append(ids, seat.ID)
	}
	seatMap, err := h.Svc.SelectionMap(ctx, movie, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build seat map"})
	}
	ref, err := h.Svc.PreviewRef(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to derive booking reference"})
	}
	quote, err := pricing.NewQuote(h.Svc.Pricing, len(seats), "", false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to price selection"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"movie":       movieJSON(movie),
		"booking_ref": ref,
		"seats":       seatsJSON(seats),
		"seat_map":    seatMap,
		"quote":       quote,
	})
}

// Confirm handles POST /v1/bookings/confirm.  It books the selected
// seats atomically; if any seat was taken since allocation the request
// fails with 409 and the caller should re-allocate.
func (h *BookingHandler) Confirm(c echo.Context) error {
	var body struct {
		SeatIDs      []uint64 `json:"seat_ids"`
		PromoCode    string   `json:"promo_code"`
		HasStudentID bool     `json:"has_student_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.SeatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_ids is required"})
	}

	bk, quote, err := h.Svc.Confirm(c.Request().Context(), body.SeatIDs, body.PromoCode, body.HasStudentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSeatsTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "some selected seats were just booked, please choose again"})
		case errors.Is(err, repository.ErrMovieNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no active movie"})
		case errors.Is(err, pricing.ErrEmptyPromoCode), errors.Is(err, pricing.ErrUnknownPromoCode):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		var promoErr *pricing.PromoError
		if errors.As(err, &promoErr) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": promoErr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to confirm booking"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"booking": bookingJSON(bk),
		"quote":   quote,
	})
}

// List handles GET /v1/bookings.  It returns the bookings of the active
// movie, newest first.
func (h *BookingHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	movie, _, err := h.Svc.ActiveMovie(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no active movie"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
	}
	bookings, err := h.Svc.Bookings.ListByMovie(ctx, movie.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	out := make([]echo.Map, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingJSON(&bookings[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie":    movieJSON(movie),
		"bookings": out,
	})
}

// Get handles GET /v1/bookings/:ref.  With ?map=true the response also
// carries the screen-at-top seating map marking the booking's own seats.
func (h *BookingHandler) Get(c echo.Context) error {
	ref := c.Param("ref")
	withMap := c.QueryParam("map") == "true"

	detail, err := h.Svc.GetBooking(c.Request().Context(), ref, withMap)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
	}

	resp := echo.Map{
		"booking": bookingJSON(detail.Booking),
		"movie":   movieJSON(detail.Movie),
		"seats":   seatsJSON(detail.Seats),
	}
	if withMap {
		resp["seat_map"] = detail.Map
	}
	return c.JSON(http.StatusOK, resp)
}

// allocationError maps an allocation failure to its HTTP response: 404
// for a missing movie, 422 for everything the caller can fix by changing
// the request.
func allocationError(c echo.Context, err error) error {
	var allocErr *allocation.Error
	if !errors.As(err, &allocErr) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "allocation failed"})
	}
	if allocErr.Kind == allocation.KindNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": allocErr.Error()})
	}
	resp := echo.Map{
		"error": allocErr.Error(),
		"kind":  allocErr.Kind.String(),
	}
	switch allocErr.Kind {
	case allocation.KindInsufficientCapacity:
		resp["requested"] = allocErr.Requested
		resp["available"] = allocErr.Available
	case allocation.KindInvalidFormat:
		resp["position"] = allocErr.Position
	case allocation.KindRowOutOfRange:
		resp["row"] = allocErr.Row
		resp["max_row"] = allocErr.MaxRow
	case allocation.KindColumnOutOfRange:
		resp["column"] = allocErr.Column
		resp["max_column"] = allocErr.MaxColumn
	case allocation.KindFragmentation:
		resp["requested"] = allocErr.Requested
	}
	return c.JSON(http.StatusUnprocessableEntity, resp)
}

// movieJSON shapes a movie for API responses.
func movieJSON(m *model.Movie) echo.Map {
	return echo.Map{
		"id":            m.ID,
		"title":         m.Title,
		"rows":          m.Rows,
		"seats_per_row": m.SeatsPerRow,
		"total_seats":   m.TotalSeats(),
		"is_active":     m.IsActive,
		"created_at":    m.CreatedAt.Format(time.RFC3339),
	}
}

// bookingJSON shapes a booking for API responses.
func bookingJSON(b *model.Booking) echo.Map {
	return echo.Map{
		"id":          b.ID,
		"booking_ref": b.Ref,
		"movie_id":    b.MovieID,
		"total_cents": b.TotalCents,
		"created_at":  b.CreatedAt.Format(time.RFC3339),
	}
}

// seatsJSON shapes a seat list as labels with ids.
func seatsJSON(seats []model.Seat) []echo.Map {
	out := make([]echo.Map, 0, len(seats))
	for _, s := range seats {
		out = append(out, echo.Map{
			"id":    s.ID,
			"label": s.Label(),
			"row":   s.RowLetter,
			"seat":  s.SeatNumber,
		})
	}
	return out
}
