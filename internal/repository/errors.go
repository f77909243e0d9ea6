package repository

import "errors"

// Sentinel errors returned by the repositories.  Handlers compare with
// errors.Is to choose the HTTP status.
var (
	// ErrMovieNotFound is returned when a movie lookup yields no rows.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrBookingNotFound is returned when a booking lookup yields no rows.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrSeatsTaken is returned by the confirmation transaction when at
	// least one chosen seat was booked between snapshot and commit.  The
	// whole booking fails; nothing is partially committed.
	ErrSeatsTaken = errors.New("some seats are no longer available")
)
