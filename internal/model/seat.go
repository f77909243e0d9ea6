package model

import "strconv"

// Seat is a single seat in the grid of one movie.  Seats are uniquely
// identified by (movie, row letter, seat number).  Row A is the back
// row, furthest from the screen; seat numbers are 1-based within a row.
// Only IsBooked ever changes after setup, and only when a booking is
// confirmed; allocation itself never mutates seats.
//
// Fields:
//  ID         – primary key identifier.
//  MovieID    – movie this seat belongs to.
//  RowLetter  – single uppercase letter A..Z.
//  SeatNumber – position in the row (1..seats_per_row).
//  IsBooked   – whether a confirmed booking holds this seat.
type Seat struct {
	ID         uint64 // seats.id
	MovieID    uint64 // seats.movie_id
	RowLetter  string // seats.row_letter
	SeatNumber int    // seats.seat_number
	IsBooked   bool   // seats.is_booked
}

// Label returns the human-readable seat reference, e.g. "A1" or "H10".
func (s Seat) Label() string {
	return s.RowLetter + strconv.Itoa(s.SeatNumber)
}
