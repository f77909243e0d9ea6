package model

import "time"

// Booking records one confirmed purchase for a movie.  The Ref is the
// customer-facing identifier in the form GIC0001, GIC0002, ... assigned
// sequentially at confirmation time.
//
// Fields:
//  ID         – primary key identifier.
//  MovieID    – movie the booking belongs to.
//  Ref        – unique booking reference (GIC%04d).
//  TotalCents – total amount paid, after discounts, in cents.
//  CreatedAt  – confirmation timestamp.
type Booking struct {
	ID         uint64    // bookings.id
	MovieID    uint64    // bookings.movie_id
	Ref        string    // bookings.booking_ref
	TotalCents int64     // bookings.total_cents
	CreatedAt  time.Time // bookings.created_at
}

// BookingSeat links a booking to one of its seats.
//
// Fields:
//  ID        – primary key identifier.
//  BookingID – reference to the booking.
//  SeatID    – seat held by the booking.
type BookingSeat struct {
	ID        uint64 // booking_seats.id
	BookingID uint64 // booking_seats.booking_id
	SeatID    uint64 // booking_seats.seat_id
}
