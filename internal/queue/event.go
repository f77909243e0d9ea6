// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// confirmed.  It contains enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingRef  string   `json:"booking_ref"`
	MovieID     uint64   `json:"movie_id"`
	MovieTitle  string   `json:"movie_title"`
	SeatLabels  []string `json:"seats"`
	TotalCents  int64    `json:"total_cents"`
	ConfirmedAt string   `json:"confirmed_at"`
}
