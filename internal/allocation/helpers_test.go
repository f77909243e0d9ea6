package allocation

import "github.com/gicdev/cinema-booking/internal/model"

// gridSeats builds a full seat snapshot for a venue with the given seats
// already booked (by label, e.g. "A3").  IDs are assigned sequentially in
// row-major order starting at 1.
func gridSeats(venue Venue, booked ...string) []model.Seat {
	taken := make(map[string]struct{}, len(booked))
	for _, label := range booked {
		taken[label] = struct{}{}
	}
	seats := make([]model.Seat, 0, venue.Rows*venue.SeatsPerRow)
	id := uint64(1)
	for _, letter := range RowLetters(venue.Rows) {
		for num := 1; num <= venue.SeatsPerRow; num++ {
			s := model.Seat{ID: id, MovieID: 1, RowLetter: letter, SeatNumber: num}
			if _, ok := taken[s.Label()]; ok {
				s.IsBooked = true
			}
			seats = append(seats, s)
			id++
		}
	}
	return seats
}

// labels maps selected seats to their labels, preserving order.
func labels(seats []model.Seat) []string {
	out := make([]string, 0, len(seats))
	for _, s := range seats {
		out = append(out, s.Label())
	}
	return out
}

// rowSeats builds the available seats of a single row from seat numbers.
func rowSeats(row string, numbers ...int) []model.Seat {
	out := make([]model.Seat, 0, len(numbers))
	for i, n := range numbers {
		out = append(out, model.Seat{ID: uint64(i + 1), RowLetter: row, SeatNumber: n})
	}
	return out
}
