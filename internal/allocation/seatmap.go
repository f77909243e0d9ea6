package allocation

import (
	"strconv"

	"github.com/gicdev/cinema-booking/internal/model"
)

// SeatStatus is the display state of one seat slot in a seating map.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "available" // free seat
	StatusSelected  SeatStatus = "selected"  // part of the current selection
	StatusBooked    SeatStatus = "booked"    // held by a confirmed booking
	StatusSelf      SeatStatus = "self"      // belongs to the booking being viewed
	StatusOther     SeatStatus = "other"     // belongs to a different booking
)

// SeatView is one seat slot as rendered in a seating map.
type SeatView struct {
	Number int        `json:"number"`
	Label  string     `json:"label"`
	Status SeatStatus `json:"status"`
}

// RowView is one row of a seating map with its seats in ascending order.
type RowView struct {
	Row   string     `json:"row"`
	Seats []SeatView `json:"seats"`
}

// SeatingMap is a purely derived projection of the seat grid for display.
// It is an ordered slice rather than a map so that output order is part of
// the contract; it is never persisted.
type SeatingMap []RowView

// SelectionMap renders the grid for the seat-selection screen.  Seats in
// selectedIDs show as selected, booked seats as booked, the rest as
// available.  Rows are listed in natural ascending order (A first) with
// seats ascending by number, the opposite visual order from allocation's
// back-to-front walk; the projection is purely for rendering.  The input
// seat order does not affect the output.
func SelectionMap(venue Venue, seats []model.Seat, selectedIDs []uint64) SeatingMap {
	selected := idSet(selectedIDs)
	grid := seatGrid(seats)

	out := make(SeatingMap, 0, venue.Rows)
	for _, letter := range RowLetters(venue.Rows) {
		row := RowView{Row: letter, Seats: make([]SeatView, 0, venue.SeatsPerRow)}
		for num := 1; num <= venue.SeatsPerRow; num++ {
			seat, ok := grid[letter][num]
			if !ok {
				continue
			}
			status := StatusAvailable
			if _, sel := selected[seat.ID]; sel {
				status = StatusSelected
			} else if seat.IsBooked {
				status = StatusBooked
			}
			row.Seats = append(row.Seats, SeatView{Number: num, Label: seat.Label(), Status: status})
		}
		out = append(out, row)
	}
	return out
}

// BookingMap renders the grid for a booking-detail view.  Seats belonging
// to the viewed booking show as self, seats of any other booking as other,
// the rest as available.  Rows are listed screen-at-top, descending row
// letter, so the row closest to the screen comes first.  A grid slot with
// no seat record renders as available; under the venue invariant this
// should not occur.
func BookingMap(venue Venue, seats []model.Seat, bookingSeatIDs, bookedSeatIDs []uint64) SeatingMap {
	self := idSet(bookingSeatIDs)
	booked := idSet(bookedSeatIDs)
	grid := seatGrid(seats)

	letters := RowLetters(venue.Rows)
	out := make(SeatingMap, 0, venue.Rows)
	for i := len(letters) - 1; i >= 0; i-- {
		letter := letters[i]
		row := RowView{Row: letter, Seats: make([]SeatView, 0, venue.SeatsPerRow)}
		for num := 1; num <= venue.SeatsPerRow; num++ {
			view := SeatView{Number: num, Label: letter + strconv.Itoa(num), Status: StatusAvailable}
			if seat, ok := grid[letter][num]; ok {
				if _, mine := self[seat.ID]; mine {
					view.Status = StatusSelf
				} else if _, taken := booked[seat.ID]; taken {
					view.Status = StatusOther
				}
			}
			row.Seats = append(row.Seats, view)
		}
		out = append(out, row)
	}
	return out
}

// seatGrid indexes a seat snapshot by row letter and seat number.
func seatGrid(seats []model.Seat) map[string]map[int]model.Seat {
	grid := make(map[string]map[int]model.Seat)
	for _, s := range seats {
		row, ok := grid[s.RowLetter]
		if !ok {
			row = make(map[int]model.Seat)
			grid[s.RowLetter] = row
		}
		row[s.SeatNumber] = s
	}
	return grid
}

func idSet(ids []uint64) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
