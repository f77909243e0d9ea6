package allocation

import "github.com/gicdev/cinema-booking/internal/model"

// Allocate selects numTickets seats from a consistent snapshot of a
// movie's seats.  It is pure and deterministic: it performs no I/O, holds
// no locks and never mutates the snapshot, so identical inputs always
// produce identical outputs.  Concurrency control is the caller's job;
// the confirmation step must re-validate the chosen seats atomically
// before booking them, because two snapshots taken concurrently can both
// allocate the same seats.
//
// startPosition may be empty for the default back-to-front centered
// selection, or a seat reference like "B3" to fill rightward from that
// seat.  The caller guarantees numTickets > 0.
//
// Failures are returned as *Error values: insufficient capacity when
// fewer seats are free than requested, format and range errors for a bad
// start position, and a fragmentation error when the seats were free in
// aggregate but could not be collected along any allowed path.  On
// success the seats are returned in the order the allocator selected
// them (row-major, back-to-front), not re-sorted.
func Allocate(venue Venue, seats []model.Seat, numTickets int, startPosition string) ([]model.Seat, error) {
	available := 0
	for _, s := range seats {
		if !s.IsBooked {
			available++
		}
	}
	if available < numTickets {
		return nil, InsufficientCapacityError(numTickets, available)
	}

	byRow := availableByRow(seats)

	var selected []model.Seat
	if startPosition != "" {
		pos, err := ParsePosition(startPosition)
		if err != nil {
			return nil, err
		}
		if idx := rowIndex(pos.Row); idx < 0 || idx >= venue.Rows {
			return nil, RowOutOfRangeError(pos.Row, venue.LastRow())
		}
		if pos.Column < 1 || pos.Column > venue.SeatsPerRow {
			return nil, ColumnOutOfRangeError(pos.Column, venue.SeatsPerRow)
		}
		selected = seatsFromPosition(venue, byRow, pos, numTickets)
	} else {
		selected = defaultSeats(venue, byRow, numTickets)
	}

	if len(selected) < numTickets {
		return nil, FragmentationError(numTickets)
	}
	return selected, nil
}
