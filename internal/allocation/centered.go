package allocation

import "github.com/gicdev/cinema-booking/internal/model"

// middleStartColumn computes the starting column that centers count seats
// in a row of seatsPerRow.  The row center is (seatsPerRow+1)/2 as a
// fraction (5.5 for a 10-seat row) and the block start is
// center - count/2 + 0.5, floored and clamped to column 1.  For 10 seats
// this yields start 5 for 2 tickets and start 4 for 3 or 4 tickets.
func middleStartColumn(seatsPerRow, count int) int {
	if count >= seatsPerRow {
		return 1
	}
	center := float64(seatsPerRow+1) / 2
	start := center - float64(count)/2 + 0.5
	if start < 1 {
		return 1
	}
	return int(start)
}

// selectCentered picks count seats from the available seats of one row,
// preferring the contiguous run whose starting number is closest to
// preferredStart.  available must be sorted ascending by seat number.
//
// When count covers the whole row the centering question is moot and all
// available seats are returned.  When booked seats have fragmented the row
// so that no contiguous run of count exists, the first count available
// seats are returned instead: partial fragmentation must never block an
// allocation that numerically fits in the row.  Shortfalls are surfaced
// only by the orchestrator's final length check.
func selectCentered(available []model.Seat, count, preferredStart int) []model.Seat {
	if len(available) == 0 || count <= 0 {
		return nil
	}
	if count >= len(available) {
		return available
	}

	bestStart := 0
	bestDistance := -1
	for i := 0; i+count <= len(available); i++ {
		consecutive := true
		for j := 0; j < count-1; j++ {
			if available[i+j+1].SeatNumber-available[i+j].SeatNumber != 1 {
				consecutive = false
				break
			}
		}
		if !consecutive {
			continue
		}
		distance := available[i].SeatNumber - preferredStart
		if distance < 0 {
			distance = -distance
		}
		// strict improvement keeps the lowest-numbered run on ties
		if bestDistance < 0 || distance < bestDistance {
			bestDistance = distance
			bestStart = i
		}
	}

	return available[bestStart : bestStart+count]
}
