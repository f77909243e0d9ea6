package allocation

import (
	"sort"

	"github.com/gicdev/cinema-booking/internal/model"
)

// availableByRow buckets the unbooked seats of a snapshot by row letter,
// each bucket sorted ascending by seat number.  Sorting here makes the
// allocators independent of the order the snapshot was fetched in.
func availableByRow(seats []model.Seat) map[string][]model.Seat {
	byRow := make(map[string][]model.Seat)
	for _, s := range seats {
		if s.IsBooked {
			continue
		}
		byRow[s.RowLetter] = append(byRow[s.RowLetter], s)
	}
	for _, row := range byRow {
		sort.Slice(row, func(i, j int) bool { return row[i].SeatNumber < row[j].SeatNumber })
	}
	return byRow
}

// defaultSeats implements the default selection algorithm: walk the rows
// back-to-front starting at A, take a centered block from each row, and
// overflow the remainder to the next row toward the screen.  The centering
// preference is recomputed per row from the count actually taken in that
// row, not from the original total.  The result may be shorter than
// numTickets; the orchestrator checks the length.
func defaultSeats(venue Venue, byRow map[string][]model.Seat, numTickets int) []model.Seat {
	var selected []model.Seat
	remaining := numTickets

	for _, letter := range RowLetters(venue.Rows) {
		if remaining <= 0 {
			break
		}
		available := byRow[letter]
		if len(available) == 0 {
			continue
		}
		toTake := remaining
		if len(available) < toTake {
			toTake = len(available)
		}
		start := middleStartColumn(venue.SeatsPerRow, toTake)
		picked := selectCentered(available, toTake, start)
		selected = append(selected, picked...)
		remaining -= len(picked)
	}
	return selected
}

// seatsFromPosition implements the custom-position algorithm.  In the
// starting row it fills rightward only: seats with numbers below the start
// column are never used there, even when free.  Every subsequent row,
// continuing toward the screen, behaves exactly like a default-allocation
// row.  Rows behind the starting row are never revisited and rows are
// never skipped or wrapped.
func seatsFromPosition(venue Venue, byRow map[string][]model.Seat, start Position, numTickets int) []model.Seat {
	startIdx := rowIndex(start.Row)
	if startIdx < 0 || startIdx >= venue.Rows {
		return nil
	}

	var selected []model.Seat
	remaining := numTickets
	letters := RowLetters(venue.Rows)

	firstRow := true
	for _, letter := range letters[startIdx:] {
		if remaining <= 0 {
			break
		}
		available := byRow[letter]
		if len(available) == 0 {
			continue
		}
		if firstRow {
			firstRow = false
			for _, s := range available {
				if s.SeatNumber < start.Column {
					continue
				}
				selected = append(selected, s)
				remaining--
				if remaining == 0 {
					break
				}
			}
			continue
		}
		toTake := remaining
		if len(available) < toTake {
			toTake = len(available)
		}
		col := middleStartColumn(venue.SeatsPerRow, toTake)
		picked := selectCentered(available, toTake, col)
		selected = append(selected, picked...)
		remaining -= len(picked)
	}
	return selected
}
