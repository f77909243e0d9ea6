package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeats_CentersInBackRow(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	byRow := availableByRow(gridSeats(venue))

	picked := defaultSeats(venue, byRow, 3)
	assert.Equal(t, []string{"A2", "A3", "A4"}, labels(picked))
}

func TestDefaultSeats_OverflowsTowardScreen(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	byRow := availableByRow(gridSeats(venue))

	picked := defaultSeats(venue, byRow, 7)
	require.Len(t, picked, 7)
	// row A is fully consumed, then 2 seats centered in row B
	assert.Equal(t, []string{"A1", "A2", "A3", "A4", "A5", "B2", "B3"}, labels(picked))
}

func TestDefaultSeats_SkipsFullRows(t *testing.T) {
	venue := Venue{Rows: 3, SeatsPerRow: 5}
	seats := gridSeats(venue, "A1", "A2", "A3", "A4", "A5")
	byRow := availableByRow(seats)

	picked := defaultSeats(venue, byRow, 2)
	assert.Equal(t, []string{"B2", "B3"}, labels(picked), "full back row is skipped, not partially raided")
}

func TestDefaultSeats_PerRowCenteringUsesRowTake(t *testing.T) {
	// 7 requested over two 5-seat rows: the second row centers its own 2,
	// not the original 7
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	byRow := availableByRow(gridSeats(venue))

	picked := defaultSeats(venue, byRow, 7)
	assert.Equal(t, "B2", picked[5].Label())
	assert.Equal(t, "B3", picked[6].Label())
}

func TestDefaultSeats_ShortWhenRowsExhausted(t *testing.T) {
	venue := Venue{Rows: 1, SeatsPerRow: 3}
	byRow := availableByRow(gridSeats(venue))

	picked := defaultSeats(venue, byRow, 5)
	assert.Len(t, picked, 3, "returns what was collected; caller checks the length")
}

func TestSeatsFromPosition_FillsRightwardOnly(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	byRow := availableByRow(gridSeats(venue))

	picked := seatsFromPosition(venue, byRow, Position{Row: "A", Column: 3}, 2)
	assert.Equal(t, []string{"A3", "A4"}, labels(picked))
	for _, s := range picked {
		if s.RowLetter == "A" {
			assert.GreaterOrEqual(t, s.SeatNumber, 3, "seats left of the start column are never used")
		}
	}
}

func TestSeatsFromPosition_SkipsFreeSeatsLeftOfStart(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	// A4 and A5 booked, A1..A3 free, but start is A4
	seats := gridSeats(venue, "A4", "A5")
	byRow := availableByRow(seats)

	picked := seatsFromPosition(venue, byRow, Position{Row: "A", Column: 4}, 2)
	// nothing usable right of A4 in row A, so both come from row B centered
	assert.Equal(t, []string{"B2", "B3"}, labels(picked))
}

func TestSeatsFromPosition_OverflowUsesCenteredRule(t *testing.T) {
	venue := Venue{Rows: 3, SeatsPerRow: 5}
	byRow := availableByRow(gridSeats(venue))

	picked := seatsFromPosition(venue, byRow, Position{Row: "A", Column: 4}, 4)
	require.Len(t, picked, 4)
	assert.Equal(t, []string{"A4", "A5", "B2", "B3"}, labels(picked))
}

func TestSeatsFromPosition_NeverWrapsBehindStartRow(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	byRow := availableByRow(gridSeats(venue))

	// B is the front row; overflow has nowhere to go
	picked := seatsFromPosition(venue, byRow, Position{Row: "B", Column: 3}, 4)
	assert.Equal(t, []string{"B3", "B4", "B5"}, labels(picked), "row A is behind the start row and stays untouched")
}

func TestAvailableByRow_IgnoresInputOrderAndBooked(t *testing.T) {
	venue := Venue{Rows: 1, SeatsPerRow: 4}
	seats := gridSeats(venue, "A2")
	// reverse the snapshot
	for i, j := 0, len(seats)-1; i < j; i, j = i+1, j-1 {
		seats[i], seats[j] = seats[j], seats[i]
	}
	byRow := availableByRow(seats)
	require.Len(t, byRow["A"], 3)
	assert.Equal(t, []string{"A1", "A3", "A4"}, labels(byRow["A"]), "sorted ascending regardless of fetch order")
}
