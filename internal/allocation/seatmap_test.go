package allocation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gicdev/cinema-booking/internal/model"
)

func seatID(seats []model.Seat, label string) uint64 {
	for _, s := range seats {
		if s.Label() == label {
			return s.ID
		}
	}
	return 0
}

func TestSelectionMap_RowsAscending(t *testing.T) {
	venue := Venue{Rows: 3, SeatsPerRow: 4}
	seats := gridSeats(venue, "B2")
	selected := []uint64{seatID(seats, "A2"), seatID(seats, "A3")}

	m := SelectionMap(venue, seats, selected)
	require.Len(t, m, 3)
	assert.Equal(t, "A", m[0].Row)
	assert.Equal(t, "B", m[1].Row)
	assert.Equal(t, "C", m[2].Row)

	for _, row := range m {
		require.Len(t, row.Seats, 4)
		for i, sv := range row.Seats {
			assert.Equal(t, i+1, sv.Number, "seats ascend within a row")
			assert.Equal(t, row.Row+itoaTest(i+1), sv.Label)
		}
	}

	assert.Equal(t, StatusSelected, m[0].Seats[1].Status) // A2
	assert.Equal(t, StatusSelected, m[0].Seats[2].Status) // A3
	assert.Equal(t, StatusBooked, m[1].Seats[1].Status)   // B2
	assert.Equal(t, StatusAvailable, m[2].Seats[0].Status)
}

func TestSelectionMap_IdempotentAndOrderIndependent(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	seats := gridSeats(venue, "A5", "B1")
	selected := []uint64{seatID(seats, "A2")}

	first := SelectionMap(venue, seats, selected)
	second := SelectionMap(venue, seats, selected)
	assert.Equal(t, first, second)

	shuffled := make([]model.Seat, len(seats))
	copy(shuffled, seats)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	assert.Equal(t, first, SelectionMap(venue, shuffled, selected), "input order must not leak into the projection")
}

func TestBookingMap_ScreenAtTop(t *testing.T) {
	venue := Venue{Rows: 3, SeatsPerRow: 4}
	seats := gridSeats(venue)
	mine := []uint64{seatID(seats, "A1"), seatID(seats, "A2")}
	booked := append([]uint64{seatID(seats, "C4")}, mine...)

	m := BookingMap(venue, seats, mine, booked)
	require.Len(t, m, 3)
	assert.Equal(t, "C", m[0].Row, "closest-to-screen row listed first")
	assert.Equal(t, "B", m[1].Row)
	assert.Equal(t, "A", m[2].Row)

	assert.Equal(t, StatusSelf, m[2].Seats[0].Status)      // A1
	assert.Equal(t, StatusSelf, m[2].Seats[1].Status)      // A2
	assert.Equal(t, StatusOther, m[0].Seats[3].Status)     // C4
	assert.Equal(t, StatusAvailable, m[1].Seats[0].Status) // B1
}

func TestBookingMap_MissingSeatRecordRendersAvailable(t *testing.T) {
	venue := Venue{Rows: 1, SeatsPerRow: 3}
	seats := gridSeats(venue)
	// drop A2 from the snapshot; should not occur under the venue invariant
	partial := make([]model.Seat, 0, 2)
	for _, s := range seats {
		if s.Label() != "A2" {
			partial = append(partial, s)
		}
	}

	m := BookingMap(venue, partial, nil, nil)
	require.Len(t, m, 1)
	require.Len(t, m[0].Seats, 3, "every grid slot is rendered")
	assert.Equal(t, StatusAvailable, m[0].Seats[1].Status)
	assert.Equal(t, "A2", m[0].Seats[1].Label)
}

// itoaTest keeps label expectations readable for single-digit columns.
func itoaTest(n int) string {
	return string(rune('0' + n))
}
