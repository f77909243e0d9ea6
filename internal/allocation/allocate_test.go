package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocKind(t *testing.T, err error) Kind {
	t.Helper()
	var allocErr *Error
	require.ErrorAs(t, err, &allocErr)
	return allocErr.Kind
}

func TestAllocate_DefaultEndToEnd(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	seats := gridSeats(venue)

	picked, err := Allocate(venue, seats, 3, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"A2", "A3", "A4"}, labels(picked))
}

func TestAllocate_FromPositionFragmentation(t *testing.T) {
	// B is the front row: B3..B5 yields only 3 of 4 requested seats and
	// there is no further row to overflow into.  Aggregate capacity is 10,
	// so this is fragmentation, not insufficient capacity.
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	seats := gridSeats(venue)

	_, err := Allocate(venue, seats, 4, "B3")
	require.Error(t, err)
	var allocErr *Error
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, KindFragmentation, allocErr.Kind)
	assert.Equal(t, 4, allocErr.Requested)
}

func TestAllocate_InsufficientCapacity(t *testing.T) {
	venue := Venue{Rows: 1, SeatsPerRow: 3}
	seats := gridSeats(venue, "A1")

	_, err := Allocate(venue, seats, 3, "")
	require.Error(t, err)
	var allocErr *Error
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, KindInsufficientCapacity, allocErr.Kind)
	assert.Equal(t, 3, allocErr.Requested)
	assert.Equal(t, 2, allocErr.Available)
}

func TestAllocate_CapacityCheckedBeforePosition(t *testing.T) {
	venue := Venue{Rows: 1, SeatsPerRow: 3}
	seats := gridSeats(venue, "A1", "A2")

	_, err := Allocate(venue, seats, 2, "not-a-seat")
	assert.Equal(t, KindInsufficientCapacity, allocKind(t, err), "capacity failure wins over a bad position")
}

func TestAllocate_InvalidPositionFormat(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	seats := gridSeats(venue)

	_, err := Allocate(venue, seats, 1, "AA1")
	assert.Equal(t, KindInvalidFormat, allocKind(t, err))
}

func TestAllocate_RowOutOfRange(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	seats := gridSeats(venue)

	_, err := Allocate(venue, seats, 1, "C1")
	require.Error(t, err)
	var allocErr *Error
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, KindRowOutOfRange, allocErr.Kind)
	assert.Equal(t, "C", allocErr.Row)
	assert.Equal(t, "B", allocErr.MaxRow)
}

func TestAllocate_ColumnOutOfRange(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	seats := gridSeats(venue)

	_, err := Allocate(venue, seats, 1, "A6")
	require.Error(t, err)
	var allocErr *Error
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, KindColumnOutOfRange, allocErr.Kind)
	assert.Equal(t, 6, allocErr.Column)
	assert.Equal(t, 5, allocErr.MaxColumn)
}

func TestAllocate_ExactCountDistinctAndInVenue(t *testing.T) {
	venue := Venue{Rows: 4, SeatsPerRow: 8}
	seats := gridSeats(venue)

	for n := 1; n <= venue.Rows*venue.SeatsPerRow; n++ {
		picked, err := Allocate(venue, seats, n, "")
		require.NoError(t, err, "numTickets=%d", n)
		require.Len(t, picked, n, "numTickets=%d", n)
		seen := make(map[uint64]struct{}, n)
		for _, s := range picked {
			_, dup := seen[s.ID]
			require.False(t, dup, "numTickets=%d duplicate seat %s", n, s.Label())
			seen[s.ID] = struct{}{}
			require.GreaterOrEqual(t, s.SeatNumber, 1)
			require.LessOrEqual(t, s.SeatNumber, venue.SeatsPerRow)
			require.GreaterOrEqual(t, rowIndex(s.RowLetter), 0)
			require.Less(t, rowIndex(s.RowLetter), venue.Rows)
		}
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	venue := Venue{Rows: 3, SeatsPerRow: 7}
	seats := gridSeats(venue, "A4", "B1", "B2", "C7")

	first, err := Allocate(venue, seats, 9, "")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Allocate(venue, seats, 9, "")
		require.NoError(t, err)
		assert.Equal(t, labels(first), labels(again))
	}
}

func TestAllocate_ReadOnlyOverSnapshot(t *testing.T) {
	venue := Venue{Rows: 2, SeatsPerRow: 5}
	seats := gridSeats(venue)

	_, err := Allocate(venue, seats, 4, "")
	require.NoError(t, err)
	for _, s := range seats {
		assert.False(t, s.IsBooked, "allocation never flips is_booked")
	}
}
