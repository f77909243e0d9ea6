package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleStartColumn(t *testing.T) {
	cases := []struct {
		seatsPerRow int
		count       int
		want        int
	}{
		{10, 2, 5},  // center 5.5, start 5.5-1+0.5 = 5
		{10, 3, 4},  // start 5.5-1.5+0.5 = 4.5 -> 4
		{10, 4, 4},  // start 5.5-2+0.5 = 4
		{10, 1, 5},  // start 5.5-0.5+0.5 = 5.5 -> 5
		{5, 2, 2},   // center 3, start 3-1+0.5 = 2.5 -> 2
		{5, 3, 2},   // start 3-1.5+0.5 = 2
		{5, 1, 3},   // start 3-0.5+0.5 = 3
		{10, 10, 1}, // whole row
		{10, 12, 1}, // more than the row holds
		{1, 1, 1},
	}
	for _, tc := range cases {
		got := middleStartColumn(tc.seatsPerRow, tc.count)
		assert.Equal(t, tc.want, got, "seatsPerRow=%d count=%d", tc.seatsPerRow, tc.count)
	}
}

func TestSelectCentered_FullRowFree(t *testing.T) {
	row := rowSeats("A", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	picked := selectCentered(row, 2, middleStartColumn(10, 2))
	assert.Equal(t, []string{"A5", "A6"}, labels(picked))

	picked = selectCentered(row, 3, middleStartColumn(10, 3))
	assert.Equal(t, []string{"A4", "A5", "A6"}, labels(picked))

	picked = selectCentered(row, 4, middleStartColumn(10, 4))
	assert.Equal(t, []string{"A4", "A5", "A6", "A7"}, labels(picked))
}

func TestSelectCentered_CountCoversRow(t *testing.T) {
	row := rowSeats("A", 2, 5, 9)
	picked := selectCentered(row, 3, 1)
	assert.Equal(t, []string{"A2", "A5", "A9"}, labels(picked), "whole row returned ascending, centering moot")

	picked = selectCentered(row, 7, 1)
	assert.Equal(t, []string{"A2", "A5", "A9"}, labels(picked), "count beyond availability still returns everything")
}

func TestSelectCentered_DegradedNoContiguousRun(t *testing.T) {
	// alternating availability: no 2-length contiguous run exists
	row := rowSeats("A", 1, 3, 5, 7, 9)
	picked := selectCentered(row, 2, 5)
	assert.Equal(t, []string{"A1", "A3"}, labels(picked), "falls back to first two available, never fails")
}

func TestSelectCentered_PicksRunClosestToPreferredStart(t *testing.T) {
	// runs start at 3 and at 6; preferred 5 is closer to 6
	row := rowSeats("A", 3, 4, 6, 7)
	picked := selectCentered(row, 2, 5)
	assert.Equal(t, []string{"A6", "A7"}, labels(picked))
}

func TestSelectCentered_TieBreaksToLowestStart(t *testing.T) {
	// runs start at 2 and at 6, both distance 2 from preferred 4
	row := rowSeats("A", 2, 3, 6, 7)
	picked := selectCentered(row, 2, 4)
	assert.Equal(t, []string{"A2", "A3"}, labels(picked))
}

func TestSelectCentered_Empty(t *testing.T) {
	assert.Nil(t, selectCentered(nil, 2, 5))
	assert.Nil(t, selectCentered(rowSeats("A", 1, 2), 0, 5))
}
