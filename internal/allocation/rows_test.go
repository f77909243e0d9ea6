package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowLetters_BackToFront(t *testing.T) {
	assert.Equal(t, []string{"A"}, RowLetters(1))
	assert.Equal(t, []string{"A", "B", "C"}, RowLetters(3))

	all := RowLetters(26)
	assert.Len(t, all, 26)
	assert.Equal(t, "A", all[0], "A is the back row and comes first")
	assert.Equal(t, "Z", all[25])
}

func TestVenueLastRow(t *testing.T) {
	assert.Equal(t, "B", Venue{Rows: 2, SeatsPerRow: 5}.LastRow())
	assert.Equal(t, "H", Venue{Rows: 8, SeatsPerRow: 10}.LastRow())
}

func TestRowIndex(t *testing.T) {
	assert.Equal(t, 0, rowIndex("A"))
	assert.Equal(t, 7, rowIndex("H"))
	assert.Equal(t, -1, rowIndex("AA"))
	assert.Equal(t, -1, rowIndex(""))
	assert.Equal(t, -1, rowIndex("a"))
}
