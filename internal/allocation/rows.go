package allocation

// Venue is the seating configuration of one movie: Rows lettered rows
// (A.. up to 26) of SeatsPerRow seats each (1..50).
type Venue struct {
	Rows        int
	SeatsPerRow int
}

// LastRow returns the letter of the row closest to the screen.
func (v Venue) LastRow() string {
	return rowLetter(v.Rows - 1)
}

// RowLetters returns the venue's row letters in back-to-front order:
// A is the back row, furthest from the screen, and the last letter is
// closest.  This ordering is the canonical overflow direction for both
// allocators: allocation overflows from the back rows toward the screen.
func RowLetters(rows int) []string {
	letters := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		letters = append(letters, rowLetter(i))
	}
	return letters
}

// rowLetter converts a 0-based row index to its letter.
func rowLetter(i int) string {
	return string(rune('A' + i))
}

// rowIndex converts a single-letter row label to its 0-based index.
// Returns -1 for anything that is not one uppercase letter.
func rowIndex(row string) int {
	if len(row) != 1 || row[0] < 'A' || row[0] > 'Z' {
		return -1
	}
	return int(row[0] - 'A')
}
