package model

import "time"

// Movie stores a film and the seating configuration of the screening
// it plays in.  Only one movie is active at a time; setting up a new
// movie deactivates the previous one and regenerates the seat grid.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – movie title shown to customers.
//  Rows        – number of seating rows (1..26, lettered A..Z).
//  SeatsPerRow – seats per row (1..50).
//  IsActive    – whether this movie is the one currently bookable.
//  CreatedAt   – creation timestamp.
type Movie struct {
	ID          uint64    // movies.id
	Title       string    // movies.title
	Rows        int       // movies.rows_count
	SeatsPerRow int       // movies.seats_per_row
	IsActive    bool      // movies.is_active
	CreatedAt   time.Time // movies.created_at
}

// TotalSeats returns the size of the full seat grid.
func (m Movie) TotalSeats() int {
	return m.Rows * m.SeatsPerRow
}
