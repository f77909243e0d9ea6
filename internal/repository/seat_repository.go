package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"strings"      // strings builds IN-clause placeholders

	"github.com/gicdev/cinema-booking/internal/model"
)

// SeatRepo provides methods to work with seats in the database.  The
// allocation core never talks to this repository directly: the booking
// service fetches one snapshot up front with GetByMovie and hands it to
// the pure allocation functions, so the algorithm does no per-row
// round trips.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// CreateBulk inserts multiple seats in a single statement.  Used at movie
// setup time to materialize the full rows x seats_per_row grid.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO seats (movie_id, row_letter, seat_number, is_booked) VALUES `
	args := make([]interface{}, 0, len(seats)*4)
	for i, seat := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, seat.MovieID, seat.RowLetter, seat.SeatNumber, seat.IsBooked)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// GetByMovie retrieves all seats of a movie ordered by row_letter then
// seat_number.  This is the consistent snapshot the allocator and the
// seating-map projections operate on.
func (r *SeatRepo) GetByMovie(ctx context.Context, movieID uint64) ([]model.Seat, error) {
	const q = `SELECT id, movie_id, row_letter, seat_number, is_booked
	           FROM seats
	           WHERE movie_id = ?
	           ORDER BY row_letter, seat_number`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.MovieID, &s.RowLetter, &s.SeatNumber, &s.IsBooked); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountAvailable returns the number of unbooked seats for a movie.
func (r *SeatRepo) CountAvailable(ctx context.Context, movieID uint64) (int, error) {
	const q = `SELECT COUNT(*) FROM seats WHERE movie_id = ? AND is_booked = 0`
	var n int
	if err := r.db.QueryRowContext(ctx, q, movieID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// LockAvailableByIDsTx selects, with a row lock, the ids among seatIDs
// that belong to the movie and are still unbooked.  The confirmation
// transaction compares the returned count against the requested set to
// detect seats taken between snapshot and commit.
func (r *SeatRepo) LockAvailableByIDsTx(ctx context.Context, tx *sql.Tx, movieID uint64, seatIDs []uint64) ([]uint64, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}
	q := `SELECT id FROM seats WHERE movie_id = ? AND is_booked = 0 AND id IN (` +
		placeholders(len(seatIDs)) + `) FOR UPDATE`
	args := make([]interface{}, 0, len(seatIDs)+1)
	args = append(args, movieID)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var free []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		free = append(free, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return free, nil
}

// MarkBookedTx flips is_booked for the given seats inside a transaction.
func (r *SeatRepo) MarkBookedTx(ctx context.Context, tx *sql.Tx, seatIDs []uint64) error {
	if len(seatIDs) == 0 {
		return nil
	}
	q := `UPDATE seats SET is_booked = 1 WHERE id IN (` + placeholders(len(seatIDs)) + `)`
	args := make([]interface{}, 0, len(seatIDs))
	for _, id := range seatIDs {
		args = append(args, id)
	}
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

// placeholders returns n comma-separated "?" markers for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
