package repository // repository defines data access for bookings

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/gicdev/cinema-booking/internal/model"
)

// BookingRepo provides methods to work with bookings and their seats.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// LastRef returns the most recently assigned booking reference across all
// movies, or "" when no booking exists yet.  References are assigned from
// an ascending sequence, so the row with the highest id carries the
// latest one.
func (r *BookingRepo) LastRef(ctx context.Context) (string, error) {
	const q = `SELECT booking_ref FROM bookings ORDER BY id DESC LIMIT 1`
	var ref string
	err := r.db.QueryRowContext(ctx, q).Scan(&ref)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return ref, nil
}

// CreateTx inserts a booking record inside a transaction.  On success the
// booking's ID is populated.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings (movie_id, booking_ref, total_cents) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, b.MovieID, b.Ref, b.TotalCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// CreateSeatsBulkTx links a booking to its seats in one statement.
func (r *BookingRepo) CreateSeatsBulkTx(ctx context.Context, tx *sql.Tx, bookingID uint64, seatIDs []uint64) error {
	if len(seatIDs) == 0 {
		return nil
	}
	query := `INSERT INTO booking_seats (booking_id, seat_id) VALUES `
	args := make([]interface{}, 0, len(seatIDs)*2)
	for i, sid := range seatIDs {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, bookingID, sid)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetByRef retrieves a booking by its customer-facing reference.
func (r *BookingRepo) GetByRef(ctx context.Context, ref string) (*model.Booking, error) {
	const q = `SELECT id, movie_id, booking_ref, total_cents, created_at
	           FROM bookings WHERE booking_ref = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, ref).
		Scan(&b.ID, &b.MovieID, &b.Ref, &b.TotalCents, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByMovie retrieves all bookings for a movie, newest first.
func (r *BookingRepo) ListByMovie(ctx context.Context, movieID uint64) ([]model.Booking, error) {
	const q = `SELECT id, movie_id, booking_ref, total_cents, created_at
	           FROM bookings WHERE movie_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.MovieID, &b.Ref, &b.TotalCents, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SeatIDsByBooking returns the seat ids held by one booking.
func (r *BookingRepo) SeatIDsByBooking(ctx context.Context, bookingID uint64) ([]uint64, error) {
	const q = `SELECT seat_id FROM booking_seats WHERE booking_id = ?`
	return r.queryIDs(ctx, q, bookingID)
}

// BookedSeatIDsByMovie returns the seat ids held by any booking of the
// movie.  Feeds the booking-detail map's self/other classification.
func (r *BookingRepo) BookedSeatIDsByMovie(ctx context.Context, movieID uint64) ([]uint64, error) {
	const q = `SELECT bs.seat_id
	           FROM booking_seats bs
	           JOIN seats s ON s.id = bs.seat_id
	           WHERE s.movie_id = ?`
	return r.queryIDs(ctx, q, movieID)
}

func (r *BookingRepo) queryIDs(ctx context.Context, q string, arg interface{}) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
