package repository // repository defines data access for movies

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/gicdev/cinema-booking/internal/model"
)

// MovieRepo provides methods to work with movies in the database.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// DB exposes the underlying handle so callers can open transactions that
// span movies, seats and bookings.
func (r *MovieRepo) DB() *sql.DB {
	return r.db
}

// Create inserts a movie record.  On success the movie's ID is populated.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (title, rows_count, seats_per_row, is_active)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Rows, m.SeatsPerRow, m.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetActive retrieves the single currently active movie.
func (r *MovieRepo) GetActive(ctx context.Context) (*model.Movie, error) {
	const q = `SELECT id, title, rows_count, seats_per_row, is_active, created_at
	           FROM movies WHERE is_active = 1 LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, q))
}

// GetByID retrieves a movie by its id.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	const q = `SELECT id, title, rows_count, seats_per_row, is_active, created_at
	           FROM movies WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// DeactivateAll clears the active flag on every movie.  Used before
// activating a new movie and by the reset operation.
func (r *MovieRepo) DeactivateAll(ctx context.Context) error {
	const q = `UPDATE movies SET is_active = 0 WHERE is_active = 1`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

func (r *MovieRepo) scanOne(row *sql.Row) (*model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Rows, &m.SeatsPerRow, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}
