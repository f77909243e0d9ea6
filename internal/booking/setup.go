package booking

import (
	"context"

	"github.com/gicdev/cinema-booking/internal/allocation"
	"github.com/gicdev/cinema-booking/internal/model"
)

// Setup activates a new movie with the given seating configuration.  Any
// previously active movie is deactivated first, then the full seat grid
// is generated row by row.  Input validation (title, 1..26 rows, 1..50
// seats per row) happens at the handler; this method assumes valid input.
func (s *Service) Setup(ctx context.Context, title string, rows, seatsPerRow int) (*model.Movie, error) {
	if err := s.Movies.DeactivateAll(ctx); err != nil {
		return nil, err
	}
	movie := &model.Movie{
		Title:       title,
		Rows:        rows,
		SeatsPerRow: seatsPerRow,
		IsActive:    true,
	}
	if err := s.Movies.Create(ctx, movie); err != nil {
		return nil, err
	}

	seats := make([]model.Seat, 0, movie.TotalSeats())
	for _, letter := range allocation.RowLetters(rows) {
		for num := 1; num <= seatsPerRow; num++ {
			seats = append(seats, model.Seat{
				MovieID:    movie.ID,
				RowLetter:  letter,
				SeatNumber: num,
			})
		}
	}
	if err := s.Seats.CreateBulk(ctx, seats); err != nil {
		return nil, err
	}
	s.invalidateMap(ctx, movie.ID)
	return movie, nil
}

// Reset deactivates all movies, returning the system to the setup state.
// Seats and bookings of past movies are kept for their booking views.
func (s *Service) Reset(ctx context.Context) error {
	return s.Movies.DeactivateAll(ctx)
}
