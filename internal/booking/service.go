// Package booking is the service layer between the HTTP handlers, the
// repositories and the pure allocation core.  It owns the snapshot
// discipline: every allocation or projection reads the movie's seats once
// and hands the in-memory slice to the allocation package, so the
// algorithm itself performs no storage round trips.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gicdev/cinema-booking/internal/allocation"
	"github.com/gicdev/cinema-booking/internal/config"
	"github.com/gicdev/cinema-booking/internal/model"
	"github.com/gicdev/cinema-booking/internal/pricing"
	"github.com/gicdev/cinema-booking/internal/queue"
	"github.com/gicdev/cinema-booking/internal/repository"
)

// Service bundles the repositories and infrastructure the booking flow
// needs.  Redis may be nil; the seat-map cache degrades to recomputing.
type Service struct {
	Movies   *repository.MovieRepo
	Seats    *repository.SeatRepo
	Bookings *repository.BookingRepo
	Redis    *redis.Client
	Cache    config.CacheConfig
	Pricing  pricing.Config
}

// NewService constructs a Service.  The repositories must be non-nil.
func NewService(movies *repository.MovieRepo, seats *repository.SeatRepo, bookings *repository.BookingRepo, rdb *redis.Client, cache config.CacheConfig, price pricing.Config) *Service {
	if movies == nil || seats == nil || bookings == nil {
		panic("nil repository passed to NewService")
	}
	return &Service{
		Movies:   movies,
		Seats:    seats,
		Bookings: bookings,
		Redis:    rdb,
		Cache:    cache,
		Pricing:  price,
	}
}

// venueOf maps a movie's seating configuration to the allocation venue.
func venueOf(m *model.Movie) allocation.Venue {
	return allocation.Venue{Rows: m.Rows, SeatsPerRow: m.SeatsPerRow}
}

// ActiveMovie returns the currently active movie and its available seat
// count.
func (s *Service) ActiveMovie(ctx context.Context) (*model.Movie, int, error) {
	movie, err := s.Movies.GetActive(ctx)
	if err != nil {
		return nil, 0, err
	}
	available, err := s.Seats.CountAvailable(ctx, movie.ID)
	if err != nil {
		return nil, 0, err
	}
	return movie, available, nil
}

// Allocate selects numTickets seats for a movie, either by the default
// best-seats-first heuristic or rightward from startPosition.  It reads
// one snapshot and delegates to the pure allocator; a missing movie is
// reported with the same error type as the allocation failures so callers
// match on a single kind set.  Nothing is reserved; the selection only
// becomes binding at Confirm.
func (s *Service) Allocate(ctx context.Context, movieID uint64, numTickets int, startPosition string) (*model.Movie, []model.Seat, error) {
	movie, err := s.Movies.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, nil, allocation.NotFoundError()
		}
		return nil, nil, err
	}
	snapshot, err := s.Seats.GetByMovie(ctx, movie.ID)
	if err != nil {
		return nil, nil, err
	}
	selected, err := allocation.Allocate(venueOf(movie), snapshot, numTickets, startPosition)
	if err != nil {
		return nil, nil, err
	}
	return movie, selected, nil
}

// SelectionMap projects the movie's grid for the seat-selection screen.
// The unselected base map is cached in Redis per movie; maps with a
// current selection are always computed fresh since the selection differs
// per request.
func (s *Service) SelectionMap(ctx context.Context, movie *model.Movie, selectedIDs []uint64) (allocation.SeatingMap, error) {
	if len(selectedIDs) == 0 {
		if m, ok := s.cachedMap(ctx, movie.ID); ok {
			return m, nil
		}
	}
	snapshot, err := s.Seats.GetByMovie(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	seatMap := allocation.SelectionMap(venueOf(movie), snapshot, selectedIDs)
	if len(selectedIDs) == 0 {
		s.storeMap(ctx, movie.ID, seatMap)
	}
	return seatMap, nil
}

// BookingDetail is a booking together with its movie, its seats sorted in
// natural order, and an optional booking-detail seating map.
type BookingDetail struct {
	Booking *model.Booking
	Movie   *model.Movie
	Seats   []model.Seat
	Map     allocation.SeatingMap
}

// GetBooking loads a booking by reference.  With withMap set, the detail
// includes the screen-at-top projection classifying every seat as part of
// this booking, another booking, or available.
func (s *Service) GetBooking(ctx context.Context, ref string, withMap bool) (*BookingDetail, error) {
	bk, err := s.Bookings.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	movie, err := s.Movies.GetByID(ctx, bk.MovieID)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.Seats.GetByMovie(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	seatIDs, err := s.Bookings.SeatIDsByBooking(ctx, bk.ID)
	if err != nil {
		return nil, err
	}

	mine := make(map[uint64]struct{}, len(seatIDs))
	for _, id := range seatIDs {
		mine[id] = struct{}{}
	}
	seats := make([]model.Seat, 0, len(seatIDs))
	for _, seat := range snapshot {
		if _, ok := mine[seat.ID]; ok {
			seats = append(seats, seat)
		}
	}
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].RowLetter != seats[j].RowLetter {
			return seats[i].RowLetter < seats[j].RowLetter
		}
		return seats[i].SeatNumber < seats[j].SeatNumber
	})

	detail := &BookingDetail{Booking: bk, Movie: movie, Seats: seats}
	if withMap {
		booked, err := s.Bookings.BookedSeatIDsByMovie(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
		detail.Map = allocation.BookingMap(venueOf(movie), snapshot, seatIDs, booked)
	}
	return detail, nil
}

// PreviewRef returns the reference the next confirmed booking will get.
// Shown on the selection screen; only Confirm actually assigns it.
func (s *Service) PreviewRef(ctx context.Context) (string, error) {
	last, err := s.Bookings.LastRef(ctx)
	if err != nil {
		return "", err
	}
	return NextRef(last), nil
}

// Confirm books the given seats for the active movie.  The whole step is
// one transaction: every seat is re-checked under a row lock to still be
// unbooked, and if any was taken since the caller's snapshot the booking
// fails with ErrSeatsTaken and nothing is committed.  On success the
// seat-map cache entry is dropped and a booking.confirmed event is
// published; publish failures are logged, never surfaced.
func (s *Service) Confirm(ctx context.Context, seatIDs []uint64, promoCode string, hasStudentID bool) (*model.Booking, pricing.Quote, error) {
	movie, err := s.Movies.GetActive(ctx)
	if err != nil {
		return nil, pricing.Quote{}, err
	}

	unique := dedup(seatIDs)
	if len(unique) == 0 {
		return nil, pricing.Quote{}, errors.New("no seats selected")
	}

	quote, err := pricing.NewQuote(s.Pricing, len(unique), promoCode, hasStudentID)
	if err != nil {
		return nil, pricing.Quote{}, err
	}

	lastRef, err := s.Bookings.LastRef(ctx)
	if err != nil {
		return nil, pricing.Quote{}, err
	}

	tx, err := s.Movies.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	free, err := s.Seats.LockAvailableByIDsTx(ctx, tx, movie.ID, unique)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	if len(free) != len(unique) {
		return nil, pricing.Quote{}, repository.ErrSeatsTaken
	}

	bk := &model.Booking{
		MovieID:    movie.ID,
		Ref:        NextRef(lastRef),
		TotalCents: quote.TotalCents,
	}
	if err := s.Bookings.CreateTx(ctx, tx, bk); err != nil {
		return nil, pricing.Quote{}, err
	}
	if err := s.Bookings.CreateSeatsBulkTx(ctx, tx, bk.ID, unique); err != nil {
		return nil, pricing.Quote{}, err
	}
	if err := s.Seats.MarkBookedTx(ctx, tx, unique); err != nil {
		return nil, pricing.Quote{}, err
	}
	if err := tx.Commit(); err != nil {
		return nil, pricing.Quote{}, err
	}
	committed = true

	s.invalidateMap(ctx, movie.ID)
	s.publishConfirmed(movie, bk, unique)
	return bk, quote, nil
}

// publishConfirmed emits the booking.confirmed event with the seat labels
// of the new booking.
func (s *Service) publishConfirmed(movie *model.Movie, bk *model.Booking, seatIDs []uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	labels := make([]string, 0, len(seatIDs))
	snapshot, err := s.Seats.GetByMovie(ctx, movie.ID)
	if err != nil {
		log.Printf("booking: load seats for event failed: %v", err)
	} else {
		wanted := make(map[uint64]struct{}, len(seatIDs))
		for _, id := range seatIDs {
			wanted[id] = struct{}{}
		}
		for _, seat := range snapshot {
			if _, ok := wanted[seat.ID]; ok {
				labels = append(labels, seat.Label())
			}
		}
	}

	_ = queue.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
		BookingRef:  bk.Ref,
		MovieID:     movie.ID,
		MovieTitle:  movie.Title,
		SeatLabels:  labels,
		TotalCents:  bk.TotalCents,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// cachedMap loads a cached base seating map for a movie, if present.
func (s *Service) cachedMap(ctx context.Context, movieID uint64) (allocation.SeatingMap, bool) {
	if s.Redis == nil || !s.Cache.Enabled {
		return nil, false
	}
	raw, err := s.Redis.Get(ctx, s.mapKey(movieID)).Bytes()
	if err != nil {
		return nil, false
	}
	var m allocation.SeatingMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

// storeMap writes the base seating map for a movie with the configured TTL.
func (s *Service) storeMap(ctx context.Context, movieID uint64, m allocation.SeatingMap) {
	if s.Redis == nil || !s.Cache.Enabled {
		return
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, s.mapKey(movieID), raw, s.Cache.TTL).Err(); err != nil {
		log.Printf("booking: cache seat map failed: %v", err)
	}
}

// invalidateMap drops the cached map after bookings or layout changes.
func (s *Service) invalidateMap(ctx context.Context, movieID uint64) {
	if s.Redis == nil || !s.Cache.Enabled {
		return
	}
	if err := s.Redis.Del(ctx, s.mapKey(movieID)).Err(); err != nil {
		log.Printf("booking: invalidate seat map failed: %v", err)
	}
}

func (s *Service) mapKey(movieID uint64) string {
	return fmt.Sprintf("%s:movie:%d", s.Cache.Prefix, movieID)
}

// dedup drops zero and duplicate ids while preserving order.
func dedup(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
