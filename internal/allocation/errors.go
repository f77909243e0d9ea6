package allocation // allocation implements the seat-selection core

import "fmt"

// Kind classifies allocation failures so that callers can pattern-match
// on the outcome instead of parsing messages.  All failures are ordinary
// error values; the core never panics across its boundary.
type Kind int

const (
	// KindNotFound means the referenced movie does not exist.
	KindNotFound Kind = iota + 1
	// KindInsufficientCapacity means fewer seats are free than requested.
	KindInsufficientCapacity
	// KindInvalidFormat means the start position string is not <letter><digits>.
	KindInvalidFormat
	// KindRowOutOfRange means the parsed row letter exceeds the movie's rows.
	KindRowOutOfRange
	// KindColumnOutOfRange means the parsed column is outside 1..seats_per_row.
	KindColumnOutOfRange
	// KindFragmentation means aggregate capacity sufficed but no allocator
	// path could collect the full count.  The fix is a different start
	// position, not a smaller ticket count.
	KindFragmentation
)

// String names the kind for JSON error payloads and logs.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInsufficientCapacity:
		return "insufficient_capacity"
	case KindInvalidFormat:
		return "invalid_format"
	case KindRowOutOfRange:
		return "row_out_of_range"
	case KindColumnOutOfRange:
		return "column_out_of_range"
	case KindFragmentation:
		return "fragmentation"
	}
	return "unknown"
}

// Error carries the failure kind together with the data each kind needs:
// requested/available counts for capacity failures, the offending position
// or row/column plus the valid bound for range failures.
type Error struct {
	Kind      Kind
	Requested int    // tickets requested (capacity and fragmentation failures)
	Available int    // seats actually free (capacity failures)
	Position  string // raw start position (format failures)
	Row       string // parsed row letter (row range failures)
	Column    int    // parsed column (column range failures)
	MaxRow    string // last valid row letter (row range failures)
	MaxColumn int    // last valid column (column range failures)
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "movie not found"
	case KindInsufficientCapacity:
		return fmt.Sprintf("not enough seats available: only %d seats remaining", e.Available)
	case KindInvalidFormat:
		return fmt.Sprintf("invalid seat position: %s", e.Position)
	case KindRowOutOfRange:
		return fmt.Sprintf("invalid row: %s, valid rows are A-%s", e.Row, e.MaxRow)
	case KindColumnOutOfRange:
		return fmt.Sprintf("invalid column: %d, valid columns are 1-%d", e.Column, e.MaxColumn)
	case KindFragmentation:
		return fmt.Sprintf("could not allocate %d contiguous seats, try a different position", e.Requested)
	}
	return "allocation failed"
}

// NotFoundError reports a missing movie.  The storage-facing service maps
// its repository sentinel to this value so callers see one error type.
func NotFoundError() *Error {
	return &Error{Kind: KindNotFound}
}

// InsufficientCapacityError reports that only available seats remain of
// the requested count.
func InsufficientCapacityError(requested, available int) *Error {
	return &Error{Kind: KindInsufficientCapacity, Requested: requested, Available: available}
}

// InvalidFormatError reports an unparseable start position.
func InvalidFormatError(position string) *Error {
	return &Error{Kind: KindInvalidFormat, Position: position}
}

// RowOutOfRangeError reports a row letter beyond the movie's configured rows.
func RowOutOfRangeError(row, maxRow string) *Error {
	return &Error{Kind: KindRowOutOfRange, Row: row, MaxRow: maxRow}
}

// ColumnOutOfRangeError reports a column outside the movie's row width.
func ColumnOutOfRangeError(column, maxColumn int) *Error {
	return &Error{Kind: KindColumnOutOfRange, Column: column, MaxColumn: maxColumn}
}

// FragmentationError reports that the allocator came up short even though
// aggregate capacity sufficed.
func FragmentationError(requested int) *Error {
	return &Error{Kind: KindFragmentation, Requested: requested}
}
