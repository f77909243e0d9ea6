package allocation

import (
	"regexp"
	"strconv"
	"strings"
)

// Position is a transient seat reference produced by parsing a string
// like "A1" or "H10".  Row is a single uppercase letter; Column is the
// 1-based seat number.  Positions are never persisted.
type Position struct {
	Row    string
	Column int
}

// positionPattern accepts exactly one letter followed by one or more digits.
var positionPattern = regexp.MustCompile(`^([A-Z])([0-9]+)$`)

// ParsePosition parses a free-form seat reference.  Input is trimmed and
// upper-cased before matching, so "b5" parses as B5.  Multi-letter rows,
// missing digits, empty strings and digits-before-letter all fail with an
// invalid-format error.  No range validation happens here; bounds are
// checked against the movie configuration by Allocate.
func ParsePosition(s string) (Position, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	m := positionPattern.FindStringSubmatch(norm)
	if m == nil {
		return Position{}, InvalidFormatError(s)
	}
	col, err := strconv.Atoi(m[2])
	if err != nil {
		// digits already matched; only overflow can land here
		return Position{}, InvalidFormatError(s)
	}
	return Position{Row: m[1], Column: col}, nil
}
