package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// refPrefix is the constant prefix of customer-facing booking references.
const refPrefix = "GIC"

// NextRef derives the next booking reference from the most recently
// assigned one: GIC0001, GIC0002, ...  An empty or malformed last
// reference restarts the sequence at GIC0001.  The numeric part grows
// past four digits rather than wrapping.
func NextRef(last string) string {
	n := 0
	if strings.HasPrefix(last, refPrefix) {
		if v, err := strconv.Atoi(strings.TrimPrefix(last, refPrefix)); err == nil && v > 0 {
			n = v
		}
	}
	return fmt.Sprintf("%s%04d", refPrefix, n+1)
}
