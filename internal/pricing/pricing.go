// Package pricing computes ticket totals in cents.  Prices, thresholds
// and rates are plain configuration values passed to pure functions; no
// state and no I/O.
package pricing

// Config carries the pricing rules for the active movie.  Amounts are in
// cents to keep the arithmetic exact.
type Config struct {
	BasePriceCents       int64 // price of one ticket
	GroupSize            int   // minimum tickets for the group discount
	GroupDiscountPercent int64 // percent off the subtotal at GroupSize or more
}

// DefaultConfig mirrors the standard GIC pricing: a 10% group discount
// for parties of five or more.
func DefaultConfig(basePriceCents int64) Config {
	return Config{
		BasePriceCents:       basePriceCents,
		GroupSize:            5,
		GroupDiscountPercent: 10,
	}
}

// Subtotal is the undiscounted price of tickets.
func Subtotal(cfg Config, tickets int) int64 {
	if tickets < 0 {
		return 0
	}
	return int64(tickets) * cfg.BasePriceCents
}

// GroupDiscount returns the group discount amount for tickets, zero when
// the party is below the threshold.
func GroupDiscount(cfg Config, tickets int) int64 {
	if cfg.GroupSize <= 0 || tickets < cfg.GroupSize {
		return 0
	}
	return Subtotal(cfg, tickets) * cfg.GroupDiscountPercent / 100
}

// Total is the price of tickets after the group discount.
func Total(cfg Config, tickets int) int64 {
	return Subtotal(cfg, tickets) - GroupDiscount(cfg, tickets)
}
