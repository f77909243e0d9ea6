package pricing

import (
	"errors"
	"fmt"
	"strings"
)

// Promo describes one promo code: a percentage off the undiscounted
// subtotal, a minimum party size, and an optional student-ID requirement.
type Promo struct {
	Code              string
	DiscountPercent   int64
	MinTickets        int
	RequiresStudentID bool
}

// promoCodes is the configured code table.  Codes are matched after
// trimming and upper-casing the input.
var promoCodes = map[string]Promo{
	"SAVE10":  {Code: "SAVE10", DiscountPercent: 10, MinTickets: 1},
	"SAVE20":  {Code: "SAVE20", DiscountPercent: 20, MinTickets: 3},
	"HALF":    {Code: "HALF", DiscountPercent: 50, MinTickets: 5},
	"STUDENT": {Code: "STUDENT", DiscountPercent: 15, MinTickets: 1, RequiresStudentID: true},
}

// ErrEmptyPromoCode is returned when the code is blank after trimming.
var ErrEmptyPromoCode = errors.New("promo code cannot be empty")

// ErrUnknownPromoCode is returned when no such code is configured.
var ErrUnknownPromoCode = errors.New("invalid promo code")

// PromoError reports a code that exists but cannot be applied to the
// current booking, such as a party below the code's minimum size.
type PromoError struct {
	Code   string
	Reason string
}

func (e *PromoError) Error() string {
	return fmt.Sprintf("code %s %s", e.Code, e.Reason)
}

// ValidatePromo resolves a promo code against the party size and student
// credentials.  On success it returns the canonical Promo entry.
func ValidatePromo(code string, tickets int, hasStudentID bool) (Promo, error) {
	norm := strings.ToUpper(strings.TrimSpace(code))
	if norm == "" {
		return Promo{}, ErrEmptyPromoCode
	}
	promo, ok := promoCodes[norm]
	if !ok {
		return Promo{}, fmt.Errorf("%w: %s", ErrUnknownPromoCode, code)
	}
	if tickets < promo.MinTickets {
		return Promo{}, &PromoError{Code: promo.Code, Reason: fmt.Sprintf("requires minimum %d tickets", promo.MinTickets)}
	}
	if promo.RequiresStudentID && !hasStudentID {
		return Promo{}, &PromoError{Code: promo.Code, Reason: "requires valid student ID"}
	}
	return promo, nil
}

// PromoDiscount returns the promo discount amount.  The percentage
// applies to the undiscounted subtotal, independent of any group
// discount.
func PromoDiscount(cfg Config, promo Promo, tickets int) int64 {
	return Subtotal(cfg, tickets) * promo.DiscountPercent / 100
}

// Quote is a full price breakdown for a booking.
type Quote struct {
	Tickets            int    `json:"tickets"`
	SubtotalCents      int64  `json:"subtotal_cents"`
	GroupDiscountCents int64  `json:"group_discount_cents"`
	PromoCode          string `json:"promo_code,omitempty"`
	PromoDiscountCents int64  `json:"promo_discount_cents"`
	TotalCents         int64  `json:"total_cents"`
}

// NewQuote prices tickets with an optional promo code.  An empty
// promoCode yields a quote with only the group discount; an invalid one
// returns the validation error and no quote.
func NewQuote(cfg Config, tickets int, promoCode string, hasStudentID bool) (Quote, error) {
	q := Quote{
		Tickets:            tickets,
		SubtotalCents:      Subtotal(cfg, tickets),
		GroupDiscountCents: GroupDiscount(cfg, tickets),
	}
	if strings.TrimSpace(promoCode) != "" {
		promo, err := ValidatePromo(promoCode, tickets, hasStudentID)
		if err != nil {
			return Quote{}, err
		}
		q.PromoCode = promo.Code
		q.PromoDiscountCents = PromoDiscount(cfg, promo, tickets)
	}
	q.TotalCents = q.SubtotalCents - q.GroupDiscountCents - q.PromoDiscountCents
	if q.TotalCents < 0 {
		q.TotalCents = 0
	}
	return q, nil
}
