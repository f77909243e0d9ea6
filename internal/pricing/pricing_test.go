package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal_NoDiscountBelowGroupSize(t *testing.T) {
	cfg := DefaultConfig(1500) // $15.00 tickets

	assert.Equal(t, int64(1500), Total(cfg, 1))
	assert.Equal(t, int64(4500), Total(cfg, 3))
	assert.Equal(t, int64(6000), Total(cfg, 4))
}

func TestTotal_GroupDiscountAtThreshold(t *testing.T) {
	cfg := DefaultConfig(1500)

	// 5 tickets: 7500 - 10% = 6750
	assert.Equal(t, int64(6750), Total(cfg, 5))
	// 10 tickets: 15000 - 10% = 13500
	assert.Equal(t, int64(13500), Total(cfg, 10))
}

func TestGroupDiscount(t *testing.T) {
	cfg := DefaultConfig(1000)

	assert.Equal(t, int64(0), GroupDiscount(cfg, 4))
	assert.Equal(t, int64(500), GroupDiscount(cfg, 5))
	assert.Equal(t, int64(0), GroupDiscount(Config{BasePriceCents: 1000}, 10), "zero GroupSize disables the discount")
}

func TestSubtotal_NeverNegative(t *testing.T) {
	cfg := DefaultConfig(1500)
	assert.Equal(t, int64(0), Subtotal(cfg, -2))
}
