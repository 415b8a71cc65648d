package grouporders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountTiers(t *testing.T) {
	cases := []struct {
		name         string
		participants int
		want         int
	}{
		{name: "solo participant", participants: 1, want: 0},
		{name: "two participants", participants: 2, want: 25},
		{name: "five participants", participants: 5, want: 25},
		{name: "large group", participants: 40, want: 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := Discount(tc.participants)
			assert.Equal(t, tc.want, quote.Percentage)
			assert.NotEmpty(t, quote.Rationale)
		})
	}
}

func TestApplyDiscountRoundsHalfUp(t *testing.T) {
	discount, final := ApplyDiscount(1000, 25)
	assert.Equal(t, 250, discount)
	assert.Equal(t, 750, final)

	// 999 * 25% = 249.75, rounds up to 250
	discount, final = ApplyDiscount(999, 25)
	assert.Equal(t, 250, discount)
	assert.Equal(t, 749, final)

	// 998 * 25% = 249.5, rounds up to 250
	discount, final = ApplyDiscount(998, 25)
	assert.Equal(t, 250, discount)
	assert.Equal(t, 748, final)

	// 997 * 25% = 249.25, rounds down to 249
	discount, final = ApplyDiscount(997, 25)
	assert.Equal(t, 249, discount)
	assert.Equal(t, 748, final)
}

func TestApplyDiscountEdges(t *testing.T) {
	discount, final := ApplyDiscount(0, 25)
	assert.Equal(t, 0, discount)
	assert.Equal(t, 0, final)

	discount, final = ApplyDiscount(500, 0)
	assert.Equal(t, 0, discount)
	assert.Equal(t, 500, final)

	// final amount never goes negative
	discount, final = ApplyDiscount(1, 100)
	assert.Equal(t, 1, discount)
	assert.Equal(t, 0, final)
}

func TestColorForPositionCycles(t *testing.T) {
	assert.Equal(t, avatarPalette[0], colorForPosition(1))
	assert.Equal(t, avatarPalette[9], colorForPosition(10))
	assert.Equal(t, avatarPalette[0], colorForPosition(11))
	assert.Equal(t, avatarPalette[0], colorForPosition(0))
}
