package grouporders

import "fmt"

// DiscountQuote is the output of the group discount policy.
type DiscountQuote struct {
	Percentage int
	Rationale  string
}

// Discount returns the tiered group discount for the given participant count.
// The caller guarantees participantCount >= 1; a group order with zero
// participants is never priced.
func Discount(participantCount int) DiscountQuote {
	if participantCount <= 1 {
		return DiscountQuote{Percentage: 0, Rationale: "solo order, no group discount"}
	}
	return DiscountQuote{
		Percentage: 25,
		Rationale:  fmt.Sprintf("group discount for %d participants", participantCount),
	}
}

// ApplyDiscount computes the discount and final amounts in integer minor
// units, rounding half up.
func ApplyDiscount(totalAmount, percentage int) (discountAmount, finalAmount int) {
	if totalAmount <= 0 || percentage <= 0 {
		return 0, max(totalAmount, 0)
	}
	discountAmount = (totalAmount*percentage + 50) / 100
	finalAmount = totalAmount - discountAmount
	if finalAmount < 0 {
		finalAmount = 0
	}
	return discountAmount, finalAmount
}
