package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OrderItem is a single dish selection carried by a participant. The slice is
// persisted as jsonb on the participant row and flattened into order line
// items at close time.
type OrderItem struct {
	DishID              uuid.UUID `json:"dish_id"`
	Name                string    `json:"name"`
	Quantity            int       `json:"quantity"`
	UnitPrice           int       `json:"unit_price"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
}

// Total returns the item subtotal in minor currency units.
func (i OrderItem) Total() int {
	return i.UnitPrice * i.Quantity
}

// OrderItems is the jsonb-serialized selection list.
type OrderItems []OrderItem

// Sum returns the combined subtotal of all items in minor currency units.
func (items OrderItems) Sum() int {
	total := 0
	for _, item := range items {
		total += item.Total()
	}
	return total
}

// Validate checks that every item names a dish and carries sane amounts.
// Empty slices are valid; participants may join before choosing anything.
func (items OrderItems) Validate() error {
	for i, item := range items {
		if item.DishID == uuid.Nil {
			return fmt.Errorf("item %d: dish id required", i)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("item %d: name required", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("item %d: unit price cannot be negative", i)
		}
	}
	return nil
}
