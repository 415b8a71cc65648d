package enums

import "fmt"

// GroupOrderStatus tracks the lifecycle of a shared ordering session.
type GroupOrderStatus string

const (
	GroupOrderStatusActive    GroupOrderStatus = "active"
	GroupOrderStatusConfirmed GroupOrderStatus = "confirmed"
	GroupOrderStatusCancelled GroupOrderStatus = "cancelled"
	GroupOrderStatusExpired   GroupOrderStatus = "expired"
)

var validGroupOrderStatuses = []GroupOrderStatus{
	GroupOrderStatusActive,
	GroupOrderStatusConfirmed,
	GroupOrderStatusCancelled,
	GroupOrderStatusExpired,
}

// String implements fmt.Stringer.
func (g GroupOrderStatus) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GroupOrderStatus.
func (g GroupOrderStatus) IsValid() bool {
	for _, candidate := range validGroupOrderStatuses {
		if candidate == g {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (g GroupOrderStatus) IsTerminal() bool {
	return g == GroupOrderStatusConfirmed || g == GroupOrderStatusCancelled || g == GroupOrderStatusExpired
}

// ParseGroupOrderStatus converts raw input into a GroupOrderStatus.
func ParseGroupOrderStatus(value string) (GroupOrderStatus, error) {
	for _, candidate := range validGroupOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid group order status %q", value)
}
