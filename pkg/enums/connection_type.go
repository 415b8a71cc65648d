package enums

import "fmt"

// ConnectionType records how a social edge was derived.
type ConnectionType string

const (
	// ConnectionTypeFriend is assigned when two users share a group order.
	ConnectionTypeFriend ConnectionType = "friend"
)

var validConnectionTypes = []ConnectionType{
	ConnectionTypeFriend,
}

// String implements fmt.Stringer.
func (c ConnectionType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ConnectionType.
func (c ConnectionType) IsValid() bool {
	for _, candidate := range validConnectionTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseConnectionType converts raw input into a ConnectionType.
func ParseConnectionType(value string) (ConnectionType, error) {
	for _, candidate := range validConnectionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid connection type %q", value)
}
