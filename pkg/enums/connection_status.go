package enums

import "fmt"

// ConnectionStatus tracks the state of one directed social edge.
type ConnectionStatus string

const (
	ConnectionStatusActive  ConnectionStatus = "active"
	ConnectionStatusRemoved ConnectionStatus = "removed"
	ConnectionStatusBlocked ConnectionStatus = "blocked"
)

var validConnectionStatuses = []ConnectionStatus{
	ConnectionStatusActive,
	ConnectionStatusRemoved,
	ConnectionStatusBlocked,
}

// String implements fmt.Stringer.
func (c ConnectionStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ConnectionStatus.
func (c ConnectionStatus) IsValid() bool {
	for _, candidate := range validConnectionStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseConnectionStatus converts raw input into a ConnectionStatus.
func ParseConnectionStatus(value string) (ConnectionStatus, error) {
	for _, candidate := range validConnectionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid connection status %q", value)
}
