package enums

import "fmt"

// SelectionStatus tracks whether a participant has locked in their items.
type SelectionStatus string

const (
	SelectionStatusNotReady SelectionStatus = "not_ready"
	SelectionStatusReady    SelectionStatus = "ready"
)

var validSelectionStatuses = []SelectionStatus{
	SelectionStatusNotReady,
	SelectionStatusReady,
}

// String implements fmt.Stringer.
func (s SelectionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SelectionStatus.
func (s SelectionStatus) IsValid() bool {
	for _, candidate := range validSelectionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSelectionStatus converts raw input into a SelectionStatus.
func ParseSelectionStatus(value string) (SelectionStatus, error) {
	for _, candidate := range validSelectionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid selection status %q", value)
}
