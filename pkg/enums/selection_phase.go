package enums

import "fmt"

// SelectionPhase tracks where a group order sits in the budgeting/selection flow.
type SelectionPhase string

const (
	SelectionPhaseBudgeting SelectionPhase = "budgeting"
	SelectionPhaseSelecting SelectionPhase = "selecting"
	SelectionPhaseReady     SelectionPhase = "ready"
)

var validSelectionPhases = []SelectionPhase{
	SelectionPhaseBudgeting,
	SelectionPhaseSelecting,
	SelectionPhaseReady,
}

// String implements fmt.Stringer.
func (s SelectionPhase) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SelectionPhase.
func (s SelectionPhase) IsValid() bool {
	for _, candidate := range validSelectionPhases {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSelectionPhase converts raw input into a SelectionPhase.
func ParseSelectionPhase(value string) (SelectionPhase, error) {
	for _, candidate := range validSelectionPhases {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid selection phase %q", value)
}
