package connections

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionSummary is one entry in a user's connections list.
type ConnectionSummary struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Initials    string    `json:"initials"`
	ConnectedAt time.Time `json:"connected_at"`
}

// ConnectionList wraps the connections returned for one user.
type ConnectionList struct {
	Connections []ConnectionSummary `json:"connections"`
	Total       int                 `json:"total"`
}
