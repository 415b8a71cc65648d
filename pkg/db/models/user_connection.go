package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/cribnosh/nosh-backend/pkg/enums"
)

// UserConnection is one directed social edge. Each pair of connected users is
// stored as two independent rows so either side can remove or block without
// touching the reverse direction.
type UserConnection struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_user_connection,priority:1"`
	ConnectedUserID uuid.UUID `gorm:"column:connected_user_id;type:uuid;not null;uniqueIndex:uq_user_connection,priority:2"`

	ConnectionType enums.ConnectionType   `gorm:"column:connection_type;type:text;not null;default:'friend'"`
	Status         enums.ConnectionStatus `gorm:"column:status;type:text;not null;default:'active'"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
