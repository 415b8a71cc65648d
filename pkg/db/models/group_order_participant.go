package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/cribnosh/nosh-backend/pkg/enums"
	"github.com/cribnosh/nosh-backend/pkg/types"
)

// GroupOrderParticipant is one user's slice of a group order. Position records
// join order and drives avatar coloring plus discount eligibility display.
type GroupOrderParticipant struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupOrderID uuid.UUID `gorm:"column:group_order_id;type:uuid;not null;uniqueIndex:uq_group_order_participant,priority:1"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_group_order_participant,priority:2"`

	UserName     string `gorm:"column:user_name;not null"`
	UserInitials string `gorm:"column:user_initials;not null"`
	UserColor    string `gorm:"column:user_color;not null"`
	Position     int    `gorm:"column:position;not null"`

	Items              types.OrderItems `gorm:"column:items;type:jsonb;serializer:json"`
	TotalContribution  int              `gorm:"column:total_contribution;not null;default:0"`
	BudgetContribution int              `gorm:"column:budget_contribution;not null;default:0"`

	SelectionStatus  enums.SelectionStatus `gorm:"column:selection_status;type:text;not null;default:'not_ready'"`
	SelectionReadyAt *time.Time            `gorm:"column:selection_ready_at"`
	PaymentStatus    enums.PaymentStatus   `gorm:"column:payment_status;type:text;not null;default:'pending'"`

	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime"`
}
