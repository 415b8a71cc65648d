package models

import (
	"time"

	"github.com/google/uuid"
)

// BudgetContribution is one chip-in to a group order's shared budget pot.
// Rows are append-only; the participant carries the running per-user total.
type BudgetContribution struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupOrderID  uuid.UUID `gorm:"column:group_order_id;type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null"`
	Amount        int       `gorm:"column:amount;not null"`
	ContributedAt time.Time `gorm:"column:contributed_at;autoCreateTime"`
}

// TableName keeps the table name explicit since gorm would otherwise drop the prefix.
func (BudgetContribution) TableName() string {
	return "group_order_budget_contributions"
}
