package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderLineItem is one dish on a finalized order. Line items from a group
// order keep the contributing participant so receipts and refunds stay
// attributable per person.
type OrderLineItem struct {
	ID                  uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID             uuid.UUID  `gorm:"column:order_id;type:uuid;not null;index"`
	DishID              uuid.UUID  `gorm:"column:dish_id;type:uuid;not null"`
	Name                string     `gorm:"column:name;not null"`
	Quantity            int        `gorm:"column:quantity;not null"`
	UnitPrice           int        `gorm:"column:unit_price;not null"`
	Total               int        `gorm:"column:total;not null"`
	SpecialInstructions *string    `gorm:"column:special_instructions"`
	ParticipantUserID   *uuid.UUID `gorm:"column:participant_user_id;type:uuid"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
}
