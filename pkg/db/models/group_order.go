package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/cribnosh/nosh-backend/pkg/enums"
	"github.com/cribnosh/nosh-backend/pkg/types"
)

// GroupOrder is a shared ordering session a creator opens against a chef.
// Participants live in their own table so concurrent joins serialize on the
// unique (group_order_id, user_id) constraint instead of a mutable array.
type GroupOrder struct {
	ID             uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code           string                 `gorm:"column:code;not null;uniqueIndex"`
	CreatedBy      uuid.UUID              `gorm:"column:created_by;type:uuid;not null"`
	ChefID         uuid.UUID              `gorm:"column:chef_id;type:uuid;not null"`
	RestaurantName string                 `gorm:"column:restaurant_name;not null"`
	Title          string                 `gorm:"column:title;not null"`
	Status         enums.GroupOrderStatus `gorm:"column:status;type:text;not null;default:'active'"`
	SelectionPhase enums.SelectionPhase   `gorm:"column:selection_phase;type:text;not null;default:'budgeting'"`

	InitialBudget int `gorm:"column:initial_budget;not null;default:0"`
	TotalBudget   int `gorm:"column:total_budget;not null;default:0"`

	TotalAmount        int `gorm:"column:total_amount;not null;default:0"`
	DiscountPercentage int `gorm:"column:discount_percentage;not null;default:0"`
	DiscountAmount     int `gorm:"column:discount_amount;not null;default:0"`
	FinalAmount        int `gorm:"column:final_amount;not null;default:0"`

	DeliveryAddress *types.Address `gorm:"column:delivery_address;type:jsonb;serializer:json"`
	DeliveryTime    *string        `gorm:"column:delivery_time"`

	ShareToken     string    `gorm:"column:share_token;not null;uniqueIndex"`
	ShareExpiresAt time.Time `gorm:"column:share_expires_at;not null"`

	ExpiresAt   time.Time  `gorm:"column:expires_at;not null"`
	ClosedAt    *time.Time `gorm:"column:closed_at"`
	MainOrderID *uuid.UUID `gorm:"column:main_order_id;type:uuid"`

	Participants []GroupOrderParticipant `gorm:"foreignKey:GroupOrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
