package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/cribnosh/nosh-backend/pkg/enums"
	"github.com/cribnosh/nosh-backend/pkg/types"
)

// Order is the canonical chargeable order. A confirmed group order produces
// exactly one of these with the post-discount total.
type Order struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code       string              `gorm:"column:code;not null;uniqueIndex"`
	CustomerID uuid.UUID           `gorm:"column:customer_id;type:uuid;not null"`
	ChefID     uuid.UUID           `gorm:"column:chef_id;type:uuid;not null"`
	Status     enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'pending'"`
	PayStatus  enums.PaymentStatus `gorm:"column:payment_status;type:text;not null;default:'pending'"`

	TotalAmount int `gorm:"column:total_amount;not null"`

	DeliveryAddress *types.Address `gorm:"column:delivery_address;type:jsonb;serializer:json"`
	DeliveryTime    *string        `gorm:"column:delivery_time"`

	IsGroupOrder             bool       `gorm:"column:is_group_order;not null;default:false"`
	GroupOrderID             *uuid.UUID `gorm:"column:group_order_id;type:uuid"`
	ParticipantCount         int        `gorm:"column:participant_count;not null;default:0"`
	EstimatedPrepTimeMinutes int        `gorm:"column:estimated_prep_time_minutes;not null;default:0"`

	Items []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
