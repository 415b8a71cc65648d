package grouporders

import (
	"time"

	"github.com/cribnosh/nosh-backend/pkg/enums"
	"github.com/cribnosh/nosh-backend/pkg/types"
	"github.com/google/uuid"
)

// CreateGroupOrderInput carries the data required to open a group order.
type CreateGroupOrderInput struct {
	CreatedBy       uuid.UUID
	ChefID          uuid.UUID
	RestaurantName  string
	Title           string
	InitialBudget   int
	DeliveryAddress *types.Address
	DeliveryTime    *string
}

// JoinGroupOrderInput carries a join request.
type JoinGroupOrderInput struct {
	GroupOrderID uuid.UUID
	UserID       uuid.UUID
	Items        types.OrderItems
}

// CloseGroupOrderInput carries a close request.
type CloseGroupOrderInput struct {
	GroupOrderID uuid.UUID
	ClosedBy     uuid.UUID
}

// BudgetChipInInput carries one contribution to the shared budget pot.
type BudgetChipInInput struct {
	GroupOrderID uuid.UUID
	UserID       uuid.UUID
	Amount       int
}

// UpdateSelectionsInput replaces a participant's current item selections.
type UpdateSelectionsInput struct {
	GroupOrderID uuid.UUID
	UserID       uuid.UUID
	Items        types.OrderItems
}

// ParticipantView is the participant shape returned to clients.
type ParticipantView struct {
	UserID             uuid.UUID             `json:"user_id"`
	UserName           string                `json:"user_name"`
	UserInitials       string                `json:"user_initials"`
	UserColor          string                `json:"user_color"`
	Position           int                   `json:"position"`
	Items              types.OrderItems      `json:"items"`
	TotalContribution  int                   `json:"total_contribution"`
	BudgetContribution int                   `json:"budget_contribution"`
	SelectionStatus    enums.SelectionStatus `json:"selection_status"`
	JoinedAt           time.Time             `json:"joined_at"`
}

// GroupOrderDetail is the full group order shape returned to clients. Status
// reflects lazy expiry: an active order past its deadline reads as expired.
type GroupOrderDetail struct {
	ID                 uuid.UUID              `json:"id"`
	Code               string                 `json:"code"`
	Title              string                 `json:"title"`
	RestaurantName     string                 `json:"restaurant_name"`
	ChefID             uuid.UUID              `json:"chef_id"`
	CreatedBy          uuid.UUID              `json:"created_by"`
	Status             enums.GroupOrderStatus `json:"status"`
	SelectionPhase     enums.SelectionPhase   `json:"selection_phase"`
	InitialBudget      int                    `json:"initial_budget"`
	TotalBudget        int                    `json:"total_budget"`
	TotalAmount        int                    `json:"total_amount"`
	DiscountPercentage int                    `json:"discount_percentage"`
	DiscountAmount     int                    `json:"discount_amount"`
	FinalAmount        int                    `json:"final_amount"`
	DeliveryAddress    *types.Address         `json:"delivery_address,omitempty"`
	DeliveryTime       *string                `json:"delivery_time,omitempty"`
	ShareToken         string                 `json:"share_token"`
	ShareLink          string                 `json:"share_link"`
	ExpiresAt          time.Time              `json:"expires_at"`
	ClosedAt           *time.Time             `json:"closed_at,omitempty"`
	MainOrderID        *uuid.UUID             `json:"main_order_id,omitempty"`
	Participants       []ParticipantView      `json:"participants"`
	CreatedAt          time.Time              `json:"created_at"`
}

// CloseResult reports the outcome of finalizing a group order.
type CloseResult struct {
	GroupOrder *GroupOrderDetail `json:"group_order"`
	OrderID    uuid.UUID         `json:"order_id"`
	OrderCode  string            `json:"order_code"`
}
