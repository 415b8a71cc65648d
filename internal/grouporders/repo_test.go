package grouporders

import (
	"context"
	"testing"
	"time"

	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/cribnosh/nosh-backend/pkg/enums"
	"github.com/cribnosh/nosh-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGroupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	groupOrders := `
CREATE TABLE IF NOT EXISTS group_orders (
  id TEXT PRIMARY KEY,
  code TEXT NOT NULL UNIQUE,
  created_by TEXT NOT NULL,
  chef_id TEXT NOT NULL,
  restaurant_name TEXT NOT NULL,
  title TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'active',
  selection_phase TEXT NOT NULL DEFAULT 'budgeting',
  initial_budget INTEGER NOT NULL DEFAULT 0,
  total_budget INTEGER NOT NULL DEFAULT 0,
  total_amount INTEGER NOT NULL DEFAULT 0,
  discount_percentage INTEGER NOT NULL DEFAULT 0,
  discount_amount INTEGER NOT NULL DEFAULT 0,
  final_amount INTEGER NOT NULL DEFAULT 0,
  delivery_address TEXT,
  delivery_time TEXT,
  share_token TEXT NOT NULL UNIQUE,
  share_expires_at DATETIME NOT NULL,
  expires_at DATETIME NOT NULL,
  closed_at DATETIME,
  main_order_id TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	participants := `
CREATE TABLE IF NOT EXISTS group_order_participants (
  id TEXT PRIMARY KEY,
  group_order_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  user_name TEXT NOT NULL,
  user_initials TEXT NOT NULL,
  user_color TEXT NOT NULL,
  position INTEGER NOT NULL,
  items TEXT NOT NULL DEFAULT '[]',
  total_contribution INTEGER NOT NULL DEFAULT 0,
  budget_contribution INTEGER NOT NULL DEFAULT 0,
  selection_status TEXT NOT NULL DEFAULT 'not_ready',
  selection_ready_at DATETIME,
  payment_status TEXT NOT NULL DEFAULT 'pending',
  joined_at DATETIME,
  CONSTRAINT uq_group_order_participant UNIQUE (group_order_id, user_id)
);`
	contributions := `
CREATE TABLE IF NOT EXISTS group_order_budget_contributions (
  id TEXT PRIMARY KEY,
  group_order_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  amount INTEGER NOT NULL,
  contributed_at DATETIME
);`
	require.NoError(t, db.Exec(groupOrders).Error)
	require.NoError(t, db.Exec(participants).Error)
	require.NoError(t, db.Exec(contributions).Error)
	return db
}

func seedGroupOrder(t *testing.T, repo Repository) *models.GroupOrder {
	t.Helper()
	groupOrder := &models.GroupOrder{
		ID:             uuid.New(),
		Code:           "GRP-20250812-" + uuid.NewString()[:6],
		CreatedBy:      uuid.New(),
		ChefID:         uuid.New(),
		RestaurantName: "Mama Put Kitchen",
		Title:          "Friday lunch",
		Status:         enums.GroupOrderStatusActive,
		SelectionPhase: enums.SelectionPhaseBudgeting,
		ShareToken:     uuid.NewString(),
		ShareExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), groupOrder))
	return groupOrder
}

func seedParticipant(t *testing.T, repo Repository, groupOrderID uuid.UUID, position int) *models.GroupOrderParticipant {
	t.Helper()
	participant := &models.GroupOrderParticipant{
		ID:           uuid.New(),
		GroupOrderID: groupOrderID,
		UserID:       uuid.New(),
		UserName:     "Tunde Bakare",
		UserInitials: "TB",
		UserColor:    colorForPosition(position),
		Position:     position,
		Items: types.OrderItems{
			{DishID: uuid.New(), Name: "Jollof Rice", Quantity: 1, UnitPrice: 1500},
		},
		TotalContribution: 1500,
		SelectionStatus:   enums.SelectionStatusNotReady,
		PaymentStatus:     enums.PaymentStatusPending,
	}
	require.NoError(t, repo.CreateParticipant(context.Background(), participant))
	return participant
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupGroupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedGroupOrder(t, repo)
	seedParticipant(t, repo, seeded.ID, 1)

	found, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Code, found.Code)
	require.Len(t, found.Participants, 1)
	assert.Equal(t, "Jollof Rice", found.Participants[0].Items[0].Name)

	_, err = repo.FindByID(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRepositoryFindByShareToken(t *testing.T) {
	db := setupGroupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedGroupOrder(t, repo)

	found, err := repo.FindByShareToken(ctx, seeded.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	_, err = repo.FindByShareToken(ctx, "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRepositoryUpdateTotals(t *testing.T) {
	db := setupGroupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedGroupOrder(t, repo)

	require.NoError(t, repo.Update(ctx, seeded.ID, map[string]any{
		"total_amount":        3000,
		"discount_percentage": 25,
		"discount_amount":     750,
		"final_amount":        2250,
		"status":              "confirmed",
	}))

	found, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000, found.TotalAmount)
	assert.Equal(t, 25, found.DiscountPercentage)
	assert.Equal(t, 750, found.DiscountAmount)
	assert.Equal(t, 2250, found.FinalAmount)
	assert.Equal(t, enums.GroupOrderStatusConfirmed, found.Status)
}

func TestRepositoryDuplicateParticipantRejected(t *testing.T) {
	db := setupGroupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedGroupOrder(t, repo)
	participant := seedParticipant(t, repo, seeded.ID, 1)

	dupe := &models.GroupOrderParticipant{
		ID:           uuid.New(),
		GroupOrderID: seeded.ID,
		UserID:       participant.UserID,
		UserName:     participant.UserName,
		UserInitials: participant.UserInitials,
		UserColor:    participant.UserColor,
		Position:     2,
	}
	err := repo.CreateParticipant(ctx, dupe)
	require.Error(t, err)
}

func TestRepositoryListParticipantsOrdered(t *testing.T) {
	db := setupGroupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedGroupOrder(t, repo)
	seedParticipant(t, repo, seeded.ID, 2)
	seedParticipant(t, repo, seeded.ID, 1)
	seedParticipant(t, repo, seeded.ID, 3)

	participants, err := repo.ListParticipants(ctx, seeded.ID)
	require.NoError(t, err)
	require.Len(t, participants, 3)
	assert.Equal(t, 1, participants[0].Position)
	assert.Equal(t, 2, participants[1].Position)
	assert.Equal(t, 3, participants[2].Position)
}

func TestRepositoryUpdateParticipant(t *testing.T) {
	db := setupGroupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedGroupOrder(t, repo)
	participant := seedParticipant(t, repo, seeded.ID, 1)

	require.NoError(t, repo.UpdateParticipant(ctx, participant.ID, map[string]any{
		"selection_status":    "ready",
		"budget_contribution": 500,
	}))

	participants, err := repo.ListParticipants(ctx, seeded.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, enums.SelectionStatusReady, participants[0].SelectionStatus)
	assert.Equal(t, 500, participants[0].BudgetContribution)
}

func TestRepositoryCreateBudgetContribution(t *testing.T) {
	db := setupGroupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedGroupOrder(t, repo)
	require.NoError(t, repo.CreateBudgetContribution(ctx, &models.BudgetContribution{
		ID:           uuid.New(),
		GroupOrderID: seeded.ID,
		UserID:       uuid.New(),
		Amount:       500,
	}))

	var count int64
	require.NoError(t, db.Table("group_order_budget_contributions").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
