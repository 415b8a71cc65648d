package grouporders

import (
	"context"

	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for group orders and their
// participants.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, groupOrder *models.GroupOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.GroupOrder, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.GroupOrder, error)
	FindByShareToken(ctx context.Context, token string) (*models.GroupOrder, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	CreateParticipant(ctx context.Context, participant *models.GroupOrderParticipant) error
	UpdateParticipant(ctx context.Context, id uuid.UUID, updates map[string]any) error
	ListParticipants(ctx context.Context, groupOrderID uuid.UUID) ([]models.GroupOrderParticipant, error)
	CreateBudgetContribution(ctx context.Context, contribution *models.BudgetContribution) error
}
