package connections

import (
	"context"

	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the social graph.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindEdge(ctx context.Context, userID, connectedUserID uuid.UUID) (*models.UserConnection, error)
	CreateEdge(ctx context.Context, edge *models.UserConnection) error
	UpdateEdge(ctx context.Context, edgeID uuid.UUID, updates map[string]any) error
	ListActiveByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserConnection, error)
}
