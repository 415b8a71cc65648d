package connections

import (
	"context"
	"errors"

	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a connections repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindEdge(ctx context.Context, userID, connectedUserID uuid.UUID) (*models.UserConnection, error) {
	var edge models.UserConnection
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND connected_user_id = ?", userID, connectedUserID).
		First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &edge, nil
}

func (r *repository) CreateEdge(ctx context.Context, edge *models.UserConnection) error {
	return r.db.WithContext(ctx).Create(edge).Error
}

func (r *repository) UpdateEdge(ctx context.Context, edgeID uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.UserConnection{}).
		Where("id = ?", edgeID).
		Updates(updates).Error
}

func (r *repository) ListActiveByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserConnection, error) {
	var edges []models.UserConnection
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "active").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}
