package grouporders

import (
	"context"
	"errors"

	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a group orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, groupOrder *models.GroupOrder) error {
	return r.db.WithContext(ctx).Omit("Participants").Create(groupOrder).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.GroupOrder, error) {
	var groupOrder models.GroupOrder
	err := r.db.WithContext(ctx).
		Preload("Participants", participantOrder).
		Where("id = ?", id).
		First(&groupOrder).Error
	if err != nil {
		return nil, err
	}
	return &groupOrder, nil
}

// FindByIDForUpdate locks the group order row for the duration of the
// surrounding transaction. Participants are loaded separately so the lock
// stays on the parent row.
func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.GroupOrder, error) {
	var groupOrder models.GroupOrder
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&groupOrder).Error
	if err != nil {
		return nil, err
	}
	return &groupOrder, nil
}

func (r *repository) FindByShareToken(ctx context.Context, token string) (*models.GroupOrder, error) {
	var groupOrder models.GroupOrder
	err := r.db.WithContext(ctx).
		Preload("Participants", participantOrder).
		Where("share_token = ?", token).
		First(&groupOrder).Error
	if err != nil {
		return nil, err
	}
	return &groupOrder, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.GroupOrder{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) CreateParticipant(ctx context.Context, participant *models.GroupOrderParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *repository) UpdateParticipant(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.GroupOrderParticipant{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) ListParticipants(ctx context.Context, groupOrderID uuid.UUID) ([]models.GroupOrderParticipant, error) {
	var participants []models.GroupOrderParticipant
	err := r.db.WithContext(ctx).
		Where("group_order_id = ?", groupOrderID).
		Order("position ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *repository) CreateBudgetContribution(ctx context.Context, contribution *models.BudgetContribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

func participantOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// IsNotFound reports whether the error is a gorm missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
