package connections

import (
	"context"
	"fmt"

	pkgdb "github.com/cribnosh/nosh-backend/pkg/db"
	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/cribnosh/nosh-backend/pkg/enums"
	pkgerrors "github.com/cribnosh/nosh-backend/pkg/errors"
	"github.com/cribnosh/nosh-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type userLookup interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error)
}

type initialsFunc func(name string) string

// Service maintains the derived social graph.
type Service interface {
	ConnectPairwise(ctx context.Context, newUserID uuid.UUID, existingUserIDs []uuid.UUID) error
	ListConnections(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ConnectionList, error)
}

type service struct {
	repo     Repository
	tx       txRunner
	users    userLookup
	initials initialsFunc
}

// NewService builds a connections service with the required dependencies.
func NewService(repo Repository, tx txRunner, users userLookup, initials initialsFunc) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("connections repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if users == nil {
		return nil, fmt.Errorf("user lookup required")
	}
	if initials == nil {
		return nil, fmt.Errorf("initials func required")
	}
	return &service{repo: repo, tx: tx, users: users, initials: initials}, nil
}

// ConnectPairwise ensures both directed edges exist and are active between the
// new participant and every existing participant. Idempotent: edges that
// already exist are reactivated rather than duplicated.
func (s *service) ConnectPairwise(ctx context.Context, newUserID uuid.UUID, existingUserIDs []uuid.UUID) error {
	if newUserID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	for _, other := range existingUserIDs {
		if other == uuid.Nil || other == newUserID {
			continue
		}
		other := other
		err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			repo := s.repo.WithTx(tx)
			if err := s.ensureEdge(ctx, repo, newUserID, other); err != nil {
				return err
			}
			return s.ensureEdge(ctx, repo, other, newUserID)
		})
		if err != nil {
			return fmt.Errorf("connecting %s and %s: %w", newUserID, other, err)
		}
	}
	return nil
}

func (s *service) ensureEdge(ctx context.Context, repo Repository, from, to uuid.UUID) error {
	edge, err := repo.FindEdge(ctx, from, to)
	if err != nil {
		return err
	}
	if edge == nil {
		createErr := repo.CreateEdge(ctx, &models.UserConnection{
			ID:              uuid.New(),
			UserID:          from,
			ConnectedUserID: to,
			ConnectionType:  enums.ConnectionTypeFriend,
			Status:          enums.ConnectionStatusActive,
		})
		// A concurrent join may have inserted the same edge first.
		if createErr != nil && !pkgdb.IsUniqueViolation(createErr, "uq_user_connection") {
			return createErr
		}
		return nil
	}
	if edge.Status == enums.ConnectionStatusActive {
		return nil
	}
	return repo.UpdateEdge(ctx, edge.ID, map[string]any{
		"status": enums.ConnectionStatusActive.String(),
	})
}

// ListConnections returns the caller's active connections with display data.
func (s *service) ListConnections(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ConnectionList, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	edges, err := s.repo.ListActiveByUser(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing connections")
	}

	ids := make([]uuid.UUID, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ConnectedUserID)
	}
	lookup, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading connection profiles")
	}

	out := &ConnectionList{Connections: make([]ConnectionSummary, 0, len(edges))}
	for _, e := range edges {
		name := ""
		if u, ok := lookup[e.ConnectedUserID]; ok {
			name = u.Name
		}
		out.Connections = append(out.Connections, ConnectionSummary{
			UserID:      e.ConnectedUserID,
			Name:        name,
			Initials:    s.initials(name),
			ConnectedAt: e.CreatedAt,
		})
	}
	out.Total = len(out.Connections)
	return out, nil
}
