package connections

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/cribnosh/nosh-backend/pkg/enums"
	"github.com/cribnosh/nosh-backend/pkg/pagination"
	"github.com/cribnosh/nosh-backend/internal/users"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type edgeKey struct {
	from uuid.UUID
	to   uuid.UUID
}

type stubConnRepo struct {
	edges   map[edgeKey]*models.UserConnection
	updates []uuid.UUID
}

func newStubConnRepo() *stubConnRepo {
	return &stubConnRepo{edges: map[edgeKey]*models.UserConnection{}}
}

func (r *stubConnRepo) WithTx(tx *gorm.DB) Repository { return r }

func (r *stubConnRepo) FindEdge(ctx context.Context, userID, connectedUserID uuid.UUID) (*models.UserConnection, error) {
	if e, ok := r.edges[edgeKey{userID, connectedUserID}]; ok {
		return e, nil
	}
	return nil, nil
}

func (r *stubConnRepo) CreateEdge(ctx context.Context, edge *models.UserConnection) error {
	key := edgeKey{edge.UserID, edge.ConnectedUserID}
	if _, ok := r.edges[key]; ok {
		return fmt.Errorf("duplicate key value violates unique constraint \"uq_user_connection\"")
	}
	r.edges[key] = edge
	return nil
}

func (r *stubConnRepo) UpdateEdge(ctx context.Context, edgeID uuid.UUID, updates map[string]any) error {
	for _, e := range r.edges {
		if e.ID == edgeID {
			if status, ok := updates["status"].(string); ok {
				e.Status = enums.ConnectionStatus(status)
			}
			r.updates = append(r.updates, edgeID)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubConnRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserConnection, error) {
	var out []models.UserConnection
	for _, e := range r.edges {
		if e.UserID == userID && e.Status == enums.ConnectionStatusActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

type stubUserLookup struct {
	users map[uuid.UUID]models.User
}

func (s stubUserLookup) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	out := map[uuid.UUID]models.User{}
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func newTestService(t *testing.T, repo Repository, lookup userLookup) Service {
	t.Helper()
	svc, err := NewService(repo, stubTxRunner{}, lookup, users.Initials)
	require.NoError(t, err)
	return svc
}

func TestConnectPairwiseCreatesBothDirections(t *testing.T) {
	repo := newStubConnRepo()
	svc := newTestService(t, repo, stubUserLookup{})

	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.ConnectPairwise(context.Background(), bob, []uuid.UUID{alice}))

	forward, err := repo.FindEdge(context.Background(), bob, alice)
	require.NoError(t, err)
	require.NotNil(t, forward)
	assert.Equal(t, enums.ConnectionStatusActive, forward.Status)
	assert.Equal(t, enums.ConnectionTypeFriend, forward.ConnectionType)

	reverse, err := repo.FindEdge(context.Background(), alice, bob)
	require.NoError(t, err)
	require.NotNil(t, reverse)
	assert.Equal(t, enums.ConnectionStatusActive, reverse.Status)
}

func TestConnectPairwiseIsIdempotent(t *testing.T) {
	repo := newStubConnRepo()
	svc := newTestService(t, repo, stubUserLookup{})

	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.ConnectPairwise(context.Background(), bob, []uuid.UUID{alice}))
	require.NoError(t, svc.ConnectPairwise(context.Background(), bob, []uuid.UUID{alice}))

	assert.Len(t, repo.edges, 2)
	assert.Empty(t, repo.updates)
}

func TestConnectPairwiseReactivatesRemovedEdge(t *testing.T) {
	repo := newStubConnRepo()
	svc := newTestService(t, repo, stubUserLookup{})

	alice := uuid.New()
	bob := uuid.New()
	existing := &models.UserConnection{
		ID:              uuid.New(),
		UserID:          bob,
		ConnectedUserID: alice,
		ConnectionType:  enums.ConnectionTypeFriend,
		Status:          enums.ConnectionStatusRemoved,
	}
	repo.edges[edgeKey{bob, alice}] = existing

	require.NoError(t, svc.ConnectPairwise(context.Background(), bob, []uuid.UUID{alice}))

	assert.Equal(t, enums.ConnectionStatusActive, existing.Status)
	reverse, err := repo.FindEdge(context.Background(), alice, bob)
	require.NoError(t, err)
	require.NotNil(t, reverse)
}

func TestConnectPairwiseSkipsSelfAndNil(t *testing.T) {
	repo := newStubConnRepo()
	svc := newTestService(t, repo, stubUserLookup{})

	bob := uuid.New()
	require.NoError(t, svc.ConnectPairwise(context.Background(), bob, []uuid.UUID{bob, uuid.Nil}))
	assert.Empty(t, repo.edges)
}

func TestConnectPairwiseMultipleExisting(t *testing.T) {
	repo := newStubConnRepo()
	svc := newTestService(t, repo, stubUserLookup{})

	joiner := uuid.New()
	existing := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	require.NoError(t, svc.ConnectPairwise(context.Background(), joiner, existing))
	assert.Len(t, repo.edges, 6)
}

func TestListConnectionsReturnsDisplayData(t *testing.T) {
	repo := newStubConnRepo()
	alice := uuid.New()
	bob := uuid.New()
	repo.edges[edgeKey{bob, alice}] = &models.UserConnection{
		ID:              uuid.New(),
		UserID:          bob,
		ConnectedUserID: alice,
		ConnectionType:  enums.ConnectionTypeFriend,
		Status:          enums.ConnectionStatusActive,
		CreatedAt:       time.Now(),
	}
	lookup := stubUserLookup{users: map[uuid.UUID]models.User{
		alice: {ID: alice, Name: "Alice Wong"},
	}}
	svc := newTestService(t, repo, lookup)

	list, err := svc.ListConnections(context.Background(), bob, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, list.Connections, 1)
	assert.Equal(t, alice, list.Connections[0].UserID)
	assert.Equal(t, "Alice Wong", list.Connections[0].Name)
	assert.Equal(t, "AW", list.Connections[0].Initials)
	assert.Equal(t, 1, list.Total)
}

func TestListConnectionsRequiresIdentity(t *testing.T) {
	svc := newTestService(t, newStubConnRepo(), stubUserLookup{})

	_, err := svc.ListConnections(context.Background(), uuid.Nil, pagination.Params{})
	require.Error(t, err)
}
