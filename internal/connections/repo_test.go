package connections

import (
	"context"
	"testing"

	"github.com/cribnosh/nosh-backend/pkg/db/models"
	"github.com/cribnosh/nosh-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupConnectionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS user_connections (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  connected_user_id TEXT NOT NULL,
  connection_type TEXT NOT NULL DEFAULT 'friend',
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME,
  CONSTRAINT uq_user_connection UNIQUE (user_id, connected_user_id)
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func newEdge(from, to uuid.UUID, status enums.ConnectionStatus) *models.UserConnection {
	return &models.UserConnection{
		ID:              uuid.New(),
		UserID:          from,
		ConnectedUserID: to,
		ConnectionType:  enums.ConnectionTypeFriend,
		Status:          status,
	}
}

func TestRepositoryCreateAndFindEdge(t *testing.T) {
	db := setupConnectionsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	from := uuid.New()
	to := uuid.New()
	require.NoError(t, repo.CreateEdge(ctx, newEdge(from, to, enums.ConnectionStatusActive)))

	found, err := repo.FindEdge(ctx, from, to)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, to, found.ConnectedUserID)

	missing, err := repo.FindEdge(ctx, to, from)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepositoryDuplicateEdgeRejected(t *testing.T) {
	db := setupConnectionsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	from := uuid.New()
	to := uuid.New()
	require.NoError(t, repo.CreateEdge(ctx, newEdge(from, to, enums.ConnectionStatusActive)))

	err := repo.CreateEdge(ctx, newEdge(from, to, enums.ConnectionStatusActive))
	require.Error(t, err)
}

func TestRepositoryUpdateEdgeStatus(t *testing.T) {
	db := setupConnectionsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	edge := newEdge(uuid.New(), uuid.New(), enums.ConnectionStatusRemoved)
	require.NoError(t, repo.CreateEdge(ctx, edge))

	require.NoError(t, repo.UpdateEdge(ctx, edge.ID, map[string]any{"status": "active"}))

	found, err := repo.FindEdge(ctx, edge.UserID, edge.ConnectedUserID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, enums.ConnectionStatusActive, found.Status)
}

func TestRepositoryListActiveByUser(t *testing.T) {
	db := setupConnectionsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := uuid.New()
	require.NoError(t, repo.CreateEdge(ctx, newEdge(user, uuid.New(), enums.ConnectionStatusActive)))
	require.NoError(t, repo.CreateEdge(ctx, newEdge(user, uuid.New(), enums.ConnectionStatusActive)))
	require.NoError(t, repo.CreateEdge(ctx, newEdge(user, uuid.New(), enums.ConnectionStatusRemoved)))
	require.NoError(t, repo.CreateEdge(ctx, newEdge(uuid.New(), user, enums.ConnectionStatusActive)))

	edges, err := repo.ListActiveByUser(ctx, user, 10)
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	limited, err := repo.ListActiveByUser(ctx, user, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
