package sqlconfig

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) (*SessionsTable, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	require.NoError(t, RunMigrations(dbPath))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	table := NewSessionsTable(db)
	table.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return table, dbPath
}

func TestRunMigrations_Idempotent(t *testing.T) {
	_, dbPath := newTestTable(t)

	require.NoError(t, RunMigrations(dbPath))

	version, dirty, err := SchemaVersion(dbPath)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestSessionsTable_FindMissing(t *testing.T) {
	table, _ := newTestTable(t)

	_, err := table.FindByViewID(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsTable_UpsertFindDelete(t *testing.T) {
	table, _ := newTestTable(t)
	ctx := context.Background()

	require.NoError(t, table.Upsert(ctx, "view-1", "sessionid=a"))
	require.NoError(t, table.Upsert(ctx, "view-1", "sessionid=b"))
	require.NoError(t, table.Upsert(ctx, "view-2", "sessionid=c"))

	session, err := table.FindByViewID(ctx, "view-1")
	require.NoError(t, err)
	assert.Equal(t, "view-1", session.ViewID)
	assert.Equal(t, "sessionid=b", session.Token, "upsert replaces the token")
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), session.UpdatedAt)

	require.NoError(t, table.Delete(ctx, "view-1"))
	require.NoError(t, table.Delete(ctx, "view-1"))

	_, err = table.FindByViewID(ctx, "view-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	other, err := table.FindByViewID(ctx, "view-2")
	require.NoError(t, err)
	assert.Equal(t, "sessionid=c", other.Token)
}

func TestSessionsTable_UpsertRefreshesUpdatedAt(t *testing.T) {
	table, _ := newTestTable(t)
	ctx := context.Background()

	require.NoError(t, table.Upsert(ctx, "view-1", "sessionid=a"))
	later := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	table.now = func() time.Time { return later }
	require.NoError(t, table.Upsert(ctx, "view-1", "sessionid=b"))

	session, err := table.FindByViewID(ctx, "view-1")
	require.NoError(t, err)
	assert.Equal(t, "sessionid=b", session.Token)
	assert.Equal(t, later, session.UpdatedAt)
}
