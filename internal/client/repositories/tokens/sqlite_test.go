package tokens

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokens?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM session`)
	require.NoError(t, err)
	return db
}

func TestGetWhenEmpty(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	token, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestSaveAndGet(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1"))
	token, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
}

func TestSaveOverwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1"))
	require.NoError(t, repo.Save(ctx, "tok-2"))

	token, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1"))
	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx)) // nothing left to delete

	token, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}
