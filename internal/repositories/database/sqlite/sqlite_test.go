package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/repositories/database/sqlite"
	"github.com/SscSPs/firm_books/internal/repositories/repotest"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "books.db")+"?_foreign_keys=on&_journal_mode=WAL")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteRepositories(t *testing.T) {
	s := &repotest.RepositorySuite{}
	s.NewProvider = func() portsrepo.RepositoryProvider {
		repos, err := sqlite.NewRepositoryProvider(context.Background(), openTestDB(t))
		require.NoError(t, err)
		return repos
	}
	suite.Run(t, s)
}

func TestInitializeSchema_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, sqlite.InitializeSchema(ctx, db))
	require.NoError(t, sqlite.InitializeSchema(ctx, db))
}
