package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/firm_books/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "books.db")

	db, err := database.NewSQLiteDB(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestNewSQLiteDB_Memory(t *testing.T) {
	db, err := database.NewSQLiteDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO t (id) VALUES (1)`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestNewSQLiteDB_EmptyPath(t *testing.T) {
	_, err := database.NewSQLiteDB(context.Background(), "")
	assert.Error(t, err)
}

func TestNewPgxPool_EmptyURL(t *testing.T) {
	_, err := database.NewPgxPool(context.Background(), "", false)
	assert.Error(t, err)
}
