package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/firm_books/internal/platform/config"
	"github.com/SscSPs/firm_books/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "memory", cfg: config.Config{StorageDriver: config.StorageMemory}},
		{name: "sqlite", cfg: config.Config{StorageDriver: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "b.db")}},
		{name: "postgres without url", cfg: config.Config{StorageDriver: config.StoragePostgres}, wantErr: true},
		{name: "unknown", cfg: config.Config{StorageDriver: "mongo"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, cleanup, err := repositories.NewRepositoryProvider(context.Background(), &tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer cleanup()
			assert.NotNil(t, repos.JournalRepo)
			assert.NotNil(t, repos.InvoiceRepo)
			assert.NotNil(t, repos.FirmRepo)
			assert.NotNil(t, repos.InventoryRepo)
		})
	}
}
