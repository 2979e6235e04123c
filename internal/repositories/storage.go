// Package repositories picks the storage driver named in the configuration.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/platform/config"
	"github.com/SscSPs/firm_books/internal/repositories/database/pgsql"
	"github.com/SscSPs/firm_books/internal/repositories/database/sqlite"
	"github.com/SscSPs/firm_books/internal/repositories/memory"
	"github.com/SscSPs/firm_books/pkg/database"
)

// NewRepositoryProvider opens the configured storage and returns its repositories along
// with a cleanup func that releases the underlying connections.
func NewRepositoryProvider(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		slog.Warn("Using in-memory storage; data is lost on exit")
		return memory.NewRepositoryProvider(), func() {}, nil

	case config.StoragePostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsURL); err != nil {
			database.ClosePgxPool(pool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		repos, err := sqlite.NewRepositoryProvider(ctx, db)
		if err != nil {
			db.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return repos, func() { db.Close() }, nil
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
