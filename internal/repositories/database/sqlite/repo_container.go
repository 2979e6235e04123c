package sqlite

import (
	"context"
	"database/sql"

	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
)

// NewRepositoryProvider creates the schema if needed and wires every SQLite repository onto db.
func NewRepositoryProvider(ctx context.Context, db *sql.DB) (portsrepo.RepositoryProvider, error) {
	if err := InitializeSchema(ctx, db); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	base := BaseRepository{DB: db}
	return portsrepo.RepositoryProvider{
		JournalRepo:   &JournalRepository{BaseRepository: base},
		InvoiceRepo:   &InvoiceRepository{BaseRepository: base},
		FirmRepo:      &FirmRepository{BaseRepository: base},
		InventoryRepo: &InventoryRepository{BaseRepository: base},
	}, nil
}
