package pgsql

import (
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo:   newPgxJournalRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		FirmRepo:      newPgxFirmRepository(dbPool),
		InventoryRepo: newPgxInventoryRepository(dbPool),
	}
}
