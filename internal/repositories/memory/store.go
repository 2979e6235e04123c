// Package memory keeps the books in process memory. It backs STORAGE_DRIVER=memory
// and the offline CLI, and loses everything when the process exits.
package memory

import (
	"sync"

	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
)

// NewRepositoryProvider returns empty in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo:   NewJournalRepository(),
		InvoiceRepo:   NewInvoiceRepository(),
		FirmRepo:      NewFirmRepository(),
		InventoryRepo: NewInventoryRepository(),
	}
}

type store struct {
	mu sync.RWMutex
}
