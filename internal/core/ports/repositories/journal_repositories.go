package repositories

import (
	"context"

	"github.com/SscSPs/firm_books/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a specific journal entry with its postings.
	FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)

	// ListJournals retrieves a page of entries, newest first, using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ListEntries returns every entry dated within the period, oldest first.
	ListEntries(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data. Entries are append-only.
type JournalWriter interface {
	// SaveJournal persists one entry and its postings atomically.
	SaveJournal(ctx context.Context, entry domain.JournalEntry) error

	// SaveJournals persists several entries in one unit of work; either all or none are stored.
	SaveJournals(ctx context.Context, entries []domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
