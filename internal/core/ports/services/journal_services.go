package services

import (
	"context"
	"io"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a specific journal by its ID.
	GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)

	// ListJournals retrieves a page of journals, newest first.
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournal validates and persists a new balanced journal entry.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.JournalEntry, error)

	// ImportJournals loads a legacy JSON export. Either every entry is stored or none is.
	ImportJournals(ctx context.Context, r io.Reader, creatorUserID string) (*dto.ImportJournalsResponse, error)
}

// JournalClassifierSvc turns free-text narrations into suggested postings.
type JournalClassifierSvc interface {
	// ClassifyNarration suggests postings for a narration. It never stores anything.
	ClassifyNarration(ctx context.Context, narration string) *dto.ClassifyResponse
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalClassifierSvc
}
