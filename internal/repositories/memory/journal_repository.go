package memory

import (
	"context"
	"errors"
	"sort"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/utils/pagination"
)

// JournalRepository holds entries in insertion order.
type JournalRepository struct {
	store
	entries []domain.JournalEntry
	byID    map[string]int
}

// NewJournalRepository returns an empty repository.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{byID: make(map[string]int)}
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

// SaveJournal stores one entry.
func (r *JournalRepository) SaveJournal(ctx context.Context, entry domain.JournalEntry) error {
	return r.SaveJournals(ctx, []domain.JournalEntry{entry})
}

// SaveJournals stores every entry or, when any ID is already taken, none of them.
func (r *JournalRepository) SaveJournals(_ context.Context, entries []domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if _, exists := r.byID[e.ID]; exists || seen[e.ID] {
			return apperrors.NewAppError(409, "journal "+e.ID+" already exists", apperrors.ErrDuplicate)
		}
		seen[e.ID] = true
	}
	for _, e := range entries {
		r.byID[e.ID] = len(r.entries)
		r.entries = append(r.entries, cloneEntry(e))
	}
	return nil
}

// FindJournalByID returns a copy of the stored entry.
func (r *JournalRepository) FindJournalByID(_ context.Context, journalID string) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[journalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	entry := cloneEntry(r.entries[idx])
	return &entry, nil
}

// ListJournals returns a page of entries, newest first by (Date, CreatedAt, ID).
func (r *JournalRepository) ListJournals(_ context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		cursor = &c
	}

	r.mu.RLock()
	sorted := r.snapshot()
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return newerFirst(sorted[i], sorted[j])
	})

	page := make([]domain.JournalEntry, 0, limit)
	var nextTokenVal *string
	for _, e := range sorted {
		if cursor != nil && !cursor.After(e.Date, e.CreatedAt, e.ID) {
			continue
		}
		if len(page) == limit {
			last := page[limit-1]
			token := pagination.EncodeToken(last.Date, last.CreatedAt, last.ID)
			nextTokenVal = &token
			break
		}
		page = append(page, e)
	}
	return page, nextTokenVal, nil
}

// ListEntries returns every entry dated within the period, oldest first.
func (r *JournalRepository) ListEntries(_ context.Context, period domain.Period) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	all := r.snapshot()
	r.mu.RUnlock()

	out := make([]domain.JournalEntry, 0, len(all))
	for _, e := range all {
		if period.Contains(e.Date) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return newerFirst(out[j], out[i])
	})
	return out, nil
}

// snapshot copies every entry; the caller holds the read lock.
func (r *JournalRepository) snapshot() []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(r.entries))
	for i, e := range r.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func newerFirst(a, b domain.JournalEntry) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func cloneEntry(e domain.JournalEntry) domain.JournalEntry {
	e.Postings = append([]domain.Posting(nil), e.Postings...)
	return e
}
