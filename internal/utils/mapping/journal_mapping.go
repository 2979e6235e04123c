package mapping

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/models"
)

// ToModelJournalEntry splits a domain JournalEntry into its header row and posting rows.
func ToModelJournalEntry(d domain.JournalEntry) (models.JournalEntry, []models.Posting) {
	header := models.JournalEntry{
		JournalID: d.ID,
		EntryDate: d.Date,
		Narration: d.Narration,
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
	postings := make([]models.Posting, len(d.Postings))
	for i, p := range d.Postings {
		postings[i] = models.Posting{
			JournalID:   d.ID,
			LineNo:      i + 1,
			AccountName: p.Account,
			Debit:       p.Debit,
			Credit:      p.Credit,
		}
	}
	return header, postings
}

// ToDomainJournalEntry rebuilds a domain JournalEntry. Postings must already be in line order.
func ToDomainJournalEntry(m models.JournalEntry, postings []models.Posting) domain.JournalEntry {
	entry := domain.JournalEntry{
		ID:        m.JournalID,
		Date:      m.EntryDate,
		Narration: m.Narration,
		Postings:  make([]domain.Posting, len(postings)),
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
	for i, p := range postings {
		entry.Postings[i] = domain.Posting{Account: p.AccountName, Debit: p.Debit, Credit: p.Credit}
	}
	return entry
}

// GroupPostings indexes posting rows by journal ID, keeping their order.
func GroupPostings(postings []models.Posting) map[string][]models.Posting {
	grouped := make(map[string][]models.Posting)
	for _, p := range postings {
		grouped[p.JournalID] = append(grouped[p.JournalID], p)
	}
	return grouped
}

// ToDomainJournalEntries rebuilds entries from header rows and their grouped postings.
func ToDomainJournalEntries(headers []models.JournalEntry, postings map[string][]models.Posting) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = ToDomainJournalEntry(h, postings[h.JournalID])
	}
	return entries
}
