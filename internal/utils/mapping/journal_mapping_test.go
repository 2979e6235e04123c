package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalEntryRoundTrip(t *testing.T) {
	entry := domain.JournalEntry{
		ID:        "j1",
		Date:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Narration: "Sold goods for 500",
		Postings: []domain.Posting{
			domain.DebitPosting("Cash/Bank A/c", decimal.NewFromInt(500)),
			domain.CreditPosting("Sales A/c", decimal.NewFromInt(500)),
		},
		CreatedAt: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
		CreatedBy: "system",
	}

	header, postings := ToModelJournalEntry(entry)
	require.Len(t, postings, 2)
	assert.Equal(t, 1, postings[0].LineNo)
	assert.Equal(t, 2, postings[1].LineNo)
	assert.Equal(t, "j1", postings[1].JournalID)

	assert.Equal(t, entry, ToDomainJournalEntry(header, postings))
}

func TestToDomainJournalEntries_GroupsPostingsByEntry(t *testing.T) {
	e1, p1 := ToModelJournalEntry(domain.JournalEntry{ID: "a", Postings: []domain.Posting{domain.DebitPosting("Cash A/c", decimal.NewFromInt(1))}})
	e2, p2 := ToModelJournalEntry(domain.JournalEntry{ID: "b", Postings: []domain.Posting{domain.CreditPosting("Sales A/c", decimal.NewFromInt(2))}})

	entries := ToDomainJournalEntries([]models.JournalEntry{e2, e1}, GroupPostings(append(p1, p2...)))

	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "Sales A/c", entries[0].Postings[0].Account)
	assert.Equal(t, "Cash A/c", entries[1].Postings[0].Account)
}
