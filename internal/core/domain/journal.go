package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one recorded transaction. Entries are append-only.
type JournalEntry struct {
	ID        string    `json:"id"`        // time-ordered UUID
	Date      time.Time `json:"date"`      // transaction date, independent of CreatedAt
	Narration string    `json:"narration"` // free text, may be empty
	Postings  []Posting `json:"postings"`  // at least one line
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// TotalDebit sums the debit side of every posting.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Postings {
		total = total.Add(p.Debit)
	}
	return total
}

// TotalCredit sums the credit side of every posting.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Postings {
		total = total.Add(p.Credit)
	}
	return total
}

// ShortRef is the last six characters of the ID, used in printed books.
func (e JournalEntry) ShortRef() string {
	if len(e.ID) <= 6 {
		return e.ID
	}
	return e.ID[len(e.ID)-6:]
}

// Period restricts a report to entries dated within [From, To]. Nil bounds are open.
type Period struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether d falls inside the period, comparing calendar dates.
func (p Period) Contains(d time.Time) bool {
	day := truncateDay(d)
	if p.From != nil && day.Before(truncateDay(*p.From)) {
		return false
	}
	if p.To != nil && day.After(truncateDay(*p.To)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
