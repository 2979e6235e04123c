package statements

import (
	"sort"

	"github.com/SscSPs/firm_books/internal/core/domain"
)

const bookDateLayout = "2006-01-02"

// Chronological returns a copy of entries ordered by date, then creation time.
// Entries with equal keys keep their relative order.
func Chronological(entries []domain.JournalEntry) []domain.JournalEntry {
	sorted := append([]domain.JournalEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// CashBook picks the entries that touch a cash or bank account, re-sorted by date
// (then CreatedAt) rather than in the order given. For each, only the first
// cash/bank debit (Receipt) and the first cash/bank credit (Payment) are shown.
func CashBook(entries []domain.JournalEntry) []domain.CashBookRow {
	rows := []domain.CashBookRow{}
	for _, entry := range Chronological(entries) {
		var receipt, payment *domain.Posting
		touched := false
		for i := range entry.Postings {
			p := entry.Postings[i]
			if !domain.IsCashOrBank(p.Account) {
				continue
			}
			touched = true
			if receipt == nil && p.IsDebit() {
				receipt = &p
			}
			if payment == nil && p.IsCredit() {
				payment = &p
			}
		}
		if !touched {
			continue
		}
		rows = append(rows, domain.CashBookRow{
			EntryID:   entry.ID,
			Date:      entry.Date.Format(bookDateLayout),
			Narration: entry.Narration,
			Receipt:   receipt,
			Payment:   payment,
		})
	}
	return rows
}

// JournalBook replays every entry with its postings in chronological order.
func JournalBook(entries []domain.JournalEntry) []domain.JournalBookEntry {
	sorted := Chronological(entries)
	book := make([]domain.JournalBookEntry, 0, len(sorted))
	for _, entry := range sorted {
		book = append(book, domain.JournalBookEntry{Ref: entry.ShortRef(), Entry: entry})
	}
	return book
}
