package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the header row of a journal entry. Postings live in their own table.
type JournalEntry struct {
	JournalID string    `db:"journal_id"`
	EntryDate time.Time `db:"entry_date"`
	Narration string    `db:"narration"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}

// Posting is one line of a journal entry. LineNo keeps the order the lines were entered in.
type Posting struct {
	JournalID   string          `db:"journal_id"`
	LineNo      int             `db:"line_no"`
	AccountName string          `db:"account_name"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}
