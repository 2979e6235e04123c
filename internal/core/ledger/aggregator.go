// Package ledger folds journal entries into per-account debit and credit totals.
package ledger

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/shopspring/decimal"
)

// Ledger is the aggregated view of a set of journal entries, keyed by exact account name.
// Accounts are listed in the order they were first seen; totals do not depend on that order.
type Ledger struct {
	accounts *linkedhashmap.Map // string -> *domain.LedgerAccount
}

// Aggregate builds a Ledger from entries. The input is not modified.
func Aggregate(entries []domain.JournalEntry) *Ledger {
	l := &Ledger{accounts: linkedhashmap.New()}
	for _, entry := range entries {
		for _, p := range entry.Postings {
			l.post(p)
		}
	}
	return l
}

func (l *Ledger) post(p domain.Posting) {
	var acc *domain.LedgerAccount
	if v, found := l.accounts.Get(p.Account); found {
		acc = v.(*domain.LedgerAccount)
	} else {
		acc = &domain.LedgerAccount{Name: p.Account, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
		l.accounts.Put(p.Account, acc)
	}
	acc.TotalDebit = acc.TotalDebit.Add(p.Debit)
	acc.TotalCredit = acc.TotalCredit.Add(p.Credit)
}

// Len returns the number of distinct accounts.
func (l *Ledger) Len() int {
	return l.accounts.Size()
}

// Get returns the account named exactly name.
func (l *Ledger) Get(name string) (domain.LedgerAccount, bool) {
	v, found := l.accounts.Get(name)
	if !found {
		return domain.LedgerAccount{}, false
	}
	return *v.(*domain.LedgerAccount), true
}

// Accounts returns a copy of every account in first-seen order.
func (l *Ledger) Accounts() []domain.LedgerAccount {
	out := make([]domain.LedgerAccount, 0, l.accounts.Size())
	it := l.accounts.Iterator()
	for it.Next() {
		out = append(out, *it.Value().(*domain.LedgerAccount))
	}
	return out
}

// Totals returns the grand debit and credit totals across all accounts.
func (l *Ledger) Totals() (decimal.Decimal, decimal.Decimal) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, acc := range l.Accounts() {
		debits = debits.Add(acc.TotalDebit)
		credits = credits.Add(acc.TotalCredit)
	}
	return debits, credits
}

// Filter returns the accounts matching keep, in first-seen order.
func (l *Ledger) Filter(keep func(domain.LedgerAccount) bool) []domain.LedgerAccount {
	var out []domain.LedgerAccount
	for _, acc := range l.Accounts() {
		if keep(acc) {
			out = append(out, acc)
		}
	}
	return out
}

// ByClass returns the accounts whose name falls in class.
func (l *Ledger) ByClass(class domain.AccountClass) []domain.LedgerAccount {
	return l.Filter(func(acc domain.LedgerAccount) bool {
		return domain.HasClass(acc.Name, class)
	})
}
