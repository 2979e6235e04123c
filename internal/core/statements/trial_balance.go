// Package statements derives financial statements from an aggregated ledger
// and, for the cash and journal books, from the raw entries.
package statements

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// TrialBalance lists every account's totals with a footer of column sums.
// The footer balances whenever every contributing entry was balanced.
func TrialBalance(l *ledger.Ledger) domain.TrialBalance {
	accounts := l.Accounts()
	tb := domain.TrialBalance{
		Rows:        make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, acc := range accounts {
		tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
			AccountName: acc.Name,
			Debit:       acc.TotalDebit,
			Credit:      acc.TotalCredit,
		})
		tb.TotalDebit = tb.TotalDebit.Add(acc.TotalDebit)
		tb.TotalCredit = tb.TotalCredit.Add(acc.TotalCredit)
	}
	return tb
}
