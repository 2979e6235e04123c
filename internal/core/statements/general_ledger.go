package statements

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/ledger"
)

// GeneralLedger gives one consolidated row per account. The balance is shown as an
// absolute amount with side Dr when debits exceed credits, otherwise Cr.
func GeneralLedger(l *ledger.Ledger) []domain.GeneralLedgerRow {
	accounts := l.Accounts()
	rows := make([]domain.GeneralLedgerRow, 0, len(accounts))
	for _, acc := range accounts {
		side := domain.Credit
		if acc.TotalDebit.GreaterThan(acc.TotalCredit) {
			side = domain.Debit
		}
		rows = append(rows, domain.GeneralLedgerRow{
			AccountName: acc.Name,
			TotalDebit:  acc.TotalDebit,
			TotalCredit: acc.TotalCredit,
			Balance:     acc.Balance().Abs(),
			Side:        side,
		})
	}
	return rows
}
