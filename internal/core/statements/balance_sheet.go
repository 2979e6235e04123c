package statements

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// BalanceSheet lists asset and liability accounts at the absolute value of their balance.
// Capital is the difference and sits on the liability side, so both sides equal TotalAssets.
//
// The sign of each balance is dropped, so an asset account in credit (or a liability in
// debit) still adds to its side.
func BalanceSheet(l *ledger.Ledger) domain.BalanceSheetReport {
	report := domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}

	for _, acc := range l.ByClass(domain.Asset) {
		amount := acc.Balance().Abs()
		report.Assets = append(report.Assets, domain.AccountAmount{Name: acc.Name, Amount: amount})
		report.TotalAssets = report.TotalAssets.Add(amount)
	}
	for _, acc := range l.ByClass(domain.Liability) {
		amount := acc.Balance().Abs()
		report.Liabilities = append(report.Liabilities, domain.AccountAmount{Name: acc.Name, Amount: amount})
		report.TotalLiabilities = report.TotalLiabilities.Add(amount)
	}

	report.Capital = report.TotalAssets.Sub(report.TotalLiabilities)
	report.LiabilitySide = report.TotalLiabilities.Add(report.Capital)
	return report
}
