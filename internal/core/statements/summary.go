package statements

import (
	"strings"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// Summary rolls the ledger up into the dashboard figures. Invoice and inventory
// figures are filled in by the caller.
func Summary(l *ledger.Ledger, entryCount int) domain.Summary {
	pl := ProfitAndLoss(l)
	s := domain.Summary{
		TotalSales:     decimal.Zero,
		TotalPurchases: decimal.Zero,
		TotalExpenses:  pl.TotalExpenses,
		NetProfit:      pl.NetProfit,
		CashAndBank:    decimal.Zero,
		GSTCollected:   decimal.Zero,
		InventoryValue: decimal.Zero,
		EntryCount:     entryCount,
	}
	for _, acc := range l.Accounts() {
		lower := strings.ToLower(acc.Name)
		if strings.Contains(lower, "sales") {
			s.TotalSales = s.TotalSales.Add(acc.TotalCredit)
		}
		if strings.Contains(lower, "purchase") {
			s.TotalPurchases = s.TotalPurchases.Add(acc.TotalDebit)
		}
		if domain.IsCashOrBank(acc.Name) {
			s.CashAndBank = s.CashAndBank.Add(acc.Balance())
		}
	}
	return s
}
