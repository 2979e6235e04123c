package statements

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// ProfitAndLoss splits the ledger into revenue (credit totals) and expense (debit totals).
// NetProfit = total revenue - total expenses. A profit balances the expense side and a
// loss balances the revenue side, so both side totals always agree.
// Accounts in neither class are left out; accounts in both appear on both sides.
func ProfitAndLoss(l *ledger.Ledger) domain.PAndLReport {
	report := domain.PAndLReport{
		Revenue:       []domain.AccountAmount{},
		Expenses:      []domain.AccountAmount{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, acc := range l.ByClass(domain.Revenue) {
		report.Revenue = append(report.Revenue, domain.AccountAmount{Name: acc.Name, Amount: acc.TotalCredit})
		report.TotalRevenue = report.TotalRevenue.Add(acc.TotalCredit)
	}
	for _, acc := range l.ByClass(domain.Expense) {
		report.Expenses = append(report.Expenses, domain.AccountAmount{Name: acc.Name, Amount: acc.TotalDebit})
		report.TotalExpenses = report.TotalExpenses.Add(acc.TotalDebit)
	}

	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)
	report.RevenueSideTotal = report.TotalRevenue
	report.ExpenseSideTotal = report.TotalExpenses
	switch {
	case report.IsProfit():
		report.ExpenseSideTotal = report.ExpenseSideTotal.Add(report.NetProfit)
	case report.IsLoss():
		report.RevenueSideTotal = report.RevenueSideTotal.Add(report.NetProfit.Abs())
	}
	return report
}
