package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account with a footer of column sums.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// IsBalanced reports whether the footer columns agree at currency precision.
func (tb TrialBalance) IsBalanced() bool {
	return tb.TotalDebit.Round(2).Equal(tb.TotalCredit.Round(2))
}

// AccountAmount represents an account with the amount it contributes to a statement line
type AccountAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PAndLReport represents a profit and loss report in two-sided (T) form.
type PAndLReport struct {
	Revenue          []AccountAmount `json:"revenue"`          // credit totals of revenue accounts
	Expenses         []AccountAmount `json:"expenses"`         // debit totals of expense accounts
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`     // before the balancing line
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`    // before the balancing line
	NetProfit        decimal.Decimal `json:"netProfit"`        // negative means a loss
	RevenueSideTotal decimal.Decimal `json:"revenueSideTotal"` // includes Net Loss when present
	ExpenseSideTotal decimal.Decimal `json:"expenseSideTotal"` // includes Net Profit when present
}

// IsProfit reports whether the period closed with a profit.
func (r PAndLReport) IsProfit() bool {
	return r.NetProfit.GreaterThan(decimal.Zero)
}

// IsLoss reports whether the period closed with a loss.
func (r PAndLReport) IsLoss() bool {
	return r.NetProfit.LessThan(decimal.Zero)
}

// BalanceSheetReport represents a balance sheet report
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	Capital          decimal.Decimal `json:"capital"`       // TotalAssets - TotalLiabilities
	LiabilitySide    decimal.Decimal `json:"liabilitySide"` // TotalLiabilities + Capital
}

// GeneralLedgerRow is the consolidated position of one account.
type GeneralLedgerRow struct {
	AccountName string          `json:"accountName"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"` // absolute value; Side carries the sign
	Side        PostingSide     `json:"side"`
}

// CashBookRow is one cash or bank movement taken from a journal entry.
type CashBookRow struct {
	EntryID   string   `json:"entryID"`
	Date      string   `json:"date"`
	Narration string   `json:"narration"`
	Receipt   *Posting `json:"receipt,omitempty"` // first cash/bank debit in the entry
	Payment   *Posting `json:"payment,omitempty"` // first cash/bank credit in the entry
}

// JournalBookEntry is one entry replayed in the journal book.
type JournalBookEntry struct {
	Ref   string       `json:"ref"`
	Entry JournalEntry `json:"entry"`
}

// Summary is the dashboard roll-up of the books.
type Summary struct {
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	CashAndBank    decimal.Decimal `json:"cashAndBank"`
	GSTCollected   decimal.Decimal `json:"gstCollected"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
	EntryCount     int             `json:"entryCount"`
	InvoiceCount   int             `json:"invoiceCount"`
}
