package dto

import (
	"time"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/utils"
)

// ReportHeader identifies the firm and period a report was generated for.
type ReportHeader struct {
	Firm        domain.FirmHeader `json:"firm"`
	FromDate    string            `json:"fromDate,omitempty"`
	ToDate      string            `json:"toDate,omitempty"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

// NewReportHeader builds a header for the period.
func NewReportHeader(firm domain.FirmHeader, period domain.Period, generatedAt time.Time) ReportHeader {
	h := ReportHeader{Firm: firm, GeneratedAt: generatedAt}
	if period.From != nil {
		h.FromDate = period.From.Format(DateLayout)
	}
	if period.To != nil {
		h.ToDate = period.To.Format(DateLayout)
	}
	return h
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountName string `json:"accountName"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Header ReportHeader              `json:"header"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit    string `json:"debit"`
		Credit   string `json:"credit"`
		Balanced bool   `json:"balanced"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ProfitAndLossResponse represents the profit and loss report response.
// NetProfit is shown as a balancing line on the expense side, NetLoss on the revenue side.
type ProfitAndLossResponse struct {
	Header   ReportHeader            `json:"header"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue     string `json:"totalRevenue"`
		TotalExpenses    string `json:"totalExpenses"`
		NetProfit        string `json:"netProfit"`
		NetProfitLine    string `json:"netProfitLine,omitempty"`
		NetLossLine      string `json:"netLossLine,omitempty"`
		RevenueSideTotal string `json:"revenueSideTotal"`
		ExpenseSideTotal string `json:"expenseSideTotal"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	Header      ReportHeader            `json:"header"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Summary     struct {
		TotalAssets      string `json:"totalAssets"`
		TotalLiabilities string `json:"totalLiabilities"`
		Capital          string `json:"capital"`
		LiabilitySide    string `json:"liabilitySide"`
	} `json:"summary"`
}

// GeneralLedgerRowResponse is one account of the general ledger.
type GeneralLedgerRowResponse struct {
	AccountName string `json:"accountName"`
	TotalDebit  string `json:"totalDebit"`
	TotalCredit string `json:"totalCredit"`
	Balance     string `json:"balance"` // e.g. "800.00 Dr"
}

// GeneralLedgerResponse represents the general ledger report response
type GeneralLedgerResponse struct {
	Header   ReportHeader               `json:"header"`
	Accounts []GeneralLedgerRowResponse `json:"accounts"`
}

// CashBookRowResponse is one cash or bank movement.
type CashBookRowResponse struct {
	JournalID      string `json:"journalID"`
	Date           string `json:"date"`
	Narration      string `json:"narration"`
	ReceiptAccount string `json:"receiptAccount,omitempty"`
	Receipt        string `json:"receipt,omitempty"`
	PaymentAccount string `json:"paymentAccount,omitempty"`
	Payment        string `json:"payment,omitempty"`
}

// CashBookResponse represents the cash book report response
type CashBookResponse struct {
	Header ReportHeader          `json:"header"`
	Rows   []CashBookRowResponse `json:"rows"`
}

// JournalBookResponse represents the journal book report response
type JournalBookResponse struct {
	Header  ReportHeader      `json:"header"`
	Entries []JournalResponse `json:"entries"`
}

// SummaryResponse represents the dashboard figures
type SummaryResponse struct {
	Header         ReportHeader `json:"header"`
	TotalSales     string       `json:"totalSales"`
	TotalPurchases string       `json:"totalPurchases"`
	TotalExpenses  string       `json:"totalExpenses"`
	NetProfit      string       `json:"netProfit"`
	CashAndBank    string       `json:"cashAndBank"`
	GSTCollected   string       `json:"gstCollected"`
	InventoryValue string       `json:"inventoryValue"`
	EntryCount     int          `json:"entryCount"`
	InvoiceCount   int          `json:"invoiceCount"`
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		out[i] = AccountAmountResponse{Name: a.Name, Amount: utils.FormatAmount(a.Amount)}
	}
	return out
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb domain.TrialBalance, header ReportHeader) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Header: header,
		Rows:   make([]TrialBalanceRowResponse, len(tb.Rows)),
	}
	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountName: row.AccountName,
			Debit:       utils.FormatAmount(row.Debit),
			Credit:      utils.FormatAmount(row.Credit),
		}
	}
	response.Totals.Debit = utils.FormatAmount(tb.TotalDebit)
	response.Totals.Credit = utils.FormatAmount(tb.TotalCredit)
	response.Totals.Balanced = tb.IsBalanced()
	return response
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report domain.PAndLReport, header ReportHeader) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		Header:   header,
		Revenue:  toAccountAmountResponses(report.Revenue),
		Expenses: toAccountAmountResponses(report.Expenses),
	}
	response.Summary.TotalRevenue = utils.FormatAmount(report.TotalRevenue)
	response.Summary.TotalExpenses = utils.FormatAmount(report.TotalExpenses)
	response.Summary.NetProfit = utils.FormatAmount(report.NetProfit)
	if report.IsProfit() {
		response.Summary.NetProfitLine = utils.FormatAmount(report.NetProfit)
	}
	if report.IsLoss() {
		response.Summary.NetLossLine = utils.FormatAmount(report.NetProfit.Abs())
	}
	response.Summary.RevenueSideTotal = utils.FormatAmount(report.RevenueSideTotal)
	response.Summary.ExpenseSideTotal = utils.FormatAmount(report.ExpenseSideTotal)
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(report domain.BalanceSheetReport, header ReportHeader) BalanceSheetResponse {
	response := BalanceSheetResponse{
		Header:      header,
		Assets:      toAccountAmountResponses(report.Assets),
		Liabilities: toAccountAmountResponses(report.Liabilities),
	}
	response.Summary.TotalAssets = utils.FormatAmount(report.TotalAssets)
	response.Summary.TotalLiabilities = utils.FormatAmount(report.TotalLiabilities)
	response.Summary.Capital = utils.FormatAmount(report.Capital)
	response.Summary.LiabilitySide = utils.FormatAmount(report.LiabilitySide)
	return response
}

// ToGeneralLedgerResponse converts general ledger rows to a DTO response
func ToGeneralLedgerResponse(rows []domain.GeneralLedgerRow, header ReportHeader) GeneralLedgerResponse {
	response := GeneralLedgerResponse{
		Header:   header,
		Accounts: make([]GeneralLedgerRowResponse, len(rows)),
	}
	for i, row := range rows {
		response.Accounts[i] = GeneralLedgerRowResponse{
			AccountName: row.AccountName,
			TotalDebit:  utils.FormatAmount(row.TotalDebit),
			TotalCredit: utils.FormatAmount(row.TotalCredit),
			Balance:     utils.FormatBalance(row.Balance, string(row.Side)),
		}
	}
	return response
}

// ToCashBookResponse converts cash book rows to a DTO response
func ToCashBookResponse(rows []domain.CashBookRow, header ReportHeader) CashBookResponse {
	response := CashBookResponse{
		Header: header,
		Rows:   make([]CashBookRowResponse, len(rows)),
	}
	for i, row := range rows {
		r := CashBookRowResponse{
			JournalID: row.EntryID,
			Date:      row.Date,
			Narration: row.Narration,
		}
		if row.Receipt != nil {
			r.ReceiptAccount = row.Receipt.Account
			r.Receipt = utils.FormatAmount(row.Receipt.Debit)
		}
		if row.Payment != nil {
			r.PaymentAccount = row.Payment.Account
			r.Payment = utils.FormatAmount(row.Payment.Credit)
		}
		response.Rows[i] = r
	}
	return response
}

// ToJournalBookResponse converts the journal book to a DTO response
func ToJournalBookResponse(book []domain.JournalBookEntry, header ReportHeader) JournalBookResponse {
	response := JournalBookResponse{
		Header:  header,
		Entries: make([]JournalResponse, len(book)),
	}
	for i := range book {
		response.Entries[i] = ToJournalResponse(&book[i].Entry)
	}
	return response
}

// ToSummaryResponse converts the dashboard summary to a DTO response
func ToSummaryResponse(s domain.Summary, header ReportHeader) SummaryResponse {
	return SummaryResponse{
		Header:         header,
		TotalSales:     utils.FormatAmount(s.TotalSales),
		TotalPurchases: utils.FormatAmount(s.TotalPurchases),
		TotalExpenses:  utils.FormatAmount(s.TotalExpenses),
		NetProfit:      utils.FormatAmount(s.NetProfit),
		CashAndBank:    utils.FormatAmount(s.CashAndBank),
		GSTCollected:   utils.FormatAmount(s.GSTCollected),
		InventoryValue: utils.FormatAmount(s.InventoryValue),
		EntryCount:     s.EntryCount,
		InvoiceCount:   s.InvoiceCount,
	}
}
