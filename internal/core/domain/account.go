package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountClass is the keyword-derived category of an account name.
type AccountClass string

const (
	Revenue      AccountClass = "REVENUE"
	Expense      AccountClass = "EXPENSE"
	Asset        AccountClass = "ASSET"
	Liability    AccountClass = "LIABILITY"
	Unclassified AccountClass = "UNCLASSIFIED"
)

// classKeywords lists the lower-case substrings that place an account in a class.
// Classes are not exclusive: a name can match several of them.
var classKeywords = []struct {
	class    AccountClass
	keywords []string
}{
	{Revenue, []string{"sales", "revenue", "income"}},
	{Expense, []string{"purchase", "expense", "salary", "rent"}},
	{Asset, []string{"cash", "bank", "debtor", "inventory", "asset"}},
	{Liability, []string{"creditor", "loan", "payable", "liability"}},
}

// HasClass reports whether the account name belongs to class.
func HasClass(accountName string, class AccountClass) bool {
	lower := strings.ToLower(accountName)
	for _, ck := range classKeywords {
		if ck.class != class {
			continue
		}
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// ClassesOf returns every class matching the account name, or [Unclassified].
func ClassesOf(accountName string) []AccountClass {
	var classes []AccountClass
	for _, ck := range classKeywords {
		if HasClass(accountName, ck.class) {
			classes = append(classes, ck.class)
		}
	}
	if len(classes) == 0 {
		return []AccountClass{Unclassified}
	}
	return classes
}

// IsCashOrBank reports whether postings to this account move cash, as used by the cash book.
func IsCashOrBank(accountName string) bool {
	lower := strings.ToLower(accountName)
	return strings.Contains(lower, "cash") || strings.Contains(lower, "bank")
}

// LedgerAccount is the aggregated position of one account name. It is derived, never stored.
type LedgerAccount struct {
	Name        string          `json:"name"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// Balance is TotalDebit - TotalCredit; positive means a net debit.
func (a LedgerAccount) Balance() decimal.Decimal {
	return a.TotalDebit.Sub(a.TotalCredit)
}
