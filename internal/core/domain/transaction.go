package domain

import "github.com/shopspring/decimal"

// PostingSide indicates which side of the books a posting line hits.
type PostingSide string

const (
	Debit  PostingSide = "Dr"
	Credit PostingSide = "Cr"
)

// Posting represents a single line of a journal entry against one account.
// Either side may be zero; both are non-negative.
type Posting struct {
	Account string          `json:"account"` // exact, case-sensitive account name
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// IsDebit reports whether the posting carries a debit amount.
func (p Posting) IsDebit() bool {
	return p.Debit.GreaterThan(decimal.Zero)
}

// IsCredit reports whether the posting carries a credit amount.
func (p Posting) IsCredit() bool {
	return p.Credit.GreaterThan(decimal.Zero)
}

// DebitPosting builds a debit-only line.
func DebitPosting(account string, amount decimal.Decimal) Posting {
	return Posting{Account: account, Debit: amount, Credit: decimal.Zero}
}

// CreditPosting builds a credit-only line.
func CreditPosting(account string, amount decimal.Decimal) Posting {
	return Posting{Account: account, Debit: decimal.Zero, Credit: amount}
}
