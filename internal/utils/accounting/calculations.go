package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyPrecision is the number of decimal places amounts are compared at.
const CurrencyPrecision int32 = 2

// UnbalancedEntryError reports both sides of an entry that failed the balance check.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("%s: debits sum is %s and credits sum is %s",
		apperrors.ErrUnbalancedEntry.Error(),
		e.TotalDebit.StringFixed(CurrencyPrecision),
		e.TotalCredit.StringFixed(CurrencyPrecision))
}

// Unwrap lets errors.Is match both ErrUnbalancedEntry and ErrValidation.
func (e *UnbalancedEntryError) Unwrap() []error {
	return []error{apperrors.ErrUnbalancedEntry, apperrors.ErrValidation}
}

// SumPostings returns the debit and credit totals of the postings at full precision.
func SumPostings(postings []domain.Posting) (decimal.Decimal, decimal.Decimal) {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, p := range postings {
		debits = debits.Add(p.Debit)
		credits = credits.Add(p.Credit)
	}
	return debits, credits
}

// ValidatePostings checks the shape of each line: at least one line, a named account,
// and non-negative amounts with no more than CurrencyPrecision decimal places.
// Amounts are stored as given, so a sub-paisa amount would leave the books out of balance.
func ValidatePostings(postings []domain.Posting) error {
	if len(postings) == 0 {
		return fmt.Errorf("%w: journal entry must have at least one posting", apperrors.ErrValidation)
	}
	for i, p := range postings {
		if strings.TrimSpace(p.Account) == "" {
			return fmt.Errorf("%w: posting %d has no account", apperrors.ErrValidation, i+1)
		}
		if p.Debit.IsNegative() || p.Credit.IsNegative() {
			return fmt.Errorf("%w: posting %d for account %s has a negative amount", apperrors.ErrValidation, i+1, p.Account)
		}
		if !p.Debit.Equal(p.Debit.Round(CurrencyPrecision)) || !p.Credit.Equal(p.Credit.Round(CurrencyPrecision)) {
			return fmt.Errorf("%w: posting %d for account %s has more than %d decimal places", apperrors.ErrValidation, i+1, p.Account, CurrencyPrecision)
		}
	}
	return nil
}

// ValidateEntryBalance checks that summed debits equal summed credits at currency precision.
func ValidateEntryBalance(postings []domain.Posting) error {
	if err := ValidatePostings(postings); err != nil {
		return err
	}

	debits, credits := SumPostings(postings)
	if !debits.Round(CurrencyPrecision).Equal(credits.Round(CurrencyPrecision)) {
		return &UnbalancedEntryError{TotalDebit: debits, TotalCredit: credits}
	}
	return nil
}
