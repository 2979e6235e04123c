package accounting_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateEntryBalance(t *testing.T) {
	tests := []struct {
		name       string
		postings   []domain.Posting
		wantErr    error
		wantDebit  string
		wantCredit string
	}{
		{
			name: "two line balanced entry",
			postings: []domain.Posting{
				domain.DebitPosting("Cash A/c", dec("5000")),
				domain.CreditPosting("Sales A/c", dec("5000")),
			},
		},
		{
			name: "multi line balanced entry",
			postings: []domain.Posting{
				domain.DebitPosting("Purchases A/c", dec("700.25")),
				domain.DebitPosting("Input GST A/c", dec("126.05")),
				domain.CreditPosting("Bank A/c", dec("826.30")),
			},
		},
		{
			name: "single posting with both sides",
			postings: []domain.Posting{
				{Account: "Suspense A/c", Debit: dec("10"), Credit: dec("10")},
			},
		},
		{
			name: "trailing zeros beyond precision",
			postings: []domain.Posting{
				domain.DebitPosting("Cash A/c", dec("0.100")),
				domain.DebitPosting("Cash A/c", dec("0.2")),
				domain.CreditPosting("Sales A/c", dec("0.3000")),
			},
		},
		{
			name: "sub-paisa debit",
			postings: []domain.Posting{
				domain.DebitPosting("Cash A/c", dec("1.004")),
				domain.CreditPosting("Sales A/c", dec("1.00")),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "sub-paisa credit on both sides",
			postings: []domain.Posting{
				domain.DebitPosting("Cash A/c", dec("0.3001")),
				domain.CreditPosting("Sales A/c", dec("0.3001")),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "unbalanced entry",
			postings: []domain.Posting{
				domain.DebitPosting("Cash A/c", dec("100")),
				domain.CreditPosting("Sales A/c", dec("90")),
			},
			wantErr:    apperrors.ErrUnbalancedEntry,
			wantDebit:  "100",
			wantCredit: "90",
		},
		{
			name: "off by one paisa",
			postings: []domain.Posting{
				domain.DebitPosting("Cash A/c", dec("100.01")),
				domain.CreditPosting("Sales A/c", dec("100.00")),
			},
			wantErr:    apperrors.ErrUnbalancedEntry,
			wantDebit:  "100.01",
			wantCredit: "100",
		},
		{
			name:     "no postings",
			postings: nil,
			wantErr:  apperrors.ErrValidation,
		},
		{
			name: "negative amount",
			postings: []domain.Posting{
				domain.DebitPosting("Cash A/c", dec("-5")),
				domain.CreditPosting("Sales A/c", dec("-5")),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "blank account",
			postings: []domain.Posting{
				domain.DebitPosting("  ", dec("5")),
				domain.CreditPosting("Sales A/c", dec("5")),
			},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntryBalance(tt.postings)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.wantDebit != "" {
				var unbalanced *accounting.UnbalancedEntryError
				require.True(t, errors.As(err, &unbalanced))
				assert.True(t, dec(tt.wantDebit).Equal(unbalanced.TotalDebit), "debit total %s", unbalanced.TotalDebit)
				assert.True(t, dec(tt.wantCredit).Equal(unbalanced.TotalCredit), "credit total %s", unbalanced.TotalCredit)
			}
		})
	}
}

func TestUnbalancedEntryErrorReportsBothTotals(t *testing.T) {
	err := accounting.ValidateEntryBalance([]domain.Posting{
		domain.DebitPosting("Cash A/c", dec("250")),
		domain.CreditPosting("Sales A/c", dec("200.5")),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "250.00")
	assert.Contains(t, err.Error(), "200.50")
}

func TestSumPostings(t *testing.T) {
	debits, credits := accounting.SumPostings([]domain.Posting{
		domain.DebitPosting("Rent A/c", dec("1200")),
		domain.DebitPosting("Salary A/c", dec("800.5")),
		domain.CreditPosting("Cash A/c", dec("2000.5")),
	})

	assert.Equal(t, "2000.5", debits.String())
	assert.Equal(t, "2000.5", credits.String())
}
