package ledger_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(id string, postings ...domain.Posting) domain.JournalEntry {
	return domain.JournalEntry{
		ID:        id,
		Date:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Postings:  postings,
		CreatedAt: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
	}
}

func sampleEntries() []domain.JournalEntry {
	return []domain.JournalEntry{
		entry("e1", domain.DebitPosting("Cash A/c", dec("1000")), domain.CreditPosting("Sales A/c", dec("1000"))),
		entry("e2", domain.DebitPosting("Purchases A/c", dec("400.50")), domain.CreditPosting("Cash A/c", dec("400.50"))),
		entry("e3", domain.DebitPosting("Rent A/c", dec("250")), domain.CreditPosting("Bank A/c", dec("250"))),
		entry("e4", domain.DebitPosting("Bank A/c", dec("5000")), domain.CreditPosting("Loan A/c", dec("5000"))),
		entry("e5",
			domain.DebitPosting("Cash A/c", dec("99.99")),
			domain.DebitPosting("cash a/c", dec("0.01")),
			domain.CreditPosting("Sales A/c", dec("100")),
		),
	}
}

func TestAggregate_Totals(t *testing.T) {
	l := ledger.Aggregate(sampleEntries())

	cash, ok := l.Get("Cash A/c")
	require.True(t, ok)
	assert.True(t, dec("1099.99").Equal(cash.TotalDebit))
	assert.True(t, dec("400.50").Equal(cash.TotalCredit))
	assert.True(t, dec("699.49").Equal(cash.Balance()))

	sales, ok := l.Get("Sales A/c")
	require.True(t, ok)
	assert.True(t, sales.TotalDebit.IsZero())
	assert.True(t, dec("1100").Equal(sales.TotalCredit))
	assert.True(t, sales.Balance().IsNegative())
}

func TestAggregate_AccountNamesAreCaseSensitive(t *testing.T) {
	l := ledger.Aggregate(sampleEntries())

	lower, ok := l.Get("cash a/c")
	require.True(t, ok)
	assert.True(t, dec("0.01").Equal(lower.TotalDebit))

	_, ok = l.Get("CASH A/C")
	assert.False(t, ok)
	assert.Equal(t, 7, l.Len())
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	l := ledger.Aggregate(sampleEntries())

	var names []string
	for _, acc := range l.Accounts() {
		names = append(names, acc.Name)
	}
	assert.Equal(t, []string{"Cash A/c", "Sales A/c", "Purchases A/c", "Rent A/c", "Bank A/c", "Loan A/c", "cash a/c"}, names)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	entries := sampleEntries()
	want := ledger.Aggregate(entries)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.JournalEntry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := ledger.Aggregate(shuffled)
		require.Equal(t, want.Len(), got.Len())
		for _, acc := range want.Accounts() {
			other, ok := got.Get(acc.Name)
			require.True(t, ok, acc.Name)
			assert.True(t, acc.TotalDebit.Equal(other.TotalDebit), acc.Name)
			assert.True(t, acc.TotalCredit.Equal(other.TotalCredit), acc.Name)
		}
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	entries := sampleEntries()

	first := ledger.Aggregate(entries).Accounts()
	second := ledger.Aggregate(entries).Accounts()

	assert.Equal(t, first, second)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	entries := sampleEntries()
	before := append([]domain.JournalEntry(nil), entries...)

	ledger.Aggregate(entries)

	assert.Equal(t, before, entries)
}

func TestAggregate_Empty(t *testing.T) {
	l := ledger.Aggregate(nil)

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Accounts())
	debits, credits := l.Totals()
	assert.True(t, debits.IsZero())
	assert.True(t, credits.IsZero())
}

func TestLedger_ByClass(t *testing.T) {
	l := ledger.Aggregate([]domain.JournalEntry{
		entry("e1", domain.DebitPosting("Bank Loan A/c", dec("10")), domain.CreditPosting("Other Income A/c", dec("10"))),
	})

	assert.Len(t, l.ByClass(domain.Asset), 1)
	assert.Len(t, l.ByClass(domain.Liability), 1)
	assert.Len(t, l.ByClass(domain.Revenue), 1)
	assert.Empty(t, l.ByClass(domain.Expense))
}
