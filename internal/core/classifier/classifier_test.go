package classifier_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/firm_books/internal/core/classifier"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := classifier.New(nil)

	tests := []struct {
		name      string
		narration string
		debit     string
		credit    string
		amount    string
	}{
		{"sale", "Goods sold for Rs. 5000", classifier.CashBankAccount, classifier.SalesAccount, "5000"},
		{"sale keyword inside word", "Cash SALE of 120.50 to walk-in", classifier.CashBankAccount, classifier.SalesAccount, "120.5"},
		{"purchase", "Purchased raw material 3000", classifier.PurchasesAccount, classifier.CashBankAccount, "3000"},
		{"bought", "bought stationery 250", classifier.PurchasesAccount, classifier.CashBankAccount, "250"},
		{"receipt", "Received 1500 from Mehta", classifier.CashBankAccount, classifier.DebtorAccount, "1500"},
		{"payment", "Paid supplier 800", classifier.CreditorAccount, classifier.CashBankAccount, "800"},
		{"sale beats paid", "Goods sold and paid 400", classifier.CashBankAccount, classifier.SalesAccount, "400"},
		{"purchase beats received", "Received and purchased goods 90", classifier.PurchasesAccount, classifier.CashBankAccount, "90"},
		{"no amount", "Goods sold on credit", classifier.CashBankAccount, classifier.SalesAccount, "0"},
		{"grouped digits stop at comma", "Sold goods 5,000", classifier.CashBankAccount, classifier.SalesAccount, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postings := c.Classify(tt.narration)
			require.Len(t, postings, 2)

			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.debit, postings[0].Account)
			assert.True(t, amount.Equal(postings[0].Debit), "debit %s", postings[0].Debit)
			assert.True(t, postings[0].Credit.IsZero())

			assert.Equal(t, tt.credit, postings[1].Account)
			assert.True(t, amount.Equal(postings[1].Credit), "credit %s", postings[1].Credit)
			assert.True(t, postings[1].Debit.IsZero())
		})
	}
}

func TestClassify_ExampleFromBooks(t *testing.T) {
	postings := classifier.New(nil).Classify("Goods sold for Rs. 5000")

	assert.Equal(t, []domain.Posting{
		domain.DebitPosting("Cash/Bank A/c", decimal.NewFromInt(5000)),
		domain.CreditPosting("Sales A/c", decimal.NewFromInt(5000)),
	}, postings)
}

func TestClassify_NoMatch(t *testing.T) {
	c := classifier.New(nil)

	res := c.Explain("Depreciation for the year 1200")
	assert.False(t, res.Matched())
	assert.Nil(t, res.Postings)
	assert.Equal(t, "1200", res.Amount.String())
	assert.Nil(t, c.Classify(""))
}

func TestClassify_HinglishIsOptIn(t *testing.T) {
	narration := "maal becha 700"

	assert.Nil(t, classifier.New(nil).Classify(narration))

	postings := classifier.New(classifier.WithHinglish(classifier.DefaultRules())).Classify(narration)
	require.Len(t, postings, 2)
	assert.Equal(t, classifier.SalesAccount, postings[1].Account)

	res := classifier.New(classifier.WithHinglish(classifier.DefaultRules())).Explain("kiraya diya 500")
	assert.Equal(t, "payment", res.Rule)
}

func TestWithHinglish_DoesNotMutateInput(t *testing.T) {
	rules := classifier.DefaultRules()
	_ = classifier.WithHinglish(rules)
	assert.Equal(t, []string{"sold", "sale"}, rules[0].Keywords)
}

func TestExtractAmount(t *testing.T) {
	tests := map[string]string{
		"Rs. 5000":            "5000",
		"paid 12.75 for tea":  "12.75",
		"invoice 17 for 9000": "17",
		"no digits here":      "0",
		"trailing dot 42.":    "42",
	}
	for in, want := range tests {
		assert.Equal(t, want, classifier.ExtractAmount(in).String(), in)
	}
}

func TestLoadRules(t *testing.T) {
	yamlDoc := `
rules:
  - name: rent
    keywords: [rent]
    template:
      debit: Rent A/c
      credit: Bank A/c
  - name: sale
    keywords: [sold]
    template:
      debit: Bank A/c
      credit: Sales A/c
`
	rules, err := classifier.LoadRules(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	c := classifier.New(rules)
	res := c.Explain("Rent paid for shop sold out 900")
	assert.Equal(t, "rent", res.Rule)
	assert.Equal(t, "Rent A/c", res.Postings[0].Account)
	assert.Equal(t, "Bank A/c", res.Postings[1].Account)
}

func TestLoadRules_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":          "rules: []",
		"missing name":   "rules:\n  - keywords: [x]\n    template: {debit: A, credit: B}",
		"missing credit": "rules:\n  - name: x\n    keywords: [x]\n    template: {debit: A}",
		"not yaml":       "rules: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := classifier.LoadRules(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}
