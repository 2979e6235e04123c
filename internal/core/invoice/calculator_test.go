package invoice_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(name, qty, rate, gst string) domain.InvoiceLineItem {
	return domain.InvoiceLineItem{
		Name:       name,
		Quantity:   decimal.RequireFromString(qty),
		Rate:       decimal.RequireFromString(rate),
		GSTPercent: decimal.RequireFromString(gst),
	}
}

func TestRecompute_SingleLine(t *testing.T) {
	items := invoice.Recompute([]domain.InvoiceLineItem{line("Widget", "2", "100", "18")})

	require.Len(t, items, 1)
	assert.Equal(t, "236.00", items[0].Amount.StringFixed(2))

	totals := invoice.Totals(items)
	assert.Equal(t, "200", totals.Subtotal.String())
	assert.Equal(t, "36", totals.TotalGST.String())
	assert.Equal(t, "236", totals.Total.String())
}

func TestRecompute_ReplacesStaleAmount(t *testing.T) {
	stale := line("Widget", "3", "50", "5")
	stale.Amount = decimal.NewFromInt(999)
	input := []domain.InvoiceLineItem{stale}

	items := invoice.Recompute(input)

	assert.Equal(t, "157.5", items[0].Amount.String())
	assert.Equal(t, "999", input[0].Amount.String(), "input is not modified")
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.InvoiceLineItem
		subtotal string
		gst      string
		total    string
	}{
		{"empty", nil, "0", "0", "0"},
		{"zero gst", []domain.InvoiceLineItem{line("Book", "4", "125", "0")}, "500", "0", "500"},
		{"mixed rates", []domain.InvoiceLineItem{
			line("Shirt", "2", "499.50", "12"),
			line("Belt", "1", "250", "18"),
			line("Service", "1.5", "1000", "18"),
		}, "2749", "434.88", "3183.88"},
		{"zero quantity", []domain.InvoiceLineItem{line("Sample", "0", "100", "18")}, "0", "0", "0"},
		{"full gst", []domain.InvoiceLineItem{line("Luxury", "1", "10", "100")}, "10", "10", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := invoice.Totals(tt.items)
			assert.True(t, decimal.RequireFromString(tt.subtotal).Equal(totals.Subtotal), "subtotal %s", totals.Subtotal)
			assert.True(t, decimal.RequireFromString(tt.gst).Equal(totals.TotalGST), "gst %s", totals.TotalGST)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(totals.Total), "total %s", totals.Total)
		})
	}
}

func TestTotals_EqualsSumOfAmounts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		var items []domain.InvoiceLineItem
		for j := 0; j < 1+rng.Intn(6); j++ {
			items = append(items, domain.InvoiceLineItem{
				Quantity:   decimal.NewFromInt(rng.Int63n(50)),
				Rate:       decimal.New(rng.Int63n(1000000), -2),
				GSTPercent: []decimal.Decimal{decimal.Zero, decimal.NewFromInt(5), decimal.NewFromInt(12), decimal.NewFromInt(18), decimal.NewFromInt(28)}[rng.Intn(5)],
			})
		}
		items = invoice.Recompute(items)

		sum := decimal.Zero
		for _, item := range items {
			sum = sum.Add(item.Amount)
		}
		totals := invoice.Totals(items)
		require.True(t, sum.Equal(totals.Total), "sum %s total %s", sum, totals.Total)
		require.True(t, totals.Subtotal.Add(totals.TotalGST).Equal(totals.Total))
	}
}

func TestValidateLines(t *testing.T) {
	assert.NoError(t, invoice.ValidateLines([]domain.InvoiceLineItem{line("ok", "1", "0", "0"), line("ok", "0", "5", "100")}))

	bad := []domain.InvoiceLineItem{
		line("neg qty", "-1", "10", "18"),
		line("neg rate", "1", "-10", "18"),
		line("neg gst", "1", "10", "-1"),
		line("gst too high", "1", "10", "100.01"),
	}
	for _, item := range bad {
		t.Run(item.Name, func(t *testing.T) {
			err := invoice.ValidateLines([]domain.InvoiceLineItem{item})
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestNewInvoiceLineItemDefaults(t *testing.T) {
	item := domain.NewInvoiceLineItem("Widget")
	assert.Equal(t, "1", item.Quantity.String())
	assert.Equal(t, "18", item.GSTPercent.String())
}

func TestNumberer(t *testing.T) {
	fixed := time.UnixMilli(1718000123456)
	n, err := invoice.NewNumberer(1, invoice.WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	assert.Equal(t, "INV-123456", n.NextNumber())
	assert.Equal(t, "INV-000042", invoice.FormatNumber(time.UnixMilli(5000000042)))

	first, second := n.NextID(), n.NextID()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestNewNumberer_InvalidNode(t *testing.T) {
	_, err := invoice.NewNumberer(5000)
	assert.Error(t, err)
}
