// Package invoice computes GST-inclusive invoice lines and totals and assigns invoice numbers.
package invoice

import (
	"fmt"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred    = decimal.NewFromInt(100)
	maxGSTRate = decimal.NewFromInt(100)
)

// LineBase is quantity * rate, before tax.
func LineBase(item domain.InvoiceLineItem) decimal.Decimal {
	return item.Quantity.Mul(item.Rate)
}

// LineGST is the tax on one line: quantity * rate * gst / 100.
func LineGST(item domain.InvoiceLineItem) decimal.Decimal {
	return LineBase(item).Mul(item.GSTPercent).Div(hundred)
}

// LineAmount is the GST-inclusive amount of one line.
func LineAmount(item domain.InvoiceLineItem) decimal.Decimal {
	return LineBase(item).Add(LineGST(item))
}

// Recompute returns a copy of items with every Amount derived from its inputs.
func Recompute(items []domain.InvoiceLineItem) []domain.InvoiceLineItem {
	out := make([]domain.InvoiceLineItem, len(items))
	for i, item := range items {
		item.Amount = LineAmount(item)
		out[i] = item
	}
	return out
}

// Totals sums the invoice. Total equals the sum of the recomputed line amounts.
func Totals(items []domain.InvoiceLineItem) domain.InvoiceTotals {
	subtotal, gst := decimal.Zero, decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineBase(item))
		gst = gst.Add(LineGST(item))
	}
	return domain.InvoiceTotals{
		Subtotal: subtotal,
		TotalGST: gst,
		Total:    subtotal.Add(gst),
	}
}

// ValidateLines rejects negative quantities or rates and GST outside 0..100.
func ValidateLines(items []domain.InvoiceLineItem) error {
	for i, item := range items {
		if item.Quantity.IsNegative() {
			return fmt.Errorf("%w: line %d quantity must not be negative", apperrors.ErrValidation, i+1)
		}
		if item.Rate.IsNegative() {
			return fmt.Errorf("%w: line %d rate must not be negative", apperrors.ErrValidation, i+1)
		}
		if item.GSTPercent.IsNegative() || item.GSTPercent.GreaterThan(maxGSTRate) {
			return fmt.Errorf("%w: line %d GST must be between 0 and 100", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}
