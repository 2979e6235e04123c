package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultGSTPercent is applied to new invoice lines when no rate is given.
var DefaultGSTPercent = decimal.NewFromInt(18)

// InvoiceLineItem is one row of a sales invoice. Amount is always derived.
type InvoiceLineItem struct {
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	GSTPercent decimal.Decimal `json:"gstPercent"`
	Amount     decimal.Decimal `json:"amount"` // quantity * rate * (1 + gst/100)
}

// NewInvoiceLineItem returns a line with the default quantity and GST rate.
func NewInvoiceLineItem(name string) InvoiceLineItem {
	return InvoiceLineItem{
		Name:       name,
		Quantity:   decimal.NewFromInt(1),
		Rate:       decimal.Zero,
		GSTPercent: DefaultGSTPercent,
		Amount:     decimal.Zero,
	}
}

// InvoiceTotals holds the aggregate amounts of an invoice.
type InvoiceTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TotalGST decimal.Decimal `json:"totalGST"`
	Total    decimal.Decimal `json:"total"`
}

// Invoice is a persisted sales invoice.
type Invoice struct {
	InvoiceID       string            `json:"invoiceID"`
	InvoiceNumber   string            `json:"invoiceNumber"` // INV-<suffix>
	CustomerName    string            `json:"customerName"`
	CustomerAddress string            `json:"customerAddress"`
	CustomerGST     string            `json:"customerGST"`
	Date            time.Time         `json:"date"`
	Items           []InvoiceLineItem `json:"items"`
	InvoiceTotals
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
