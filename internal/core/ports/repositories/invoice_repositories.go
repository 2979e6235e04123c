package repositories

import (
	"context"

	"github.com/SscSPs/firm_books/internal/core/domain"
)

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	// ListInvoices returns invoices newest first.
	ListInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error)
	// SumInvoiceTotals adds up the totals of invoices dated within the period and counts them.
	SumInvoiceTotals(ctx context.Context, period domain.Period) (domain.InvoiceTotals, int, error)
}

// InvoiceWriter defines write operations for invoices
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
