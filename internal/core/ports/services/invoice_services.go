package services

import (
	"context"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// PreviewInvoice computes line amounts and totals without saving.
	PreviewInvoice(ctx context.Context, req dto.InvoiceLinesRequest) (*dto.InvoiceComputationResponse, error)

	// CreateInvoice numbers, computes and stores an invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
