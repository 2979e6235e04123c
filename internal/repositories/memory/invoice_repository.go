package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// InvoiceRepository holds invoices keyed by ID.
type InvoiceRepository struct {
	store
	invoices map[string]domain.Invoice
}

// NewInvoiceRepository returns an empty repository.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{invoices: make(map[string]domain.Invoice)}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

// SaveInvoice stores a new invoice.
func (r *InvoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.invoices[invoice.InvoiceID]; exists {
		return apperrors.NewAppError(409, "invoice "+invoice.InvoiceID+" already exists", apperrors.ErrDuplicate)
	}
	r.invoices[invoice.InvoiceID] = cloneInvoice(invoice)
	return nil
}

// FindInvoiceByID returns a copy of the stored invoice.
func (r *InvoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invoices[invoiceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	inv = cloneInvoice(inv)
	return &inv, nil
}

// ListInvoices returns invoices newest first.
func (r *InvoiceRepository) ListInvoices(_ context.Context, limit int, offset int) ([]domain.Invoice, error) {
	all := r.all()
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].InvoiceID > all[j].InvoiceID
	})

	if offset >= len(all) {
		return []domain.Invoice{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// SumInvoiceTotals adds up the totals of invoices dated within the period.
func (r *InvoiceRepository) SumInvoiceTotals(_ context.Context, period domain.Period) (domain.InvoiceTotals, int, error) {
	totals := domain.InvoiceTotals{Subtotal: decimal.Zero, TotalGST: decimal.Zero, Total: decimal.Zero}
	count := 0
	for _, inv := range r.all() {
		if !period.Contains(inv.Date) {
			continue
		}
		totals.Subtotal = totals.Subtotal.Add(inv.Subtotal)
		totals.TotalGST = totals.TotalGST.Add(inv.TotalGST)
		totals.Total = totals.Total.Add(inv.Total)
		count++
	}
	return totals, count, nil
}

func (r *InvoiceRepository) all() []domain.Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, cloneInvoice(inv))
	}
	return out
}

func cloneInvoice(inv domain.Invoice) domain.Invoice {
	inv.Items = append([]domain.InvoiceLineItem(nil), inv.Items...)
	return inv
}
