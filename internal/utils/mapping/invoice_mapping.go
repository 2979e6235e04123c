package mapping

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	items := make(models.InvoiceItems, len(d.Items))
	for i, item := range d.Items {
		items[i] = models.InvoiceItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Rate:       item.Rate,
			GSTPercent: item.GSTPercent,
			Amount:     item.Amount,
		}
	}
	return models.Invoice{
		InvoiceID:       d.InvoiceID,
		InvoiceNumber:   d.InvoiceNumber,
		CustomerName:    d.CustomerName,
		CustomerAddress: d.CustomerAddress,
		CustomerGST:     d.CustomerGST,
		InvoiceDate:     d.Date,
		Items:           items,
		Subtotal:        d.Subtotal,
		TotalGST:        d.TotalGST,
		Total:           d.Total,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	items := make([]domain.InvoiceLineItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = domain.InvoiceLineItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Rate:       item.Rate,
			GSTPercent: item.GSTPercent,
			Amount:     item.Amount,
		}
	}
	return domain.Invoice{
		InvoiceID:       m.InvoiceID,
		InvoiceNumber:   m.InvoiceNumber,
		CustomerName:    m.CustomerName,
		CustomerAddress: m.CustomerAddress,
		CustomerGST:     m.CustomerGST,
		Date:            m.InvoiceDate,
		Items:           items,
		InvoiceTotals: domain.InvoiceTotals{
			Subtotal: m.Subtotal,
			TotalGST: m.TotalGST,
			Total:    m.Total,
		},
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
