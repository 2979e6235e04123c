package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/models"
	"github.com/SscSPs/firm_books/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const selectInvoiceColumns = `
	SELECT invoice_id, invoice_number, customer_name, customer_address, customer_gst,
	       invoice_date, items, subtotal, total_gst, total, created_at, created_by
	FROM invoices
`

// InvoiceRepository stores invoices with their items as a JSON column.
type InvoiceRepository struct {
	BaseRepository
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

// SaveInvoice inserts a new invoice.
func (r *InvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO invoices (
			invoice_id, invoice_number, customer_name, customer_address, customer_gst,
			invoice_date, items, subtotal, total_gst, total, created_at, created_by
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		m.InvoiceID,
		m.InvoiceNumber,
		m.CustomerName,
		m.CustomerAddress,
		m.CustomerGST,
		formatDate(m.InvoiceDate),
		m.Items,
		m.Subtotal.String(),
		m.TotalGST.String(),
		m.Total.String(),
		formatTime(m.CreatedAt),
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "invoice "+m.InvoiceID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *InvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	m, err := scanInvoice(r.DB.QueryRowContext(ctx, selectInvoiceColumns+` WHERE invoice_id = ?;`, invoiceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// ListInvoices returns invoices newest first.
func (r *InvoiceRepository) ListInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error) {
	invoices, err := r.query(ctx, selectInvoiceColumns+` ORDER BY created_at DESC, invoice_id DESC LIMIT ? OFFSET ?;`, limit, offset)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInvoiceSlice(invoices), nil
}

// SumInvoiceTotals adds up the totals of invoices dated within the period.
// Amounts are stored as text, so they are summed as decimals here rather than in SQL.
func (r *InvoiceRepository) SumInvoiceTotals(ctx context.Context, period domain.Period) (domain.InvoiceTotals, int, error) {
	invoices, err := r.query(ctx, selectInvoiceColumns+`
		WHERE (?1 IS NULL OR invoice_date >= ?1) AND (?2 IS NULL OR invoice_date <= ?2);`,
		nullableDate(period.From), nullableDate(period.To))
	if err != nil {
		return domain.InvoiceTotals{}, 0, err
	}
	totals := domain.InvoiceTotals{Subtotal: decimal.Zero, TotalGST: decimal.Zero, Total: decimal.Zero}
	for _, inv := range invoices {
		totals.Subtotal = totals.Subtotal.Add(inv.Subtotal)
		totals.TotalGST = totals.TotalGST.Add(inv.TotalGST)
		totals.Total = totals.Total.Add(inv.Total)
	}
	return totals, len(invoices), nil
}

func (r *InvoiceRepository) query(ctx context.Context, query string, args ...any) ([]models.Invoice, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return invoices, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (models.Invoice, error) {
	var m models.Invoice
	var invoiceDate, createdAt string
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.CustomerName,
		&m.CustomerAddress,
		&m.CustomerGST,
		&invoiceDate,
		&m.Items,
		&m.Subtotal,
		&m.TotalGST,
		&m.Total,
		&createdAt,
		&m.CreatedBy,
	)
	if err != nil {
		return m, err
	}
	if m.InvoiceDate, err = parseDate(invoiceDate); err != nil {
		return m, err
	}
	m.CreatedAt, err = parseTime(createdAt)
	return m, err
}
