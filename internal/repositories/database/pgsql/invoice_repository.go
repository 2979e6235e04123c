package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/models"
	"github.com/SscSPs/firm_books/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectInvoiceColumns = `
	SELECT invoice_id, invoice_number, customer_name, customer_address, customer_gst,
	       invoice_date, items, subtotal, total_gst, total, created_at, created_by
	FROM invoices
`

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice inserts a new invoice. Line items are stored as JSONB.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (
			invoice_id, invoice_number, customer_name, customer_address, customer_gst,
			invoice_date, items, subtotal, total_gst, total, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNumber,
		m.CustomerName,
		m.CustomerAddress,
		m.CustomerGST,
		m.InvoiceDate,
		m.Items,
		m.Subtotal,
		m.TotalGST,
		m.Total,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return insertError("invoice "+m.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	m, err := scanInvoice(r.Pool.QueryRow(ctx, selectInvoiceColumns+` WHERE invoice_id = $1;`, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// ListInvoices returns invoices newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error) {
	query := selectInvoiceColumns + ` ORDER BY created_at DESC, invoice_id DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices", err)
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
	return mapping.ToDomainInvoiceSlice(invoices), nil
}

// SumInvoiceTotals adds up the totals of invoices dated within the period.
func (r *PgxInvoiceRepository) SumInvoiceTotals(ctx context.Context, period domain.Period) (domain.InvoiceTotals, int, error) {
	query := `
		SELECT COALESCE(SUM(subtotal), 0), COALESCE(SUM(total_gst), 0), COALESCE(SUM(total), 0), COUNT(*)
		FROM invoices
		WHERE ($1::date IS NULL OR invoice_date >= $1::date)
		  AND ($2::date IS NULL OR invoice_date <= $2::date);
	`
	var totals domain.InvoiceTotals
	var count int
	err := r.Pool.QueryRow(ctx, query, period.From, period.To).Scan(&totals.Subtotal, &totals.TotalGST, &totals.Total, &count)
	if err != nil {
		return domain.InvoiceTotals{}, 0, apperrors.NewAppError(500, "failed to sum invoice totals", err)
	}
	return totals, count, nil
}

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.CustomerName,
		&m.CustomerAddress,
		&m.CustomerGST,
		&m.InvoiceDate,
		&m.Items,
		&m.Subtotal,
		&m.TotalGST,
		&m.Total,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}
