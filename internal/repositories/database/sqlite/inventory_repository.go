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
)

const selectInventoryColumns = `
	SELECT item_id, name, supplier, invoice_number, purchase_cost, sales_price, hsn_code,
	       gst_percent, quantity, created_at, created_by, last_updated_at, last_updated_by
	FROM inventory_items
`

// InventoryRepository stores stock lines.
type InventoryRepository struct {
	BaseRepository
}

var _ portsrepo.InventoryRepositoryFacade = (*InventoryRepository)(nil)

// FindItemByID retrieves a stock line.
func (r *InventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	m, err := scanInventoryItem(r.DB.QueryRowContext(ctx, selectInventoryColumns+` WHERE item_id = ?;`, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find inventory item "+itemID, err)
	}
	item := mapping.ToDomainInventoryItem(m)
	return &item, nil
}

// ListItems returns every stock line, most recently created first.
func (r *InventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.DB.QueryContext(ctx, selectInventoryColumns+` ORDER BY created_at DESC, item_id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list inventory items", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan inventory item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating inventory item rows", err)
	}
	return mapping.ToDomainInventoryItemSlice(items), nil
}

// SaveItem inserts the item or replaces the editable columns of an existing one.
func (r *InventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO inventory_items (
			item_id, name, supplier, invoice_number, purchase_cost, sales_price, hsn_code,
			gst_percent, quantity, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (item_id) DO UPDATE SET
			name = excluded.name,
			supplier = excluded.supplier,
			invoice_number = excluded.invoice_number,
			purchase_cost = excluded.purchase_cost,
			sales_price = excluded.sales_price,
			hsn_code = excluded.hsn_code,
			gst_percent = excluded.gst_percent,
			quantity = excluded.quantity,
			last_updated_at = excluded.last_updated_at,
			last_updated_by = excluded.last_updated_by;
	`,
		m.ItemID, m.Name, m.Supplier, m.InvoiceNumber, m.PurchaseCost.String(), m.SalesPrice.String(), m.HSNCode,
		m.GSTPercent.String(), m.Quantity, formatTime(m.CreatedAt), m.CreatedBy, formatTime(m.LastUpdatedAt), m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save inventory item "+m.ItemID, err)
	}
	return nil
}

// DeleteItem removes a stock line.
func (r *InventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM inventory_items WHERE item_id = ?;`, itemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete inventory item "+itemID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete inventory item "+itemID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanInventoryItem(row rowScanner) (models.InventoryItem, error) {
	var m models.InventoryItem
	var createdAt, lastUpdatedAt string
	err := row.Scan(
		&m.ItemID, &m.Name, &m.Supplier, &m.InvoiceNumber, &m.PurchaseCost, &m.SalesPrice, &m.HSNCode,
		&m.GSTPercent, &m.Quantity, &createdAt, &m.CreatedBy, &lastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, err
	}
	m.LastUpdatedAt, err = parseTime(lastUpdatedAt)
	return m, err
}
