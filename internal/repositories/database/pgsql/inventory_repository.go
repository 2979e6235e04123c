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

const selectInventoryColumns = `
	SELECT item_id, name, supplier, invoice_number, purchase_cost, sales_price, hsn_code,
	       gst_percent, quantity, created_at, created_by, last_updated_at, last_updated_by
	FROM inventory_items
`

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

// FindItemByID retrieves a stock line.
func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	m, err := scanInventoryItem(r.Pool.QueryRow(ctx, selectInventoryColumns+` WHERE item_id = $1;`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find inventory item "+itemID, err)
	}
	item := mapping.ToDomainInventoryItem(m)
	return &item, nil
}

// ListItems returns every stock line, most recently created first.
func (r *PgxInventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.Pool.Query(ctx, selectInventoryColumns+` ORDER BY created_at DESC, item_id;`)
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
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		INSERT INTO inventory_items (
			item_id, name, supplier, invoice_number, purchase_cost, sales_price, hsn_code,
			gst_percent, quantity, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (item_id) DO UPDATE SET
			name = EXCLUDED.name,
			supplier = EXCLUDED.supplier,
			invoice_number = EXCLUDED.invoice_number,
			purchase_cost = EXCLUDED.purchase_cost,
			sales_price = EXCLUDED.sales_price,
			hsn_code = EXCLUDED.hsn_code,
			gst_percent = EXCLUDED.gst_percent,
			quantity = EXCLUDED.quantity,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.Name, m.Supplier, m.InvoiceNumber, m.PurchaseCost, m.SalesPrice, m.HSNCode,
		m.GSTPercent, m.Quantity, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save inventory item "+m.ItemID, err)
	}
	return nil
}

// DeleteItem removes a stock line.
func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete inventory item "+itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanInventoryItem(row pgx.Row) (models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID, &m.Name, &m.Supplier, &m.InvoiceNumber, &m.PurchaseCost, &m.SalesPrice, &m.HSNCode,
		&m.GSTPercent, &m.Quantity, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
