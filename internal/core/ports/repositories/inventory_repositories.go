package repositories

import (
	"context"

	"github.com/SscSPs/firm_books/internal/core/domain"
)

// InventoryReader defines read operations for stock items
type InventoryReader interface {
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	// ListItems returns every item, most recently created first.
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for stock items
type InventoryWriter interface {
	// SaveItem inserts the item or replaces the stored item with the same ID.
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	// DeleteItem removes the item; apperrors.ErrNotFound if it does not exist.
	DeleteItem(ctx context.Context, itemID string) error
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
