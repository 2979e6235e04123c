package services

import (
	"context"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/dto"
)

// InventoryReaderSvc defines read operations for stock items
type InventoryReaderSvc interface {
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	Summary(ctx context.Context) (domain.InventorySummary, error)
}

// InventoryWriterSvc defines write operations for stock items
type InventoryWriterSvc interface {
	CreateItem(ctx context.Context, req dto.InventoryItemRequest, userID string) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID string, req dto.InventoryItemRequest, userID string) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
