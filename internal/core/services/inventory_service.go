package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/shopspring/decimal"
)

var maxGSTPercent = decimal.NewFromInt(100)

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
	numericPolicy utils.NumericPolicy
	now           func() time.Time
}

// InventoryServiceOption is a functional option for configuring the inventory service
type InventoryServiceOption func(*inventoryService)

// WithInventoryNumericPolicy sets how malformed prices are handled.
func WithInventoryNumericPolicy(policy utils.NumericPolicy) InventoryServiceOption {
	return func(s *inventoryService) {
		s.numericPolicy = policy
	}
}

// WithInventoryClock overrides the clock used for audit timestamps.
func WithInventoryClock(now func() time.Time) InventoryServiceOption {
	return func(s *inventoryService) {
		s.now = now
	}
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, options ...InventoryServiceOption) portssvc.InventorySvcFacade {
	svc := &inventoryService{
		inventoryRepo: inventoryRepo,
		numericPolicy: utils.NumericPolicyZero,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// apply copies the request onto item after parsing its amounts.
func (s *inventoryService) apply(ctx context.Context, item *domain.InventoryItem, req dto.InventoryItemRequest) error {
	parser := utils.NewNumericParser(s.numericPolicy)
	cost, err := parser.Parse("purchaseCost", string(req.PurchaseCost))
	if err != nil {
		return err
	}
	price, err := parser.Parse("salesPrice", string(req.SalesPrice))
	if err != nil {
		return err
	}
	gst, err := parser.Parse("gstPercent", string(req.GSTPercent))
	if err != nil {
		return err
	}
	s.LogCoerced(ctx, "Malformed inventory amount treated as zero", parser)

	switch {
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("%w: item name is required", apperrors.ErrValidation)
	case cost.IsNegative() || price.IsNegative():
		return fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
	case gst.IsNegative() || gst.GreaterThan(maxGSTPercent):
		return fmt.Errorf("%w: GST must be between 0 and 100", apperrors.ErrValidation)
	case req.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
	}

	item.Name = strings.TrimSpace(req.Name)
	item.Supplier = req.Supplier
	item.InvoiceNumber = req.InvoiceNumber
	item.PurchaseCost = cost
	item.SalesPrice = price
	item.HSNCode = req.HSNCode
	item.GSTPercent = gst
	item.Quantity = req.Quantity
	return nil
}

// CreateItem stores a new stock line.
func (s *inventoryService) CreateItem(ctx context.Context, req dto.InventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	item := domain.InventoryItem{}
	if err := s.apply(ctx, &item, req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	item.ItemID = uuid.NewString()
	item.AuditFields = domain.NewAuditFields(userID, now)

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save inventory item", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to save inventory item: %w", err)
	}
	s.LogInfo(ctx, "Inventory item created", slog.String("item_id", item.ItemID))
	return &item, nil
}

// UpdateItem replaces the editable fields of an existing stock line.
func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req dto.InventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	item, err := s.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, item, req); err != nil {
		return nil, err
	}
	item.Touch(userID, s.now().UTC())

	if err := s.inventoryRepo.SaveItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update inventory item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	s.LogInfo(ctx, "Inventory item updated", slog.String("item_id", itemID))
	return item, nil
}

// GetItemByID retrieves one stock line.
func (s *inventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find inventory item", slog.String("item_id", itemID))
		}
		return nil, fmt.Errorf("failed to find inventory item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems returns every stock line.
func (s *inventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory items")
		return nil, fmt.Errorf("failed to retrieve inventory: %w", err)
	}
	return items, nil
}

// DeleteItem removes a stock line.
func (s *inventoryService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.inventoryRepo.DeleteItem(ctx, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete inventory item", slog.String("item_id", itemID))
		}
		return fmt.Errorf("failed to delete inventory item %s: %w", itemID, err)
	}
	s.LogInfo(ctx, "Inventory item deleted", slog.String("item_id", itemID))
	return nil
}

// Summary totals the stock on hand. Stock value is purchase cost times quantity.
func (s *inventoryService) Summary(ctx context.Context) (domain.InventorySummary, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return domain.InventorySummary{}, err
	}
	summary := domain.InventorySummary{ItemCount: len(items), TotalValue: decimal.Zero}
	for _, item := range items {
		summary.TotalQuantity += item.Quantity
		summary.TotalValue = summary.TotalValue.Add(item.StockValue())
	}
	return summary, nil
}
