package dto

import (
	"time"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/utils"
)

// InventoryItemRequest creates or replaces a stock line.
type InventoryItemRequest struct {
	Name          string             `json:"name" binding:"required"`
	Supplier      string             `json:"supplier"`
	InvoiceNumber string             `json:"invoiceNumber"`
	PurchaseCost  utils.NumericField `json:"purchaseCost" swaggertype:"string" example:"120.50"`
	SalesPrice    utils.NumericField `json:"salesPrice" swaggertype:"string" example:"150"`
	HSNCode       string             `json:"hsnCode" binding:"omitempty,numeric,min=4,max=8"`
	GSTPercent    utils.NumericField `json:"gstPercent" binding:"omitempty,gst_percent" swaggertype:"string" example:"18"`
	Quantity      int64              `json:"quantity" binding:"min=0"`
}

// InventoryItemResponse defines the stock line returned by the API.
type InventoryItemResponse struct {
	ItemID        string    `json:"itemID"`
	Name          string    `json:"name"`
	Supplier      string    `json:"supplier"`
	InvoiceNumber string    `json:"invoiceNumber"`
	PurchaseCost  string    `json:"purchaseCost"`
	SalesPrice    string    `json:"salesPrice"`
	HSNCode       string    `json:"hsnCode"`
	GSTPercent    string    `json:"gstPercent"`
	Quantity      int64     `json:"quantity"`
	StockValue    string    `json:"stockValue"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// InventorySummaryResponse totals the stock on hand.
type InventorySummaryResponse struct {
	ItemCount     int    `json:"itemCount"`
	TotalQuantity int64  `json:"totalQuantity"`
	TotalValue    string `json:"totalValue"`
}

// ListInventoryResponse wraps the stock list with its summary.
type ListInventoryResponse struct {
	Items   []InventoryItemResponse  `json:"items"`
	Summary InventorySummaryResponse `json:"summary"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to InventoryItemResponse DTO
func ToInventoryItemResponse(item *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:        item.ItemID,
		Name:          item.Name,
		Supplier:      item.Supplier,
		InvoiceNumber: item.InvoiceNumber,
		PurchaseCost:  utils.FormatAmount(item.PurchaseCost),
		SalesPrice:    utils.FormatAmount(item.SalesPrice),
		HSNCode:       item.HSNCode,
		GSTPercent:    item.GSTPercent.String(),
		Quantity:      item.Quantity,
		StockValue:    utils.FormatAmount(item.StockValue()),
		CreatedAt:     item.CreatedAt,
		CreatedBy:     item.CreatedBy,
		LastUpdatedAt: item.LastUpdatedAt,
		LastUpdatedBy: item.LastUpdatedBy,
	}
}

// ToListInventoryResponse converts the stock list and its summary.
func ToListInventoryResponse(items []domain.InventoryItem, summary domain.InventorySummary) ListInventoryResponse {
	out := ListInventoryResponse{
		Items: make([]InventoryItemResponse, len(items)),
		Summary: InventorySummaryResponse{
			ItemCount:     summary.ItemCount,
			TotalQuantity: summary.TotalQuantity,
			TotalValue:    utils.FormatAmount(summary.TotalValue),
		},
	}
	for i := range items {
		out.Items[i] = ToInventoryItemResponse(&items[i])
	}
	return out
}
