package domain

import "github.com/shopspring/decimal"

// InventoryItem is a stock line bought from a supplier.
type InventoryItem struct {
	ItemID        string          `json:"itemID"`
	Name          string          `json:"name"`
	Supplier      string          `json:"supplier"`
	InvoiceNumber string          `json:"invoiceNumber"` // supplier's invoice
	PurchaseCost  decimal.Decimal `json:"purchaseCost"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	HSNCode       string          `json:"hsnCode"`
	GSTPercent    decimal.Decimal `json:"gstPercent"`
	Quantity      int64           `json:"quantity"`
	AuditFields
}

// StockValue is PurchaseCost * Quantity.
func (i InventoryItem) StockValue() decimal.Decimal {
	return i.PurchaseCost.Mul(decimal.NewFromInt(i.Quantity))
}

// InventorySummary totals the stock on hand.
type InventorySummary struct {
	ItemCount     int             `json:"itemCount"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}
