package models

import "github.com/shopspring/decimal"

// InventoryItem is a row of the inventory_items table.
type InventoryItem struct {
	ItemID        string          `db:"item_id"`
	Name          string          `db:"name"`
	Supplier      string          `db:"supplier"`
	InvoiceNumber string          `db:"invoice_number"`
	PurchaseCost  decimal.Decimal `db:"purchase_cost"`
	SalesPrice    decimal.Decimal `db:"sales_price"`
	HSNCode       string          `db:"hsn_code"`
	GSTPercent    decimal.Decimal `db:"gst_percent"`
	Quantity      int64           `db:"quantity"`
	AuditFields
}
