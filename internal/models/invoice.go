package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is a stored invoice line.
type InvoiceItem struct {
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	GSTPercent decimal.Decimal `json:"gstPercent"`
	Amount     decimal.Decimal `json:"amount"`
}

// InvoiceItems is stored as a JSON document alongside the invoice row.
type InvoiceItems []InvoiceItem

// Value implements driver.Valuer.
func (items InvoiceItems) Value() (driver.Value, error) {
	if items == nil {
		items = InvoiceItems{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (items *InvoiceItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*items = InvoiceItems{}
		return nil
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("cannot scan %T into InvoiceItems", src)
	}
}

// Invoice is a stored sales invoice with its totals denormalised for reporting.
type Invoice struct {
	InvoiceID       string          `db:"invoice_id"`
	InvoiceNumber   string          `db:"invoice_number"`
	CustomerName    string          `db:"customer_name"`
	CustomerAddress string          `db:"customer_address"`
	CustomerGST     string          `db:"customer_gst"`
	InvoiceDate     time.Time       `db:"invoice_date"`
	Items           InvoiceItems    `db:"items"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	TotalGST        decimal.Decimal `db:"total_gst"`
	Total           decimal.Decimal `db:"total"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
