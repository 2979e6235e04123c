package mapping

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/models"
)

// ToModelInventoryItem converts a domain InventoryItem to a model InventoryItem
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ItemID:        d.ItemID,
		Name:          d.Name,
		Supplier:      d.Supplier,
		InvoiceNumber: d.InvoiceNumber,
		PurchaseCost:  d.PurchaseCost,
		SalesPrice:    d.SalesPrice,
		HSNCode:       d.HSNCode,
		GSTPercent:    d.GSTPercent,
		Quantity:      d.Quantity,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInventoryItem converts a model InventoryItem to a domain InventoryItem
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:        m.ItemID,
		Name:          m.Name,
		Supplier:      m.Supplier,
		InvoiceNumber: m.InvoiceNumber,
		PurchaseCost:  m.PurchaseCost,
		SalesPrice:    m.SalesPrice,
		HSNCode:       m.HSNCode,
		GSTPercent:    m.GSTPercent,
		Quantity:      m.Quantity,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventoryItemSlice converts a slice of model items to domain items
func ToDomainInventoryItemSlice(ms []models.InventoryItem) []domain.InventoryItem {
	ds := make([]domain.InventoryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryItem(m)
	}
	return ds
}
