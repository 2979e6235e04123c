package mapping

import (
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/models"
)

// ToModelAuditFields copies the audit columns of a firm profile or inventory row.
// Timestamps are stored in UTC.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt.UTC(),
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt.UTC(),
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields is the inverse of ToModelAuditFields.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt.UTC(),
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt.UTC(),
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
