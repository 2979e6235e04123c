package domain

import "time"

// AuditFields records who created and last changed a mutable record
// (firm profile, inventory items). Journal entries are append-only and carry
// only CreatedAt/CreatedBy.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps a record created by userID at at.
func NewAuditFields(userID string, at time.Time) AuditFields {
	return AuditFields{CreatedAt: at, CreatedBy: userID, LastUpdatedAt: at, LastUpdatedBy: userID}
}

// Touch records a change by userID. A record that was never stamped gets its
// creation fields as well.
func (a *AuditFields) Touch(userID string, at time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = at
		a.CreatedBy = userID
	}
	a.LastUpdatedAt = at
	a.LastUpdatedBy = userID
}
