package domain

import "time"

// AuditFields stamps who created and last changed a record. The actor is an
// operator id from a bearer token or "integration:<key id>" for POS traffic.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
