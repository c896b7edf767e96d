package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Vendor is a supplier row.
type Vendor struct {
	VendorID         string         `db:"vendor_id"`
	VendorNumber     sql.NullString `db:"vendor_number"`
	VendorName       string         `db:"vendor_name"`
	PaymentTermsDays int            `db:"payment_terms_days"`
	Email            sql.NullString `db:"email"`
	Phone            sql.NullString `db:"phone"`
	TaxID            sql.NullString `db:"tax_id"`
	IsActive         bool           `db:"is_active"`
	AuditFields
}

// TaxRate is a named purchase tax rate, stored as a fraction.
type TaxRate struct {
	TaxRateID string          `db:"tax_rate_id"`
	Name      string          `db:"name"`
	Rate      decimal.Decimal `db:"rate"`
	IsActive  bool            `db:"is_active"`
	AuditFields
}
