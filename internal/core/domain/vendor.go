package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var taxIDPattern = regexp.MustCompile(`^\d{2}-\d{7}$`)

// Vendor is a supplier that sends bills.
type Vendor struct {
	VendorID         string `json:"vendorID"`
	VendorNumber     string `json:"vendorNumber"`
	VendorName       string `json:"vendorName"`
	PaymentTermsDays int    `json:"paymentTermsDays"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	TaxID            string `json:"taxID"`
	IsActive         bool   `json:"isActive"`
	AuditFields
}

// ValidTaxID reports whether id is empty or in NN-NNNNNNN form.
func ValidTaxID(id string) bool {
	return id == "" || taxIDPattern.MatchString(id)
}

// TermsDays returns the vendor's payment terms, falling back to the default.
func (v Vendor) TermsDays() int {
	if v.PaymentTermsDays <= 0 {
		return DefaultPaymentTermsDays
	}
	return v.PaymentTermsDays
}

// TaxRate is a named rate applied to bill lines. Rate is a fraction, e.g. 0.0825.
type TaxRate struct {
	TaxRateID string          `json:"taxRateID"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}
