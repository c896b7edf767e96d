package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelVendor converts a domain Vendor to a model Vendor
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:         d.VendorID,
		VendorNumber:     NullString(d.VendorNumber),
		VendorName:       d.VendorName,
		PaymentTermsDays: d.PaymentTermsDays,
		Email:            NullString(d.Email),
		Phone:            NullString(d.Phone),
		TaxID:            NullString(d.TaxID),
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:         m.VendorID,
		VendorNumber:     m.VendorNumber.String,
		VendorName:       m.VendorName,
		PaymentTermsDays: m.PaymentTermsDays,
		Email:            m.Email.String,
		Phone:            m.Phone.String,
		TaxID:            m.TaxID.String,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTaxRate converts a model TaxRate to a domain TaxRate
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{
		TaxRateID:   m.TaxRateID,
		Name:        m.Name,
		Rate:        m.Rate,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
