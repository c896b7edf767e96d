package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// VendorRepository defines persistence for vendors
type VendorRepository interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error)
}

// TaxRateRepository defines persistence for tax rates
type TaxRateRepository interface {
	SaveTaxRate(ctx context.Context, rate domain.TaxRate) error
	FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error)
	// FindTaxRatesByIDs returns active rates keyed by id; unknown ids are omitted.
	FindTaxRatesByIDs(ctx context.Context, taxRateIDs []string) (map[string]domain.TaxRate, error)
	ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error)
}
