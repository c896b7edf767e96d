package dto

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVendorRequest defines the payload for creating a vendor.
type CreateVendorRequest struct {
	VendorNumber     string `json:"vendorNumber" binding:"required,max=50"`
	VendorName       string `json:"vendorName" binding:"required,max=255"`
	PaymentTermsDays int    `json:"paymentTermsDays" binding:"omitempty,min=0,max=365"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone"`
	TaxID            string `json:"taxID"`
}

// UpdateVendorRequest patches a vendor.
type UpdateVendorRequest struct {
	VendorName       *string `json:"vendorName"`
	PaymentTermsDays *int    `json:"paymentTermsDays" binding:"omitempty,min=0,max=365"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	TaxID            *string `json:"taxID"`
	IsActive         *bool   `json:"isActive"`
}

// ListVendorsParams defines query parameters for listing vendors.
type ListVendorsParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

// CreateTaxRateRequest defines the payload for creating a tax rate.
type CreateTaxRateRequest struct {
	Name string          `json:"name" binding:"required"`
	Rate decimal.Decimal `json:"rate"` // fraction, e.g. 0.0825
}

// VendorResponse is returned for vendor endpoints.
type VendorResponse struct {
	domain.Vendor
}

// ToVendorResponses converts vendors to responses.
func ToVendorResponses(vendors []domain.Vendor) []VendorResponse {
	res := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		res[i] = VendorResponse{Vendor: v}
	}
	return res
}
