package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// BillSvcFacade defines vendor bill operations
type BillSvcFacade interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest, actor string) (*domain.Bill, error)
	UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest, actor string) (*domain.Bill, error)
	VoidBill(ctx context.Context, billID string, reason string, actor string) (*domain.Bill, error)
	// DeleteBill voids the bill's journal entry and removes the bill. Bills with payments cannot be deleted.
	DeleteBill(ctx context.Context, billID string, actor string) error
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error)
}

// BillPaymentSvcFacade defines vendor payment operations
type BillPaymentSvcFacade interface {
	CreateBillPayment(ctx context.Context, req dto.CreateBillPaymentRequest, actor string) (*domain.BillPayment, error)
	// UpdateBillPayment changes only date, method, reference and memo.
	UpdateBillPayment(ctx context.Context, paymentID string, req dto.UpdateBillPaymentRequest, actor string) (*domain.BillPayment, error)
	VoidBillPayment(ctx context.Context, paymentID string, reason string, actor string) (*domain.BillPayment, error)
	GetBillPaymentByID(ctx context.Context, paymentID string) (*domain.BillPayment, error)
	ListBillPayments(ctx context.Context, vendorID *string) ([]domain.BillPayment, error)
}

// VendorSvcFacade defines vendor and tax rate maintenance
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, actor string) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, actor string) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error)

	CreateTaxRate(ctx context.Context, req dto.CreateTaxRateRequest, actor string) (*domain.TaxRate, error)
	GetTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error)
	ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error)
}
