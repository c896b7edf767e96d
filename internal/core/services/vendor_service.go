package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type vendorService struct {
	BaseService
	vendorRepo  portsrepo.VendorRepository
	taxRateRepo portsrepo.TaxRateRepository
	now         func() time.Time
}

// VendorServiceOption is a functional option for configuring the vendor service
type VendorServiceOption func(*vendorService)

// WithVendorClock overrides the clock used for audit timestamps.
func WithVendorClock(now func() time.Time) VendorServiceOption {
	return func(s *vendorService) {
		s.now = now
	}
}

// NewVendorService creates a service for vendor and tax rate maintenance.
func NewVendorService(vendorRepo portsrepo.VendorRepository, taxRateRepo portsrepo.TaxRateRepository, options ...VendorServiceOption) portssvc.VendorSvcFacade {
	svc := &vendorService{
		vendorRepo:  vendorRepo,
		taxRateRepo: taxRateRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, actor string) (*domain.Vendor, error) {
	if strings.TrimSpace(req.VendorName) == "" {
		return nil, fmt.Errorf("%w: vendor name is required", apperrors.ErrValidation)
	}
	if !domain.ValidTaxID(req.TaxID) {
		return nil, fmt.Errorf("%w: tax id must look like 12-3456789", apperrors.ErrValidation)
	}

	now := s.now()
	vendor := domain.Vendor{
		VendorID:         uuid.NewString(),
		VendorNumber:     req.VendorNumber,
		VendorName:       req.VendorName,
		PaymentTermsDays: req.PaymentTermsDays,
		Email:            req.Email,
		Phone:            req.Phone,
		TaxID:            req.TaxID,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if vendor.PaymentTermsDays == 0 {
		vendor.PaymentTermsDays = domain.DefaultPaymentTermsDays
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save vendor", slog.String("vendor_number", vendor.VendorNumber))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Vendor created", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, actor string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.VendorName != nil {
		if strings.TrimSpace(*req.VendorName) == "" {
			return nil, fmt.Errorf("%w: vendor name is required", apperrors.ErrValidation)
		}
		vendor.VendorName = *req.VendorName
	}
	if req.TaxID != nil {
		if !domain.ValidTaxID(*req.TaxID) {
			return nil, fmt.Errorf("%w: tax id must look like 12-3456789", apperrors.ErrValidation)
		}
		vendor.TaxID = *req.TaxID
	}
	if req.PaymentTermsDays != nil {
		vendor.PaymentTermsDays = *req.PaymentTermsDays
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}
	vendor.LastUpdatedAt = s.now()
	vendor.LastUpdatedBy = actor

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		s.LogError(ctx, err, "Failed to update vendor", slog.String("vendor_id", vendorID))
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

func (s *vendorService) ListVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors")
		return nil, err
	}
	if vendors == nil {
		return []domain.Vendor{}, nil
	}
	return vendors, nil
}

func (s *vendorService) CreateTaxRate(ctx context.Context, req dto.CreateTaxRateRequest, actor string) (*domain.TaxRate, error) {
	if req.Rate.IsNegative() || req.Rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: tax rate must be a fraction between 0 and 1", apperrors.ErrValidation)
	}

	now := s.now()
	rate := domain.TaxRate{
		TaxRateID: uuid.NewString(),
		Name:      req.Name,
		Rate:      req.Rate,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if err := s.taxRateRepo.SaveTaxRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save tax rate", slog.String("name", req.Name))
		return nil, err
	}
	return &rate, nil
}

func (s *vendorService) GetTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	return s.taxRateRepo.FindTaxRateByID(ctx, taxRateID)
}

func (s *vendorService) ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error) {
	rates, err := s.taxRateRepo.ListTaxRates(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if rates == nil {
		return []domain.TaxRate{}, nil
	}
	return rates, nil
}
