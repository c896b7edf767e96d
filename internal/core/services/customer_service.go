package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
	now          func() time.Time
}

// CustomerServiceOption is a functional option for configuring the customer service
type CustomerServiceOption func(*customerService)

// WithCustomerClock overrides the clock used for audit timestamps.
func WithCustomerClock(now func() time.Time) CustomerServiceOption {
	return func(s *customerService) {
		s.now = now
	}
}

// NewCustomerService creates a service for customer maintenance.
func NewCustomerService(customerRepo portsrepo.CustomerRepository, options ...CustomerServiceOption) portssvc.CustomerSvcFacade {
	svc := &customerService{
		customerRepo: customerRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actor string) (*domain.Customer, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}

	now := s.now()
	customer := domain.Customer{
		CustomerID:       uuid.NewString(),
		CustomerNumber:   req.CustomerNumber,
		CustomerName:     req.CustomerName,
		PaymentTermsDays: req.PaymentTermsDays,
		Email:            req.Email,
		Phone:            req.Phone,
		BillingAddress:   req.BillingAddress,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if customer.PaymentTermsDays == 0 {
		customer.PaymentTermsDays = domain.DefaultPaymentTermsDays
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save customer", slog.String("customer_number", customer.CustomerNumber))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actor string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		if strings.TrimSpace(*req.CustomerName) == "" {
			return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
		}
		customer.CustomerName = *req.CustomerName
	}
	if req.PaymentTermsDays != nil {
		customer.PaymentTermsDays = *req.PaymentTermsDays
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.BillingAddress != nil {
		customer.BillingAddress = *req.BillingAddress
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}
	customer.LastUpdatedAt = s.now()
	customer.LastUpdatedBy = actor

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}
