package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// CustomerSvcFacade defines customer maintenance
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actor string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actor string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error)
}

// InvoiceSvcFacade defines customer invoice operations
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, actor string) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, actor string) (*domain.Invoice, error)
	VoidInvoice(ctx context.Context, invoiceID string, reason string, actor string) (*domain.Invoice, error)
	// DeleteInvoice voids the invoice's journal entry and removes the invoice. Invoices with payments cannot be deleted.
	DeleteInvoice(ctx context.Context, invoiceID string, actor string) error
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
}

// CustomerPaymentSvcFacade defines customer payment operations
type CustomerPaymentSvcFacade interface {
	CreateCustomerPayment(ctx context.Context, req dto.CreateCustomerPaymentRequest, actor string) (*domain.CustomerPayment, error)
	// UpdateCustomerPayment changes only date, method, reference and memo.
	UpdateCustomerPayment(ctx context.Context, paymentID string, req dto.UpdateCustomerPaymentRequest, actor string) (*domain.CustomerPayment, error)
	VoidCustomerPayment(ctx context.Context, paymentID string, reason string, actor string) (*domain.CustomerPayment, error)
	GetCustomerPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error)
	ListCustomerPayments(ctx context.Context, customerID *string) ([]domain.CustomerPayment, error)
}
