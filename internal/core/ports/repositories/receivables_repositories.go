package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CustomerRepository defines persistence for customers
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error)
}

// InvoiceReader defines read operations for customer invoices
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its lines.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoice headers matching filter, newest first.
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
}

// InvoiceWriter defines invoice writes that run inside a caller-owned database transaction
type InvoiceWriter interface {
	// SaveInvoiceInTx inserts an invoice and its lines, filling in InvoiceNumber.
	SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice) error

	// FindInvoicesByIDsForUpdate loads and locks invoices (without lines).
	FindInvoicesByIDsForUpdate(ctx context.Context, tx pgx.Tx, invoiceIDs []string) (map[string]domain.Invoice, error)

	// FindInvoiceLinesInTx reads the lines of an invoice through tx, in line order.
	FindInvoiceLinesInTx(ctx context.Context, tx pgx.Tx, invoiceID string) ([]domain.InvoiceLine, error)

	// UpdateInvoiceInTx persists header, totals, status and linkage of an invoice.
	UpdateInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error

	// ReplaceInvoiceLinesInTx swaps the lines of an invoice.
	ReplaceInvoiceLinesInTx(ctx context.Context, tx pgx.Tx, invoiceID string, lines []domain.InvoiceLine) error

	// DeleteInvoiceInTx removes an invoice; lines cascade.
	DeleteInvoiceInTx(ctx context.Context, tx pgx.Tx, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// CustomerPaymentReader defines read operations for customer payments
type CustomerPaymentReader interface {
	// FindCustomerPaymentByID retrieves a payment with its applications.
	FindCustomerPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error)

	// ListCustomerPayments retrieves payments, optionally for one customer, newest first.
	ListCustomerPayments(ctx context.Context, customerID *string) ([]domain.CustomerPayment, error)
}

// CustomerPaymentWriter defines payment writes that run inside a caller-owned database transaction
type CustomerPaymentWriter interface {
	// SaveCustomerPaymentInTx inserts a payment and its applications, filling in PaymentNumber.
	SaveCustomerPaymentInTx(ctx context.Context, tx pgx.Tx, payment *domain.CustomerPayment) error

	// FindCustomerPaymentByIDForUpdate loads and locks a payment with its applications.
	FindCustomerPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.CustomerPayment, error)

	// UpdateCustomerPaymentInTx persists non-structural fields and void state.
	UpdateCustomerPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CustomerPayment) error
}

// CustomerPaymentRepositoryFacade combines all customer payment repository interfaces
type CustomerPaymentRepositoryFacade interface {
	CustomerPaymentReader
	CustomerPaymentWriter
}
