package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BillReader defines read operations for vendor bills
type BillReader interface {
	// FindBillByID retrieves a bill with its lines.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBills retrieves bill headers matching filter, newest first.
	ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error)
}

// BillWriter defines bill writes that run inside a caller-owned database transaction
type BillWriter interface {
	// SaveBillInTx inserts a bill and its lines, filling in BillNumber.
	SaveBillInTx(ctx context.Context, tx pgx.Tx, bill *domain.Bill) error

	// FindBillsByIDsForUpdate loads and locks bills (without lines).
	FindBillsByIDsForUpdate(ctx context.Context, tx pgx.Tx, billIDs []string) (map[string]domain.Bill, error)

	// FindBillLinesInTx reads the lines of a bill through tx, in line order.
	FindBillLinesInTx(ctx context.Context, tx pgx.Tx, billID string) ([]domain.BillLine, error)

	// UpdateBillInTx persists header, totals, status and linkage of a bill.
	UpdateBillInTx(ctx context.Context, tx pgx.Tx, bill domain.Bill) error

	// ReplaceBillLinesInTx swaps the lines of a bill.
	ReplaceBillLinesInTx(ctx context.Context, tx pgx.Tx, billID string, lines []domain.BillLine) error

	// DeleteBillInTx removes a bill; lines cascade.
	DeleteBillInTx(ctx context.Context, tx pgx.Tx, billID string) error
}

// BillRepositoryFacade combines all bill repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}

// BillPaymentReader defines read operations for bill payments
type BillPaymentReader interface {
	// FindBillPaymentByID retrieves a payment with its applications.
	FindBillPaymentByID(ctx context.Context, paymentID string) (*domain.BillPayment, error)

	// ListBillPayments retrieves payments, optionally for one vendor, newest first.
	ListBillPayments(ctx context.Context, vendorID *string) ([]domain.BillPayment, error)
}

// BillPaymentWriter defines payment writes that run inside a caller-owned database transaction
type BillPaymentWriter interface {
	// SaveBillPaymentInTx inserts a payment and its applications, filling in PaymentNumber.
	SaveBillPaymentInTx(ctx context.Context, tx pgx.Tx, payment *domain.BillPayment) error

	// FindBillPaymentByIDForUpdate loads and locks a payment with its applications.
	FindBillPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.BillPayment, error)

	// UpdateBillPaymentInTx persists non-structural fields and void state.
	UpdateBillPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.BillPayment) error
}

// BillPaymentRepositoryFacade combines all bill payment repository interfaces
type BillPaymentRepositoryFacade interface {
	BillPaymentReader
	BillPaymentWriter
}
