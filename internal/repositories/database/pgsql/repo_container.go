package pgsql

import (
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository over one pool.
// valuator may be nil, in which case the balance sheet keeps the ledger inventory balance.
func NewRepositoryProvider(dbPool *pgxpool.Pool, valuator portsrepo.InventoryValuator) portsrepo.RepositoryProvider {
	vendorRepo := newPgxVendorRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:           &BaseRepository{Pool: dbPool},
		AccountRepo:         newPgxAccountRepository(dbPool),
		JournalRepo:         newPgxTransactionRepository(dbPool),
		BillRepo:            newPgxBillRepository(dbPool),
		BillPaymentRepo:     newPgxBillPaymentRepository(dbPool),
		VendorRepo:          vendorRepo,
		TaxRateRepo:         vendorRepo,
		CustomerRepo:        newPgxCustomerRepository(dbPool),
		InvoiceRepo:         newPgxInvoiceRepository(dbPool),
		CustomerPaymentRepo: newPgxCustomerPaymentRepository(dbPool),
		ReportingRepo:       newReportingRepository(dbPool),
		IntegrationKeyRepo:  newPgxIntegrationKeyRepository(dbPool),
		InventoryValuator:   valuator,
	}
}
