package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager           TransactionManager
	AccountRepo         AccountRepositoryFacade
	JournalRepo         TransactionRepositoryFacade
	BillRepo            BillRepositoryFacade
	BillPaymentRepo     BillPaymentRepositoryFacade
	VendorRepo          VendorRepository
	TaxRateRepo         TaxRateRepository
	CustomerRepo        CustomerRepository
	InvoiceRepo         InvoiceRepositoryFacade
	CustomerPaymentRepo CustomerPaymentRepositoryFacade
	ReportingRepo       ReportingRepository
	IntegrationKeyRepo  IntegrationKeyRepository
	InventoryValuator   InventoryValuator               // nil when the balance sheet uses the ledger inventory balance
}
