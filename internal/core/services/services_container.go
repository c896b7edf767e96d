package services

import (
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Role accounts are shared by the payables services, the bridge and the balance sheet.
	roles := NewAccountRoleResolver(repos.AccountRepo, cfg.AccountRoles)

	container.Account = NewAccountService(repos.TxManager, repos.AccountRepo)

	journal := NewJournalService(repos.TxManager, repos.JournalRepo, repos.AccountRepo)
	container.Journal = journal

	container.Vendor = NewVendorService(repos.VendorRepo, repos.TaxRateRepo)
	container.Bill = NewBillService(
		repos.TxManager,
		repos.BillRepo,
		repos.VendorRepo,
		repos.TaxRateRepo,
		repos.AccountRepo,
		journal,
		roles,
	)
	container.BillPayment = NewBillPaymentService(
		repos.TxManager,
		repos.BillPaymentRepo,
		repos.BillRepo,
		repos.VendorRepo,
		repos.AccountRepo,
		journal,
		roles,
	)

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Invoice = NewInvoiceService(
		repos.TxManager,
		repos.InvoiceRepo,
		repos.CustomerRepo,
		repos.TaxRateRepo,
		repos.AccountRepo,
		journal,
		roles,
	)
	container.CustomerPayment = NewCustomerPaymentService(
		repos.TxManager,
		repos.CustomerPaymentRepo,
		repos.InvoiceRepo,
		repos.CustomerRepo,
		repos.AccountRepo,
		journal,
		roles,
	)

	var reportingOpts []ReportingServiceOption
	if repos.InventoryValuator != nil {
		reportingOpts = append(reportingOpts, WithInventoryValuator(repos.InventoryValuator))
	}
	container.Reporting = NewReportingService(repos.AccountRepo, repos.ReportingRepo, roles, reportingOpts...)

	container.Bridge = NewPosBridgeService(repos.TxManager, repos.JournalRepo, journal, roles)
	container.IntegrationKey = NewIntegrationKeyService(repos.IntegrationKeyRepo)

	return container
}
