package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// memStore is an in-memory stand-in for every Postgres repository. It keeps
// copies so that services cannot mutate stored rows without going through a write.
// Transactions are not isolated: Rollback is a no-op. Row locks taken with
// ...ForUpdate are tracked until the transaction ends so that reads which must
// follow a lock can check for it.
type memStore struct {
	mu        sync.Mutex
	accounts  map[string]domain.Account
	txns      map[string]domain.Transaction
	bills     map[string]domain.Bill
	payments  map[string]domain.BillPayment
	vendors   map[string]domain.Vendor
	taxRates  map[string]domain.TaxRate
	customers map[string]domain.Customer
	invoices  map[string]domain.Invoice
	receipts  map[string]domain.CustomerPayment
	keys      map[string]domain.IntegrationKey
	seq       map[string]int
	locked    map[string]bool
}

var (
	_ portsrepo.TransactionManager              = (*memStore)(nil)
	_ portsrepo.AccountRepositoryFacade         = (*memStore)(nil)
	_ portsrepo.TransactionRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.BillRepositoryFacade            = (*memStore)(nil)
	_ portsrepo.BillPaymentRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.VendorRepository                = (*memStore)(nil)
	_ portsrepo.TaxRateRepository               = (*memStore)(nil)
	_ portsrepo.CustomerRepository              = (*memStore)(nil)
	_ portsrepo.InvoiceRepositoryFacade         = (*memStore)(nil)
	_ portsrepo.CustomerPaymentRepositoryFacade = (*memStore)(nil)
	_ portsrepo.ReportingRepository             = (*memStore)(nil)
	_ portsrepo.IntegrationKeyRepository        = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		accounts:  map[string]domain.Account{},
		txns:      map[string]domain.Transaction{},
		bills:     map[string]domain.Bill{},
		payments:  map[string]domain.BillPayment{},
		vendors:   map[string]domain.Vendor{},
		taxRates:  map[string]domain.TaxRate{},
		customers: map[string]domain.Customer{},
		invoices:  map[string]domain.Invoice{},
		receipts:  map[string]domain.CustomerPayment{},
		keys:      map[string]domain.IntegrationKey{},
		seq:       map[string]int{},
		locked:    map[string]bool{},
	}
}

func (m *memStore) next(prefix string) string {
	m.seq[prefix]++
	return fmt.Sprintf("%s-%06d", prefix, m.seq[prefix])
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
}

func copyTxn(t domain.Transaction) domain.Transaction {
	t.Lines = append([]domain.TransactionLine(nil), t.Lines...)
	return t
}

func copyBill(b domain.Bill) domain.Bill {
	b.Lines = append([]domain.BillLine(nil), b.Lines...)
	return b
}

func copyPayment(p domain.BillPayment) domain.BillPayment {
	p.Applications = append([]domain.BillPaymentApplication(nil), p.Applications...)
	return p
}

func copyInvoice(i domain.Invoice) domain.Invoice {
	i.Lines = append([]domain.InvoiceLine(nil), i.Lines...)
	return i
}

func copyReceipt(p domain.CustomerPayment) domain.CustomerPayment {
	p.Applications = append([]domain.CustomerPaymentApplication(nil), p.Applications...)
	return p
}

func within(d time.Time, from *time.Time, to time.Time) bool {
	if from != nil && d.Before(*from) {
		return false
	}
	return !d.After(to)
}

// --- TransactionManager ---

func (m *memStore) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	m.unlockAll()
	return nil
}

func (m *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	m.unlockAll()
	return nil
}

func (m *memStore) unlockAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locked = map[string]bool{}
}

// --- accounts ---

func (m *memStore) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[accountID]
	if !ok {
		return nil, notFound("account", accountID)
	}
	return &a, nil
}

func (m *memStore) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.AccountNumber == accountNumber {
			return &a, nil
		}
	}
	return nil, notFound("account", accountNumber)
}

func (m *memStore) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := map[string]domain.Account{}
	for _, id := range accountIDs {
		if a, ok := m.accounts[id]; ok {
			res[id] = a
		}
	}
	return res, nil
}

func (m *memStore) FindAccountsByNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := map[string]bool{}
	for _, n := range accountNumbers {
		wanted[n] = true
	}
	res := map[string]domain.Account{}
	for _, a := range m.accounts {
		if wanted[a.AccountNumber] {
			res[a.AccountNumber] = a
		}
	}
	return res, nil
}

func (m *memStore) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Account
	for _, a := range m.accounts {
		if filter.AccountType != nil && a.AccountType != *filter.AccountType {
			continue
		}
		if filter.IsActive != nil && a.IsActive != *filter.IsActive {
			continue
		}
		if filter.ParentID != nil && a.ParentAccountID != *filter.ParentID {
			continue
		}
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].AccountNumber < res[j].AccountNumber })
	return res, nil
}

func (m *memStore) CountTransactionLines(ctx context.Context, accountID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.txns {
		for _, l := range t.Lines {
			if l.AccountID == accountID {
				n++
			}
		}
	}
	return n, nil
}

func (m *memStore) GetPostedTotals(ctx context.Context, accountID string, asOf time.Time) (domain.AccountTotals, error) {
	totals, err := m.GetAccountTotals(ctx, nil, asOf)
	if err != nil {
		return domain.AccountTotals{}, err
	}
	t, ok := totals[accountID]
	if !ok {
		return domain.AccountTotals{AccountID: accountID, Debits: decimal.Zero, Credits: decimal.Zero}, nil
	}
	return t, nil
}

func (m *memStore) SaveAccount(ctx context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.AccountNumber == account.AccountNumber {
			return fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, account.AccountNumber)
		}
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *memStore) SaveAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	for _, a := range accounts {
		if err := m.SaveAccount(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStore) UpdateAccount(ctx context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.AccountID]; !ok {
		return notFound("account", account.AccountID)
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *memStore) DeleteAccount(ctx context.Context, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, accountID)
	return nil
}

// --- journal ---

func (m *memStore) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.txns[transactionID]
	if !ok {
		return nil, notFound("transaction", transactionID)
	}
	t = copyTxn(t)
	return &t, nil
}

func (m *memStore) FindPostedBySourceDocument(ctx context.Context, sourceType, sourceID string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.txns {
		if t.IsPosted && !t.IsVoid && t.SourceDocumentType == sourceType && t.SourceDocumentID == sourceID {
			t = copyTxn(t)
			return &t, nil
		}
	}
	return nil, notFound("source document", sourceType+"/"+sourceID)
}

func (m *memStore) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Transaction
	for _, t := range m.txns {
		if filter.TransactionType != nil && t.TransactionType != *filter.TransactionType {
			continue
		}
		if filter.Status != nil && t.Status() != *filter.Status {
			continue
		}
		if filter.SourceDocumentType != nil && t.SourceDocumentType != *filter.SourceDocumentType {
			continue
		}
		t.Lines = nil
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].TransactionNumber > res[j].TransactionNumber })
	if filter.Limit > 0 && len(res) > filter.Limit {
		res = res[:filter.Limit]
	}
	return res, nil, nil
}

func (m *memStore) GetGeneralLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.LedgerEntry
	for _, t := range m.txns {
		if !t.IsPosted || t.IsVoid {
			continue
		}
		if filter.StartDate != nil && t.TransactionDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.TransactionDate.After(*filter.EndDate) {
			continue
		}
		for _, l := range t.Lines {
			if filter.AccountID != nil && l.AccountID != *filter.AccountID {
				continue
			}
			a := m.accounts[l.AccountID]
			res = append(res, domain.LedgerEntry{
				TransactionID:     t.TransactionID,
				TransactionNumber: t.TransactionNumber,
				TransactionDate:   t.TransactionDate,
				TransactionType:   t.TransactionType,
				Description:       t.Description,
				LineNumber:        l.LineNumber,
				LineDescription:   l.Description,
				AccountID:         l.AccountID,
				AccountNumber:     a.AccountNumber,
				AccountName:       a.AccountName,
				AccountType:       a.AccountType,
				BalanceType:       a.BalanceType,
				DebitAmount:       l.DebitAmount,
				CreditAmount:      l.CreditAmount,
				EntityType:        l.EntityType,
				EntityID:          l.EntityID,
			})
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].TransactionDate.Equal(res[j].TransactionDate) {
			return res[i].TransactionDate.Before(res[j].TransactionDate)
		}
		if res[i].TransactionNumber != res[j].TransactionNumber {
			return res[i].TransactionNumber < res[j].TransactionNumber
		}
		return res[i].LineNumber < res[j].LineNumber
	})
	return res, nil
}

func (m *memStore) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if txn.SourceDocumentType != "" && txn.IsPosted {
		for _, t := range m.txns {
			if t.IsPosted && !t.IsVoid && t.SourceDocumentType == txn.SourceDocumentType && t.SourceDocumentID == txn.SourceDocumentID {
				return fmt.Errorf("%w: source document %s/%s", apperrors.ErrDuplicate, txn.SourceDocumentType, txn.SourceDocumentID)
			}
		}
	}
	txn.TransactionNumber = m.next("JE")
	m.txns[txn.TransactionID] = copyTxn(*txn)
	return nil
}

func (m *memStore) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	return m.FindTransactionByID(ctx, transactionID)
}

func (m *memStore) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.txns[txn.TransactionID]
	if !ok {
		return notFound("transaction", txn.TransactionID)
	}
	lines := stored.Lines
	stored = txn
	stored.Lines = lines
	m.txns[txn.TransactionID] = stored
	return nil
}

func (m *memStore) ReplaceLinesInTx(ctx context.Context, tx pgx.Tx, transactionID string, lines []domain.TransactionLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.txns[transactionID]
	if !ok {
		return notFound("transaction", transactionID)
	}
	stored.Lines = append([]domain.TransactionLine(nil), lines...)
	m.txns[transactionID] = stored
	return nil
}

func (m *memStore) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.txns, transactionID)
	return nil
}

// --- bills ---

func (m *memStore) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bills[billID]
	if !ok {
		return nil, notFound("bill", billID)
	}
	b = copyBill(b)
	return &b, nil
}

func (m *memStore) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Bill
	for _, b := range m.bills {
		if filter.VendorID != nil && b.VendorID != *filter.VendorID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		b.Lines = nil
		res = append(res, b)
	}
	return res, nil
}

func (m *memStore) SaveBillInTx(ctx context.Context, tx pgx.Tx, bill *domain.Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bill.BillNumber = m.next("BILL")
	m.bills[bill.BillID] = copyBill(*bill)
	return nil
}

func (m *memStore) FindBillsByIDsForUpdate(ctx context.Context, tx pgx.Tx, billIDs []string) (map[string]domain.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := map[string]domain.Bill{}
	for _, id := range billIDs {
		if b, ok := m.bills[id]; ok {
			b.Lines = nil
			res[id] = b
			m.locked["bill:"+id] = true
		}
	}
	return res, nil
}

func (m *memStore) FindBillLinesInTx(ctx context.Context, tx pgx.Tx, billID string) ([]domain.BillLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.locked["bill:"+billID] {
		return nil, fmt.Errorf("bill %s lines read without a row lock", billID)
	}
	b, ok := m.bills[billID]
	if !ok {
		return nil, notFound("bill", billID)
	}
	return append([]domain.BillLine(nil), b.Lines...), nil
}

func (m *memStore) UpdateBillInTx(ctx context.Context, tx pgx.Tx, bill domain.Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.bills[bill.BillID]
	if !ok {
		return notFound("bill", bill.BillID)
	}
	lines := stored.Lines
	stored = bill
	stored.Lines = lines
	m.bills[bill.BillID] = stored
	return nil
}

func (m *memStore) ReplaceBillLinesInTx(ctx context.Context, tx pgx.Tx, billID string, lines []domain.BillLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.bills[billID]
	if !ok {
		return notFound("bill", billID)
	}
	stored.Lines = append([]domain.BillLine(nil), lines...)
	m.bills[billID] = stored
	return nil
}

func (m *memStore) DeleteBillInTx(ctx context.Context, tx pgx.Tx, billID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bills, billID)
	return nil
}

// --- bill payments ---

func (m *memStore) FindBillPaymentByID(ctx context.Context, paymentID string) (*domain.BillPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[paymentID]
	if !ok {
		return nil, notFound("bill payment", paymentID)
	}
	p = copyPayment(p)
	return &p, nil
}

func (m *memStore) ListBillPayments(ctx context.Context, vendorID *string) ([]domain.BillPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.BillPayment
	for _, p := range m.payments {
		if vendorID != nil && p.VendorID != *vendorID {
			continue
		}
		res = append(res, copyPayment(p))
	}
	return res, nil
}

func (m *memStore) SaveBillPaymentInTx(ctx context.Context, tx pgx.Tx, payment *domain.BillPayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.PaymentNumber = m.next("BPAY")
	m.payments[payment.PaymentID] = copyPayment(*payment)
	return nil
}

func (m *memStore) FindBillPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.BillPayment, error) {
	return m.FindBillPaymentByID(ctx, paymentID)
}

func (m *memStore) UpdateBillPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.BillPayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.payments[payment.PaymentID]
	if !ok {
		return notFound("bill payment", payment.PaymentID)
	}
	apps := stored.Applications
	stored = payment
	stored.Applications = apps
	m.payments[payment.PaymentID] = stored
	return nil
}

// --- vendors and tax rates ---

func (m *memStore) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vendors {
		if v.VendorNumber == vendor.VendorNumber {
			return fmt.Errorf("%w: vendor number %s", apperrors.ErrDuplicate, vendor.VendorNumber)
		}
	}
	m.vendors[vendor.VendorID] = vendor
	return nil
}

func (m *memStore) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vendors[vendor.VendorID] = vendor
	return nil
}

func (m *memStore) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vendors[vendorID]
	if !ok {
		return nil, notFound("vendor", vendorID)
	}
	return &v, nil
}

func (m *memStore) ListVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Vendor
	for _, v := range m.vendors {
		if activeOnly && !v.IsActive {
			continue
		}
		res = append(res, v)
	}
	return res, nil
}

func (m *memStore) SaveTaxRate(ctx context.Context, rate domain.TaxRate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.taxRates[rate.TaxRateID] = rate
	return nil
}

func (m *memStore) FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.taxRates[taxRateID]
	if !ok {
		return nil, notFound("tax rate", taxRateID)
	}
	return &r, nil
}

func (m *memStore) FindTaxRatesByIDs(ctx context.Context, taxRateIDs []string) (map[string]domain.TaxRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := map[string]domain.TaxRate{}
	for _, id := range taxRateIDs {
		if r, ok := m.taxRates[id]; ok && r.IsActive {
			res[id] = r
		}
	}
	return res, nil
}

func (m *memStore) ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.TaxRate
	for _, r := range m.taxRates {
		if activeOnly && !r.IsActive {
			continue
		}
		res = append(res, r)
	}
	return res, nil
}

// --- customers ---

func (m *memStore) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if customer.CustomerNumber != "" && c.CustomerNumber == customer.CustomerNumber {
			return fmt.Errorf("%w: customer number %s", apperrors.ErrDuplicate, customer.CustomerNumber)
		}
	}
	m.customers[customer.CustomerID] = customer
	return nil
}

func (m *memStore) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[customer.CustomerID]; !ok {
		return notFound("customer", customer.CustomerID)
	}
	m.customers[customer.CustomerID] = customer
	return nil
}

func (m *memStore) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[customerID]
	if !ok {
		return nil, notFound("customer", customerID)
	}
	return &c, nil
}

func (m *memStore) ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Customer
	for _, c := range m.customers {
		if activeOnly && !c.IsActive {
			continue
		}
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CustomerName < res[j].CustomerName })
	return res, nil
}

// --- invoices ---

func (m *memStore) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[invoiceID]
	if !ok {
		return nil, notFound("invoice", invoiceID)
	}
	inv = copyInvoice(inv)
	return &inv, nil
}

func (m *memStore) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Invoice
	for _, inv := range m.invoices {
		if filter.CustomerID != nil && inv.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		inv.Lines = nil
		res = append(res, inv)
	}
	return res, nil
}

func (m *memStore) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	invoice.InvoiceNumber = m.next("INV")
	m.invoices[invoice.InvoiceID] = copyInvoice(*invoice)
	return nil
}

func (m *memStore) FindInvoicesByIDsForUpdate(ctx context.Context, tx pgx.Tx, invoiceIDs []string) (map[string]domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := map[string]domain.Invoice{}
	for _, id := range invoiceIDs {
		if inv, ok := m.invoices[id]; ok {
			inv.Lines = nil
			res[id] = inv
			m.locked["invoice:"+id] = true
		}
	}
	return res, nil
}

func (m *memStore) FindInvoiceLinesInTx(ctx context.Context, tx pgx.Tx, invoiceID string) ([]domain.InvoiceLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.locked["invoice:"+invoiceID] {
		return nil, fmt.Errorf("invoice %s lines read without a row lock", invoiceID)
	}
	inv, ok := m.invoices[invoiceID]
	if !ok {
		return nil, notFound("invoice", invoiceID)
	}
	return append([]domain.InvoiceLine(nil), inv.Lines...), nil
}

func (m *memStore) UpdateInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.invoices[invoice.InvoiceID]
	if !ok {
		return notFound("invoice", invoice.InvoiceID)
	}
	lines := stored.Lines
	stored = invoice
	stored.Lines = lines
	m.invoices[invoice.InvoiceID] = stored
	return nil
}

func (m *memStore) ReplaceInvoiceLinesInTx(ctx context.Context, tx pgx.Tx, invoiceID string, lines []domain.InvoiceLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.invoices[invoiceID]
	if !ok {
		return notFound("invoice", invoiceID)
	}
	stored.Lines = append([]domain.InvoiceLine(nil), lines...)
	m.invoices[invoiceID] = stored
	return nil
}

func (m *memStore) DeleteInvoiceInTx(ctx context.Context, tx pgx.Tx, invoiceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.invoices, invoiceID)
	return nil
}

// --- customer payments ---

func (m *memStore) FindCustomerPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.receipts[paymentID]
	if !ok {
		return nil, notFound("customer payment", paymentID)
	}
	p = copyReceipt(p)
	return &p, nil
}

func (m *memStore) ListCustomerPayments(ctx context.Context, customerID *string) ([]domain.CustomerPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.CustomerPayment
	for _, p := range m.receipts {
		if customerID != nil && p.CustomerID != *customerID {
			continue
		}
		res = append(res, copyReceipt(p))
	}
	return res, nil
}

func (m *memStore) SaveCustomerPaymentInTx(ctx context.Context, tx pgx.Tx, payment *domain.CustomerPayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.PaymentNumber = m.next("CPAY")
	m.receipts[payment.PaymentID] = copyReceipt(*payment)
	return nil
}

func (m *memStore) FindCustomerPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.CustomerPayment, error) {
	return m.FindCustomerPaymentByID(ctx, paymentID)
}

func (m *memStore) UpdateCustomerPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CustomerPayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.receipts[payment.PaymentID]
	if !ok {
		return notFound("customer payment", payment.PaymentID)
	}
	apps := stored.Applications
	stored = payment
	stored.Applications = apps
	m.receipts[payment.PaymentID] = stored
	return nil
}

// --- reporting ---

func (m *memStore) GetAccountTotals(ctx context.Context, from *time.Time, to time.Time) (map[string]domain.AccountTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := map[string]domain.AccountTotals{}
	for _, t := range m.txns {
		if !t.IsPosted || t.IsVoid || !within(t.TransactionDate, from, to) {
			continue
		}
		for _, l := range t.Lines {
			tot, ok := res[l.AccountID]
			if !ok {
				tot = domain.AccountTotals{AccountID: l.AccountID, Debits: decimal.Zero, Credits: decimal.Zero}
			}
			tot.Debits = tot.Debits.Add(l.DebitAmount)
			tot.Credits = tot.Credits.Add(l.CreditAmount)
			res[l.AccountID] = tot
		}
	}
	return res, nil
}

func (m *memStore) GetTransactionsTouchingAccounts(ctx context.Context, accountIDs []string, from, to time.Time) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := map[string]bool{}
	for _, id := range accountIDs {
		wanted[id] = true
	}
	var res []domain.Transaction
	for _, t := range m.txns {
		if !t.IsPosted || t.IsVoid || !within(t.TransactionDate, &from, to) {
			continue
		}
		for _, l := range t.Lines {
			if wanted[l.AccountID] {
				res = append(res, copyTxn(t))
				break
			}
		}
	}
	return res, nil
}

// --- integration keys ---

func (m *memStore) Create(ctx context.Context, key *domain.IntegrationKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key.KeyID = uuid.NewString()
	key.CreatedAt = time.Now()
	m.keys[key.KeyID] = *key
	return nil
}

func (m *memStore) FindByID(ctx context.Context, keyID string) (*domain.IntegrationKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.keys[keyID]
	if !ok {
		return nil, notFound("integration key", keyID)
	}
	return &k, nil
}

func (m *memStore) FindByPrefix(ctx context.Context, prefix string) (*domain.IntegrationKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range m.keys {
		if k.Prefix == prefix {
			return &k, nil
		}
	}
	return nil, notFound("integration key", prefix)
}

func (m *memStore) List(ctx context.Context) ([]domain.IntegrationKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.IntegrationKey
	for _, k := range m.keys {
		res = append(res, k)
	}
	return res, nil
}

func (m *memStore) TouchLastUsed(ctx context.Context, keyID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.keys[keyID]
	k.LastUsedAt = &at
	m.keys[keyID] = k
	return nil
}

func (m *memStore) Revoke(ctx context.Context, keyID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.keys[keyID]
	if !ok {
		return notFound("integration key", keyID)
	}
	k.RevokedAt = &at
	m.keys[keyID] = k
	return nil
}

// --- helpers shared by the suites ---

// seedChart loads the default retail chart and returns account ids keyed by number.
func (m *memStore) seedChart() map[string]string {
	ids := map[string]string{}
	for _, a := range domain.DefaultChart() {
		a.AccountID = uuid.NewString()
		m.accounts[a.AccountID] = a
		ids[a.AccountNumber] = a.AccountID
	}
	return ids
}

// transactionsBySource returns every stored entry for a source document, void ones included.
func (m *memStore) transactionsBySource(sourceType, sourceID string) []domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Transaction
	for _, t := range m.txns {
		if t.SourceDocumentType == sourceType && t.SourceDocumentID == sourceID {
			res = append(res, copyTxn(t))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].TransactionNumber < res[j].TransactionNumber })
	return res
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(strings.TrimSpace(s))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
