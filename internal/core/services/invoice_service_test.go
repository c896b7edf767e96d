package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// receivablesFixture wires the AR services over one in-memory store.
type receivablesFixture struct {
	ctx       context.Context
	store     *memStore
	ids       map[string]string
	now       time.Time
	customers portssvc.CustomerSvcFacade
	invoices  portssvc.InvoiceSvcFacade
	receipts  portssvc.CustomerPaymentSvcFacade
	customer  *domain.Customer
	taxRate   *domain.TaxRate
}

func newReceivablesFixture(t *testing.T) *receivablesFixture {
	f := &receivablesFixture{
		ctx:   context.Background(),
		store: newMemStore(),
		now:   time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}
	f.ids = f.store.seedChart()
	clock := func() time.Time { return f.now }

	roles := services.NewAccountRoleResolver(f.store, nil)
	journal := services.NewJournalService(f.store, f.store, f.store, services.WithJournalClock(clock))
	f.customers = services.NewCustomerService(f.store, services.WithCustomerClock(clock))
	f.invoices = services.NewInvoiceService(f.store, f.store, f.store, f.store, f.store, journal, roles, services.WithInvoiceClock(clock))
	f.receipts = services.NewCustomerPaymentService(f.store, f.store, f.store, f.store, f.store, journal, roles, services.WithCustomerPaymentClock(clock))

	var err error
	f.customer, err = f.customers.CreateCustomer(f.ctx, dto.CreateCustomerRequest{
		CustomerNumber: "C-100", CustomerName: "Bayside Cafe", PaymentTermsDays: 10,
	}, "clerk")
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	f.taxRate = &domain.TaxRate{TaxRateID: "tax-county", Name: "County", Rate: dec("0.0825"), IsActive: true}
	if err := f.store.SaveTaxRate(f.ctx, *f.taxRate); err != nil {
		t.Fatalf("save tax rate: %v", err)
	}
	return f
}

// simpleInvoice creates an untaxed single-line invoice for amount on the default revenue account.
func (f *receivablesFixture) simpleInvoice(customerID, amount string) (*domain.Invoice, error) {
	return f.invoices.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		InvoiceDate: day(2026, 5, 1),
		Lines: []dto.InvoiceLineRequest{
			{Description: "Catering order", Quantity: dec("1"), UnitPrice: dec(amount)},
		},
	}, "clerk")
}

func (f *receivablesFixture) net(number string) string {
	totals, err := f.store.GetPostedTotals(f.ctx, f.ids[number], day(2027, 1, 1))
	if err != nil {
		return err.Error()
	}
	return totals.Credits.Sub(totals.Debits).StringFixed(2)
}

type InvoiceServiceTestSuite struct {
	suite.Suite
	f *receivablesFixture
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.f = newReceivablesFixture(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PostsReceivableRevenueAndTax() {
	f := suite.f
	inv, err := f.invoices.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		CustomerID:  f.customer.CustomerID,
		PONumber:    "PO-3321",
		InvoiceDate: day(2026, 5, 1),
		Lines: []dto.InvoiceLineRequest{
			{Description: "Catering tray", Quantity: dec("2"), UnitPrice: dec("40"), TaxRateID: f.taxRate.TaxRateID},
			{Description: "Delivery", Quantity: dec("1"), UnitPrice: dec("15"), AccountID: f.ids["4100"]},
		},
	}, "clerk")
	suite.Require().NoError(err)

	suite.Equal("INV-000001", inv.InvoiceNumber)
	suite.Equal(domain.InvoiceOpen, inv.Status)
	suite.Equal("Net 10", inv.Terms)
	suite.Equal(day(2026, 5, 11), inv.DueDate)
	suite.Require().Len(inv.Lines, 2)
	suite.Equal(f.ids["4000"], inv.Lines[0].AccountID)
	suite.Equal("6.60", inv.Lines[0].TaxAmount.StringFixed(2))
	suite.Equal("95.00", inv.Subtotal.StringFixed(2))
	suite.Equal("101.60", inv.TotalAmount.StringFixed(2))
	suite.Equal("101.60", inv.BalanceDue.StringFixed(2))

	txn, err := f.store.FindTransactionByID(f.ctx, inv.TransactionID)
	suite.Require().NoError(err)
	suite.True(txn.IsPosted)
	suite.Equal(domain.InvoiceTx, txn.TransactionType)
	suite.Equal(domain.SourceInvoice, txn.SourceDocumentType)
	suite.Equal(inv.InvoiceID, txn.SourceDocumentID)
	suite.Equal("PO-3321", txn.ReferenceNumber)
	suite.Len(txn.Lines, 4)
	suite.Equal("-101.60", f.net("1100"))
	suite.Equal("80.00", f.net("4000"))
	suite.Equal("15.00", f.net("4100"))
	suite.Equal("6.60", f.net("2040"))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Validation() {
	f := suite.f
	line := func(account string) []dto.InvoiceLineRequest {
		return []dto.InvoiceLineRequest{{Description: "Tray", Quantity: dec("1"), UnitPrice: dec("10"), AccountID: f.ids[account]}}
	}

	_, err := f.invoices.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{CustomerID: f.customer.CustomerID, InvoiceDate: day(2026, 5, 1), Lines: line("5000")}, "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "Revenue or Other Income")

	_, err = f.invoices.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{CustomerID: "nobody", InvoiceDate: day(2026, 5, 1), Lines: line("4000")}, "clerk")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = f.invoices.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		CustomerID: f.customer.CustomerID, InvoiceDate: day(2026, 5, 1),
		Lines: []dto.InvoiceLineRequest{{Description: "Tray", Quantity: dec("1"), UnitPrice: dec("10"), TaxRateID: "unknown"}},
	}, "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "tax rate")

	_, err = f.invoices.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{
		CustomerID: f.customer.CustomerID, InvoiceDate: day(2026, 5, 1),
		Lines: []dto.InvoiceLineRequest{{Description: "Free sample", Quantity: dec("1"), UnitPrice: dec("0")}},
	}, "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "greater than zero")

	inactive := false
	_, err = f.customers.UpdateCustomer(f.ctx, f.customer.CustomerID, dto.UpdateCustomerRequest{IsActive: &inactive}, "clerk")
	suite.Require().NoError(err)
	_, err = f.invoices.CreateInvoice(f.ctx, dto.CreateInvoiceRequest{CustomerID: f.customer.CustomerID, InvoiceDate: day(2026, 5, 1), Lines: line("4000")}, "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "inactive")
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_RebooksEntry() {
	f := suite.f
	inv, err := f.simpleInvoice(f.customer.CustomerID, "100")
	suite.Require().NoError(err)
	original := inv.TransactionID

	updated, err := f.invoices.UpdateInvoice(f.ctx, inv.InvoiceID, dto.UpdateInvoiceRequest{
		Lines: []dto.InvoiceLineRequest{{Description: "Catering order", Quantity: dec("3"), UnitPrice: dec("50")}},
	}, "clerk")
	suite.Require().NoError(err)
	suite.Equal("150.00", updated.TotalAmount.StringFixed(2))
	suite.NotEqual(original, updated.TransactionID)

	old, err := f.store.FindTransactionByID(f.ctx, original)
	suite.Require().NoError(err)
	suite.True(old.IsVoid)
	suite.Equal("-150.00", f.net("1100"))
	suite.Equal("150.00", f.net("4000"))
	suite.Len(f.store.transactionsBySource(domain.SourceInvoice, inv.InvoiceID), 2)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_LocksBeforeReadingLines() {
	f := suite.f
	inv, err := f.simpleInvoice(f.customer.CustomerID, "100")
	suite.Require().NoError(err)

	_, err = f.store.FindInvoiceLinesInTx(f.ctx, nil, inv.InvoiceID)
	suite.Error(err)

	po := "PO-9"
	updated, err := f.invoices.UpdateInvoice(f.ctx, inv.InvoiceID, dto.UpdateInvoiceRequest{PONumber: &po}, "clerk")
	suite.Require().NoError(err)
	suite.Equal(inv.TransactionID, updated.TransactionID)
	suite.Require().Len(updated.Lines, 1)
	suite.Empty(f.store.locked)

	_, err = f.invoices.UpdateInvoice(f.ctx, "missing", dto.UpdateInvoiceRequest{PONumber: &po}, "clerk")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestVoidInvoice() {
	f := suite.f
	inv, err := f.simpleInvoice(f.customer.CustomerID, "100")
	suite.Require().NoError(err)

	_, err = f.invoices.VoidInvoice(f.ctx, inv.InvoiceID, "", "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)

	voided, err := f.invoices.VoidInvoice(f.ctx, inv.InvoiceID, "Order cancelled", "clerk")
	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceVoid, voided.Status)
	suite.Require().NotNil(voided.VoidDate)
	suite.Equal("0.00", f.net("1100"))
	suite.Equal("0.00", f.net("4000"))

	_, err = f.invoices.VoidInvoice(f.ctx, inv.InvoiceID, "again", "clerk")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)

	memo := "too late"
	_, err = f.invoices.UpdateInvoice(f.ctx, inv.InvoiceID, dto.UpdateInvoiceRequest{Memo: &memo}, "clerk")
	suite.ErrorIs(err, apperrors.ErrInvoiceLocked)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice() {
	f := suite.f
	unpaid, err := f.simpleInvoice(f.customer.CustomerID, "60")
	suite.Require().NoError(err)
	suite.Require().NoError(f.invoices.DeleteInvoice(f.ctx, unpaid.InvoiceID, "clerk"))
	_, err = f.invoices.GetInvoiceByID(f.ctx, unpaid.InvoiceID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("0.00", f.net("1100"))

	paid, err := f.simpleInvoice(f.customer.CustomerID, "40")
	suite.Require().NoError(err)
	_, err = f.receipts.CreateCustomerPayment(f.ctx, dto.CreateCustomerPaymentRequest{
		CustomerID: f.customer.CustomerID, PaymentDate: day(2026, 5, 8), PaymentMethod: domain.PaymentCheck,
		PaymentAmount: dec("10"), DepositToAccountID: f.ids["1020"],
		Applications: []dto.CustomerPaymentApplicationRequest{{InvoiceID: paid.InvoiceID, AmountApplied: dec("10")}},
	}, "clerk")
	suite.Require().NoError(err)

	err = f.invoices.DeleteInvoice(f.ctx, paid.InvoiceID, "clerk")
	suite.ErrorIs(err, apperrors.ErrConflict)
	_, err = f.invoices.VoidInvoice(f.ctx, paid.InvoiceID, "wrong customer", "clerk")
	suite.ErrorIs(err, apperrors.ErrConflict)
	memo := "edit after payment"
	_, err = f.invoices.UpdateInvoice(f.ctx, paid.InvoiceID, dto.UpdateInvoiceRequest{Memo: &memo}, "clerk")
	suite.ErrorIs(err, apperrors.ErrInvoiceLocked)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices() {
	f := suite.f
	_, err := f.simpleInvoice(f.customer.CustomerID, "10")
	suite.Require().NoError(err)

	other, err := f.customers.CreateCustomer(f.ctx, dto.CreateCustomerRequest{CustomerNumber: "C-200", CustomerName: "Harbor Hotel"}, "clerk")
	suite.Require().NoError(err)
	_, err = f.simpleInvoice(other.CustomerID, "20")
	suite.Require().NoError(err)

	invoices, err := f.invoices.ListInvoices(f.ctx, domain.InvoiceFilter{CustomerID: &other.CustomerID})
	suite.Require().NoError(err)
	suite.Require().Len(invoices, 1)
	suite.Equal("20.00", invoices[0].TotalAmount.StringFixed(2))

	none, err := f.invoices.ListInvoices(f.ctx, domain.InvoiceFilter{Status: ptr(domain.InvoicePaid)})
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
