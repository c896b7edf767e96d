package services_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type CustomerPaymentServiceTestSuite struct {
	suite.Suite
	f       *receivablesFixture
	invoice *domain.Invoice
}

func (suite *CustomerPaymentServiceTestSuite) SetupTest() {
	suite.f = newReceivablesFixture(suite.T())
	inv, err := suite.f.simpleInvoice(suite.f.customer.CustomerID, "100")
	suite.Require().NoError(err)
	suite.invoice = inv
}

func (suite *CustomerPaymentServiceTestSuite) receive(amount string, apps ...dto.CustomerPaymentApplicationRequest) (*domain.CustomerPayment, error) {
	return suite.f.receipts.CreateCustomerPayment(suite.f.ctx, dto.CreateCustomerPaymentRequest{
		CustomerID:         suite.f.customer.CustomerID,
		PaymentDate:        day(2026, 5, 9),
		PaymentMethod:      domain.PaymentCheck,
		ReferenceNumber:    "CHK-1042",
		PaymentAmount:      dec(amount),
		DepositToAccountID: suite.f.ids["1020"],
		Applications:       apps,
	}, "clerk")
}

func applyTo(invoiceID, amount string) dto.CustomerPaymentApplicationRequest {
	return dto.CustomerPaymentApplicationRequest{InvoiceID: invoiceID, AmountApplied: dec(amount)}
}

func (suite *CustomerPaymentServiceTestSuite) reload() *domain.Invoice {
	inv, err := suite.f.invoices.GetInvoiceByID(suite.f.ctx, suite.invoice.InvoiceID)
	suite.Require().NoError(err)
	return inv
}

func (suite *CustomerPaymentServiceTestSuite) TestPartialThenFullPayment() {
	f := suite.f
	first, err := suite.receive("40", applyTo(suite.invoice.InvoiceID, "40"))
	suite.Require().NoError(err)
	suite.Equal("CPAY-000001", first.PaymentNumber)
	suite.Equal(domain.CustomerPaymentReceived, first.Status)
	suite.NotEmpty(first.TransactionID)

	inv := suite.reload()
	suite.Equal(domain.InvoicePartial, inv.Status)
	suite.Equal("40.00", inv.AmountPaid.StringFixed(2))
	suite.Equal("60.00", inv.BalanceDue.StringFixed(2))
	suite.Equal("-60.00", f.net("1100"))
	suite.Equal("-40.00", f.net("1020"))

	_, err = suite.receive("60", applyTo(suite.invoice.InvoiceID, "60"))
	suite.Require().NoError(err)
	inv = suite.reload()
	suite.Equal(domain.InvoicePaid, inv.Status)
	suite.Equal("0.00", inv.BalanceDue.StringFixed(2))
	suite.Equal("0.00", f.net("1100"))
	suite.Equal("-100.00", f.net("1020"))
	suite.Equal("100.00", f.net("4000"))

	txn, err := f.store.FindTransactionByID(f.ctx, first.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(domain.Payment, txn.TransactionType)
	suite.Equal(domain.SourceCustomerPayment, txn.SourceDocumentType)
	suite.Equal(first.PaymentID, txn.SourceDocumentID)
	suite.Equal("CHK-1042", txn.ReferenceNumber)
}

func (suite *CustomerPaymentServiceTestSuite) TestUnappliedRemainderIsCustomerCredit() {
	payment, err := suite.receive("120", applyTo(suite.invoice.InvoiceID, "100"))
	suite.Require().NoError(err)
	suite.Equal("20.00", payment.UnappliedAmount.StringFixed(2))
	suite.Equal("100.00", payment.TotalApplied().StringFixed(2))
	suite.Equal("20.00", suite.f.net("1100"), "the entry covers the full payment amount")
	suite.Equal(domain.InvoicePaid, suite.reload().Status)
}

func (suite *CustomerPaymentServiceTestSuite) TestOverApplication() {
	_, err := suite.receive("150", applyTo(suite.invoice.InvoiceID, "150"))
	suite.ErrorIs(err, apperrors.ErrOverApplication)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.receive("20", applyTo(suite.invoice.InvoiceID, "30"))
	suite.ErrorIs(err, apperrors.ErrOverApplication)

	inv := suite.reload()
	suite.Equal("0.00", inv.AmountPaid.StringFixed(2))
	suite.Equal("-100.00", suite.f.net("1100"))
}

func (suite *CustomerPaymentServiceTestSuite) TestRejectsForeignVoidAndMissingInvoices() {
	f := suite.f
	other, err := f.customers.CreateCustomer(f.ctx, dto.CreateCustomerRequest{CustomerNumber: "C-300", CustomerName: "Pier Market"}, "clerk")
	suite.Require().NoError(err)
	foreign, err := f.simpleInvoice(other.CustomerID, "25")
	suite.Require().NoError(err)

	_, err = suite.receive("25", applyTo(foreign.InvoiceID, "25"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "different customer")

	_, err = suite.receive("10", applyTo("missing", "10"))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = f.invoices.VoidInvoice(f.ctx, suite.invoice.InvoiceID, "Sent in error", "clerk")
	suite.Require().NoError(err)
	_, err = suite.receive("10", applyTo(suite.invoice.InvoiceID, "10"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "void")
}

func (suite *CustomerPaymentServiceTestSuite) TestRequestValidation() {
	f := suite.f
	_, err := f.receipts.CreateCustomerPayment(f.ctx, dto.CreateCustomerPaymentRequest{
		CustomerID: f.customer.CustomerID, PaymentDate: day(2026, 5, 9), PaymentMethod: domain.PaymentCheck,
		PaymentAmount: dec("10"), DepositToAccountID: f.ids["4000"],
		Applications: []dto.CustomerPaymentApplicationRequest{applyTo(suite.invoice.InvoiceID, "10")},
	}, "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "active Asset")

	_, err = f.receipts.CreateCustomerPayment(f.ctx, dto.CreateCustomerPaymentRequest{
		CustomerID: f.customer.CustomerID, PaymentDate: day(2026, 5, 9), PaymentMethod: "barter",
		PaymentAmount: dec("10"), DepositToAccountID: f.ids["1020"],
		Applications: []dto.CustomerPaymentApplicationRequest{applyTo(suite.invoice.InvoiceID, "10")},
	}, "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = f.receipts.CreateCustomerPayment(f.ctx, dto.CreateCustomerPaymentRequest{
		CustomerID: "nobody", PaymentDate: day(2026, 5, 9), PaymentMethod: domain.PaymentCash,
		PaymentAmount: dec("10"), DepositToAccountID: f.ids["1000"],
		Applications: []dto.CustomerPaymentApplicationRequest{applyTo(suite.invoice.InvoiceID, "10")},
	}, "clerk")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.receive("20", applyTo(suite.invoice.InvoiceID, "10"), applyTo(suite.invoice.InvoiceID, "10"))
	suite.ErrorContains(err, "more than once")

	_, err = suite.receive("0", applyTo(suite.invoice.InvoiceID, "0"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CustomerPaymentServiceTestSuite) TestVoidPaymentRestoresInvoice() {
	f := suite.f
	_, err := suite.receive("40", applyTo(suite.invoice.InvoiceID, "40"))
	suite.Require().NoError(err)
	second, err := suite.receive("60", applyTo(suite.invoice.InvoiceID, "60"))
	suite.Require().NoError(err)
	suite.Require().Equal(domain.InvoicePaid, suite.reload().Status)

	_, err = f.receipts.VoidCustomerPayment(f.ctx, second.PaymentID, " ", "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)

	voided, err := f.receipts.VoidCustomerPayment(f.ctx, second.PaymentID, "Check bounced", "clerk")
	suite.Require().NoError(err)
	suite.Equal(domain.CustomerPaymentVoid, voided.Status)
	suite.Equal("Check bounced", voided.VoidReason)
	suite.Require().NotNil(voided.VoidDate)

	inv := suite.reload()
	suite.Equal(domain.InvoicePartial, inv.Status)
	suite.Equal("40.00", inv.AmountPaid.StringFixed(2))
	suite.Equal("60.00", inv.BalanceDue.StringFixed(2))
	suite.Equal("-60.00", f.net("1100"))
	suite.Equal("-40.00", f.net("1020"))

	_, err = f.receipts.VoidCustomerPayment(f.ctx, second.PaymentID, "again", "clerk")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)

	method := domain.PaymentWire
	_, err = f.receipts.UpdateCustomerPayment(f.ctx, second.PaymentID, dto.UpdateCustomerPaymentRequest{PaymentMethod: &method}, "clerk")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)
}

func (suite *CustomerPaymentServiceTestSuite) TestVoidPaymentWithMissingInvoice() {
	f := suite.f
	other, err := f.simpleInvoice(f.customer.CustomerID, "50")
	suite.Require().NoError(err)
	payment, err := suite.receive("150", applyTo(suite.invoice.InvoiceID, "100"), applyTo(other.InvoiceID, "50"))
	suite.Require().NoError(err)

	f.store.mu.Lock()
	delete(f.store.invoices, other.InvoiceID)
	f.store.mu.Unlock()

	_, err = f.receipts.VoidCustomerPayment(f.ctx, payment.PaymentID, "Check bounced", "clerk")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	stored, err := f.receipts.GetCustomerPaymentByID(f.ctx, payment.PaymentID)
	suite.Require().NoError(err)
	suite.Equal(domain.CustomerPaymentReceived, stored.Status)
	suite.Equal(domain.InvoicePaid, suite.reload().Status)
	suite.Equal("-150.00", f.net("1020"))
}

func (suite *CustomerPaymentServiceTestSuite) TestUpdatePayment() {
	f := suite.f
	payment, err := suite.receive("40", applyTo(suite.invoice.InvoiceID, "40"))
	suite.Require().NoError(err)
	original := payment.TransactionID

	memo := "Deposited Friday"
	updated, err := f.receipts.UpdateCustomerPayment(f.ctx, payment.PaymentID, dto.UpdateCustomerPaymentRequest{Memo: &memo}, "clerk")
	suite.Require().NoError(err)
	suite.Equal(original, updated.TransactionID, "memo edits do not touch the ledger")

	newDate := day(2026, 5, 11)
	updated, err = f.receipts.UpdateCustomerPayment(f.ctx, payment.PaymentID, dto.UpdateCustomerPaymentRequest{PaymentDate: &newDate}, "clerk")
	suite.Require().NoError(err)
	suite.NotEqual(original, updated.TransactionID)

	old, err := f.store.FindTransactionByID(f.ctx, original)
	suite.Require().NoError(err)
	suite.True(old.IsVoid)
	reposted, err := f.store.FindTransactionByID(f.ctx, updated.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(newDate, reposted.TransactionDate)
	suite.Equal("-60.00", f.net("1100"))

	_, err = f.receipts.UpdateCustomerPayment(f.ctx, payment.PaymentID, dto.UpdateCustomerPaymentRequest{
		Applications: []dto.CustomerPaymentApplicationRequest{applyTo(suite.invoice.InvoiceID, "50")},
	}, "clerk")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CustomerPaymentServiceTestSuite) TestListCustomerPayments() {
	f := suite.f
	_, err := suite.receive("10", applyTo(suite.invoice.InvoiceID, "10"))
	suite.Require().NoError(err)

	mine, err := f.receipts.ListCustomerPayments(f.ctx, &f.customer.CustomerID)
	suite.Require().NoError(err)
	suite.Len(mine, 1)

	nobody := "nobody"
	none, err := f.receipts.ListCustomerPayments(f.ctx, &nobody)
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func TestCustomerPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerPaymentServiceTestSuite))
}
