package services_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type BillPaymentServiceTestSuite struct {
	suite.Suite
	f    *payablesFixture
	bill *domain.Bill
}

func (suite *BillPaymentServiceTestSuite) SetupTest() {
	suite.f = newPayablesFixture(suite.T())
	bill, err := suite.f.simpleBill(suite.f.vendor.VendorID, "100")
	suite.Require().NoError(err)
	suite.bill = bill
}

func (suite *BillPaymentServiceTestSuite) pay(amount string, apps ...dto.BillPaymentApplicationRequest) (*domain.BillPayment, error) {
	return suite.f.payments.CreateBillPayment(suite.f.ctx, dto.CreateBillPaymentRequest{
		VendorID:          suite.f.vendor.VendorID,
		PaymentDate:       day(2026, 5, 12),
		PaymentMethod:     domain.PaymentACH,
		ReferenceNumber:   "ACH-55",
		PaymentAmount:     dec(amount),
		PaidFromAccountID: suite.f.ids["1020"],
		Applications:      apps,
	}, "buyer")
}

func apply(billID, amount string) dto.BillPaymentApplicationRequest {
	return dto.BillPaymentApplicationRequest{BillID: billID, AmountApplied: dec(amount)}
}

func (suite *BillPaymentServiceTestSuite) reload() *domain.Bill {
	b, err := suite.f.bills.GetBillByID(suite.f.ctx, suite.bill.BillID)
	suite.Require().NoError(err)
	return b
}

func (suite *BillPaymentServiceTestSuite) TestPartialThenFullPayment() {
	f := suite.f
	first, err := suite.pay("40", apply(suite.bill.BillID, "40"))
	suite.Require().NoError(err)
	suite.Equal("BPAY-000001", first.PaymentNumber)
	suite.Equal(domain.BillPaymentPending, first.Status)
	suite.NotEmpty(first.TransactionID)

	b := suite.reload()
	suite.Equal(domain.BillPartial, b.Status)
	suite.Equal("40.00", b.AmountPaid.StringFixed(2))
	suite.Equal("60.00", b.BalanceDue.StringFixed(2))

	_, err = suite.pay("60", apply(suite.bill.BillID, "60"))
	suite.Require().NoError(err)
	b = suite.reload()
	suite.Equal(domain.BillPaid, b.Status)
	suite.Equal("0.00", b.BalanceDue.StringFixed(2))

	suite.Equal("0.00", f.net("2000"))
	suite.Equal("100.00", f.net("1020"))

	txn, err := f.store.FindTransactionByID(f.ctx, first.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(domain.BillPaymentTx, txn.TransactionType)
	suite.Equal(domain.SourceBillPayment, txn.SourceDocumentType)
	suite.Equal(first.PaymentID, txn.SourceDocumentID)
}

func (suite *BillPaymentServiceTestSuite) TestUnappliedRemainder() {
	payment, err := suite.pay("50", apply(suite.bill.BillID, "30"))
	suite.Require().NoError(err)
	suite.Equal("20.00", payment.UnappliedAmount.StringFixed(2))
	suite.Equal("30.00", payment.TotalApplied().StringFixed(2))
	suite.Equal("50.00", suite.f.net("2000"), "the entry covers the full payment amount")
}

func (suite *BillPaymentServiceTestSuite) TestPaidBillIsLocked() {
	_, err := suite.pay("10", apply(suite.bill.BillID, "10"))
	suite.Require().NoError(err)

	memo := "edit after payment"
	_, err = suite.f.bills.UpdateBill(suite.f.ctx, suite.bill.BillID, dto.UpdateBillRequest{Memo: &memo}, "buyer")
	suite.ErrorIs(err, apperrors.ErrBillLocked)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *BillPaymentServiceTestSuite) TestOverApplication() {
	_, err := suite.pay("150", apply(suite.bill.BillID, "150"))
	suite.ErrorIs(err, apperrors.ErrOverApplication)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.pay("20", apply(suite.bill.BillID, "30"))
	suite.ErrorIs(err, apperrors.ErrOverApplication)

	b := suite.reload()
	suite.Equal("0.00", b.AmountPaid.StringFixed(2))
}

func (suite *BillPaymentServiceTestSuite) TestRejectsForeignAndVoidBills() {
	f := suite.f
	other, err := f.vendors.CreateVendor(f.ctx, dto.CreateVendorRequest{VendorNumber: "V-300", VendorName: "Bakery"}, "buyer")
	suite.Require().NoError(err)
	foreign, err := f.simpleBill(other.VendorID, "25")
	suite.Require().NoError(err)

	_, err = suite.pay("25", apply(foreign.BillID, "25"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "different vendor")

	_, err = f.bills.VoidBill(f.ctx, suite.bill.BillID, "Sent in error", "buyer")
	suite.Require().NoError(err)
	_, err = suite.pay("10", apply(suite.bill.BillID, "10"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "void")

	_, err = suite.pay("10", apply("missing", "10"))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BillPaymentServiceTestSuite) TestRequestValidation() {
	f := suite.f
	_, err := f.payments.CreateBillPayment(f.ctx, dto.CreateBillPaymentRequest{
		VendorID: f.vendor.VendorID, PaymentDate: day(2026, 5, 12), PaymentMethod: domain.PaymentCheck,
		PaymentAmount: dec("10"), PaidFromAccountID: f.ids["5100"],
		Applications: []dto.BillPaymentApplicationRequest{apply(suite.bill.BillID, "10")},
	}, "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "active Asset")

	_, err = f.payments.CreateBillPayment(f.ctx, dto.CreateBillPaymentRequest{
		VendorID: f.vendor.VendorID, PaymentDate: day(2026, 5, 12), PaymentMethod: "barter",
		PaymentAmount: dec("10"), PaidFromAccountID: f.ids["1020"],
		Applications: []dto.BillPaymentApplicationRequest{apply(suite.bill.BillID, "10")},
	}, "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.pay("20", apply(suite.bill.BillID, "10"), apply(suite.bill.BillID, "10"))
	suite.ErrorContains(err, "more than once")

	_, err = suite.pay("0", apply(suite.bill.BillID, "0"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillPaymentServiceTestSuite) TestVoidPaymentRestoresBill() {
	f := suite.f
	_, err := suite.pay("40", apply(suite.bill.BillID, "40"))
	suite.Require().NoError(err)
	second, err := suite.pay("60", apply(suite.bill.BillID, "60"))
	suite.Require().NoError(err)
	suite.Require().Equal(domain.BillPaid, suite.reload().Status)

	_, err = f.payments.VoidBillPayment(f.ctx, second.PaymentID, " ", "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)

	voided, err := f.payments.VoidBillPayment(f.ctx, second.PaymentID, "Bounced", "buyer")
	suite.Require().NoError(err)
	suite.Equal(domain.BillPaymentVoid, voided.Status)
	suite.Equal("Bounced", voided.VoidReason)

	b := suite.reload()
	suite.Equal(domain.BillPartial, b.Status)
	suite.Equal("40.00", b.AmountPaid.StringFixed(2))
	suite.Equal("60.00", b.BalanceDue.StringFixed(2))
	suite.Equal("60.00", f.net("2000"))
	suite.Equal("40.00", f.net("1020"))

	_, err = f.payments.VoidBillPayment(f.ctx, second.PaymentID, "again", "buyer")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)

	method := domain.PaymentWire
	_, err = f.payments.UpdateBillPayment(f.ctx, second.PaymentID, dto.UpdateBillPaymentRequest{PaymentMethod: &method}, "buyer")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)
}

func (suite *BillPaymentServiceTestSuite) TestVoidPaymentWithMissingBill() {
	f := suite.f
	other, err := f.simpleBill(f.vendor.VendorID, "50")
	suite.Require().NoError(err)
	payment, err := suite.pay("150", apply(suite.bill.BillID, "100"), apply(other.BillID, "50"))
	suite.Require().NoError(err)

	f.store.mu.Lock()
	delete(f.store.bills, other.BillID)
	f.store.mu.Unlock()

	_, err = f.payments.VoidBillPayment(f.ctx, payment.PaymentID, "Bounced", "buyer")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	stored, err := f.payments.GetBillPaymentByID(f.ctx, payment.PaymentID)
	suite.Require().NoError(err)
	suite.Equal(domain.BillPaymentPending, stored.Status)
	suite.Equal(domain.BillPaid, suite.reload().Status)
	suite.Equal("150.00", f.net("1020"))
}

func (suite *BillPaymentServiceTestSuite) TestUpdatePayment() {
	f := suite.f
	payment, err := suite.pay("40", apply(suite.bill.BillID, "40"))
	suite.Require().NoError(err)
	original := payment.TransactionID

	memo := "Confirmed by bank"
	updated, err := f.payments.UpdateBillPayment(f.ctx, payment.PaymentID, dto.UpdateBillPaymentRequest{Memo: &memo}, "buyer")
	suite.Require().NoError(err)
	suite.Equal(original, updated.TransactionID, "memo edits do not touch the ledger")

	newDate := day(2026, 5, 14)
	updated, err = f.payments.UpdateBillPayment(f.ctx, payment.PaymentID, dto.UpdateBillPaymentRequest{PaymentDate: &newDate}, "buyer")
	suite.Require().NoError(err)
	suite.NotEqual(original, updated.TransactionID)

	old, err := f.store.FindTransactionByID(f.ctx, original)
	suite.Require().NoError(err)
	suite.True(old.IsVoid)
	reposted, err := f.store.FindTransactionByID(f.ctx, updated.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(newDate, reposted.TransactionDate)
	suite.Equal("60.00", f.net("2000"))

	_, err = f.payments.UpdateBillPayment(f.ctx, payment.PaymentID, dto.UpdateBillPaymentRequest{
		Applications: []dto.BillPaymentApplicationRequest{apply(suite.bill.BillID, "50")},
	}, "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillPaymentServiceTestSuite) TestListBillPayments() {
	f := suite.f
	_, err := suite.pay("10", apply(suite.bill.BillID, "10"))
	suite.Require().NoError(err)

	all, err := f.payments.ListBillPayments(f.ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 1)

	nobody := "nobody"
	none, err := f.payments.ListBillPayments(f.ctx, &nobody)
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func TestBillPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillPaymentServiceTestSuite))
}
