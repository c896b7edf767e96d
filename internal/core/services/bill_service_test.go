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

// payablesFixture wires the AP services over one in-memory store.
type payablesFixture struct {
	ctx      context.Context
	store    *memStore
	ids      map[string]string
	now      time.Time
	vendors  portssvc.VendorSvcFacade
	bills    portssvc.BillSvcFacade
	payments portssvc.BillPaymentSvcFacade
	vendor   *domain.Vendor
	taxRate  *domain.TaxRate
}

func newPayablesFixture(t *testing.T) *payablesFixture {
	f := &payablesFixture{
		ctx:   context.Background(),
		store: newMemStore(),
		now:   time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}
	f.ids = f.store.seedChart()
	clock := func() time.Time { return f.now }

	roles := services.NewAccountRoleResolver(f.store, nil)
	journal := services.NewJournalService(f.store, f.store, f.store, services.WithJournalClock(clock))
	f.vendors = services.NewVendorService(f.store, f.store, services.WithVendorClock(clock))
	f.bills = services.NewBillService(f.store, f.store, f.store, f.store, f.store, journal, roles, services.WithBillClock(clock))
	f.payments = services.NewBillPaymentService(f.store, f.store, f.store, f.store, f.store, journal, roles, services.WithBillPaymentClock(clock))

	var err error
	f.vendor, err = f.vendors.CreateVendor(f.ctx, dto.CreateVendorRequest{
		VendorNumber: "V-100", VendorName: "Harbor Wholesale", PaymentTermsDays: 15, TaxID: "12-3456789",
	}, "buyer")
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	f.taxRate, err = f.vendors.CreateTaxRate(f.ctx, dto.CreateTaxRateRequest{Name: "County", Rate: dec("0.0825")}, "buyer")
	if err != nil {
		t.Fatalf("create tax rate: %v", err)
	}
	return f
}

// simpleBill creates an untaxed single-line bill for amount.
func (f *payablesFixture) simpleBill(vendorID, amount string) (*domain.Bill, error) {
	return f.bills.CreateBill(f.ctx, dto.CreateBillRequest{
		VendorID: vendorID,
		BillDate: day(2026, 5, 1),
		Lines: []dto.BillLineRequest{
			{Description: "Shelf restock", Quantity: dec("1"), UnitCost: dec(amount), AccountID: f.ids["5000"]},
		},
	}, "buyer")
}

func (f *payablesFixture) net(number string) string {
	totals, err := f.store.GetPostedTotals(f.ctx, f.ids[number], day(2027, 1, 1))
	if err != nil {
		return err.Error()
	}
	return totals.Credits.Sub(totals.Debits).StringFixed(2)
}

type BillServiceTestSuite struct {
	suite.Suite
	f *payablesFixture
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.f = newPayablesFixture(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_PricesLinesAndPostsEntry() {
	f := suite.f
	bill, err := f.bills.CreateBill(f.ctx, dto.CreateBillRequest{
		VendorID:        f.vendor.VendorID,
		VendorReference: "INV-7781",
		BillDate:        day(2026, 5, 1),
		Lines: []dto.BillLineRequest{
			{Description: "Receipt paper", Quantity: dec("2"), UnitCost: dec("12.345"), TaxRateID: f.taxRate.TaxRateID, AccountID: f.ids["5200"]},
			{Description: "Snacks", Quantity: dec("1"), UnitCost: dec("100"), AccountID: f.ids["5000"]},
		},
	}, "buyer")
	suite.Require().NoError(err)

	suite.Equal("BILL-000001", bill.BillNumber)
	suite.Equal(domain.BillOpen, bill.Status)
	suite.Equal("Net 15", bill.Terms)
	suite.Equal(day(2026, 5, 16), bill.DueDate)
	suite.Require().Len(bill.Lines, 2)
	suite.Equal("24.69", bill.Lines[0].LineTotal.StringFixed(2))
	suite.Equal("2.04", bill.Lines[0].TaxAmount.StringFixed(2))
	suite.Equal("0.00", bill.Lines[1].TaxAmount.StringFixed(2))
	suite.Equal("124.69", bill.Subtotal.StringFixed(2))
	suite.Equal("2.04", bill.TaxAmount.StringFixed(2))
	suite.Equal("126.73", bill.TotalAmount.StringFixed(2))
	suite.Equal("126.73", bill.BalanceDue.StringFixed(2))
	suite.NotEmpty(bill.TransactionID)

	txn, err := f.store.FindTransactionByID(f.ctx, bill.TransactionID)
	suite.Require().NoError(err)
	suite.True(txn.IsPosted)
	suite.Equal(domain.BillEntry, txn.TransactionType)
	suite.Equal(domain.SourceBill, txn.SourceDocumentType)
	suite.Equal(bill.BillID, txn.SourceDocumentID)
	suite.Equal("INV-7781", txn.ReferenceNumber)
	suite.Len(txn.Lines, 4)
	suite.Equal("126.73", f.net("2000"))
	suite.Equal("-2.04", f.net("2040"))
	suite.Equal("-24.69", f.net("5200"))

	stored, err := f.bills.GetBillByID(f.ctx, bill.BillID)
	suite.Require().NoError(err)
	suite.Equal(bill.TransactionID, stored.TransactionID)
}

func (suite *BillServiceTestSuite) TestCreateBill_ExplicitDueDateAndTerms() {
	f := suite.f
	due := day(2026, 6, 30)
	bill, err := f.bills.CreateBill(f.ctx, dto.CreateBillRequest{
		VendorID: f.vendor.VendorID,
		BillDate: day(2026, 5, 1),
		DueDate:  &due,
		Terms:    "Due end of June",
		Lines:    []dto.BillLineRequest{{Description: "Repairs", Quantity: dec("1"), UnitCost: dec("80"), AccountID: f.ids["5130"]}},
	}, "buyer")
	suite.Require().NoError(err)
	suite.Equal(due, bill.DueDate)
	suite.Equal("Due end of June", bill.Terms)
}

func (suite *BillServiceTestSuite) TestCreateBill_Validation() {
	f := suite.f
	line := func(account string) []dto.BillLineRequest {
		return []dto.BillLineRequest{{Description: "Stock", Quantity: dec("1"), UnitCost: dec("10"), AccountID: f.ids[account]}}
	}

	_, err := f.bills.CreateBill(f.ctx, dto.CreateBillRequest{VendorID: f.vendor.VendorID, BillDate: day(2026, 5, 1), Lines: line("1200")}, "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "Expense or COGS")

	_, err = f.bills.CreateBill(f.ctx, dto.CreateBillRequest{VendorID: "nobody", BillDate: day(2026, 5, 1), Lines: line("5000")}, "buyer")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = f.bills.CreateBill(f.ctx, dto.CreateBillRequest{
		VendorID: f.vendor.VendorID, BillDate: day(2026, 5, 1),
		Lines: []dto.BillLineRequest{{Description: "Stock", Quantity: dec("0"), UnitCost: dec("10"), AccountID: f.ids["5000"]}},
	}, "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = f.bills.CreateBill(f.ctx, dto.CreateBillRequest{
		VendorID: f.vendor.VendorID, BillDate: day(2026, 5, 1),
		Lines: []dto.BillLineRequest{{Description: "Event", Quantity: dec("1"), UnitCost: dec("10"), AccountID: f.ids["5100"], Billable: true}},
	}, "buyer")
	suite.ErrorContains(err, "billable")

	_, err = f.bills.CreateBill(f.ctx, dto.CreateBillRequest{
		VendorID: f.vendor.VendorID, BillDate: day(2026, 5, 1),
		Lines: []dto.BillLineRequest{{Description: "Event", Quantity: dec("1"), UnitCost: dec("10"), AccountID: f.ids["5100"], Billable: true, CustomerID: "walk-in"}},
	}, "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "customer id")

	inactive := false
	_, err = f.vendors.UpdateVendor(f.ctx, f.vendor.VendorID, dto.UpdateVendorRequest{IsActive: &inactive}, "buyer")
	suite.Require().NoError(err)
	_, err = f.bills.CreateBill(f.ctx, dto.CreateBillRequest{VendorID: f.vendor.VendorID, BillDate: day(2026, 5, 1), Lines: line("5000")}, "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "inactive")
}

func (suite *BillServiceTestSuite) TestUpdateBill_RebooksEntry() {
	f := suite.f
	bill, err := f.simpleBill(f.vendor.VendorID, "100")
	suite.Require().NoError(err)
	original := bill.TransactionID

	memo := "Corrected quantity"
	updated, err := f.bills.UpdateBill(f.ctx, bill.BillID, dto.UpdateBillRequest{
		Memo:  &memo,
		Lines: []dto.BillLineRequest{{Description: "Shelf restock", Quantity: dec("3"), UnitCost: dec("40"), AccountID: f.ids["5000"]}},
	}, "buyer")
	suite.Require().NoError(err)
	suite.Equal("120.00", updated.TotalAmount.StringFixed(2))
	suite.Equal("120.00", updated.BalanceDue.StringFixed(2))
	suite.Equal(memo, updated.Memo)
	suite.NotEqual(original, updated.TransactionID)

	old, err := f.store.FindTransactionByID(f.ctx, original)
	suite.Require().NoError(err)
	suite.True(old.IsVoid)
	suite.Equal("120.00", f.net("2000"))
	suite.Len(f.store.transactionsBySource(domain.SourceBill, bill.BillID), 2)
}

func (suite *BillServiceTestSuite) TestUpdateBill_MemoOnlyKeepsEntry() {
	f := suite.f
	bill, err := f.simpleBill(f.vendor.VendorID, "100")
	suite.Require().NoError(err)

	memo := "Net 15 confirmed"
	updated, err := f.bills.UpdateBill(f.ctx, bill.BillID, dto.UpdateBillRequest{Memo: &memo}, "buyer")
	suite.Require().NoError(err)
	suite.Equal(bill.TransactionID, updated.TransactionID)
	suite.Len(updated.Lines, 1)
}

func (suite *BillServiceTestSuite) TestUpdateBill_LocksBeforeReadingLines() {
	f := suite.f
	bill, err := f.simpleBill(f.vendor.VendorID, "100")
	suite.Require().NoError(err)

	_, err = f.store.FindBillLinesInTx(f.ctx, nil, bill.BillID)
	suite.Error(err)

	terms := "Net 45"
	updated, err := f.bills.UpdateBill(f.ctx, bill.BillID, dto.UpdateBillRequest{Terms: &terms}, "buyer")
	suite.Require().NoError(err)
	suite.Require().Len(updated.Lines, 1)
	suite.Equal("Shelf restock", updated.Lines[0].Description)
	suite.Empty(f.store.locked)

	_, err = f.bills.UpdateBill(f.ctx, "missing", dto.UpdateBillRequest{Terms: &terms}, "buyer")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BillServiceTestSuite) TestVoidBill() {
	f := suite.f
	bill, err := f.simpleBill(f.vendor.VendorID, "100")
	suite.Require().NoError(err)

	_, err = f.bills.VoidBill(f.ctx, bill.BillID, "", "buyer")
	suite.ErrorIs(err, apperrors.ErrValidation)

	voided, err := f.bills.VoidBill(f.ctx, bill.BillID, "Duplicate invoice", "buyer")
	suite.Require().NoError(err)
	suite.Equal(domain.BillVoid, voided.Status)
	suite.Equal("Duplicate invoice", voided.VoidReason)
	suite.Require().NotNil(voided.VoidDate)
	suite.Equal("0.00", f.net("2000"))

	_, err = f.bills.VoidBill(f.ctx, bill.BillID, "again", "buyer")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)

	memo := "too late"
	_, err = f.bills.UpdateBill(f.ctx, bill.BillID, dto.UpdateBillRequest{Memo: &memo}, "buyer")
	suite.ErrorIs(err, apperrors.ErrBillLocked)
}

func (suite *BillServiceTestSuite) TestDeleteBill() {
	f := suite.f
	unpaid, err := f.simpleBill(f.vendor.VendorID, "60")
	suite.Require().NoError(err)
	suite.Require().NoError(f.bills.DeleteBill(f.ctx, unpaid.BillID, "buyer"))
	_, err = f.bills.GetBillByID(f.ctx, unpaid.BillID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("0.00", f.net("2000"))

	paid, err := f.simpleBill(f.vendor.VendorID, "40")
	suite.Require().NoError(err)
	_, err = f.payments.CreateBillPayment(f.ctx, dto.CreateBillPaymentRequest{
		VendorID: f.vendor.VendorID, PaymentDate: day(2026, 5, 10), PaymentMethod: domain.PaymentCheck,
		PaymentAmount: dec("10"), PaidFromAccountID: f.ids["1020"],
		Applications: []dto.BillPaymentApplicationRequest{{BillID: paid.BillID, AmountApplied: dec("10")}},
	}, "buyer")
	suite.Require().NoError(err)

	err = f.bills.DeleteBill(f.ctx, paid.BillID, "buyer")
	suite.ErrorIs(err, apperrors.ErrConflict)
	_, err = f.bills.VoidBill(f.ctx, paid.BillID, "wrong vendor", "buyer")
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *BillServiceTestSuite) TestListBills() {
	f := suite.f
	_, err := f.simpleBill(f.vendor.VendorID, "10")
	suite.Require().NoError(err)

	other, err := f.vendors.CreateVendor(f.ctx, dto.CreateVendorRequest{VendorNumber: "V-200", VendorName: "Dairy Co"}, "buyer")
	suite.Require().NoError(err)
	_, err = f.simpleBill(other.VendorID, "20")
	suite.Require().NoError(err)

	bills, err := f.bills.ListBills(f.ctx, domain.BillFilter{VendorID: &other.VendorID})
	suite.Require().NoError(err)
	suite.Require().Len(bills, 1)
	suite.Equal("20.00", bills[0].TotalAmount.StringFixed(2))

	none, err := f.bills.ListBills(f.ctx, domain.BillFilter{Status: ptr(domain.BillPaid)})
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func ptr[T any](v T) *T { return &v }

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
