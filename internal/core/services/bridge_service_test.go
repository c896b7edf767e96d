package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/services"
)

// racingReader hides the first posted-entry lookup, as if another caller
// recorded the same source document between the check and the insert.
type racingReader struct {
	*memStore
	once sync.Once
}

func (r *racingReader) FindPostedBySourceDocument(ctx context.Context, sourceType, sourceID string) (*domain.Transaction, error) {
	hidden := false
	r.once.Do(func() { hidden = true })
	if hidden {
		return nil, notFound("source document", sourceID)
	}
	return r.memStore.FindPostedBySourceDocument(ctx, sourceType, sourceID)
}

type BridgeServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memStore
	ids     map[string]string
	journal portssvc.JournalSvcFacade
	bridge  portssvc.PosBridgeSvc
	now     time.Time
}

func (suite *BridgeServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newMemStore()
	suite.ids = suite.store.seedChart()
	suite.now = time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)
	suite.journal = services.NewJournalService(suite.store, suite.store, suite.store)
	suite.bridge = suite.newBridge(suite.store)
}

func (suite *BridgeServiceTestSuite) newBridge(reader portsrepo.TransactionReader) portssvc.PosBridgeSvc {
	roles := services.NewAccountRoleResolver(suite.store, nil)
	return services.NewPosBridgeService(suite.store, reader, suite.journal, roles,
		services.WithBridgeClock(func() time.Time { return suite.now }))
}

// amounts returns the debit (positive) or credit (negative) per account number.
func (suite *BridgeServiceTestSuite) amounts(txnID string) map[string]string {
	txn, err := suite.store.FindTransactionByID(suite.ctx, txnID)
	suite.Require().NoError(err)
	numbers := map[string]string{}
	for n, id := range suite.ids {
		numbers[id] = n
	}
	res := map[string]string{}
	for _, l := range txn.Lines {
		res[numbers[l.AccountID]] = l.DebitAmount.Sub(l.CreditAmount).StringFixed(2)
	}
	return res
}

func (suite *BridgeServiceTestSuite) net(number string) string {
	totals, err := suite.store.GetPostedTotals(suite.ctx, suite.ids[number], suite.now.AddDate(1, 0, 0))
	suite.Require().NoError(err)
	return totals.Debits.Sub(totals.Credits).StringFixed(2)
}

func (suite *BridgeServiceTestSuite) cardSale() domain.SaleEvent {
	return domain.SaleEvent{
		OrderID:       "ord-1001",
		OrderDate:     day(2026, 4, 1),
		PaymentMethod: "credit_card",
		Subtotal:      dec("100"),
		Tax:           dec("8"),
		Total:         dec("108"),
		Tip:           dec("5"),
		ProcessingFee: dec("3"),
		COGS:          dec("40"),
	}
}

func (suite *BridgeServiceTestSuite) TestJournalizeSale_CardWithTipAndFee() {
	res, err := suite.bridge.JournalizeSale(suite.ctx, suite.cardSale(), "pos")
	suite.Require().NoError(err)
	suite.False(res.Skipped)
	suite.NotEmpty(res.TransactionID)
	suite.Equal("JE-000001", res.TransactionNumber)

	suite.Equal(map[string]string{
		"1100": "110.00",
		"4000": "-100.00",
		"2040": "-8.00",
		"5000": "40.00",
		"1200": "-40.00",
		"4100": "-5.00",
		"5100": "3.00",
	}, suite.amounts(res.TransactionID))

	txn, err := suite.store.FindTransactionByID(suite.ctx, res.TransactionID)
	suite.Require().NoError(err)
	suite.True(txn.IsPosted)
	suite.Equal(domain.SalesReceipt, txn.TransactionType)
	suite.Equal(domain.SourceOrder, txn.SourceDocumentType)
	suite.Equal("ord-1001", txn.SourceDocumentID)
	suite.Equal("pos", txn.CreatedBy)
}

func (suite *BridgeServiceTestSuite) TestJournalizeSale_Idempotent() {
	first, err := suite.bridge.JournalizeSale(suite.ctx, suite.cardSale(), "pos")
	suite.Require().NoError(err)

	second, err := suite.bridge.JournalizeSale(suite.ctx, suite.cardSale(), "pos")
	suite.Require().NoError(err)
	suite.True(second.Skipped)
	suite.Equal(first.TransactionID, second.TransactionID)
	suite.Len(suite.store.transactionsBySource(domain.SourceOrder, "ord-1001"), 1)
}

func (suite *BridgeServiceTestSuite) TestJournalizeSale_CashDropsZeroLegs() {
	res, err := suite.bridge.JournalizeSale(suite.ctx, domain.SaleEvent{
		OrderID:       "ord-2",
		OrderDate:     day(2026, 4, 1),
		PaymentMethod: "cash",
		Subtotal:      dec("50"),
		Tax:           dec("4"),
		Total:         dec("54"),
	}, "pos")
	suite.Require().NoError(err)

	suite.Equal(map[string]string{
		"1000": "54.00",
		"4000": "-50.00",
		"2040": "-4.00",
	}, suite.amounts(res.TransactionID))
}

func (suite *BridgeServiceTestSuite) TestJournalizeSale_StoreCreditAndNegativeAmounts() {
	res, err := suite.bridge.JournalizeSale(suite.ctx, domain.SaleEvent{
		OrderID: "ord-3", PaymentMethod: "store_credit", Subtotal: dec("20"), Total: dec("20"),
	}, "pos")
	suite.Require().NoError(err)
	suite.Equal("20.00", suite.amounts(res.TransactionID)["2110"])

	txn, err := suite.store.FindTransactionByID(suite.ctx, res.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(suite.now, txn.TransactionDate, "missing event date falls back to the clock")

	_, err = suite.bridge.JournalizeSale(suite.ctx, domain.SaleEvent{
		OrderID: "ord-4", PaymentMethod: "cash", Subtotal: dec("20"), Total: dec("20"), Tip: dec("-1"),
	}, "pos")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BridgeServiceTestSuite) TestJournalizeVoidSale_MirrorsOriginal() {
	sale, err := suite.bridge.JournalizeSale(suite.ctx, suite.cardSale(), "pos")
	suite.Require().NoError(err)

	void, err := suite.bridge.JournalizeVoidSale(suite.ctx, domain.VoidSaleEvent{OrderID: "ord-1001", VoidDate: day(2026, 4, 2), Reason: "customer changed mind"}, "pos")
	suite.Require().NoError(err)
	suite.False(void.Skipped)

	for _, number := range []string{"1100", "4000", "2040", "5000", "1200", "4100", "5100"} {
		suite.Equal("0.00", suite.net(number), "account %s", number)
	}

	txn, err := suite.store.FindTransactionByID(suite.ctx, void.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(domain.Refund, txn.TransactionType)
	suite.Equal(sale.TransactionNumber, txn.ReferenceNumber)
	suite.Contains(txn.Description, "customer changed mind")

	again, err := suite.bridge.JournalizeVoidSale(suite.ctx, domain.VoidSaleEvent{OrderID: "ord-1001"}, "pos")
	suite.Require().NoError(err)
	suite.True(again.Skipped)
	suite.Equal(void.TransactionID, again.TransactionID)
}

func (suite *BridgeServiceTestSuite) TestJournalizeVoidSale_UnknownOrder() {
	_, err := suite.bridge.JournalizeVoidSale(suite.ctx, domain.VoidSaleEvent{OrderID: "ord-missing"}, "pos")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BridgeServiceTestSuite) TestJournalizeReturn() {
	refund, err := suite.bridge.JournalizeReturn(suite.ctx, domain.ReturnEvent{
		ReturnID: "ret-1", ReturnDate: day(2026, 4, 3), Amount: dec("25"), PaymentMethod: "cash", ReturnType: "refund",
	}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"4010": "25.00", "1000": "-25.00"}, suite.amounts(refund.TransactionID))

	exchange, err := suite.bridge.JournalizeReturn(suite.ctx, domain.ReturnEvent{
		ReturnID: "ret-2", ReturnDate: day(2026, 4, 3), Amount: dec("30"), PaymentMethod: "card", ReturnType: "exchange",
	}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"4010": "30.00", "2110": "-30.00"}, suite.amounts(exchange.TransactionID))

	_, err = suite.bridge.JournalizeReturn(suite.ctx, domain.ReturnEvent{ReturnID: "ret-3", Amount: dec("0")}, "pos")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BridgeServiceTestSuite) TestJournalizeShipmentReceived_TagsVendor() {
	res, err := suite.bridge.JournalizeShipmentReceived(suite.ctx, domain.ShipmentReceivedEvent{
		ShipmentID: "shp-1", ReceivedDate: day(2026, 4, 1), VendorID: "vend-9", TotalCost: dec("640.50"),
	}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"1200": "640.50", "2000": "-640.50"}, suite.amounts(res.TransactionID))

	txn, err := suite.store.FindTransactionByID(suite.ctx, res.TransactionID)
	suite.Require().NoError(err)
	for _, l := range txn.Lines {
		suite.Equal("vendor", l.EntityType)
		suite.Equal("vend-9", l.EntityID)
	}
}

func (suite *BridgeServiceTestSuite) TestJournalizeRegisterClose() {
	res, err := suite.bridge.JournalizeRegisterClose(suite.ctx, domain.RegisterCloseEvent{SessionID: "reg-1", Discrepancy: dec("0.004")}, "pos")
	suite.Require().NoError(err)
	suite.False(res.Skipped)
	suite.Empty(res.TransactionID)
	suite.Equal("nothing to journalize", res.Message)

	over, err := suite.bridge.JournalizeRegisterClose(suite.ctx, domain.RegisterCloseEvent{SessionID: "reg-2", CloseDate: day(2026, 4, 1), Discrepancy: dec("5")}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"1000": "5.00", "4100": "-5.00"}, suite.amounts(over.TransactionID))

	short, err := suite.bridge.JournalizeRegisterClose(suite.ctx, domain.RegisterCloseEvent{SessionID: "reg-3", CloseDate: day(2026, 4, 1), Discrepancy: dec("-3")}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"5100": "3.00", "1000": "-3.00"}, suite.amounts(short.TransactionID))
}

func (suite *BridgeServiceTestSuite) TestJournalizeCashTransaction() {
	in, err := suite.bridge.JournalizeCashTransaction(suite.ctx, domain.CashTransactionEvent{
		CashTransactionID: "ct-1", TransactionDate: day(2026, 4, 1), Kind: "cash_in", Amount: dec("200"),
	}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"1000": "200.00", "3000": "-200.00"}, suite.amounts(in.TransactionID))

	out, err := suite.bridge.JournalizeCashTransaction(suite.ctx, domain.CashTransactionEvent{
		CashTransactionID: "ct-2", TransactionDate: day(2026, 4, 1), Kind: "withdrawal", Amount: dec("75"),
	}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"3000": "75.00", "1000": "-75.00"}, suite.amounts(out.TransactionID))

	adj, err := suite.bridge.JournalizeCashTransaction(suite.ctx, domain.CashTransactionEvent{
		CashTransactionID: "ct-3", TransactionDate: day(2026, 4, 1), Kind: "correction", Amount: dec("-12"),
	}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"3000": "12.00", "1000": "-12.00"}, suite.amounts(adj.TransactionID))
	txn, err := suite.store.FindTransactionByID(suite.ctx, adj.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(domain.Adjustment, txn.TransactionType)

	_, err = suite.bridge.JournalizeCashTransaction(suite.ctx, domain.CashTransactionEvent{CashTransactionID: "ct-4", Kind: "cash_in", Amount: dec("0")}, "pos")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BridgeServiceTestSuite) TestJournalizeDiscrepanciesAndCashDrop() {
	damaged, err := suite.bridge.JournalizeDamagedGoods(suite.ctx, domain.DamagedGoodsEvent{
		DiscrepancyID: "disc-1", EventDate: day(2026, 4, 1), Amount: dec("18"), Description: "crushed box",
	}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"5100": "18.00", "1200": "-18.00"}, suite.amounts(damaged.TransactionID))

	credit, err := suite.bridge.JournalizeVendorCredit(suite.ctx, domain.VendorCreditEvent{
		DiscrepancyID: "disc-1", EventDate: day(2026, 4, 2), VendorID: "vend-9", Amount: dec("18"),
	}, "pos")
	suite.Require().NoError(err)
	suite.False(credit.Skipped, "vendor credit has its own source type")
	suite.Equal(map[string]string{"2000": "18.00", "5100": "-18.00"}, suite.amounts(credit.TransactionID))

	drop, err := suite.bridge.JournalizeCashDrop(suite.ctx, domain.CashDropEvent{CountID: "cnt-1", CountDate: day(2026, 4, 2), Amount: dec("300")}, "pos")
	suite.Require().NoError(err)
	suite.Equal(map[string]string{"3000": "300.00", "1000": "-300.00"}, suite.amounts(drop.TransactionID))
}

func (suite *BridgeServiceTestSuite) TestMissingSourceID() {
	_, err := suite.bridge.JournalizeSale(suite.ctx, domain.SaleEvent{OrderID: "  ", Total: dec("1"), Subtotal: dec("1")}, "pos")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BridgeServiceTestSuite) TestRoleAccountMissingFromChart() {
	empty := newMemStore()
	roles := services.NewAccountRoleResolver(empty, nil)
	bridge := services.NewPosBridgeService(empty, empty, services.NewJournalService(empty, empty, empty), roles)

	_, err := bridge.JournalizeCashDrop(suite.ctx, domain.CashDropEvent{CountID: "cnt-1", Amount: dec("10")}, "pos")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorContains(err, "3000")
}

func (suite *BridgeServiceTestSuite) TestConcurrentDuplicateReportsSkipped() {
	first, err := suite.bridge.JournalizeSale(suite.ctx, suite.cardSale(), "pos")
	suite.Require().NoError(err)

	racing := suite.newBridge(&racingReader{memStore: suite.store})
	res, err := racing.JournalizeSale(suite.ctx, suite.cardSale(), "pos")
	suite.Require().NoError(err)
	suite.True(res.Skipped)
	suite.Equal(first.TransactionID, res.TransactionID)
	suite.Len(suite.store.transactionsBySource(domain.SourceOrder, "ord-1001"), 1)
}

func TestBridgeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeServiceTestSuite))
}
