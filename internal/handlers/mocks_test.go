package handlers_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListChildren(ctx context.Context, parentID string) ([]domain.Account, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}
func (m *MockAccountService) SeedDefaultChart(ctx context.Context, actor string) (int, int, error) {
	args := m.Called(ctx, actor)
	return args.Int(0), args.Int(1), args.Error(2)
}
func (m *MockAccountService) ComputeBalance(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) txnResult(args mock.Arguments) (*domain.Transaction, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockJournalService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, transactionID))
}
func (m *MockJournalService) FindBySourceDocument(ctx context.Context, sourceType, sourceID string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, sourceType, sourceID))
}
func (m *MockJournalService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockJournalService) GeneralLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockJournalService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, req, actor))
}
func (m *MockJournalService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, transactionID, req, actor))
}
func (m *MockJournalService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return m.Called(ctx, transactionID).Error(0)
}
func (m *MockJournalService) PostTransaction(ctx context.Context, transactionID string, actor string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, transactionID, actor))
}
func (m *MockJournalService) UnpostTransaction(ctx context.Context, transactionID string, actor string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, transactionID, actor))
}
func (m *MockJournalService) VoidTransaction(ctx context.Context, transactionID string, reason string, actor string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, transactionID, reason, actor))
}
func (m *MockJournalService) RecordTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, post bool, actor string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, tx, txn, post, actor))
}
func (m *MockJournalService) VoidTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string, reason string, actor string) error {
	return m.Called(ctx, tx, transactionID, reason, actor).Error(0)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockReportingService) IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, asOf time.Time, establishmentID string) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, asOf, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, start, end time.Time) (*domain.CashFlowStatement, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowStatement), args.Error(1)
}
func (m *MockReportingService) ComparativeIncomeStatement(ctx context.Context, start, end, priorStart, priorEnd time.Time) (*domain.ComparativeIncomeStatement, error) {
	args := m.Called(ctx, start, end, priorStart, priorEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparativeIncomeStatement), args.Error(1)
}
func (m *MockReportingService) ComparativeBalanceSheet(ctx context.Context, asOf, priorAsOf time.Time, establishmentID string) (*domain.ComparativeBalanceSheet, error) {
	args := m.Called(ctx, asOf, priorAsOf, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparativeBalanceSheet), args.Error(1)
}
func (m *MockReportingService) ComparativeCashFlow(ctx context.Context, start, end, priorStart, priorEnd time.Time) (*domain.ComparativeCashFlow, error) {
	args := m.Called(ctx, start, end, priorStart, priorEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparativeCashFlow), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock PosBridge ---
type MockBridge struct {
	mock.Mock
}

func (m *MockBridge) result(args mock.Arguments) (*domain.JournalizeResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalizeResult), args.Error(1)
}
func (m *MockBridge) JournalizeSale(ctx context.Context, ev domain.SaleEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}
func (m *MockBridge) JournalizeVoidSale(ctx context.Context, ev domain.VoidSaleEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}
func (m *MockBridge) JournalizeReturn(ctx context.Context, ev domain.ReturnEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}
func (m *MockBridge) JournalizeShipmentReceived(ctx context.Context, ev domain.ShipmentReceivedEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}
func (m *MockBridge) JournalizeRegisterClose(ctx context.Context, ev domain.RegisterCloseEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}
func (m *MockBridge) JournalizeCashTransaction(ctx context.Context, ev domain.CashTransactionEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}
func (m *MockBridge) JournalizeDamagedGoods(ctx context.Context, ev domain.DamagedGoodsEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}
func (m *MockBridge) JournalizeVendorCredit(ctx context.Context, ev domain.VendorCreditEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}
func (m *MockBridge) JournalizeCashDrop(ctx context.Context, ev domain.CashDropEvent, actor string) (*domain.JournalizeResult, error) {
	return m.result(m.Called(ctx, ev, actor))
}

var _ portssvc.PosBridgeSvc = (*MockBridge)(nil)

// --- Mock IntegrationKeyService ---
type MockIntegrationKeyService struct {
	mock.Mock
}

func (m *MockIntegrationKeyService) CreateKey(ctx context.Context, name string, expiresIn *time.Duration, actor string) (string, *domain.IntegrationKey, error) {
	args := m.Called(ctx, name, expiresIn, actor)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.IntegrationKey), args.Error(2)
}
func (m *MockIntegrationKeyService) ListKeys(ctx context.Context) ([]domain.IntegrationKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IntegrationKey), args.Error(1)
}
func (m *MockIntegrationKeyService) RevokeKey(ctx context.Context, keyID string) error {
	return m.Called(ctx, keyID).Error(0)
}
func (m *MockIntegrationKeyService) ValidateKey(ctx context.Context, plaintext string) (*domain.IntegrationKey, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntegrationKey), args.Error(1)
}

var _ portssvc.IntegrationKeySvc = (*MockIntegrationKeyService)(nil)
