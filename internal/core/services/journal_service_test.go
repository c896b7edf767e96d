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

type JournalServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memStore
	ids      map[string]string
	journal  portssvc.JournalSvcFacade
	accounts portssvc.AccountSvcFacade
	now      time.Time
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newMemStore()
	suite.ids = suite.store.seedChart()
	suite.now = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return suite.now }
	suite.journal = services.NewJournalService(suite.store, suite.store, suite.store, services.WithJournalClock(clock))
	suite.accounts = services.NewAccountService(suite.store, suite.store)
}

func (suite *JournalServiceTestSuite) line(number, debit, credit string) dto.TransactionLineRequest {
	return dto.TransactionLineRequest{AccountID: suite.ids[number], DebitAmount: dec(debit), CreditAmount: dec(credit)}
}

func (suite *JournalServiceTestSuite) cashSale(date time.Time, amount string, post bool) *domain.Transaction {
	txn, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate: date,
		TransactionType: domain.SalesReceipt,
		Description:     "Counter sale",
		Lines: []dto.TransactionLineRequest{
			suite.line("1000", amount, "0"),
			suite.line("4000", "0", amount),
		},
		Post: post,
	}, "clerk-1")
	suite.Require().NoError(err)
	return txn
}

func (suite *JournalServiceTestSuite) balance(number string, asOf time.Time) string {
	b, err := suite.accounts.ComputeBalance(suite.ctx, suite.ids[number], asOf)
	suite.Require().NoError(err)
	return b.StringFixed(2)
}

func (suite *JournalServiceTestSuite) TestCreateDraftThenPost() {
	draft := suite.cashSale(day(2026, 1, 10), "100", false)

	suite.Equal(domain.StatusDraft, draft.Status())
	suite.Equal("JE-000001", draft.TransactionNumber)
	suite.Equal("clerk-1", draft.CreatedBy)
	suite.Equal(1, draft.Lines[0].LineNumber)
	suite.Equal(2, draft.Lines[1].LineNumber)
	suite.Equal("0.00", suite.balance("1000", day(2026, 1, 31)), "drafts do not affect balances")

	posted, err := suite.journal.PostTransaction(suite.ctx, draft.TransactionID, "manager")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusPosted, posted.Status())
	suite.Equal("manager", posted.LastUpdatedBy)
	suite.Equal("100.00", suite.balance("1000", day(2026, 1, 31)))
	suite.Equal("100.00", suite.balance("4000", day(2026, 1, 31)))
	suite.Equal("0.00", suite.balance("1000", day(2026, 1, 9)))

	_, err = suite.journal.PostTransaction(suite.ctx, draft.TransactionID, "manager")
	suite.ErrorIs(err, apperrors.ErrAlreadyPosted)
}

func (suite *JournalServiceTestSuite) TestCreate_Unbalanced() {
	_, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate: day(2026, 1, 10),
		TransactionType: domain.JournalEntry,
		Lines: []dto.TransactionLineRequest{
			suite.line("1000", "100", "0"),
			suite.line("4000", "0", "99.98"),
		},
	}, "clerk-1")

	suite.ErrorIs(err, apperrors.ErrTransactionUnbalanced)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreate_WithinTolerance() {
	_, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate: day(2026, 1, 10),
		TransactionType: domain.JournalEntry,
		Lines: []dto.TransactionLineRequest{
			suite.line("1000", "100", "0"),
			suite.line("4000", "0", "99.995"),
		},
	}, "clerk-1")

	suite.NoError(err)
}

func (suite *JournalServiceTestSuite) TestCreate_LineWithBothSides() {
	_, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate: day(2026, 1, 10),
		TransactionType: domain.JournalEntry,
		Lines: []dto.TransactionLineRequest{
			suite.line("1000", "100", "100"),
			suite.line("4000", "0", "0"),
		},
	}, "clerk-1")

	suite.ErrorIs(err, apperrors.ErrInvalidLine)
}

func (suite *JournalServiceTestSuite) TestCreate_SingleLine() {
	_, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate: day(2026, 1, 10),
		TransactionType: domain.JournalEntry,
		Lines:           []dto.TransactionLineRequest{suite.line("1000", "100", "0")},
	}, "clerk-1")

	suite.ErrorIs(err, apperrors.ErrInvalidLine)
}

func (suite *JournalServiceTestSuite) TestCreate_InactiveAccount() {
	petty := suite.store.accounts[suite.ids["1010"]]
	petty.IsActive = false
	suite.store.accounts[petty.AccountID] = petty

	_, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate: day(2026, 1, 10),
		TransactionType: domain.Transfer,
		Lines: []dto.TransactionLineRequest{
			suite.line("1010", "20", "0"),
			suite.line("1000", "0", "20"),
		},
	}, "clerk-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "inactive")
}

func (suite *JournalServiceTestSuite) TestCreate_UnknownAccount() {
	_, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate: day(2026, 1, 10),
		TransactionType: domain.JournalEntry,
		Lines: []dto.TransactionLineRequest{
			{AccountID: "missing", DebitAmount: dec("5"), CreditAmount: dec("0")},
			suite.line("1000", "0", "5"),
		},
	}, "clerk-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreate_SourceDocumentNeedsBothParts() {
	_, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate:    day(2026, 1, 10),
		TransactionType:    domain.JournalEntry,
		SourceDocumentType: domain.SourceOrder,
		Lines: []dto.TransactionLineRequest{
			suite.line("1000", "5", "0"),
			suite.line("4000", "0", "5"),
		},
	}, "clerk-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestVoid() {
	posted := suite.cashSale(day(2026, 1, 10), "80", true)

	_, err := suite.journal.VoidTransaction(suite.ctx, posted.TransactionID, "  ", "manager")
	suite.ErrorIs(err, apperrors.ErrValidation)

	voided, err := suite.journal.VoidTransaction(suite.ctx, posted.TransactionID, "Rung up twice", "manager")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusVoid, voided.Status())
	suite.Equal("Rung up twice", voided.VoidReason)
	suite.Require().NotNil(voided.VoidDate)
	suite.Equal(suite.now, *voided.VoidDate)
	suite.Equal("0.00", suite.balance("1000", day(2026, 1, 31)))

	_, err = suite.journal.VoidTransaction(suite.ctx, posted.TransactionID, "again", "manager")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)
	_, err = suite.journal.PostTransaction(suite.ctx, posted.TransactionID, "manager")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)
	_, err = suite.journal.UnpostTransaction(suite.ctx, posted.TransactionID, "manager")
	suite.ErrorIs(err, apperrors.ErrAlreadyVoid)
}

func (suite *JournalServiceTestSuite) TestUnpostThenEdit() {
	posted := suite.cashSale(day(2026, 1, 10), "80", true)

	desc := "Corrected"
	_, err := suite.journal.UpdateTransaction(suite.ctx, posted.TransactionID, dto.UpdateTransactionRequest{Description: &desc}, "manager")
	suite.ErrorIs(err, apperrors.ErrNotDraft)

	draft, err := suite.journal.UnpostTransaction(suite.ctx, posted.TransactionID, "manager")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, draft.Status())

	updated, err := suite.journal.UpdateTransaction(suite.ctx, posted.TransactionID, dto.UpdateTransactionRequest{
		Description: &desc,
		Lines: []dto.TransactionLineRequest{
			suite.line("1000", "85", "0"),
			suite.line("4000", "0", "85"),
		},
		Post: true,
	}, "manager")
	suite.Require().NoError(err)
	suite.Equal("Corrected", updated.Description)
	suite.True(updated.IsPosted)
	suite.Equal("85.00", suite.balance("1000", day(2026, 1, 31)))

	_, err = suite.journal.UnpostTransaction(suite.ctx, suite.cashSale(day(2026, 1, 11), "1", false).TransactionID, "manager")
	suite.ErrorIs(err, apperrors.ErrNotPosted)
}

func (suite *JournalServiceTestSuite) TestDelete() {
	draft := suite.cashSale(day(2026, 1, 10), "15", false)
	posted := suite.cashSale(day(2026, 1, 10), "25", true)

	suite.ErrorIs(suite.journal.DeleteTransaction(suite.ctx, posted.TransactionID), apperrors.ErrNotDraft)
	suite.Require().NoError(suite.journal.DeleteTransaction(suite.ctx, draft.TransactionID))

	_, err := suite.journal.GetTransactionByID(suite.ctx, draft.TransactionID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestGeneralLedger_RunningBalance() {
	suite.cashSale(day(2026, 1, 5), "100", true)
	_, err := suite.journal.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		TransactionDate: day(2026, 1, 10),
		TransactionType: domain.Purchase,
		Lines: []dto.TransactionLineRequest{
			suite.line("5200", "30", "0"),
			suite.line("1000", "0", "30"),
		},
		Post: true,
	}, "clerk-1")
	suite.Require().NoError(err)
	suite.cashSale(day(2026, 1, 12), "999", false)

	cashID := suite.ids["1000"]
	entries, err := suite.journal.GeneralLedger(suite.ctx, domain.LedgerFilter{AccountID: &cashID})
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("100.00", entries[0].RunningBalance.StringFixed(2))
	suite.Equal("70.00", entries[1].RunningBalance.StringFixed(2))

	start := day(2026, 1, 6)
	entries, err = suite.journal.GeneralLedger(suite.ctx, domain.LedgerFilter{AccountID: &cashID, StartDate: &start})
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("70.00", entries[0].RunningBalance.StringFixed(2))

	all, err := suite.journal.GeneralLedger(suite.ctx, domain.LedgerFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 4)
	suite.Nil(all[0].RunningBalance)
}

func (suite *JournalServiceTestSuite) TestListTransactions_RejectsUnknownType() {
	_, err := suite.journal.ListTransactions(suite.ctx, dto.ListTransactionsParams{TransactionType: "barter"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.cashSale(day(2026, 1, 5), "10", true)
	suite.cashSale(day(2026, 1, 6), "10", false)
	page, err := suite.journal.ListTransactions(suite.ctx, dto.ListTransactionsParams{Status: "draft"})
	suite.Require().NoError(err)
	suite.Len(page.Transactions, 1)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
