package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/utils/accounting"
)

const defaultListLimit = 20

// journalService owns the draft/posted/void lifecycle of journal entries.
type journalService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	journalRepo portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
	now         func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalClock overrides the clock used for audit and void timestamps.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(txManager portsrepo.TransactionManager, journalRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		txManager:   txManager,
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateAccounts checks that every line targets an existing, active account.
func (s *journalService) validateAccounts(ctx context.Context, lines []domain.TransactionLine) error {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.AccountID == "" {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrInvalidLine, l.LineNumber)
		}
		if _, ok := seen[l.AccountID]; !ok {
			seen[l.AccountID] = struct{}{}
			ids = append(ids, l.AccountID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		acc, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account not found: %s", apperrors.ErrValidation, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.AccountNumber)
		}
	}
	return nil
}

// prepareLines numbers lines from 1 and assigns fresh ids.
func prepareLines(transactionID string, lines []domain.TransactionLine) []domain.TransactionLine {
	prepared := make([]domain.TransactionLine, len(lines))
	for i, l := range lines {
		l.LineID = uuid.NewString()
		l.TransactionID = transactionID
		l.LineNumber = i + 1
		prepared[i] = l
	}
	return prepared
}

func (s *journalService) RecordTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, post bool, actor string) (*domain.Transaction, error) {
	if txn.TransactionType == "" {
		txn.TransactionType = domain.JournalEntry
	}
	if !txn.TransactionType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txn.TransactionType)
	}
	if (txn.SourceDocumentType == "") != (txn.SourceDocumentID == "") {
		return nil, fmt.Errorf("%w: source document type and id must be given together", apperrors.ErrValidation)
	}

	txn.TransactionID = uuid.NewString()
	txn.Lines = prepareLines(txn.TransactionID, txn.Lines)
	if err := accounting.ValidateLines(txn.Lines); err != nil {
		return nil, err
	}
	if err := s.validateAccounts(ctx, txn.Lines); err != nil {
		return nil, err
	}

	now := s.now()
	txn.IsPosted = post
	txn.IsVoid = false
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}

	if err := s.journalRepo.SaveTransactionInTx(ctx, tx, &txn); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save journal entry", slog.String("transaction_id", txn.TransactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("transaction_number", txn.TransactionNumber),
		slog.Bool("posted", post),
		slog.String("source_type", txn.SourceDocumentType),
		slog.String("source_id", txn.SourceDocumentID))
	return &txn, nil
}

func (s *journalService) VoidTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string, reason string, actor string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
	}
	txn, err := s.journalRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		return err
	}
	if txn.IsVoid {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrAlreadyVoid, txn.TransactionNumber)
	}

	now := s.now()
	txn.IsVoid = true
	txn.VoidDate = &now
	txn.VoidReason = reason
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actor
	if err := s.journalRepo.UpdateTransactionInTx(ctx, tx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to void journal entry", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Journal entry voided",
		slog.String("transaction_id", transactionID),
		slog.String("reason", reason))
	return nil
}

func (s *journalService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error) {
	draft := domain.Transaction{
		TransactionDate:    req.TransactionDate,
		TransactionType:    req.TransactionType,
		Description:        req.Description,
		ReferenceNumber:    req.ReferenceNumber,
		SourceDocumentType: req.SourceDocumentType,
		SourceDocumentID:   req.SourceDocumentID,
		Lines:              dto.ToDomainLines(req.Lines),
	}

	var created *domain.Transaction
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		var err error
		created, err = s.RecordTransactionInTx(ctx, tx, draft, req.Post, actor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *journalService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor string) (*domain.Transaction, error) {
	var updated *domain.Transaction
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		txn, err := s.journalRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if txn.IsVoid {
			return apperrors.ErrAlreadyVoid
		}
		if txn.IsPosted {
			return apperrors.ErrNotDraft
		}

		if req.TransactionDate != nil {
			txn.TransactionDate = *req.TransactionDate
		}
		if req.Description != nil {
			txn.Description = *req.Description
		}
		if req.ReferenceNumber != nil {
			txn.ReferenceNumber = *req.ReferenceNumber
		}

		if req.Lines != nil {
			lines := prepareLines(txn.TransactionID, dto.ToDomainLines(req.Lines))
			if err := accounting.ValidateLines(lines); err != nil {
				return err
			}
			if err := s.validateAccounts(ctx, lines); err != nil {
				return err
			}
			if err := s.journalRepo.ReplaceLinesInTx(ctx, tx, txn.TransactionID, lines); err != nil {
				return err
			}
			txn.Lines = lines
		}

		if req.Post {
			if err := accounting.ValidateLines(txn.Lines); err != nil {
				return err
			}
			txn.IsPosted = true
		}

		txn.LastUpdatedAt = s.now()
		txn.LastUpdatedBy = actor
		if err := s.journalRepo.UpdateTransactionInTx(ctx, tx, *txn); err != nil {
			return err
		}
		updated = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry updated", slog.String("transaction_id", transactionID), slog.Bool("posted", updated.IsPosted))
	return updated, nil
}

func (s *journalService) DeleteTransaction(ctx context.Context, transactionID string) error {
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		txn, err := s.journalRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if txn.IsVoid {
			return fmt.Errorf("%w: void entries are kept", apperrors.ErrAlreadyVoid)
		}
		if txn.IsPosted {
			return apperrors.ErrNotDraft
		}
		return s.journalRepo.DeleteTransactionInTx(ctx, tx, transactionID)
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Draft journal entry deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *journalService) PostTransaction(ctx context.Context, transactionID string, actor string) (*domain.Transaction, error) {
	var posted *domain.Transaction
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		txn, err := s.journalRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if txn.IsVoid {
			return apperrors.ErrAlreadyVoid
		}
		if txn.IsPosted {
			return apperrors.ErrAlreadyPosted
		}
		if err := accounting.ValidateLines(txn.Lines); err != nil {
			return err
		}

		txn.IsPosted = true
		txn.LastUpdatedAt = s.now()
		txn.LastUpdatedBy = actor
		if err := s.journalRepo.UpdateTransactionInTx(ctx, tx, *txn); err != nil {
			return err
		}
		posted = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted", slog.String("transaction_id", transactionID))
	return posted, nil
}

func (s *journalService) UnpostTransaction(ctx context.Context, transactionID string, actor string) (*domain.Transaction, error) {
	var draft *domain.Transaction
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		txn, err := s.journalRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if txn.IsVoid {
			return apperrors.ErrAlreadyVoid
		}
		if !txn.IsPosted {
			return apperrors.ErrNotPosted
		}

		txn.IsPosted = false
		txn.LastUpdatedAt = s.now()
		txn.LastUpdatedBy = actor
		if err := s.journalRepo.UpdateTransactionInTx(ctx, tx, *txn); err != nil {
			return err
		}
		draft = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry unposted", slog.String("transaction_id", transactionID))
	return draft, nil
}

func (s *journalService) VoidTransaction(ctx context.Context, transactionID string, reason string, actor string) (*domain.Transaction, error) {
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		return s.VoidTransactionInTx(ctx, tx, transactionID, reason, actor)
	})
	if err != nil {
		return nil, err
	}
	return s.journalRepo.FindTransactionByID(ctx, transactionID)
}

func (s *journalService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.journalRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *journalService) FindBySourceDocument(ctx context.Context, sourceType, sourceID string) (*domain.Transaction, error) {
	return s.journalRepo.FindPostedBySourceDocument(ctx, sourceType, sourceID)
}

func (s *journalService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := domain.TransactionFilter{Limit: params.Limit}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if params.TransactionType != "" {
		t := domain.TransactionType(params.TransactionType)
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, params.TransactionType)
		}
		filter.TransactionType = &t
	}
	if params.Status != "" {
		st := domain.TransactionStatus(params.Status)
		filter.Status = &st
	}
	if params.SourceDocumentType != "" {
		filter.SourceDocumentType = &params.SourceDocumentType
	}
	var err error
	if filter.StartDate, err = dto.ParseDate(params.StartDate); err != nil {
		return nil, err
	}
	if filter.EndDate, err = dto.ParseDate(params.EndDate); err != nil {
		return nil, err
	}
	if params.NextToken != "" {
		filter.NextToken = &params.NextToken
	}

	txns, nextToken, err := s.journalRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *journalService) GeneralLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	entries, err := s.journalRepo.GetGeneralLedger(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load general ledger")
		return nil, err
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	if filter.AccountID == nil {
		return entries, nil
	}

	account, err := s.accountRepo.FindAccountByID(ctx, *filter.AccountID)
	if err != nil {
		return nil, err
	}

	balance := account.OpeningBalance
	if filter.StartDate != nil {
		dayBefore := filter.StartDate.AddDate(0, 0, -1)
		totals, err := s.accountRepo.GetPostedTotals(ctx, account.AccountID, dayBefore)
		if err != nil {
			return nil, err
		}
		balance = accounting.SignedBalance(account.BalanceType, account.OpeningBalanceAsOf(dayBefore), totals.Debits, totals.Credits)
	}

	for i := range entries {
		balance = balance.Add(accounting.SignedActivity(account.BalanceType, entries[i].DebitAmount, entries[i].CreditAmount))
		running := balance
		entries[i].RunningBalance = &running
	}
	return entries, nil
}
