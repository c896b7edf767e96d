package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the clock used for audit timestamps.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new chart of accounts service with the provided options
func NewAccountService(txManager portsrepo.TransactionManager, repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		txManager:   txManager,
		accountRepo: repo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if !req.BalanceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown balance type %q", apperrors.ErrValidation, req.BalanceType)
	}

	if _, err := s.accountRepo.FindAccountByNumber(ctx, req.AccountNumber); err == nil {
		return nil, fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, req.AccountNumber)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account number", slog.String("account_number", req.AccountNumber))
		return nil, err
	}

	now := s.now()
	account := domain.Account{
		AccountID:          uuid.NewString(),
		AccountNumber:      req.AccountNumber,
		AccountName:        req.AccountName,
		AccountType:        req.AccountType,
		SubType:            req.SubType,
		BalanceType:        req.BalanceType,
		Description:        req.Description,
		IsActive:           true,
		IsSystemAccount:    req.IsSystemAccount,
		OpeningBalance:     req.OpeningBalance,
		OpeningBalanceDate: req.OpeningBalanceDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
			s.LogError(ctx, err, "Failed to find parent account", slog.String("parent_id", *req.ParentAccountID))
			return nil, fmt.Errorf("invalid parent account: %w", err)
		}
		account.ParentAccountID = *req.ParentAccountID
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_number", account.AccountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_number", account.AccountNumber))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account.IsSystemAccount {
		typeChanged := req.AccountType != nil && *req.AccountType != account.AccountType
		sideChanged := req.BalanceType != nil && *req.BalanceType != account.BalanceType
		if typeChanged || sideChanged {
			return nil, fmt.Errorf("%w: cannot modify account type or balance type of system accounts", apperrors.ErrConflict)
		}
	}

	if req.AccountNumber != nil && *req.AccountNumber != account.AccountNumber {
		existing, err := s.accountRepo.FindAccountByNumber(ctx, *req.AccountNumber)
		if err == nil && existing.AccountID != accountID {
			return nil, fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, *req.AccountNumber)
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		account.AccountNumber = *req.AccountNumber
	}
	if req.AccountType != nil {
		if !req.AccountType.IsValid() {
			return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *req.AccountType)
		}
		account.AccountType = *req.AccountType
	}
	if req.BalanceType != nil {
		if !req.BalanceType.IsValid() {
			return nil, fmt.Errorf("%w: unknown balance type %q", apperrors.ErrValidation, *req.BalanceType)
		}
		account.BalanceType = *req.BalanceType
	}
	if req.ParentAccountID != nil {
		if *req.ParentAccountID != "" {
			if err := s.checkParent(ctx, accountID, *req.ParentAccountID); err != nil {
				return nil, err
			}
		}
		account.ParentAccountID = *req.ParentAccountID
	}
	if req.AccountName != nil {
		account.AccountName = *req.AccountName
	}
	if req.SubType != nil {
		account.SubType = *req.SubType
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if req.OpeningBalance != nil {
		account.OpeningBalance = *req.OpeningBalance
	}
	if req.OpeningBalanceDate != nil {
		account.OpeningBalanceDate = req.OpeningBalanceDate
	}

	account.LastUpdatedAt = s.now()
	account.LastUpdatedBy = actor

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// checkParent rejects a parent that does not exist or whose ancestor chain reaches accountID.
func (s *accountService) checkParent(ctx context.Context, accountID, parentID string) error {
	seen := map[string]struct{}{}
	current := parentID
	for current != "" {
		if current == accountID {
			return apperrors.ErrCircularHierarchy
		}
		if _, ok := seen[current]; ok {
			return apperrors.ErrCircularHierarchy
		}
		seen[current] = struct{}{}

		parent, err := s.accountRepo.FindAccountByID(ctx, current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) && current == parentID {
				return fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, parentID)
			}
			return err
		}
		current = parent.ParentAccountID
	}
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.IsSystemAccount {
		return apperrors.ErrSystemAccount
	}

	children, err := s.accountRepo.ListAccounts(ctx, domain.AccountFilter{ParentID: &accountID})
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return fmt.Errorf("%w: account has %d child accounts", apperrors.ErrAccountInUse, len(children))
	}

	lines, err := s.accountRepo.CountTransactionLines(ctx, accountID)
	if err != nil {
		return err
	}
	if lines > 0 {
		return fmt.Errorf("%w: account is referenced by %d journal lines", apperrors.ErrAccountInUse, lines)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByNumber(ctx, accountNumber)
}

func (s *accountService) ListChildren(ctx context.Context, parentID string) ([]domain.Account, error) {
	return s.ListAccounts(ctx, domain.AccountFilter{ParentID: &parentID})
}

func (s *accountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) ComputeBalance(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	totals, err := s.accountRepo.GetPostedTotals(ctx, accountID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum posted lines", slog.String("account_id", accountID))
		return decimal.Zero, err
	}
	return accounting.SignedBalance(account.BalanceType, account.OpeningBalanceAsOf(asOf), totals.Debits, totals.Credits), nil
}

// SeedDefaultChart inserts the default accounts that are missing, all in one
// database transaction. Parent links point at new or already existing parents.
func (s *accountService) SeedDefaultChart(ctx context.Context, actor string) (int, int, error) {
	chart := domain.DefaultChart()
	numbers := make([]string, len(chart))
	for i, a := range chart {
		numbers[i] = a.AccountNumber
	}
	existing, err := s.accountRepo.FindAccountsByNumbers(ctx, numbers)
	if err != nil {
		return 0, 0, err
	}

	ids := make(map[string]string, len(chart))
	for number, a := range existing {
		ids[number] = a.AccountID
	}
	parents := domain.DefaultChartParents()
	now := s.now()
	missing := make([]domain.Account, 0, len(chart))
	for _, a := range chart {
		if _, ok := existing[a.AccountNumber]; ok {
			continue
		}
		a.AccountID = uuid.NewString()
		ids[a.AccountNumber] = a.AccountID
		if parent, ok := parents[a.AccountNumber]; ok {
			a.ParentAccountID = ids[parent]
		}
		a.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: actor, LastUpdatedAt: now, LastUpdatedBy: actor}
		missing = append(missing, a)
	}
	skipped := len(chart) - len(missing)
	if len(missing) == 0 {
		s.LogInfo(ctx, "Default chart already present", slog.Int("skipped", skipped))
		return 0, skipped, nil
	}

	err = withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		return s.accountRepo.SaveAccountsInTx(ctx, tx, missing)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default chart", slog.Int("accounts", len(missing)))
		return 0, skipped, err
	}

	s.LogInfo(ctx, "Default chart seeded", slog.Int("created", len(missing)), slog.Int("skipped", skipped))
	return len(missing), skipped, nil
}
