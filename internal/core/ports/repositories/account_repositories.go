package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its unique account number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountsByNumbers retrieves multiple accounts keyed by account number.
	FindAccountsByNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts matching filter ordered by account number.
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)

	// CountTransactionLines returns how many journal lines reference the account.
	CountTransactionLines(ctx context.Context, accountID string) (int, error)

	// GetPostedTotals sums posted, non-void lines for the account dated on or before asOf.
	GetPostedTotals(ctx context.Context, accountID string, asOf time.Time) (domain.AccountTotals, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccountsInTx inserts accounts in order, so parents must precede children.
	SaveAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount hard-deletes an account. Callers enforce the usage rules.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
