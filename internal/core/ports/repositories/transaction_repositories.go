package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for journal entries
type TransactionReader interface {
	// FindTransactionByID retrieves a journal entry with its lines.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindPostedBySourceDocument returns the posted, non-void entry for a source document, or ErrNotFound.
	FindPostedBySourceDocument(ctx context.Context, sourceType, sourceID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of entry headers using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error)

	// GetGeneralLedger returns posted, non-void lines ordered by date, transaction and line number.
	GetGeneralLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)
}

// TransactionWriter defines write operations that run inside a caller-owned database transaction
type TransactionWriter interface {
	// SaveTransactionInTx inserts the header and all lines, filling in TransactionNumber.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error

	// FindTransactionByIDForUpdate loads and locks a journal entry with its lines.
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)

	// UpdateTransactionInTx persists header fields and posted/void state.
	UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// ReplaceLinesInTx deletes the existing lines of a draft entry and inserts lines.
	ReplaceLinesInTx(ctx context.Context, tx pgx.Tx, transactionID string, lines []domain.TransactionLine) error

	// DeleteTransactionInTx removes a draft entry; lines cascade.
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error
}

// TransactionRepositoryFacade combines all journal repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
