package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/jackc/pgx/v5"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetTransactionByID retrieves a journal entry with its lines.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindBySourceDocument returns the posted, non-void entry recorded for a business event.
	FindBySourceDocument(ctx context.Context, sourceType, sourceID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of journal entries.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GeneralLedger returns posted lines in range; a single-account filter adds running balances.
	GeneralLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)
}

// JournalWriterSvc defines the draft/posted/void lifecycle of journal entries
type JournalWriterSvc interface {
	// CreateTransaction validates and persists a new entry, posting it when requested.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error)

	// UpdateTransaction patches a draft entry.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor string) (*domain.Transaction, error)

	// DeleteTransaction removes a draft entry.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// PostTransaction moves a balanced draft entry to posted.
	PostTransaction(ctx context.Context, transactionID string, actor string) (*domain.Transaction, error)

	// UnpostTransaction moves a posted entry back to draft.
	UnpostTransaction(ctx context.Context, transactionID string, actor string) (*domain.Transaction, error)

	// VoidTransaction marks an entry void. Void is terminal.
	VoidTransaction(ctx context.Context, transactionID string, reason string, actor string) (*domain.Transaction, error)
}

// JournalPosterSvc lets other ledger services write entries inside their own database transaction
type JournalPosterSvc interface {
	// RecordTransactionInTx validates txn and inserts it with its lines, posted when post is true.
	RecordTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, post bool, actor string) (*domain.Transaction, error)

	// VoidTransactionInTx voids an entry as part of a larger unit of work.
	VoidTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string, reason string, actor string) error
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalPosterSvc
}
