package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetAccountTotals sums posted, non-void lines per account with from <= date <= to.
	// A nil from means since the beginning of the ledger.
	GetAccountTotals(ctx context.Context, from *time.Time, to time.Time) (map[string]domain.AccountTotals, error)

	// GetTransactionsTouchingAccounts returns posted, non-void entries in range that have
	// at least one line on any of accountIDs, with all of their lines.
	GetTransactionsTouchingAccounts(ctx context.Context, accountIDs []string, from, to time.Time) ([]domain.Transaction, error)
}

// InventoryValuator returns the live value of on-hand stock, Σ quantity×cost.
// An empty establishmentID values every location.
type InventoryValuator interface {
	OnHandValue(ctx context.Context, establishmentID string) (decimal.Decimal, error)
}
