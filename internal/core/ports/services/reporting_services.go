package services

import (
	"context"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance lists every account with a non-zero balance as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)

	// IncomeStatement generates the profit and loss statement for a period
	IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet generates a balance sheet as of a date. establishmentID scopes the inventory valuation.
	BalanceSheet(ctx context.Context, asOf time.Time, establishmentID string) (*domain.BalanceSheet, error)

	// CashFlow generates the direct-method cash flow statement for a period
	CashFlow(ctx context.Context, start, end time.Time) (*domain.CashFlowStatement, error)

	ComparativeIncomeStatement(ctx context.Context, start, end, priorStart, priorEnd time.Time) (*domain.ComparativeIncomeStatement, error)
	ComparativeBalanceSheet(ctx context.Context, asOf, priorAsOf time.Time, establishmentID string) (*domain.ComparativeBalanceSheet, error)
	ComparativeCashFlow(ctx context.Context, start, end, priorStart, priorEnd time.Time) (*domain.ComparativeCashFlow, error)
}
