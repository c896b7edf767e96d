package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetAccountTotals sums posted, non-void lines per account in the date range.
func (r *reportingRepository) GetAccountTotals(ctx context.Context, from *time.Time, to time.Time) (map[string]domain.AccountTotals, error) {
	query := `
		SELECT
			l.account_id,
			COALESCE(SUM(l.debit_amount), 0) AS total_debit,
			COALESCE(SUM(l.credit_amount), 0) AS total_credit
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE t.is_posted
			AND NOT t.is_void
			AND t.transaction_date <= $1
			AND ($2::date IS NULL OR t.transaction_date >= $2::date)
		GROUP BY l.account_id
	`

	rows, err := r.Pool.Query(ctx, query, to, from)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.AccountTotals)
	for rows.Next() {
		var row domain.AccountTotals
		var debits, credits decimal.Decimal
		if err := rows.Scan(&row.AccountID, &debits, &credits); err != nil {
			return nil, fmt.Errorf("error scanning account totals row: %w", err)
		}
		row.Debits = debits
		row.Credits = credits
		result[row.AccountID] = row
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}
	return result, nil
}

// GetTransactionsTouchingAccounts returns posted, non-void entries in range that have
// at least one line on any of accountIDs, with all of their lines.
func (r *reportingRepository) GetTransactionsTouchingAccounts(ctx context.Context, accountIDs []string, from, to time.Time) ([]domain.Transaction, error) {
	if len(accountIDs) == 0 {
		return []domain.Transaction{}, nil
	}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		WHERE t.is_posted
			AND NOT t.is_void
			AND t.transaction_date BETWEEN $2 AND $3
			AND EXISTS (
				SELECT 1 FROM transaction_lines l
				WHERE l.transaction_id = t.transaction_id AND l.account_id = ANY($1)
			)
		ORDER BY t.transaction_date, t.transaction_number
	`
	rows, err := r.Pool.Query(ctx, query, accountIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying cash transactions: %w", err)
	}
	defer rows.Close()

	var headers []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning cash transaction: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash transactions: %w", err)
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}
	lines, err := loadLines(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Transaction, len(headers))
	for i, h := range headers {
		result[i] = mapping.ToDomainTransaction(h, lines[h.TransactionID])
	}
	return result, nil
}

// PgxInventoryValuator values on-hand stock from the inventory_items table.
type PgxInventoryValuator struct {
	BaseRepository
}

// NewPgxInventoryValuator creates a valuator over the ledger database.
func NewPgxInventoryValuator(pool *pgxpool.Pool) *PgxInventoryValuator {
	return &PgxInventoryValuator{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryValuator = (*PgxInventoryValuator)(nil)

// OnHandValue returns Σ current_quantity × product_cost, optionally for one establishment.
func (v *PgxInventoryValuator) OnHandValue(ctx context.Context, establishmentID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(current_quantity * product_cost), 0)
		FROM inventory_items
		WHERE current_quantity > 0
		  AND ($1 = '' OR establishment_id = $1)
	`
	var total decimal.Decimal
	if err := v.Pool.QueryRow(ctx, query, establishmentID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error valuing inventory: %w", err)
	}
	return total, nil
}
