package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, account_number, account_name, account_type, sub_type, parent_account_id,
	balance_type, description, is_active, is_system_account, opening_balance, opening_balance_date,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.AccountName,
		&m.AccountType,
		&m.SubType,
		&m.ParentAccountID,
		&m.BalanceType,
		&m.Description,
		&m.IsActive,
		&m.IsSystemAccount,
		&m.OpeningBalance,
		&m.OpeningBalanceDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]models.Account, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.AccountNumber,
		m.AccountName,
		m.AccountType,
		m.SubType,
		m.ParentAccountID,
		m.BalanceType,
		m.Description,
		m.IsActive,
		m.IsSystemAccount,
		m.OpeningBalance,
		m.OpeningBalanceDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountNumber, err)
	}
	return nil
}

// SaveAccountsInTx inserts accounts in one batch inside tx.
func (r *PgxAccountRepository) SaveAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
	batch := &pgx.Batch{}
	for _, account := range accounts {
		m := mapping.ToModelAccount(account)
		batch.Queue(query,
			m.AccountID,
			m.AccountNumber,
			m.AccountName,
			m.AccountType,
			m.SubType,
			m.ParentAccountID,
			m.BalanceType,
			m.Description,
			m.IsActive,
			m.IsSystemAccount,
			m.OpeningBalance,
			m.OpeningBalanceDate,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for _, account := range accounts {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
			}
			return apperrors.NewAppError(500, "failed to insert account "+account.AccountNumber, err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close account batch", err)
	}
	return nil
}

// UpdateAccount updates every mutable column of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET account_number = $2, account_name = $3, account_type = $4, sub_type = $5, parent_account_id = $6,
			balance_type = $7, description = $8, is_active = $9, opening_balance = $10, opening_balance_date = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.AccountNumber,
		m.AccountName,
		m.AccountType,
		m.SubType,
		m.ParentAccountID,
		m.BalanceType,
		m.Description,
		m.IsActive,
		m.OpeningBalance,
		m.OpeningBalanceDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return apperrors.NewAppError(500, "failed to update account "+m.AccountID, err)
	}
	return expectOneRow(tag, "account "+m.AccountID)
}

// DeleteAccount removes an account row.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete account "+accountID, err)
	}
	return expectOneRow(tag, "account "+accountID)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	m, err := scanAccount(r.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = $1;`, accountID))
	if err != nil {
		return nil, wrapNotFound(err, "account "+accountID)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountByNumber retrieves an account by its account number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	m, err := scanAccount(r.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_number = $1;`, accountNumber))
	if err != nil {
		return nil, wrapNotFound(err, "account number "+accountNumber)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	ms, err := r.queryAccounts(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = ANY($1);`, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return result, nil
}

// FindAccountsByNumbers retrieves multiple accounts keyed by account number.
func (r *PgxAccountRepository) FindAccountsByNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountNumbers))
	if len(accountNumbers) == 0 {
		return result, nil
	}
	ms, err := r.queryAccounts(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_number = ANY($1);`, accountNumbers)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		result[m.AccountNumber] = mapping.ToDomainAccount(m)
	}
	return result, nil
}

// ListAccounts retrieves accounts matching filter ordered by account number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	var conditions []string
	var args []any
	if filter.AccountType != nil {
		args = append(args, string(*filter.AccountType))
		conditions = append(conditions, "account_type = $"+strconv.Itoa(len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, "is_active = $"+strconv.Itoa(len(args)))
	}
	if filter.ParentID != nil {
		if *filter.ParentID == "" {
			conditions = append(conditions, "parent_account_id IS NULL")
		} else {
			args = append(args, *filter.ParentID)
			conditions = append(conditions, "parent_account_id = $"+strconv.Itoa(len(args)))
		}
	}

	query := `SELECT ` + accountColumns + ` FROM accounts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY account_number;"

	ms, err := r.queryAccounts(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// CountTransactionLines returns how many journal lines reference the account.
func (r *PgxAccountRepository) CountTransactionLines(ctx context.Context, accountID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transaction_lines WHERE account_id = $1;`, accountID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count lines for account "+accountID, err)
	}
	return count, nil
}

// GetPostedTotals sums posted, non-void lines for the account dated on or before asOf.
func (r *PgxAccountRepository) GetPostedTotals(ctx context.Context, accountID string, asOf time.Time) (domain.AccountTotals, error) {
	totals := domain.AccountTotals{AccountID: accountID}
	query := `
		SELECT COALESCE(SUM(l.debit_amount), 0), COALESCE(SUM(l.credit_amount), 0)
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE l.account_id = $1 AND t.is_posted AND NOT t.is_void AND t.transaction_date <= $2;
	`
	if err := r.Pool.QueryRow(ctx, query, accountID, asOf).Scan(&totals.Debits, &totals.Credits); err != nil {
		return totals, apperrors.NewAppError(500, "failed to total account "+accountID, err)
	}
	return totals, nil
}
