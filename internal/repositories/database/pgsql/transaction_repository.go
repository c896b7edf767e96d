package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
	"github.com/SscSPs/pos_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPageSize = 20

// PgxTransactionRepository stores journal entries and their lines.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, transaction_number, transaction_date, transaction_type, description,
	reference_number, source_document_type, source_document_id, is_posted, is_void, void_date, void_reason,
	created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, transaction_id, line_number, account_id, debit_amount, credit_amount,
	description, entity_type, entity_id, class_id, billable`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionNumber,
		&m.TransactionDate,
		&m.TransactionType,
		&m.Description,
		&m.ReferenceNumber,
		&m.SourceDocumentType,
		&m.SourceDocumentID,
		&m.IsPosted,
		&m.IsVoid,
		&m.VoidDate,
		&m.VoidReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// loadLines fetches lines for the given entries keyed by transaction id.
func loadLines(ctx context.Context, q querier, transactionIDs []string) (map[string][]models.TransactionLine, error) {
	result := make(map[string][]models.TransactionLine, len(transactionIDs))
	if len(transactionIDs) == 0 {
		return result, nil
	}
	rows, err := q.Query(ctx, `
		SELECT `+lineColumns+`
		FROM transaction_lines
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, line_number;`, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.TransactionLine
		if err := rows.Scan(
			&l.LineID,
			&l.TransactionID,
			&l.LineNumber,
			&l.AccountID,
			&l.DebitAmount,
			&l.CreditAmount,
			&l.Description,
			&l.EntityType,
			&l.EntityID,
			&l.ClassID,
			&l.Billable,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction line", err)
		}
		result[l.TransactionID] = append(result[l.TransactionID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction lines", err)
	}
	return result, nil
}

func (r *PgxTransactionRepository) findOne(ctx context.Context, q querier, query string, what string, args ...any) (*domain.Transaction, error) {
	m, err := scanTransaction(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapNotFound(err, what)
	}
	lines, err := loadLines(ctx, q, []string{m.TransactionID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(m, lines[m.TransactionID])
	return &d, nil
}

// FindTransactionByID retrieves a journal entry with its lines.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, r.Pool,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1;`,
		"transaction "+transactionID, transactionID)
}

// FindTransactionByIDForUpdate loads and locks a journal entry with its lines.
func (r *PgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, tx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`,
		"transaction "+transactionID, transactionID)
}

// FindPostedBySourceDocument returns the live posted entry for a business event.
func (r *PgxTransactionRepository) FindPostedBySourceDocument(ctx context.Context, sourceType, sourceID string) (*domain.Transaction, error) {
	return r.findOne(ctx, r.Pool, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE source_document_type = $1 AND source_document_id = $2 AND is_posted AND NOT is_void
		LIMIT 1;`,
		fmt.Sprintf("posted transaction for %s %s", sourceType, sourceID), sourceType, sourceID)
}

func insertLines(ctx context.Context, tx pgx.Tx, transactionID string, lines []domain.TransactionLine) error {
	batch := &pgx.Batch{}
	query := `INSERT INTO transaction_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	for _, line := range lines {
		line.TransactionID = transactionID
		l := mapping.ToModelTransactionLine(line)
		batch.Queue(query,
			l.LineID,
			l.TransactionID,
			l.LineNumber,
			l.AccountID,
			l.DebitAmount,
			l.CreditAmount,
			l.Description,
			l.EntityType,
			l.EntityID,
			l.ClassID,
			l.Billable,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert transaction line", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close line batch", err)
	}
	return nil
}

// SaveTransactionInTx inserts the header and all lines, filling in TransactionNumber.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	m := mapping.ToModelTransaction(*txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, 'JE-' || LPAD(nextval('transaction_number_seq')::text, 6, '0'),
			$2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING transaction_number;
	`
	err := tx.QueryRow(ctx, query,
		m.TransactionID,
		m.TransactionDate,
		m.TransactionType,
		m.Description,
		m.ReferenceNumber,
		m.SourceDocumentType,
		m.SourceDocumentID,
		m.IsPosted,
		m.IsVoid,
		m.VoidDate,
		m.VoidReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&txn.TransactionNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %s is already posted", apperrors.ErrDuplicate, txn.SourceDocumentType, txn.SourceDocumentID)
		}
		return apperrors.NewAppError(500, "failed to insert transaction", err)
	}

	for i := range txn.Lines {
		txn.Lines[i].TransactionID = txn.TransactionID
	}
	return insertLines(ctx, tx, txn.TransactionID, txn.Lines)
}

// UpdateTransactionInTx persists header fields and posted/void state.
func (r *PgxTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET transaction_date = $2, transaction_type = $3, description = $4, reference_number = $5,
			source_document_type = $6, source_document_id = $7, is_posted = $8, is_void = $9,
			void_date = $10, void_reason = $11, last_updated_at = $12, last_updated_by = $13
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.TransactionDate,
		m.TransactionType,
		m.Description,
		m.ReferenceNumber,
		m.SourceDocumentType,
		m.SourceDocumentID,
		m.IsPosted,
		m.IsVoid,
		m.VoidDate,
		m.VoidReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %s is already posted", apperrors.ErrDuplicate, txn.SourceDocumentType, txn.SourceDocumentID)
		}
		return apperrors.NewAppError(500, "failed to update transaction "+txn.TransactionID, err)
	}
	return expectOneRow(tag, "transaction "+txn.TransactionID)
}

// ReplaceLinesInTx deletes the existing lines of a draft entry and inserts lines.
func (r *PgxTransactionRepository) ReplaceLinesInTx(ctx context.Context, tx pgx.Tx, transactionID string, lines []domain.TransactionLine) error {
	if _, err := tx.Exec(ctx, `DELETE FROM transaction_lines WHERE transaction_id = $1;`, transactionID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of transaction "+transactionID, err)
	}
	return insertLines(ctx, tx, transactionID, lines)
}

// DeleteTransactionInTx removes a draft entry; lines cascade.
func (r *PgxTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	return expectOneRow(tag, "transaction "+transactionID)
}

// ListTransactions retrieves a page of entries, newest first, using keyset pagination
// over (transaction_date, transaction_number).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var conditions []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conditions = append(conditions, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}

	if filter.TransactionType != nil {
		add("transaction_type = ?", string(*filter.TransactionType))
	}
	if filter.SourceDocumentType != nil {
		add("source_document_type = ?", *filter.SourceDocumentType)
	}
	if filter.StartDate != nil {
		add("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("transaction_date <= ?", *filter.EndDate)
	}
	if filter.Status != nil {
		switch *filter.Status {
		case domain.StatusDraft:
			conditions = append(conditions, "NOT is_posted AND NOT is_void")
		case domain.StatusPosted:
			conditions = append(conditions, "is_posted AND NOT is_void")
		case domain.StatusVoid:
			conditions = append(conditions, "is_void")
		}
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		lastDate, lastNumber, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastDate, lastNumber)
		conditions = append(conditions, fmt.Sprintf("(transaction_date, transaction_number) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY transaction_date DESC, transaction_number DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	headers := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextToken *string
	if len(headers) > limit {
		// The token points to the last item included in this page.
		last := headers[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.TransactionNumber)
		nextToken = &token
		headers = headers[:limit]
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}
	lines, err := loadLines(ctx, r.Pool, ids)
	if err != nil {
		return nil, nil, err
	}

	result := make([]domain.Transaction, len(headers))
	for i, h := range headers {
		result[i] = mapping.ToDomainTransaction(h, lines[h.TransactionID])
	}
	return result, nextToken, nil
}

// GetGeneralLedger returns posted, non-void lines ordered by date, transaction and line number.
func (r *PgxTransactionRepository) GetGeneralLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	conditions := []string{"t.is_posted", "NOT t.is_void"}
	var args []any
	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		conditions = append(conditions, "l.account_id = $"+strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, "t.transaction_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, "t.transaction_date <= $"+strconv.Itoa(len(args)))
	}

	query := `
		SELECT t.transaction_id, t.transaction_number, t.transaction_date, t.transaction_type,
			COALESCE(t.description, ''), l.line_number, COALESCE(l.description, ''),
			a.account_id, a.account_number, a.account_name, a.account_type, a.balance_type,
			l.debit_amount, l.credit_amount, COALESCE(l.entity_type, ''), COALESCE(l.entity_id, '')
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY t.transaction_date, t.transaction_number, l.line_number;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query general ledger", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var e domain.LedgerEntry
		var txnType, accountType, balanceType string
		if err := rows.Scan(
			&e.TransactionID,
			&e.TransactionNumber,
			&e.TransactionDate,
			&txnType,
			&e.Description,
			&e.LineNumber,
			&e.LineDescription,
			&e.AccountID,
			&e.AccountNumber,
			&e.AccountName,
			&accountType,
			&balanceType,
			&e.DebitAmount,
			&e.CreditAmount,
			&e.EntityType,
			&e.EntityID,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row", err)
		}
		e.TransactionType = domain.TransactionType(txnType)
		e.AccountType = domain.AccountType(accountType)
		e.BalanceType = domain.BalanceType(balanceType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows", err)
	}
	return entries, nil
}
