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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxInvoiceRepository stores customer invoices and their lines.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, customer_id, po_number, invoice_date, due_date, terms, status,
	subtotal, tax_amount, total_amount, amount_paid, balance_due, memo, transaction_id, void_date, void_reason,
	created_at, created_by, last_updated_at, last_updated_by`

const invoiceLineColumns = `invoice_line_id, invoice_id, line_number, item_id, description, quantity, unit_price,
	line_total, tax_rate_id, tax_amount, account_id, class_id`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.CustomerID,
		&m.PONumber,
		&m.InvoiceDate,
		&m.DueDate,
		&m.Terms,
		&m.Status,
		&m.Subtotal,
		&m.TaxAmount,
		&m.TotalAmount,
		&m.AmountPaid,
		&m.BalanceDue,
		&m.Memo,
		&m.TransactionID,
		&m.VoidDate,
		&m.VoidReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func queryInvoices(ctx context.Context, q querier, query string, args ...any) ([]models.Invoice, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return invoices, nil
}

func loadInvoiceLines(ctx context.Context, q querier, invoiceID string) ([]models.InvoiceLine, error) {
	rows, err := q.Query(ctx, `SELECT `+invoiceLineColumns+` FROM invoice_lines WHERE invoice_id = $1 ORDER BY line_number;`, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines of invoice "+invoiceID, err)
	}
	defer rows.Close()

	lines := []models.InvoiceLine{}
	for rows.Next() {
		var l models.InvoiceLine
		if err := rows.Scan(
			&l.InvoiceLineID,
			&l.InvoiceID,
			&l.LineNumber,
			&l.ItemID,
			&l.Description,
			&l.Quantity,
			&l.UnitPrice,
			&l.LineTotal,
			&l.TaxRateID,
			&l.TaxAmount,
			&l.AccountID,
			&l.ClassID,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice lines", err)
	}
	return lines, nil
}

// FindInvoiceByID retrieves an invoice with its lines.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	m, err := scanInvoice(r.Pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_id = $1;`, invoiceID))
	if err != nil {
		return nil, wrapNotFound(err, "invoice "+invoiceID)
	}
	lines, err := loadInvoiceLines(ctx, r.Pool, invoiceID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainInvoice(m, lines)
	return &d, nil
}

// FindInvoiceLinesInTx reads the lines of an invoice through tx.
func (r *PgxInvoiceRepository) FindInvoiceLinesInTx(ctx context.Context, tx pgx.Tx, invoiceID string) ([]domain.InvoiceLine, error) {
	rows, err := loadInvoiceLines(ctx, tx, invoiceID)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.InvoiceLine, 0, len(rows))
	for _, l := range rows {
		lines = append(lines, mapping.ToDomainInvoiceLine(l))
	}
	return lines, nil
}

// ListInvoices retrieves invoice headers matching filter, newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	var conditions []string
	var args []any
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		conditions = append(conditions, "customer_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY invoice_date DESC, invoice_number DESC;"

	ms, err := queryInvoices(ctx, r.Pool, query, args...)
	if err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		invoices[i] = mapping.ToDomainInvoice(m, nil)
	}
	return invoices, nil
}

func insertInvoiceLines(ctx context.Context, tx pgx.Tx, invoiceID string, lines []domain.InvoiceLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `INSERT INTO invoice_lines (` + invoiceLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	for _, line := range lines {
		line.InvoiceID = invoiceID
		l := mapping.ToModelInvoiceLine(line)
		batch.Queue(query,
			l.InvoiceLineID,
			l.InvoiceID,
			l.LineNumber,
			l.ItemID,
			l.Description,
			l.Quantity,
			l.UnitPrice,
			l.LineTotal,
			l.TaxRateID,
			l.TaxAmount,
			l.AccountID,
			l.ClassID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: invoice line references an unknown account or tax rate", apperrors.ErrValidation)
			}
			return apperrors.NewAppError(500, "failed to insert invoice line", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close invoice line batch", err)
	}
	return nil
}

// SaveInvoiceInTx inserts an invoice and its lines, filling in InvoiceNumber.
func (r *PgxInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice) error {
	m := mapping.ToModelInvoice(*invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, 'INV-' || LPAD(nextval('invoice_number_seq')::text, 6, '0'),
			$2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING invoice_number;
	`
	err := tx.QueryRow(ctx, query,
		m.InvoiceID,
		m.CustomerID,
		m.PONumber,
		m.InvoiceDate,
		m.DueDate,
		m.Terms,
		m.Status,
		m.Subtotal,
		m.TaxAmount,
		m.TotalAmount,
		m.AmountPaid,
		m.BalanceDue,
		m.Memo,
		m.TransactionID,
		m.VoidDate,
		m.VoidReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&invoice.InvoiceNumber)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice", err)
	}
	for i := range invoice.Lines {
		invoice.Lines[i].InvoiceID = invoice.InvoiceID
	}
	return insertInvoiceLines(ctx, tx, invoice.InvoiceID, invoice.Lines)
}

// FindInvoicesByIDsForUpdate loads and locks invoices (without lines).
func (r *PgxInvoiceRepository) FindInvoicesByIDsForUpdate(ctx context.Context, tx pgx.Tx, invoiceIDs []string) (map[string]domain.Invoice, error) {
	result := make(map[string]domain.Invoice, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return result, nil
	}
	ms, err := queryInvoices(ctx, tx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_id = ANY($1) FOR UPDATE;`, invoiceIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		result[m.InvoiceID] = mapping.ToDomainInvoice(m, nil)
	}
	return result, nil
}

// UpdateInvoiceInTx persists header, totals, status and linkage of an invoice.
func (r *PgxInvoiceRepository) UpdateInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET po_number = $2, invoice_date = $3, due_date = $4, terms = $5, status = $6,
			subtotal = $7, tax_amount = $8, total_amount = $9, amount_paid = $10, balance_due = $11,
			memo = $12, transaction_id = $13, void_date = $14, void_reason = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE invoice_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.PONumber,
		m.InvoiceDate,
		m.DueDate,
		m.Terms,
		m.Status,
		m.Subtotal,
		m.TaxAmount,
		m.TotalAmount,
		m.AmountPaid,
		m.BalanceDue,
		m.Memo,
		m.TransactionID,
		m.VoidDate,
		m.VoidReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+invoice.InvoiceID, err)
	}
	return expectOneRow(tag, "invoice "+invoice.InvoiceID)
}

// ReplaceInvoiceLinesInTx swaps the lines of an invoice.
func (r *PgxInvoiceRepository) ReplaceInvoiceLinesInTx(ctx context.Context, tx pgx.Tx, invoiceID string, lines []domain.InvoiceLine) error {
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1;`, invoiceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of invoice "+invoiceID, err)
	}
	return insertInvoiceLines(ctx, tx, invoiceID, lines)
}

// DeleteInvoiceInTx removes an invoice; lines cascade.
func (r *PgxInvoiceRepository) DeleteInvoiceInTx(ctx context.Context, tx pgx.Tx, invoiceID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}
	return expectOneRow(tag, "invoice "+invoiceID)
}
