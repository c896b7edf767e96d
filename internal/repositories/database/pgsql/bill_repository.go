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

// PgxBillRepository stores vendor bills and their lines.
type PgxBillRepository struct {
	BaseRepository
}

func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, bill_number, vendor_id, vendor_reference, bill_date, due_date, terms, status,
	subtotal, tax_amount, total_amount, amount_paid, balance_due, memo, transaction_id, void_date, void_reason,
	created_at, created_by, last_updated_at, last_updated_by`

const billLineColumns = `bill_line_id, bill_id, line_number, item_id, description, quantity, unit_cost,
	line_total, tax_rate_id, tax_amount, account_id, class_id, billable, customer_id`

func scanBill(row pgx.Row) (models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.BillNumber,
		&m.VendorID,
		&m.VendorReference,
		&m.BillDate,
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

func queryBills(ctx context.Context, q querier, query string, args ...any) ([]models.Bill, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bills", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill row", err)
		}
		bills = append(bills, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bill rows", err)
	}
	return bills, nil
}

func loadBillLines(ctx context.Context, q querier, billID string) ([]models.BillLine, error) {
	rows, err := q.Query(ctx, `SELECT `+billLineColumns+` FROM bill_lines WHERE bill_id = $1 ORDER BY line_number;`, billID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines of bill "+billID, err)
	}
	defer rows.Close()

	lines := []models.BillLine{}
	for rows.Next() {
		var l models.BillLine
		if err := rows.Scan(
			&l.BillLineID,
			&l.BillID,
			&l.LineNumber,
			&l.ItemID,
			&l.Description,
			&l.Quantity,
			&l.UnitCost,
			&l.LineTotal,
			&l.TaxRateID,
			&l.TaxAmount,
			&l.AccountID,
			&l.ClassID,
			&l.Billable,
			&l.CustomerID,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bill lines", err)
	}
	return lines, nil
}

// FindBillByID retrieves a bill with its lines.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	m, err := scanBill(r.Pool.QueryRow(ctx, `SELECT `+billColumns+` FROM bills WHERE bill_id = $1;`, billID))
	if err != nil {
		return nil, wrapNotFound(err, "bill "+billID)
	}
	lines, err := loadBillLines(ctx, r.Pool, billID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainBill(m, lines)
	return &d, nil
}

// FindBillLinesInTx reads the lines of a bill through tx.
func (r *PgxBillRepository) FindBillLinesInTx(ctx context.Context, tx pgx.Tx, billID string) ([]domain.BillLine, error) {
	rows, err := loadBillLines(ctx, tx, billID)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.BillLine, 0, len(rows))
	for _, l := range rows {
		lines = append(lines, mapping.ToDomainBillLine(l))
	}
	return lines, nil
}

// ListBills retrieves bill headers matching filter, newest first.
func (r *PgxBillRepository) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	var conditions []string
	var args []any
	if filter.VendorID != nil {
		args = append(args, *filter.VendorID)
		conditions = append(conditions, "vendor_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	query := `SELECT ` + billColumns + ` FROM bills`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY bill_date DESC, bill_number DESC;"

	ms, err := queryBills(ctx, r.Pool, query, args...)
	if err != nil {
		return nil, err
	}
	bills := make([]domain.Bill, len(ms))
	for i, m := range ms {
		bills[i] = mapping.ToDomainBill(m, nil)
	}
	return bills, nil
}

func insertBillLines(ctx context.Context, tx pgx.Tx, billID string, lines []domain.BillLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `INSERT INTO bill_lines (` + billLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	for _, line := range lines {
		line.BillID = billID
		l := mapping.ToModelBillLine(line)
		batch.Queue(query,
			l.BillLineID,
			l.BillID,
			l.LineNumber,
			l.ItemID,
			l.Description,
			l.Quantity,
			l.UnitCost,
			l.LineTotal,
			l.TaxRateID,
			l.TaxAmount,
			l.AccountID,
			l.ClassID,
			l.Billable,
			l.CustomerID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: bill line references an unknown account, tax rate or customer", apperrors.ErrValidation)
			}
			return apperrors.NewAppError(500, "failed to insert bill line", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close bill line batch", err)
	}
	return nil
}

// SaveBillInTx inserts a bill and its lines, filling in BillNumber.
func (r *PgxBillRepository) SaveBillInTx(ctx context.Context, tx pgx.Tx, bill *domain.Bill) error {
	m := mapping.ToModelBill(*bill)
	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, 'BILL-' || LPAD(nextval('bill_number_seq')::text, 6, '0'),
			$2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING bill_number;
	`
	err := tx.QueryRow(ctx, query,
		m.BillID,
		m.VendorID,
		m.VendorReference,
		m.BillDate,
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
	).Scan(&bill.BillNumber)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert bill", err)
	}
	for i := range bill.Lines {
		bill.Lines[i].BillID = bill.BillID
	}
	return insertBillLines(ctx, tx, bill.BillID, bill.Lines)
}

// FindBillsByIDsForUpdate loads and locks bills (without lines).
func (r *PgxBillRepository) FindBillsByIDsForUpdate(ctx context.Context, tx pgx.Tx, billIDs []string) (map[string]domain.Bill, error) {
	result := make(map[string]domain.Bill, len(billIDs))
	if len(billIDs) == 0 {
		return result, nil
	}
	ms, err := queryBills(ctx, tx, `SELECT `+billColumns+` FROM bills WHERE bill_id = ANY($1) FOR UPDATE;`, billIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		result[m.BillID] = mapping.ToDomainBill(m, nil)
	}
	return result, nil
}

// UpdateBillInTx persists header, totals, status and linkage of a bill.
func (r *PgxBillRepository) UpdateBillInTx(ctx context.Context, tx pgx.Tx, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		UPDATE bills
		SET vendor_reference = $2, bill_date = $3, due_date = $4, terms = $5, status = $6,
			subtotal = $7, tax_amount = $8, total_amount = $9, amount_paid = $10, balance_due = $11,
			memo = $12, transaction_id = $13, void_date = $14, void_reason = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE bill_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.BillID,
		m.VendorReference,
		m.BillDate,
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
		return apperrors.NewAppError(500, "failed to update bill "+bill.BillID, err)
	}
	return expectOneRow(tag, "bill "+bill.BillID)
}

// ReplaceBillLinesInTx swaps the lines of a bill.
func (r *PgxBillRepository) ReplaceBillLinesInTx(ctx context.Context, tx pgx.Tx, billID string, lines []domain.BillLine) error {
	if _, err := tx.Exec(ctx, `DELETE FROM bill_lines WHERE bill_id = $1;`, billID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of bill "+billID, err)
	}
	return insertBillLines(ctx, tx, billID, lines)
}

// DeleteBillInTx removes a bill; lines cascade.
func (r *PgxBillRepository) DeleteBillInTx(ctx context.Context, tx pgx.Tx, billID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete bill "+billID, err)
	}
	return expectOneRow(tag, "bill "+billID)
}
