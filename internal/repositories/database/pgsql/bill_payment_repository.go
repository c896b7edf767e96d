package pgsql

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBillPaymentRepository stores bill payments and their applications.
type PgxBillPaymentRepository struct {
	BaseRepository
}

func newPgxBillPaymentRepository(pool *pgxpool.Pool) portsrepo.BillPaymentRepositoryFacade {
	return &PgxBillPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillPaymentRepositoryFacade = (*PgxBillPaymentRepository)(nil)

const billPaymentColumns = `payment_id, payment_number, vendor_id, payment_date, payment_method, reference_number,
	memo, payment_amount, unapplied_amount, paid_from_account_id, status, transaction_id, void_date, void_reason,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBillPayment(row pgx.Row) (models.BillPayment, error) {
	var m models.BillPayment
	err := row.Scan(
		&m.PaymentID,
		&m.PaymentNumber,
		&m.VendorID,
		&m.PaymentDate,
		&m.PaymentMethod,
		&m.ReferenceNumber,
		&m.Memo,
		&m.PaymentAmount,
		&m.UnappliedAmount,
		&m.PaidFromAccountID,
		&m.Status,
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

func loadApplications(ctx context.Context, q querier, paymentIDs []string) (map[string][]models.BillPaymentApplication, error) {
	result := make(map[string][]models.BillPaymentApplication, len(paymentIDs))
	if len(paymentIDs) == 0 {
		return result, nil
	}
	rows, err := q.Query(ctx, `
		SELECT application_id, payment_id, bill_id, amount_applied
		FROM bill_payment_applications
		WHERE payment_id = ANY($1);`, paymentIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment applications", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.BillPaymentApplication
		if err := rows.Scan(&a.ApplicationID, &a.PaymentID, &a.BillID, &a.AmountApplied); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment application", err)
		}
		result[a.PaymentID] = append(result[a.PaymentID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment applications", err)
	}
	return result, nil
}

func findBillPayment(ctx context.Context, q querier, query, paymentID string) (*domain.BillPayment, error) {
	m, err := scanBillPayment(q.QueryRow(ctx, query, paymentID))
	if err != nil {
		return nil, wrapNotFound(err, "bill payment "+paymentID)
	}
	apps, err := loadApplications(ctx, q, []string{paymentID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainBillPayment(m, apps[paymentID])
	return &d, nil
}

// FindBillPaymentByID retrieves a payment with its applications.
func (r *PgxBillPaymentRepository) FindBillPaymentByID(ctx context.Context, paymentID string) (*domain.BillPayment, error) {
	return findBillPayment(ctx, r.Pool, `SELECT `+billPaymentColumns+` FROM bill_payments WHERE payment_id = $1;`, paymentID)
}

// FindBillPaymentByIDForUpdate loads and locks a payment with its applications.
func (r *PgxBillPaymentRepository) FindBillPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.BillPayment, error) {
	return findBillPayment(ctx, tx, `SELECT `+billPaymentColumns+` FROM bill_payments WHERE payment_id = $1 FOR UPDATE;`, paymentID)
}

// ListBillPayments retrieves payments, optionally for one vendor, newest first.
func (r *PgxBillPaymentRepository) ListBillPayments(ctx context.Context, vendorID *string) ([]domain.BillPayment, error) {
	query := `SELECT ` + billPaymentColumns + ` FROM bill_payments`
	var args []any
	if vendorID != nil {
		query += ` WHERE vendor_id = $1`
		args = append(args, *vendorID)
	}
	query += ` ORDER BY payment_date DESC, payment_number DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bill payments", err)
	}
	defer rows.Close()

	var ms []models.BillPayment
	for rows.Next() {
		m, err := scanBillPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill payment row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bill payment rows", err)
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.PaymentID
	}
	apps, err := loadApplications(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.BillPayment, len(ms))
	for i, m := range ms {
		payments[i] = mapping.ToDomainBillPayment(m, apps[m.PaymentID])
	}
	return payments, nil
}

// SaveBillPaymentInTx inserts a payment and its applications, filling in PaymentNumber.
func (r *PgxBillPaymentRepository) SaveBillPaymentInTx(ctx context.Context, tx pgx.Tx, payment *domain.BillPayment) error {
	m := mapping.ToModelBillPayment(*payment)
	query := `
		INSERT INTO bill_payments (` + billPaymentColumns + `)
		VALUES ($1, 'BPAY-' || LPAD(nextval('bill_payment_number_seq')::text, 6, '0'),
			$2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING payment_number;
	`
	err := tx.QueryRow(ctx, query,
		m.PaymentID,
		m.VendorID,
		m.PaymentDate,
		m.PaymentMethod,
		m.ReferenceNumber,
		m.Memo,
		m.PaymentAmount,
		m.UnappliedAmount,
		m.PaidFromAccountID,
		m.Status,
		m.TransactionID,
		m.VoidDate,
		m.VoidReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&payment.PaymentNumber)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert bill payment", err)
	}

	if len(payment.Applications) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i := range payment.Applications {
		payment.Applications[i].PaymentID = payment.PaymentID
		a := payment.Applications[i]
		batch.Queue(`
			INSERT INTO bill_payment_applications (application_id, payment_id, bill_id, amount_applied)
			VALUES ($1, $2, $3, $4);`,
			a.ApplicationID, a.PaymentID, a.BillID, a.AmountApplied)
	}
	br := tx.SendBatch(ctx, batch)
	for range payment.Applications {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert payment application", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close application batch", err)
	}
	return nil
}

// UpdateBillPaymentInTx persists non-structural fields and void state.
func (r *PgxBillPaymentRepository) UpdateBillPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.BillPayment) error {
	m := mapping.ToModelBillPayment(payment)
	query := `
		UPDATE bill_payments
		SET payment_date = $2, payment_method = $3, reference_number = $4, memo = $5,
			unapplied_amount = $6, status = $7, transaction_id = $8, void_date = $9, void_reason = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE payment_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.PaymentDate,
		m.PaymentMethod,
		m.ReferenceNumber,
		m.Memo,
		m.UnappliedAmount,
		m.Status,
		m.TransactionID,
		m.VoidDate,
		m.VoidReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update bill payment "+payment.PaymentID, err)
	}
	return expectOneRow(tag, "bill payment "+payment.PaymentID)
}
