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

// PgxCustomerPaymentRepository stores customer payments and their applications.
type PgxCustomerPaymentRepository struct {
	BaseRepository
}

func newPgxCustomerPaymentRepository(pool *pgxpool.Pool) portsrepo.CustomerPaymentRepositoryFacade {
	return &PgxCustomerPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerPaymentRepositoryFacade = (*PgxCustomerPaymentRepository)(nil)

const customerPaymentColumns = `payment_id, payment_number, customer_id, payment_date, payment_method, reference_number,
	memo, payment_amount, unapplied_amount, deposit_to_account_id, status, transaction_id, void_date, void_reason,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCustomerPayment(row pgx.Row) (models.CustomerPayment, error) {
	var m models.CustomerPayment
	err := row.Scan(
		&m.PaymentID,
		&m.PaymentNumber,
		&m.CustomerID,
		&m.PaymentDate,
		&m.PaymentMethod,
		&m.ReferenceNumber,
		&m.Memo,
		&m.PaymentAmount,
		&m.UnappliedAmount,
		&m.DepositToAccountID,
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

func loadInvoiceApplications(ctx context.Context, q querier, paymentIDs []string) (map[string][]models.CustomerPaymentApplication, error) {
	result := make(map[string][]models.CustomerPaymentApplication, len(paymentIDs))
	if len(paymentIDs) == 0 {
		return result, nil
	}
	rows, err := q.Query(ctx, `
		SELECT application_id, payment_id, invoice_id, amount_applied
		FROM customer_payment_applications
		WHERE payment_id = ANY($1);`, paymentIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customer payment applications", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.CustomerPaymentApplication
		if err := rows.Scan(&a.ApplicationID, &a.PaymentID, &a.InvoiceID, &a.AmountApplied); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer payment application", err)
		}
		result[a.PaymentID] = append(result[a.PaymentID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating customer payment applications", err)
	}
	return result, nil
}

func findCustomerPayment(ctx context.Context, q querier, query, paymentID string) (*domain.CustomerPayment, error) {
	m, err := scanCustomerPayment(q.QueryRow(ctx, query, paymentID))
	if err != nil {
		return nil, wrapNotFound(err, "customer payment "+paymentID)
	}
	apps, err := loadInvoiceApplications(ctx, q, []string{paymentID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCustomerPayment(m, apps[paymentID])
	return &d, nil
}

// FindCustomerPaymentByID retrieves a payment with its applications.
func (r *PgxCustomerPaymentRepository) FindCustomerPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error) {
	return findCustomerPayment(ctx, r.Pool, `SELECT `+customerPaymentColumns+` FROM customer_payments WHERE payment_id = $1;`, paymentID)
}

// FindCustomerPaymentByIDForUpdate loads and locks a payment with its applications.
func (r *PgxCustomerPaymentRepository) FindCustomerPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.CustomerPayment, error) {
	return findCustomerPayment(ctx, tx, `SELECT `+customerPaymentColumns+` FROM customer_payments WHERE payment_id = $1 FOR UPDATE;`, paymentID)
}

// ListCustomerPayments retrieves payments, optionally for one customer, newest first.
func (r *PgxCustomerPaymentRepository) ListCustomerPayments(ctx context.Context, customerID *string) ([]domain.CustomerPayment, error) {
	query := `SELECT ` + customerPaymentColumns + ` FROM customer_payments`
	var args []any
	if customerID != nil {
		query += ` WHERE customer_id = $1`
		args = append(args, *customerID)
	}
	query += ` ORDER BY payment_date DESC, payment_number DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customer payments", err)
	}
	defer rows.Close()

	var ms []models.CustomerPayment
	for rows.Next() {
		m, err := scanCustomerPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer payment row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating customer payment rows", err)
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.PaymentID
	}
	apps, err := loadInvoiceApplications(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.CustomerPayment, len(ms))
	for i, m := range ms {
		payments[i] = mapping.ToDomainCustomerPayment(m, apps[m.PaymentID])
	}
	return payments, nil
}

// SaveCustomerPaymentInTx inserts a payment and its applications, filling in PaymentNumber.
func (r *PgxCustomerPaymentRepository) SaveCustomerPaymentInTx(ctx context.Context, tx pgx.Tx, payment *domain.CustomerPayment) error {
	m := mapping.ToModelCustomerPayment(*payment)
	query := `
		INSERT INTO customer_payments (` + customerPaymentColumns + `)
		VALUES ($1, 'CPAY-' || LPAD(nextval('customer_payment_number_seq')::text, 6, '0'),
			$2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING payment_number;
	`
	err := tx.QueryRow(ctx, query,
		m.PaymentID,
		m.CustomerID,
		m.PaymentDate,
		m.PaymentMethod,
		m.ReferenceNumber,
		m.Memo,
		m.PaymentAmount,
		m.UnappliedAmount,
		m.DepositToAccountID,
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
		return apperrors.NewAppError(500, "failed to insert customer payment", err)
	}

	if len(payment.Applications) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i := range payment.Applications {
		payment.Applications[i].PaymentID = payment.PaymentID
		a := payment.Applications[i]
		batch.Queue(`
			INSERT INTO customer_payment_applications (application_id, payment_id, invoice_id, amount_applied)
			VALUES ($1, $2, $3, $4);`,
			a.ApplicationID, a.PaymentID, a.InvoiceID, a.AmountApplied)
	}
	br := tx.SendBatch(ctx, batch)
	for range payment.Applications {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert customer payment application", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close customer payment application batch", err)
	}
	return nil
}

// UpdateCustomerPaymentInTx persists non-structural fields and void state.
func (r *PgxCustomerPaymentRepository) UpdateCustomerPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CustomerPayment) error {
	m := mapping.ToModelCustomerPayment(payment)
	query := `
		UPDATE customer_payments
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
		return apperrors.NewAppError(500, "failed to update customer payment "+payment.PaymentID, err)
	}
	return expectOneRow(tag, "customer payment "+payment.PaymentID)
}
