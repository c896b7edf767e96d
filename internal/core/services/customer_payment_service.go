package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// customerPaymentService records customer payments and applies them to open invoices.
type customerPaymentService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	paymentRepo  portsrepo.CustomerPaymentRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerRepository
	accountRepo  portsrepo.AccountReader
	journal      portssvc.JournalPosterSvc
	roles        *AccountRoleResolver
	now          func() time.Time
}

// CustomerPaymentServiceOption is a functional option for configuring the customer payment service
type CustomerPaymentServiceOption func(*customerPaymentService)

// WithCustomerPaymentClock overrides the clock used for audit and void timestamps.
func WithCustomerPaymentClock(now func() time.Time) CustomerPaymentServiceOption {
	return func(s *customerPaymentService) {
		s.now = now
	}
}

// NewCustomerPaymentService creates a new customer payment service.
func NewCustomerPaymentService(
	txManager portsrepo.TransactionManager,
	paymentRepo portsrepo.CustomerPaymentRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	customerRepo portsrepo.CustomerRepository,
	accountRepo portsrepo.AccountReader,
	journal portssvc.JournalPosterSvc,
	roles *AccountRoleResolver,
	options ...CustomerPaymentServiceOption,
) portssvc.CustomerPaymentSvcFacade {
	svc := &customerPaymentService{
		txManager:    txManager,
		paymentRepo:  paymentRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		journal:      journal,
		roles:        roles,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerPaymentSvcFacade = (*customerPaymentService)(nil)

// buildReceiptEntry debits the deposit account and credits Accounts Receivable for the full payment amount.
// Any unapplied amount stays on the customer as a credit balance.
func (s *customerPaymentService) buildReceiptEntry(ctx context.Context, p domain.CustomerPayment) (domain.Transaction, error) {
	arID, err := s.roles.ResolveID(ctx, domain.RoleAccountsReceivable)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		TransactionDate:    p.PaymentDate,
		TransactionType:    domain.Payment,
		Description:        fmt.Sprintf("Customer payment %s", p.PaymentNumber),
		ReferenceNumber:    p.ReferenceNumber,
		SourceDocumentType: domain.SourceCustomerPayment,
		SourceDocumentID:   p.PaymentID,
		Lines: []domain.TransactionLine{
			{
				AccountID:    p.DepositToAccountID,
				DebitAmount:  p.PaymentAmount,
				CreditAmount: decimal.Zero,
				Description:  fmt.Sprintf("Received by %s", p.PaymentMethod),
				EntityType:   "customer",
				EntityID:     p.CustomerID,
			},
			{
				AccountID:    arID,
				DebitAmount:  decimal.Zero,
				CreditAmount: p.PaymentAmount,
				Description:  "Accounts receivable",
				EntityType:   "customer",
				EntityID:     p.CustomerID,
			},
		},
	}, nil
}

func (s *customerPaymentService) postReceiptEntry(ctx context.Context, tx pgx.Tx, p *domain.CustomerPayment, actor string) error {
	entry, err := s.buildReceiptEntry(ctx, *p)
	if err != nil {
		return err
	}
	txn, err := s.journal.RecordTransactionInTx(ctx, tx, entry, true, actor)
	if err != nil {
		return err
	}
	p.TransactionID = txn.TransactionID
	return nil
}

func (s *customerPaymentService) validateRequest(ctx context.Context, req dto.CreateCustomerPaymentRequest) ([]string, decimal.Decimal, error) {
	if !req.PaymentMethod.IsValid() {
		return nil, decimal.Zero, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if !req.PaymentAmount.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("%w: payment amount must be greater than zero", apperrors.ErrValidation)
	}
	if len(req.Applications) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: payment must be applied to at least one invoice", apperrors.ErrValidation)
	}

	invoiceIDs := make([]string, 0, len(req.Applications))
	seen := make(map[string]struct{}, len(req.Applications))
	applied := decimal.Zero
	for _, a := range req.Applications {
		if !a.AmountApplied.IsPositive() {
			return nil, decimal.Zero, fmt.Errorf("%w: amount applied to invoice %s must be greater than zero", apperrors.ErrValidation, a.InvoiceID)
		}
		if _, dup := seen[a.InvoiceID]; dup {
			return nil, decimal.Zero, fmt.Errorf("%w: invoice %s is applied more than once", apperrors.ErrValidation, a.InvoiceID)
		}
		seen[a.InvoiceID] = struct{}{}
		invoiceIDs = append(invoiceIDs, a.InvoiceID)
		applied = applied.Add(a.AmountApplied)
	}
	if applied.GreaterThan(req.PaymentAmount) {
		return nil, decimal.Zero, fmt.Errorf("%w: applications total %s exceeds payment amount %s",
			apperrors.ErrOverApplication, applied.StringFixed(2), req.PaymentAmount.StringFixed(2))
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, req.CustomerID)
		}
		return nil, decimal.Zero, err
	}
	if !customer.IsActive {
		return nil, decimal.Zero, fmt.Errorf("%w: customer %s is inactive", apperrors.ErrValidation, customer.CustomerName)
	}

	depositTo, err := s.accountRepo.FindAccountByID(ctx, req.DepositToAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, fmt.Errorf("%w: deposit account not found: %s", apperrors.ErrValidation, req.DepositToAccountID)
		}
		return nil, decimal.Zero, err
	}
	if depositTo.AccountType != domain.Asset || !depositTo.IsActive {
		return nil, decimal.Zero, fmt.Errorf("%w: deposit account %s must be an active Asset account", apperrors.ErrValidation, depositTo.AccountNumber)
	}

	return invoiceIDs, applied, nil
}

func (s *customerPaymentService) CreateCustomerPayment(ctx context.Context, req dto.CreateCustomerPaymentRequest, actor string) (*domain.CustomerPayment, error) {
	invoiceIDs, applied, err := s.validateRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	payment := domain.CustomerPayment{
		PaymentID:          uuid.NewString(),
		CustomerID:         req.CustomerID,
		PaymentDate:        req.PaymentDate,
		PaymentMethod:      req.PaymentMethod,
		ReferenceNumber:    req.ReferenceNumber,
		Memo:               req.Memo,
		PaymentAmount:      req.PaymentAmount,
		UnappliedAmount:    req.PaymentAmount.Sub(applied),
		DepositToAccountID: req.DepositToAccountID,
		Status:             domain.CustomerPaymentReceived,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	for _, a := range req.Applications {
		payment.Applications = append(payment.Applications, domain.CustomerPaymentApplication{
			ApplicationID: uuid.NewString(),
			PaymentID:     payment.PaymentID,
			InvoiceID:     a.InvoiceID,
			AmountApplied: a.AmountApplied,
		})
	}

	err = withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		invoices, err := s.invoiceRepo.FindInvoicesByIDsForUpdate(ctx, tx, invoiceIDs)
		if err != nil {
			return err
		}
		for _, a := range payment.Applications {
			inv, ok := invoices[a.InvoiceID]
			if !ok {
				return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, a.InvoiceID)
			}
			if inv.CustomerID != payment.CustomerID {
				return fmt.Errorf("%w: invoice %s belongs to a different customer", apperrors.ErrValidation, inv.InvoiceNumber)
			}
			if inv.Status == domain.InvoiceVoid {
				return fmt.Errorf("%w: invoice %s is void", apperrors.ErrValidation, inv.InvoiceNumber)
			}
			if a.AmountApplied.GreaterThan(inv.BalanceDue) {
				return fmt.Errorf("%w: %s applied to invoice %s with balance due %s",
					apperrors.ErrOverApplication, a.AmountApplied.StringFixed(2), inv.InvoiceNumber, inv.BalanceDue.StringFixed(2))
			}
			inv.ApplyPayment(a.AmountApplied)
			inv.LastUpdatedAt = now
			inv.LastUpdatedBy = actor
			if err := s.invoiceRepo.UpdateInvoiceInTx(ctx, tx, inv); err != nil {
				return err
			}
		}

		if err := s.paymentRepo.SaveCustomerPaymentInTx(ctx, tx, &payment); err != nil {
			return err
		}
		if err := s.postReceiptEntry(ctx, tx, &payment, actor); err != nil {
			return err
		}
		return s.paymentRepo.UpdateCustomerPaymentInTx(ctx, tx, payment)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to create customer payment", slog.String("customer_id", req.CustomerID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Customer payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_number", payment.PaymentNumber),
		slog.String("amount", payment.PaymentAmount.StringFixed(2)),
		slog.Int("applications", len(payment.Applications)))
	return &payment, nil
}

func (s *customerPaymentService) UpdateCustomerPayment(ctx context.Context, paymentID string, req dto.UpdateCustomerPaymentRequest, actor string) (*domain.CustomerPayment, error) {
	if len(req.Applications) > 0 {
		return nil, fmt.Errorf("%w: applications cannot be changed, void and create a new payment instead", apperrors.ErrValidation)
	}
	if req.PaymentMethod != nil && !req.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, *req.PaymentMethod)
	}

	var updated *domain.CustomerPayment
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		payment, err := s.paymentRepo.FindCustomerPaymentByIDForUpdate(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == domain.CustomerPaymentVoid {
			return fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyVoid, payment.PaymentNumber)
		}

		redate := false
		if req.PaymentDate != nil && !req.PaymentDate.Equal(payment.PaymentDate) {
			payment.PaymentDate = *req.PaymentDate
			redate = true
		}
		if req.PaymentMethod != nil {
			payment.PaymentMethod = *req.PaymentMethod
		}
		if req.ReferenceNumber != nil {
			payment.ReferenceNumber = *req.ReferenceNumber
		}
		if req.Memo != nil {
			payment.Memo = *req.Memo
		}

		if redate && payment.TransactionID != "" {
			if err := s.journal.VoidTransactionInTx(ctx, tx, payment.TransactionID, "Payment date changed", actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
				return err
			}
			if err := s.postReceiptEntry(ctx, tx, payment, actor); err != nil {
				return err
			}
		}

		payment.LastUpdatedAt = s.now()
		payment.LastUpdatedBy = actor
		if err := s.paymentRepo.UpdateCustomerPaymentInTx(ctx, tx, *payment); err != nil {
			return err
		}
		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Customer payment updated", slog.String("payment_id", paymentID))
	return updated, nil
}

func (s *customerPaymentService) VoidCustomerPayment(ctx context.Context, paymentID string, reason string, actor string) (*domain.CustomerPayment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
	}

	var voided *domain.CustomerPayment
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		payment, err := s.paymentRepo.FindCustomerPaymentByIDForUpdate(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == domain.CustomerPaymentVoid {
			return fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyVoid, payment.PaymentNumber)
		}

		now := s.now()
		invoiceIDs := make([]string, 0, len(payment.Applications))
		for _, a := range payment.Applications {
			invoiceIDs = append(invoiceIDs, a.InvoiceID)
		}
		if len(invoiceIDs) > 0 {
			invoices, err := s.invoiceRepo.FindInvoicesByIDsForUpdate(ctx, tx, invoiceIDs)
			if err != nil {
				return err
			}
			for _, a := range payment.Applications {
				if _, ok := invoices[a.InvoiceID]; !ok {
					return fmt.Errorf("%w: invoice %s applied by payment %s", apperrors.ErrNotFound, a.InvoiceID, payment.PaymentNumber)
				}
			}
			for _, a := range payment.Applications {
				inv := invoices[a.InvoiceID]
				inv.ReversePayment(a.AmountApplied)
				inv.LastUpdatedAt = now
				inv.LastUpdatedBy = actor
				if err := s.invoiceRepo.UpdateInvoiceInTx(ctx, tx, inv); err != nil {
					return err
				}
			}
		}

		if payment.TransactionID != "" {
			if err := s.journal.VoidTransactionInTx(ctx, tx, payment.TransactionID, reason, actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
				return err
			}
		}

		payment.Status = domain.CustomerPaymentVoid
		payment.VoidDate = &now
		payment.VoidReason = reason
		payment.LastUpdatedAt = now
		payment.LastUpdatedBy = actor
		if err := s.paymentRepo.UpdateCustomerPaymentInTx(ctx, tx, *payment); err != nil {
			return err
		}
		voided = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Customer payment voided", slog.String("payment_id", paymentID), slog.String("reason", reason))
	return voided, nil
}

func (s *customerPaymentService) GetCustomerPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error) {
	return s.paymentRepo.FindCustomerPaymentByID(ctx, paymentID)
}

func (s *customerPaymentService) ListCustomerPayments(ctx context.Context, customerID *string) ([]domain.CustomerPayment, error) {
	payments, err := s.paymentRepo.ListCustomerPayments(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer payments")
		return nil, err
	}
	if payments == nil {
		return []domain.CustomerPayment{}, nil
	}
	return payments, nil
}
