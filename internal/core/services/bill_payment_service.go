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

// billPaymentService records vendor payments and applies them to open bills.
type billPaymentService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	paymentRepo portsrepo.BillPaymentRepositoryFacade
	billRepo    portsrepo.BillRepositoryFacade
	vendorRepo  portsrepo.VendorRepository
	accountRepo portsrepo.AccountReader
	journal     portssvc.JournalPosterSvc
	roles       *AccountRoleResolver
	now         func() time.Time
}

// BillPaymentServiceOption is a functional option for configuring the bill payment service
type BillPaymentServiceOption func(*billPaymentService)

// WithBillPaymentClock overrides the clock used for audit and void timestamps.
func WithBillPaymentClock(now func() time.Time) BillPaymentServiceOption {
	return func(s *billPaymentService) {
		s.now = now
	}
}

// NewBillPaymentService creates a new bill payment service.
func NewBillPaymentService(
	txManager portsrepo.TransactionManager,
	paymentRepo portsrepo.BillPaymentRepositoryFacade,
	billRepo portsrepo.BillRepositoryFacade,
	vendorRepo portsrepo.VendorRepository,
	accountRepo portsrepo.AccountReader,
	journal portssvc.JournalPosterSvc,
	roles *AccountRoleResolver,
	options ...BillPaymentServiceOption,
) portssvc.BillPaymentSvcFacade {
	svc := &billPaymentService{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
		vendorRepo:  vendorRepo,
		accountRepo: accountRepo,
		journal:     journal,
		roles:       roles,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BillPaymentSvcFacade = (*billPaymentService)(nil)

// buildPaymentEntry debits Accounts Payable and credits the paid-from account for the full payment amount.
func (s *billPaymentService) buildPaymentEntry(ctx context.Context, p domain.BillPayment) (domain.Transaction, error) {
	apID, err := s.roles.ResolveID(ctx, domain.RoleAccountsPayable)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		TransactionDate:    p.PaymentDate,
		TransactionType:    domain.BillPaymentTx,
		Description:        fmt.Sprintf("Bill payment %s", p.PaymentNumber),
		ReferenceNumber:    p.ReferenceNumber,
		SourceDocumentType: domain.SourceBillPayment,
		SourceDocumentID:   p.PaymentID,
		Lines: []domain.TransactionLine{
			{
				AccountID:    apID,
				DebitAmount:  p.PaymentAmount,
				CreditAmount: decimal.Zero,
				Description:  "Accounts payable",
				EntityType:   "vendor",
				EntityID:     p.VendorID,
			},
			{
				AccountID:    p.PaidFromAccountID,
				DebitAmount:  decimal.Zero,
				CreditAmount: p.PaymentAmount,
				Description:  fmt.Sprintf("Paid by %s", p.PaymentMethod),
				EntityType:   "vendor",
				EntityID:     p.VendorID,
			},
		},
	}, nil
}

func (s *billPaymentService) postPaymentEntry(ctx context.Context, tx pgx.Tx, p *domain.BillPayment, actor string) error {
	entry, err := s.buildPaymentEntry(ctx, *p)
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

func (s *billPaymentService) validateRequest(ctx context.Context, req dto.CreateBillPaymentRequest) ([]string, decimal.Decimal, error) {
	if !req.PaymentMethod.IsValid() {
		return nil, decimal.Zero, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if !req.PaymentAmount.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("%w: payment amount must be greater than zero", apperrors.ErrValidation)
	}
	if len(req.Applications) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: payment must be applied to at least one bill", apperrors.ErrValidation)
	}

	billIDs := make([]string, 0, len(req.Applications))
	seen := make(map[string]struct{}, len(req.Applications))
	applied := decimal.Zero
	for _, a := range req.Applications {
		if !a.AmountApplied.IsPositive() {
			return nil, decimal.Zero, fmt.Errorf("%w: amount applied to bill %s must be greater than zero", apperrors.ErrValidation, a.BillID)
		}
		if _, dup := seen[a.BillID]; dup {
			return nil, decimal.Zero, fmt.Errorf("%w: bill %s is applied more than once", apperrors.ErrValidation, a.BillID)
		}
		seen[a.BillID] = struct{}{}
		billIDs = append(billIDs, a.BillID)
		applied = applied.Add(a.AmountApplied)
	}
	if applied.GreaterThan(req.PaymentAmount) {
		return nil, decimal.Zero, fmt.Errorf("%w: applications total %s exceeds payment amount %s",
			apperrors.ErrOverApplication, applied.StringFixed(2), req.PaymentAmount.StringFixed(2))
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, fmt.Errorf("%w: vendor %s", apperrors.ErrNotFound, req.VendorID)
		}
		return nil, decimal.Zero, err
	}
	if !vendor.IsActive {
		return nil, decimal.Zero, fmt.Errorf("%w: vendor %s is inactive", apperrors.ErrValidation, vendor.VendorName)
	}

	paidFrom, err := s.accountRepo.FindAccountByID(ctx, req.PaidFromAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, fmt.Errorf("%w: paid-from account not found: %s", apperrors.ErrValidation, req.PaidFromAccountID)
		}
		return nil, decimal.Zero, err
	}
	if paidFrom.AccountType != domain.Asset || !paidFrom.IsActive {
		return nil, decimal.Zero, fmt.Errorf("%w: paid-from account %s must be an active Asset account", apperrors.ErrValidation, paidFrom.AccountNumber)
	}

	return billIDs, applied, nil
}

func (s *billPaymentService) CreateBillPayment(ctx context.Context, req dto.CreateBillPaymentRequest, actor string) (*domain.BillPayment, error) {
	billIDs, applied, err := s.validateRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	payment := domain.BillPayment{
		PaymentID:         uuid.NewString(),
		VendorID:          req.VendorID,
		PaymentDate:       req.PaymentDate,
		PaymentMethod:     req.PaymentMethod,
		ReferenceNumber:   req.ReferenceNumber,
		Memo:              req.Memo,
		PaymentAmount:     req.PaymentAmount,
		UnappliedAmount:   req.PaymentAmount.Sub(applied),
		PaidFromAccountID: req.PaidFromAccountID,
		Status:            domain.BillPaymentPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	for _, a := range req.Applications {
		payment.Applications = append(payment.Applications, domain.BillPaymentApplication{
			ApplicationID: uuid.NewString(),
			PaymentID:     payment.PaymentID,
			BillID:        a.BillID,
			AmountApplied: a.AmountApplied,
		})
	}

	err = withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		bills, err := s.billRepo.FindBillsByIDsForUpdate(ctx, tx, billIDs)
		if err != nil {
			return err
		}
		for _, a := range payment.Applications {
			bill, ok := bills[a.BillID]
			if !ok {
				return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, a.BillID)
			}
			if bill.VendorID != payment.VendorID {
				return fmt.Errorf("%w: bill %s belongs to a different vendor", apperrors.ErrValidation, bill.BillNumber)
			}
			if bill.Status == domain.BillVoid {
				return fmt.Errorf("%w: bill %s is void", apperrors.ErrValidation, bill.BillNumber)
			}
			if a.AmountApplied.GreaterThan(bill.BalanceDue) {
				return fmt.Errorf("%w: %s applied to bill %s with balance due %s",
					apperrors.ErrOverApplication, a.AmountApplied.StringFixed(2), bill.BillNumber, bill.BalanceDue.StringFixed(2))
			}
			bill.ApplyPayment(a.AmountApplied)
			bill.LastUpdatedAt = now
			bill.LastUpdatedBy = actor
			if err := s.billRepo.UpdateBillInTx(ctx, tx, bill); err != nil {
				return err
			}
		}

		if err := s.paymentRepo.SaveBillPaymentInTx(ctx, tx, &payment); err != nil {
			return err
		}
		if err := s.postPaymentEntry(ctx, tx, &payment, actor); err != nil {
			return err
		}
		return s.paymentRepo.UpdateBillPaymentInTx(ctx, tx, payment)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to create bill payment", slog.String("vendor_id", req.VendorID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Bill payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_number", payment.PaymentNumber),
		slog.String("amount", payment.PaymentAmount.StringFixed(2)),
		slog.Int("applications", len(payment.Applications)))
	return &payment, nil
}

func (s *billPaymentService) UpdateBillPayment(ctx context.Context, paymentID string, req dto.UpdateBillPaymentRequest, actor string) (*domain.BillPayment, error) {
	if len(req.Applications) > 0 {
		return nil, fmt.Errorf("%w: applications cannot be changed, void and create a new payment instead", apperrors.ErrValidation)
	}
	if req.PaymentMethod != nil && !req.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, *req.PaymentMethod)
	}

	var updated *domain.BillPayment
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		payment, err := s.paymentRepo.FindBillPaymentByIDForUpdate(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == domain.BillPaymentVoid {
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
			if err := s.postPaymentEntry(ctx, tx, payment, actor); err != nil {
				return err
			}
		}

		payment.LastUpdatedAt = s.now()
		payment.LastUpdatedBy = actor
		if err := s.paymentRepo.UpdateBillPaymentInTx(ctx, tx, *payment); err != nil {
			return err
		}
		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill payment updated", slog.String("payment_id", paymentID))
	return updated, nil
}

func (s *billPaymentService) VoidBillPayment(ctx context.Context, paymentID string, reason string, actor string) (*domain.BillPayment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
	}

	var voided *domain.BillPayment
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		payment, err := s.paymentRepo.FindBillPaymentByIDForUpdate(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == domain.BillPaymentVoid {
			return fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyVoid, payment.PaymentNumber)
		}

		now := s.now()
		billIDs := make([]string, 0, len(payment.Applications))
		for _, a := range payment.Applications {
			billIDs = append(billIDs, a.BillID)
		}
		if len(billIDs) > 0 {
			bills, err := s.billRepo.FindBillsByIDsForUpdate(ctx, tx, billIDs)
			if err != nil {
				return err
			}
			for _, a := range payment.Applications {
				if _, ok := bills[a.BillID]; !ok {
					return fmt.Errorf("%w: bill %s applied by payment %s", apperrors.ErrNotFound, a.BillID, payment.PaymentNumber)
				}
			}
			for _, a := range payment.Applications {
				bill := bills[a.BillID]
				bill.ReversePayment(a.AmountApplied)
				bill.LastUpdatedAt = now
				bill.LastUpdatedBy = actor
				if err := s.billRepo.UpdateBillInTx(ctx, tx, bill); err != nil {
					return err
				}
			}
		}

		if payment.TransactionID != "" {
			if err := s.journal.VoidTransactionInTx(ctx, tx, payment.TransactionID, reason, actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
				return err
			}
		}

		payment.Status = domain.BillPaymentVoid
		payment.VoidDate = &now
		payment.VoidReason = reason
		payment.LastUpdatedAt = now
		payment.LastUpdatedBy = actor
		if err := s.paymentRepo.UpdateBillPaymentInTx(ctx, tx, *payment); err != nil {
			return err
		}
		voided = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill payment voided", slog.String("payment_id", paymentID), slog.String("reason", reason))
	return voided, nil
}

func (s *billPaymentService) GetBillPaymentByID(ctx context.Context, paymentID string) (*domain.BillPayment, error) {
	return s.paymentRepo.FindBillPaymentByID(ctx, paymentID)
}

func (s *billPaymentService) ListBillPayments(ctx context.Context, vendorID *string) ([]domain.BillPayment, error) {
	payments, err := s.paymentRepo.ListBillPayments(ctx, vendorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bill payments")
		return nil, err
	}
	if payments == nil {
		return []domain.BillPayment{}, nil
	}
	return payments, nil
}
