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

// billService maintains vendor bills and their accounts-payable journal entries.
type billService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	billRepo    portsrepo.BillRepositoryFacade
	vendorRepo  portsrepo.VendorRepository
	taxRateRepo portsrepo.TaxRateRepository
	accountRepo portsrepo.AccountReader
	journal     portssvc.JournalPosterSvc
	roles       *AccountRoleResolver
	now         func() time.Time
}

// BillServiceOption is a functional option for configuring the bill service
type BillServiceOption func(*billService)

// WithBillClock overrides the clock used for audit and void timestamps.
func WithBillClock(now func() time.Time) BillServiceOption {
	return func(s *billService) {
		s.now = now
	}
}

// NewBillService creates a new bill service.
func NewBillService(
	txManager portsrepo.TransactionManager,
	billRepo portsrepo.BillRepositoryFacade,
	vendorRepo portsrepo.VendorRepository,
	taxRateRepo portsrepo.TaxRateRepository,
	accountRepo portsrepo.AccountReader,
	journal portssvc.JournalPosterSvc,
	roles *AccountRoleResolver,
	options ...BillServiceOption,
) portssvc.BillSvcFacade {
	svc := &billService{
		txManager:   txManager,
		billRepo:    billRepo,
		vendorRepo:  vendorRepo,
		taxRateRepo: taxRateRepo,
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

var _ portssvc.BillSvcFacade = (*billService)(nil)

// priceLines validates bill lines and fills in line totals and tax.
func (s *billService) priceLines(ctx context.Context, billID string, lines []domain.BillLine) ([]domain.BillLine, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: bill must have at least one line", apperrors.ErrValidation)
	}

	accountIDs := make([]string, 0, len(lines))
	taxRateIDs := make([]string, 0)
	for _, l := range lines {
		if !l.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: line %d quantity must be greater than zero", apperrors.ErrValidation, l.LineNumber)
		}
		if l.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: line %d unit cost cannot be negative", apperrors.ErrValidation, l.LineNumber)
		}
		if strings.TrimSpace(l.Description) == "" {
			return nil, fmt.Errorf("%w: line %d description is required", apperrors.ErrValidation, l.LineNumber)
		}
		if l.Billable && l.CustomerID == "" {
			return nil, fmt.Errorf("%w: line %d is billable but has no customer", apperrors.ErrValidation, l.LineNumber)
		}
		if l.CustomerID != "" && uuid.Validate(l.CustomerID) != nil {
			return nil, fmt.Errorf("%w: line %d customer id is not a valid id: %s", apperrors.ErrValidation, l.LineNumber, l.CustomerID)
		}
		accountIDs = append(accountIDs, l.AccountID)
		if l.TaxRateID != "" {
			taxRateIDs = append(taxRateIDs, l.TaxRateID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	rates := map[string]domain.TaxRate{}
	if len(taxRateIDs) > 0 {
		if rates, err = s.taxRateRepo.FindTaxRatesByIDs(ctx, taxRateIDs); err != nil {
			return nil, err
		}
	}

	priced := make([]domain.BillLine, len(lines))
	for i, l := range lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: line %d account not found: %s", apperrors.ErrValidation, l.LineNumber, l.AccountID)
		}
		if !acc.IsExpenseLike() {
			return nil, fmt.Errorf("%w: line %d account %s must be an Expense or COGS account", apperrors.ErrValidation, l.LineNumber, acc.AccountNumber)
		}

		l.BillLineID = uuid.NewString()
		l.BillID = billID
		l.LineNumber = i + 1
		l.LineTotal = l.Quantity.Mul(l.UnitCost).Round(2)
		l.TaxAmount = decimal.Zero
		if l.TaxRateID != "" {
			rate, ok := rates[l.TaxRateID]
			if !ok {
				return nil, fmt.Errorf("%w: line %d tax rate not found: %s", apperrors.ErrValidation, l.LineNumber, l.TaxRateID)
			}
			l.TaxAmount = l.LineTotal.Mul(rate.Rate).Round(2)
		}
		priced[i] = l
	}
	return priced, nil
}

// buildBillEntry debits each line account and any tax, and credits Accounts Payable for the total.
func (s *billService) buildBillEntry(ctx context.Context, bill domain.Bill) (domain.Transaction, error) {
	apID, err := s.roles.ResolveID(ctx, domain.RoleAccountsPayable)
	if err != nil {
		return domain.Transaction{}, err
	}

	lines := make([]domain.TransactionLine, 0, len(bill.Lines)+2)
	for _, l := range bill.Lines {
		if !l.LineTotal.IsPositive() {
			continue
		}
		lines = append(lines, domain.TransactionLine{
			AccountID:    l.AccountID,
			DebitAmount:  l.LineTotal,
			CreditAmount: decimal.Zero,
			Description:  l.Description,
			EntityType:   "vendor",
			EntityID:     bill.VendorID,
			ClassID:      l.ClassID,
			Billable:     l.Billable,
		})
	}
	if bill.TaxAmount.IsPositive() {
		taxID, err := s.roles.ResolveID(ctx, domain.RoleSalesTaxPayable)
		if err != nil {
			return domain.Transaction{}, err
		}
		lines = append(lines, domain.TransactionLine{
			AccountID:    taxID,
			DebitAmount:  bill.TaxAmount,
			CreditAmount: decimal.Zero,
			Description:  "Sales tax paid",
		})
	}
	lines = append(lines, domain.TransactionLine{
		AccountID:    apID,
		DebitAmount:  decimal.Zero,
		CreditAmount: bill.TotalAmount,
		Description:  "Accounts payable",
		EntityType:   "vendor",
		EntityID:     bill.VendorID,
	})

	return domain.Transaction{
		TransactionDate:    bill.BillDate,
		TransactionType:    domain.BillEntry,
		Description:        fmt.Sprintf("Bill %s", bill.BillNumber),
		ReferenceNumber:    bill.VendorReference,
		SourceDocumentType: domain.SourceBill,
		SourceDocumentID:   bill.BillID,
		Lines:              lines,
	}, nil
}

func (s *billService) postBillEntry(ctx context.Context, tx pgx.Tx, bill *domain.Bill, actor string) error {
	entry, err := s.buildBillEntry(ctx, *bill)
	if err != nil {
		return err
	}
	txn, err := s.journal.RecordTransactionInTx(ctx, tx, entry, true, actor)
	if err != nil {
		return err
	}
	bill.TransactionID = txn.TransactionID
	return nil
}

func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest, actor string) (*domain.Bill, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor %s", apperrors.ErrNotFound, req.VendorID)
		}
		return nil, err
	}
	if !vendor.IsActive {
		return nil, fmt.Errorf("%w: vendor %s is inactive", apperrors.ErrValidation, vendor.VendorName)
	}

	billID := uuid.NewString()
	lines, err := s.priceLines(ctx, billID, dto.ToDomainBillLines(req.Lines))
	if err != nil {
		return nil, err
	}

	now := s.now()
	bill := domain.Bill{
		BillID:          billID,
		VendorID:        vendor.VendorID,
		VendorReference: req.VendorReference,
		BillDate:        req.BillDate,
		Terms:           req.Terms,
		Memo:            req.Memo,
		AmountPaid:      decimal.Zero,
		Status:          domain.BillOpen,
		Lines:           lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if req.DueDate != nil {
		bill.DueDate = *req.DueDate
	} else {
		bill.DueDate = req.BillDate.AddDate(0, 0, vendor.TermsDays())
	}
	if bill.Terms == "" {
		bill.Terms = fmt.Sprintf("Net %d", vendor.TermsDays())
	}
	bill.RecomputeTotals()
	if !bill.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: bill total must be greater than zero", apperrors.ErrValidation)
	}

	err = withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		if err := s.billRepo.SaveBillInTx(ctx, tx, &bill); err != nil {
			return err
		}
		if err := s.postBillEntry(ctx, tx, &bill, actor); err != nil {
			return err
		}
		return s.billRepo.UpdateBillInTx(ctx, tx, bill)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create bill", slog.String("vendor_id", vendor.VendorID))
		return nil, err
	}

	s.LogInfo(ctx, "Bill created",
		slog.String("bill_id", bill.BillID),
		slog.String("bill_number", bill.BillNumber),
		slog.String("total", bill.TotalAmount.StringFixed(2)),
		slog.String("transaction_id", bill.TransactionID))
	return &bill, nil
}

// lockBill loads a bill with its lines and takes a row lock on its header.
func (s *billService) lockBill(ctx context.Context, tx pgx.Tx, billID string) (*domain.Bill, error) {
	locked, err := s.billRepo.FindBillsByIDsForUpdate(ctx, tx, []string{billID})
	if err != nil {
		return nil, err
	}
	bill, ok := locked[billID]
	if !ok {
		return nil, fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, billID)
	}
	bill.Lines, err = s.billRepo.FindBillLinesInTx(ctx, tx, billID)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *billService) UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest, actor string) (*domain.Bill, error) {
	var updated *domain.Bill
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		bill, err := s.lockBill(ctx, tx, billID)
		if err != nil {
			return err
		}
		if bill.IsLocked() {
			return apperrors.ErrBillLocked
		}

		rebook := false
		if req.VendorReference != nil {
			bill.VendorReference = *req.VendorReference
		}
		if req.BillDate != nil && !req.BillDate.Equal(bill.BillDate) {
			bill.BillDate = *req.BillDate
			rebook = true
		}
		if req.DueDate != nil {
			bill.DueDate = *req.DueDate
		}
		if req.Terms != nil {
			bill.Terms = *req.Terms
		}
		if req.Memo != nil {
			bill.Memo = *req.Memo
		}
		if req.Lines != nil {
			lines, err := s.priceLines(ctx, bill.BillID, dto.ToDomainBillLines(req.Lines))
			if err != nil {
				return err
			}
			if err := s.billRepo.ReplaceBillLinesInTx(ctx, tx, bill.BillID, lines); err != nil {
				return err
			}
			bill.Lines = lines
			rebook = true
		}

		bill.RecomputeTotals()
		if !bill.TotalAmount.IsPositive() {
			return fmt.Errorf("%w: bill total must be greater than zero", apperrors.ErrValidation)
		}
		bill.Status = bill.DeriveStatus()

		if rebook {
			if bill.TransactionID != "" {
				if err := s.journal.VoidTransactionInTx(ctx, tx, bill.TransactionID, "Bill updated", actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
					return err
				}
			}
			if err := s.postBillEntry(ctx, tx, bill, actor); err != nil {
				return err
			}
		}

		bill.LastUpdatedAt = s.now()
		bill.LastUpdatedBy = actor
		if err := s.billRepo.UpdateBillInTx(ctx, tx, *bill); err != nil {
			return err
		}
		updated = bill
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill updated", slog.String("bill_id", billID), slog.String("transaction_id", updated.TransactionID))
	return updated, nil
}

func (s *billService) VoidBill(ctx context.Context, billID string, reason string, actor string) (*domain.Bill, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
	}

	var voided *domain.Bill
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		bill, err := s.lockBill(ctx, tx, billID)
		if err != nil {
			return err
		}
		if bill.Status == domain.BillVoid {
			return fmt.Errorf("%w: bill %s", apperrors.ErrAlreadyVoid, bill.BillNumber)
		}
		if bill.AmountPaid.IsPositive() {
			return fmt.Errorf("%w: bill has payments applied, void the payments first", apperrors.ErrConflict)
		}

		if bill.TransactionID != "" {
			if err := s.journal.VoidTransactionInTx(ctx, tx, bill.TransactionID, reason, actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
				return err
			}
		}

		now := s.now()
		bill.Status = domain.BillVoid
		bill.VoidDate = &now
		bill.VoidReason = reason
		bill.LastUpdatedAt = now
		bill.LastUpdatedBy = actor
		if err := s.billRepo.UpdateBillInTx(ctx, tx, *bill); err != nil {
			return err
		}
		voided = bill
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill voided", slog.String("bill_id", billID), slog.String("reason", reason))
	return voided, nil
}

func (s *billService) DeleteBill(ctx context.Context, billID string, actor string) error {
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		bill, err := s.lockBill(ctx, tx, billID)
		if err != nil {
			return err
		}
		if bill.AmountPaid.IsPositive() || bill.Status == domain.BillPaid {
			return fmt.Errorf("%w: bill has payments applied and cannot be deleted", apperrors.ErrConflict)
		}
		if bill.TransactionID != "" {
			if err := s.journal.VoidTransactionInTx(ctx, tx, bill.TransactionID, "Bill deleted", actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
				return err
			}
		}
		return s.billRepo.DeleteBillInTx(ctx, tx, billID)
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID))
	return nil
}

func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	return s.billRepo.FindBillByID(ctx, billID)
}

func (s *billService) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	bills, err := s.billRepo.ListBills(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills")
		return nil, err
	}
	if bills == nil {
		return []domain.Bill{}, nil
	}
	return bills, nil
}
