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

// invoiceService maintains customer invoices and their accounts-receivable journal entries.
type invoiceService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerRepository
	taxRateRepo  portsrepo.TaxRateRepository
	accountRepo  portsrepo.AccountReader
	journal      portssvc.JournalPosterSvc
	roles        *AccountRoleResolver
	now          func() time.Time
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceClock overrides the clock used for audit and void timestamps.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(
	txManager portsrepo.TransactionManager,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	customerRepo portsrepo.CustomerRepository,
	taxRateRepo portsrepo.TaxRateRepository,
	accountRepo portsrepo.AccountReader,
	journal portssvc.JournalPosterSvc,
	roles *AccountRoleResolver,
	options ...InvoiceServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		txManager:    txManager,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		taxRateRepo:  taxRateRepo,
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

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// priceLines validates invoice lines, defaults their revenue account and fills in totals and tax.
func (s *invoiceService) priceLines(ctx context.Context, invoiceID string, lines []domain.InvoiceLine) ([]domain.InvoiceLine, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: invoice must have at least one line", apperrors.ErrValidation)
	}

	var revenueID string
	accountIDs := make([]string, 0, len(lines))
	taxRateIDs := make([]string, 0)
	for i, l := range lines {
		if !l.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: line %d quantity must be greater than zero", apperrors.ErrValidation, l.LineNumber)
		}
		if l.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: line %d unit price cannot be negative", apperrors.ErrValidation, l.LineNumber)
		}
		if strings.TrimSpace(l.Description) == "" {
			return nil, fmt.Errorf("%w: line %d description is required", apperrors.ErrValidation, l.LineNumber)
		}
		if l.AccountID == "" {
			if revenueID == "" {
				id, err := s.roles.ResolveID(ctx, domain.RoleSalesRevenue)
				if err != nil {
					return nil, err
				}
				revenueID = id
			}
			lines[i].AccountID = revenueID
		}
		accountIDs = append(accountIDs, lines[i].AccountID)
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

	priced := make([]domain.InvoiceLine, len(lines))
	for i, l := range lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: line %d account not found: %s", apperrors.ErrValidation, l.LineNumber, l.AccountID)
		}
		if !acc.IsIncomeLike() {
			return nil, fmt.Errorf("%w: line %d account %s must be a Revenue or Other Income account", apperrors.ErrValidation, l.LineNumber, acc.AccountNumber)
		}

		l.InvoiceLineID = uuid.NewString()
		l.InvoiceID = invoiceID
		l.LineNumber = i + 1
		l.LineTotal = l.Quantity.Mul(l.UnitPrice).Round(2)
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

// buildInvoiceEntry debits Accounts Receivable for the total and credits each line account and any tax.
func (s *invoiceService) buildInvoiceEntry(ctx context.Context, inv domain.Invoice) (domain.Transaction, error) {
	arID, err := s.roles.ResolveID(ctx, domain.RoleAccountsReceivable)
	if err != nil {
		return domain.Transaction{}, err
	}

	lines := make([]domain.TransactionLine, 0, len(inv.Lines)+2)
	lines = append(lines, domain.TransactionLine{
		AccountID:    arID,
		DebitAmount:  inv.TotalAmount,
		CreditAmount: decimal.Zero,
		Description:  "Accounts receivable",
		EntityType:   "customer",
		EntityID:     inv.CustomerID,
	})
	for _, l := range inv.Lines {
		if !l.LineTotal.IsPositive() {
			continue
		}
		lines = append(lines, domain.TransactionLine{
			AccountID:    l.AccountID,
			DebitAmount:  decimal.Zero,
			CreditAmount: l.LineTotal,
			Description:  l.Description,
			EntityType:   "customer",
			EntityID:     inv.CustomerID,
			ClassID:      l.ClassID,
		})
	}
	if inv.TaxAmount.IsPositive() {
		taxID, err := s.roles.ResolveID(ctx, domain.RoleSalesTaxPayable)
		if err != nil {
			return domain.Transaction{}, err
		}
		lines = append(lines, domain.TransactionLine{
			AccountID:    taxID,
			DebitAmount:  decimal.Zero,
			CreditAmount: inv.TaxAmount,
			Description:  "Sales tax collected",
		})
	}

	return domain.Transaction{
		TransactionDate:    inv.InvoiceDate,
		TransactionType:    domain.InvoiceTx,
		Description:        fmt.Sprintf("Invoice %s", inv.InvoiceNumber),
		ReferenceNumber:    inv.PONumber,
		SourceDocumentType: domain.SourceInvoice,
		SourceDocumentID:   inv.InvoiceID,
		Lines:              lines,
	}, nil
}

func (s *invoiceService) postInvoiceEntry(ctx context.Context, tx pgx.Tx, inv *domain.Invoice, actor string) error {
	entry, err := s.buildInvoiceEntry(ctx, *inv)
	if err != nil {
		return err
	}
	txn, err := s.journal.RecordTransactionInTx(ctx, tx, entry, true, actor)
	if err != nil {
		return err
	}
	inv.TransactionID = txn.TransactionID
	return nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, actor string) (*domain.Invoice, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, req.CustomerID)
		}
		return nil, err
	}
	if !customer.IsActive {
		return nil, fmt.Errorf("%w: customer %s is inactive", apperrors.ErrValidation, customer.CustomerName)
	}

	invoiceID := uuid.NewString()
	lines, err := s.priceLines(ctx, invoiceID, dto.ToDomainInvoiceLines(req.Lines))
	if err != nil {
		return nil, err
	}

	now := s.now()
	inv := domain.Invoice{
		InvoiceID:   invoiceID,
		CustomerID:  customer.CustomerID,
		PONumber:    req.PONumber,
		InvoiceDate: req.InvoiceDate,
		Terms:       req.Terms,
		Memo:        req.Memo,
		AmountPaid:  decimal.Zero,
		Status:      domain.InvoiceOpen,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if req.DueDate != nil {
		inv.DueDate = *req.DueDate
	} else {
		inv.DueDate = req.InvoiceDate.AddDate(0, 0, customer.TermsDays())
	}
	if inv.Terms == "" {
		inv.Terms = fmt.Sprintf("Net %d", customer.TermsDays())
	}
	inv.RecomputeTotals()
	if !inv.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: invoice total must be greater than zero", apperrors.ErrValidation)
	}

	err = withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		if err := s.invoiceRepo.SaveInvoiceInTx(ctx, tx, &inv); err != nil {
			return err
		}
		if err := s.postInvoiceEntry(ctx, tx, &inv, actor); err != nil {
			return err
		}
		return s.invoiceRepo.UpdateInvoiceInTx(ctx, tx, inv)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("invoice_number", inv.InvoiceNumber),
		slog.String("total", inv.TotalAmount.StringFixed(2)),
		slog.String("transaction_id", inv.TransactionID))
	return &inv, nil
}

// lockInvoice takes a row lock on an invoice header, then reads its lines through the same tx.
func (s *invoiceService) lockInvoice(ctx context.Context, tx pgx.Tx, invoiceID string) (*domain.Invoice, error) {
	locked, err := s.invoiceRepo.FindInvoicesByIDsForUpdate(ctx, tx, []string{invoiceID})
	if err != nil {
		return nil, err
	}
	inv, ok := locked[invoiceID]
	if !ok {
		return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	inv.Lines, err = s.invoiceRepo.FindInvoiceLinesInTx(ctx, tx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, actor string) (*domain.Invoice, error) {
	var updated *domain.Invoice
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		inv, err := s.lockInvoice(ctx, tx, invoiceID)
		if err != nil {
			return err
		}
		if inv.IsLocked() {
			return apperrors.ErrInvoiceLocked
		}

		rebook := false
		if req.PONumber != nil {
			inv.PONumber = *req.PONumber
		}
		if req.InvoiceDate != nil && !req.InvoiceDate.Equal(inv.InvoiceDate) {
			inv.InvoiceDate = *req.InvoiceDate
			rebook = true
		}
		if req.DueDate != nil {
			inv.DueDate = *req.DueDate
		}
		if req.Terms != nil {
			inv.Terms = *req.Terms
		}
		if req.Memo != nil {
			inv.Memo = *req.Memo
		}
		if req.Lines != nil {
			lines, err := s.priceLines(ctx, inv.InvoiceID, dto.ToDomainInvoiceLines(req.Lines))
			if err != nil {
				return err
			}
			if err := s.invoiceRepo.ReplaceInvoiceLinesInTx(ctx, tx, inv.InvoiceID, lines); err != nil {
				return err
			}
			inv.Lines = lines
			rebook = true
		}

		inv.RecomputeTotals()
		if !inv.TotalAmount.IsPositive() {
			return fmt.Errorf("%w: invoice total must be greater than zero", apperrors.ErrValidation)
		}
		inv.Status = inv.DeriveStatus()

		if rebook {
			if inv.TransactionID != "" {
				if err := s.journal.VoidTransactionInTx(ctx, tx, inv.TransactionID, "Invoice updated", actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
					return err
				}
			}
			if err := s.postInvoiceEntry(ctx, tx, inv, actor); err != nil {
				return err
			}
		}

		inv.LastUpdatedAt = s.now()
		inv.LastUpdatedBy = actor
		if err := s.invoiceRepo.UpdateInvoiceInTx(ctx, tx, *inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID), slog.String("transaction_id", updated.TransactionID))
	return updated, nil
}

func (s *invoiceService) VoidInvoice(ctx context.Context, invoiceID string, reason string, actor string) (*domain.Invoice, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
	}

	var voided *domain.Invoice
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		inv, err := s.lockInvoice(ctx, tx, invoiceID)
		if err != nil {
			return err
		}
		if inv.Status == domain.InvoiceVoid {
			return fmt.Errorf("%w: invoice %s", apperrors.ErrAlreadyVoid, inv.InvoiceNumber)
		}
		if inv.AmountPaid.IsPositive() {
			return fmt.Errorf("%w: invoice has payments applied, void the payments first", apperrors.ErrConflict)
		}

		if inv.TransactionID != "" {
			if err := s.journal.VoidTransactionInTx(ctx, tx, inv.TransactionID, reason, actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
				return err
			}
		}

		now := s.now()
		inv.Status = domain.InvoiceVoid
		inv.VoidDate = &now
		inv.VoidReason = reason
		inv.LastUpdatedAt = now
		inv.LastUpdatedBy = actor
		if err := s.invoiceRepo.UpdateInvoiceInTx(ctx, tx, *inv); err != nil {
			return err
		}
		voided = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice voided", slog.String("invoice_id", invoiceID), slog.String("reason", reason))
	return voided, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, actor string) error {
	err := withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		inv, err := s.lockInvoice(ctx, tx, invoiceID)
		if err != nil {
			return err
		}
		if inv.AmountPaid.IsPositive() || inv.Status == domain.InvoicePaid {
			return fmt.Errorf("%w: invoice has payments applied and cannot be deleted", apperrors.ErrConflict)
		}
		if inv.TransactionID != "" {
			if err := s.journal.VoidTransactionInTx(ctx, tx, inv.TransactionID, "Invoice deleted", actor); err != nil && !errors.Is(err, apperrors.ErrAlreadyVoid) {
				return err
			}
		}
		return s.invoiceRepo.DeleteInvoiceInTx(ctx, tx, invoiceID)
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}
