package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
)

// posBridgeService turns POS events into posted journal entries, at most one per source document.
type posBridgeService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	journalRepo portsrepo.TransactionReader
	journal     portssvc.JournalPosterSvc
	roles       *AccountRoleResolver
	now         func() time.Time
}

// PosBridgeServiceOption is a functional option for configuring the bridge
type PosBridgeServiceOption func(*posBridgeService)

// WithBridgeClock sets the clock used when an event carries no date.
func WithBridgeClock(now func() time.Time) PosBridgeServiceOption {
	return func(s *posBridgeService) {
		s.now = now
	}
}

// NewPosBridgeService creates the POS to ledger bridge.
func NewPosBridgeService(
	txManager portsrepo.TransactionManager,
	journalRepo portsrepo.TransactionReader,
	journal portssvc.JournalPosterSvc,
	roles *AccountRoleResolver,
	options ...PosBridgeServiceOption,
) portssvc.PosBridgeSvc {
	svc := &posBridgeService{
		txManager:   txManager,
		journalRepo: journalRepo,
		journal:     journal,
		roles:       roles,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PosBridgeSvc = (*posBridgeService)(nil)

// leg is one side of a bridge entry expressed against a logical role.
type leg struct {
	role        domain.AccountRole
	debit       bool
	amount      decimal.Decimal
	description string
	entityType  string
	entityID    string
}

func dr(role domain.AccountRole, amount decimal.Decimal, description string) leg {
	return leg{role: role, debit: true, amount: amount, description: description}
}

func cr(role domain.AccountRole, amount decimal.Decimal, description string) leg {
	return leg{role: role, amount: amount, description: description}
}

func forVendor(l leg, vendorID string) leg {
	if vendorID != "" {
		l.entityType, l.entityID = "vendor", vendorID
	}
	return l
}

// paymentRole maps a POS payment method to the account that receives the money.
func paymentRole(method string) domain.AccountRole {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "store_credit":
		return domain.RoleStoreCreditLiability
	case "card", "credit_card", "debit_card", "mobile_payment":
		return domain.RoleCardClearing
	}
	return domain.RoleCash
}

func requirePositive(name string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", apperrors.ErrValidation, name)
	}
	return nil
}

func requireNonNegative(name string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, name)
	}
	return nil
}

// resolveLegs turns role legs into journal lines, leaving out zero amounts.
func (s *posBridgeService) resolveLegs(ctx context.Context, legs []leg) ([]domain.TransactionLine, error) {
	lines := make([]domain.TransactionLine, 0, len(legs))
	for _, l := range legs {
		if l.amount.IsZero() {
			continue
		}
		accountID, err := s.roles.ResolveID(ctx, l.role)
		if err != nil {
			return nil, err
		}
		line := domain.TransactionLine{
			AccountID:    accountID,
			DebitAmount:  decimal.Zero,
			CreditAmount: decimal.Zero,
			Description:  l.description,
			EntityType:   l.entityType,
			EntityID:     l.entityID,
		}
		if l.debit {
			line.DebitAmount = l.amount
		} else {
			line.CreditAmount = l.amount
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *posBridgeService) eventDate(d time.Time) time.Time {
	if d.IsZero() {
		return s.now()
	}
	return d
}

func skippedResult(existing *domain.Transaction) *domain.JournalizeResult {
	return &domain.JournalizeResult{
		TransactionID:     existing.TransactionID,
		TransactionNumber: existing.TransactionNumber,
		Skipped:           true,
		Message:           "already journalized",
	}
}

// journalize runs the idempotent record-and-post flow shared by every event.
// build returns nil when the event needs no entry.
func (s *posBridgeService) journalize(ctx context.Context, sourceType, sourceID string, build func() (*domain.Transaction, error), actor string) (*domain.JournalizeResult, error) {
	if strings.TrimSpace(sourceID) == "" {
		return nil, fmt.Errorf("%w: %s id is required", apperrors.ErrValidation, sourceType)
	}

	existing, err := s.journalRepo.FindPostedBySourceDocument(ctx, sourceType, sourceID)
	if err == nil {
		s.LogInfo(ctx, "Event already journalized, skipping",
			slog.String("source_type", sourceType),
			slog.String("source_id", sourceID),
			slog.String("transaction_id", existing.TransactionID))
		return skippedResult(existing), nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed idempotency lookup", slog.String("source_type", sourceType), slog.String("source_id", sourceID))
		return nil, err
	}

	entry, err := build()
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &domain.JournalizeResult{Message: "nothing to journalize"}, nil
	}
	entry.SourceDocumentType = sourceType
	entry.SourceDocumentID = sourceID

	var recorded *domain.Transaction
	err = withTx(ctx, s.txManager, func(tx pgx.Tx) error {
		var err error
		recorded, err = s.journal.RecordTransactionInTx(ctx, tx, *entry, true, actor)
		return err
	})
	if err != nil {
		// A concurrent caller won the race for the same source document.
		if errors.Is(err, apperrors.ErrDuplicate) {
			existing, lookupErr := s.journalRepo.FindPostedBySourceDocument(ctx, sourceType, sourceID)
			if lookupErr == nil {
				s.LogInfo(ctx, "Event journalized concurrently, skipping",
					slog.String("source_type", sourceType),
					slog.String("source_id", sourceID))
				return skippedResult(existing), nil
			}
		}
		s.LogError(ctx, err, "Failed to journalize event", slog.String("source_type", sourceType), slog.String("source_id", sourceID))
		return nil, err
	}

	s.LogInfo(ctx, "Event journalized",
		slog.String("source_type", sourceType),
		slog.String("source_id", sourceID),
		slog.String("transaction_id", recorded.TransactionID))
	return &domain.JournalizeResult{
		TransactionID:     recorded.TransactionID,
		TransactionNumber: recorded.TransactionNumber,
	}, nil
}

// entryFromLegs builds a journal entry whose lines come from role legs.
func (s *posBridgeService) entryFromLegs(ctx context.Context, date time.Time, txnType domain.TransactionType, description string, legs ...leg) (*domain.Transaction, error) {
	lines, err := s.resolveLegs(ctx, legs)
	if err != nil {
		return nil, err
	}
	return &domain.Transaction{
		TransactionDate: s.eventDate(date),
		TransactionType: txnType,
		Description:     description,
		Lines:           lines,
	}, nil
}

func (s *posBridgeService) JournalizeSale(ctx context.Context, ev domain.SaleEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourceOrder, ev.OrderID, func() (*domain.Transaction, error) {
		for name, v := range map[string]decimal.Decimal{
			"subtotal": ev.Subtotal, "tax": ev.Tax, "total": ev.Total,
			"tip": ev.Tip, "processing fee": ev.ProcessingFee, "cogs": ev.COGS,
		} {
			if err := requireNonNegative(name, v); err != nil {
				return nil, err
			}
		}
		received := ev.Total.Sub(ev.ProcessingFee).Add(ev.Tip)
		return s.entryFromLegs(ctx, ev.OrderDate, domain.SalesReceipt, fmt.Sprintf("Sale order %s", ev.OrderID),
			dr(paymentRole(ev.PaymentMethod), received, fmt.Sprintf("Payment received (%s)", ev.PaymentMethod)),
			cr(domain.RoleSalesRevenue, ev.Subtotal, "Sales revenue"),
			cr(domain.RoleSalesTaxPayable, ev.Tax, "Sales tax collected"),
			dr(domain.RoleCOGS, ev.COGS, "Cost of goods sold"),
			cr(domain.RoleInventory, ev.COGS, "Inventory relieved"),
			cr(domain.RoleOtherIncome, ev.Tip, "Tips"),
			dr(domain.RoleOperatingExpense, ev.ProcessingFee, "Payment processing fee"),
		)
	}, actor)
}

func (s *posBridgeService) JournalizeVoidSale(ctx context.Context, ev domain.VoidSaleEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourceOrderVoid, ev.OrderID, func() (*domain.Transaction, error) {
		original, err := s.journalRepo.FindPostedBySourceDocument(ctx, domain.SourceOrder, ev.OrderID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: no posted sale for order %s", apperrors.ErrNotFound, ev.OrderID)
			}
			return nil, err
		}
		description := fmt.Sprintf("Void of sale order %s", ev.OrderID)
		if ev.Reason != "" {
			description = fmt.Sprintf("%s: %s", description, ev.Reason)
		}
		return &domain.Transaction{
			TransactionDate: s.eventDate(ev.VoidDate),
			TransactionType: domain.Refund,
			Description:     description,
			ReferenceNumber: original.TransactionNumber,
			Lines:           domain.MirrorLines(original.Lines),
		}, nil
	}, actor)
}

func (s *posBridgeService) JournalizeReturn(ctx context.Context, ev domain.ReturnEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourceReturn, ev.ReturnID, func() (*domain.Transaction, error) {
		if err := requirePositive("return amount", ev.Amount); err != nil {
			return nil, err
		}
		refundRole := paymentRole(ev.PaymentMethod)
		refundDesc := "Refund paid"
		if strings.EqualFold(ev.ReturnType, "exchange") {
			refundRole = domain.RoleStoreCreditLiability
			refundDesc = "Store credit issued"
		}
		return s.entryFromLegs(ctx, ev.ReturnDate, domain.Refund, fmt.Sprintf("Return %s", ev.ReturnID),
			dr(domain.RoleSalesReturns, ev.Amount, "Sales return"),
			cr(refundRole, ev.Amount, refundDesc),
		)
	}, actor)
}

func (s *posBridgeService) JournalizeShipmentReceived(ctx context.Context, ev domain.ShipmentReceivedEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourcePendingShipment, ev.ShipmentID, func() (*domain.Transaction, error) {
		if err := requirePositive("shipment total cost", ev.TotalCost); err != nil {
			return nil, err
		}
		return s.entryFromLegs(ctx, ev.ReceivedDate, domain.Purchase, fmt.Sprintf("Shipment %s received", ev.ShipmentID),
			forVendor(dr(domain.RoleInventory, ev.TotalCost, "Inventory received"), ev.VendorID),
			forVendor(cr(domain.RoleAccountsPayable, ev.TotalCost, "Owed to vendor"), ev.VendorID),
		)
	}, actor)
}

func (s *posBridgeService) JournalizeRegisterClose(ctx context.Context, ev domain.RegisterCloseEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourceRegisterClose, ev.SessionID, func() (*domain.Transaction, error) {
		d := ev.Discrepancy
		if d.Abs().LessThan(domain.BalanceTolerance) {
			return nil, nil
		}
		description := fmt.Sprintf("Register close %s", ev.SessionID)
		if d.IsPositive() {
			return s.entryFromLegs(ctx, ev.CloseDate, domain.Adjustment, description,
				dr(domain.RoleCash, d, "Cash over"),
				cr(domain.RoleOtherIncome, d, "Cash over"),
			)
		}
		short := d.Abs()
		return s.entryFromLegs(ctx, ev.CloseDate, domain.Adjustment, description,
			dr(domain.RoleOperatingExpense, short, "Cash short"),
			cr(domain.RoleCash, short, "Cash short"),
		)
	}, actor)
}

func (s *posBridgeService) JournalizeCashTransaction(ctx context.Context, ev domain.CashTransactionEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourceCashTransaction, ev.CashTransactionID, func() (*domain.Transaction, error) {
		if ev.Amount.IsZero() {
			return nil, fmt.Errorf("%w: cash transaction amount must not be zero", apperrors.ErrValidation)
		}
		txnType := domain.Transfer
		var in bool
		switch strings.ToLower(ev.Kind) {
		case "cash_in", "deposit":
			in = true
		case "cash_out", "withdrawal":
			in = false
		default:
			txnType = domain.Adjustment
			in = ev.Amount.IsPositive()
		}
		amount := ev.Amount.Abs()
		description := fmt.Sprintf("Cash %s", strings.ReplaceAll(strings.ToLower(ev.Kind), "_", " "))
		if ev.Reason != "" {
			description = fmt.Sprintf("%s: %s", description, ev.Reason)
		}
		if in {
			return s.entryFromLegs(ctx, ev.TransactionDate, txnType, description,
				dr(domain.RoleCash, amount, "Cash added to drawer"),
				cr(domain.RoleOwnerEquity, amount, "Owner contribution"),
			)
		}
		return s.entryFromLegs(ctx, ev.TransactionDate, txnType, description,
			dr(domain.RoleOwnerEquity, amount, "Owner withdrawal"),
			cr(domain.RoleCash, amount, "Cash removed from drawer"),
		)
	}, actor)
}

func (s *posBridgeService) JournalizeDamagedGoods(ctx context.Context, ev domain.DamagedGoodsEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourceDiscrepancy, ev.DiscrepancyID, func() (*domain.Transaction, error) {
		if err := requirePositive("damaged goods amount", ev.Amount); err != nil {
			return nil, err
		}
		description := fmt.Sprintf("Damaged goods %s", ev.DiscrepancyID)
		if ev.Description != "" {
			description = fmt.Sprintf("%s: %s", description, ev.Description)
		}
		return s.entryFromLegs(ctx, ev.EventDate, domain.Adjustment, description,
			dr(domain.RoleOperatingExpense, ev.Amount, "Damaged goods written off"),
			cr(domain.RoleInventory, ev.Amount, "Inventory written off"),
		)
	}, actor)
}

func (s *posBridgeService) JournalizeVendorCredit(ctx context.Context, ev domain.VendorCreditEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourceDiscrepancyVendorCredit, ev.DiscrepancyID, func() (*domain.Transaction, error) {
		if err := requirePositive("vendor credit amount", ev.Amount); err != nil {
			return nil, err
		}
		return s.entryFromLegs(ctx, ev.EventDate, domain.Adjustment, fmt.Sprintf("Vendor credit for %s", ev.DiscrepancyID),
			forVendor(dr(domain.RoleAccountsPayable, ev.Amount, "Vendor credit"), ev.VendorID),
			forVendor(cr(domain.RoleOperatingExpense, ev.Amount, "Damaged goods recovered"), ev.VendorID),
		)
	}, actor)
}

func (s *posBridgeService) JournalizeCashDrop(ctx context.Context, ev domain.CashDropEvent, actor string) (*domain.JournalizeResult, error) {
	return s.journalize(ctx, domain.SourceDailyCashCount, ev.CountID, func() (*domain.Transaction, error) {
		if err := requirePositive("cash drop amount", ev.Amount); err != nil {
			return nil, err
		}
		return s.entryFromLegs(ctx, ev.CountDate, domain.Transfer, fmt.Sprintf("Cash drop %s", ev.CountID),
			dr(domain.RoleOwnerEquity, ev.Amount, "Cash drop"),
			cr(domain.RoleCash, ev.Amount, "Cash removed from drawer"),
		)
	}, actor)
}
