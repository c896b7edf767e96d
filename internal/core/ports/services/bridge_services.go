package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// PosBridgeSvc journalizes POS domain events. Every method is idempotent per source document.
type PosBridgeSvc interface {
	JournalizeSale(ctx context.Context, ev domain.SaleEvent, actor string) (*domain.JournalizeResult, error)
	JournalizeVoidSale(ctx context.Context, ev domain.VoidSaleEvent, actor string) (*domain.JournalizeResult, error)
	JournalizeReturn(ctx context.Context, ev domain.ReturnEvent, actor string) (*domain.JournalizeResult, error)
	JournalizeShipmentReceived(ctx context.Context, ev domain.ShipmentReceivedEvent, actor string) (*domain.JournalizeResult, error)
	JournalizeRegisterClose(ctx context.Context, ev domain.RegisterCloseEvent, actor string) (*domain.JournalizeResult, error)
	JournalizeCashTransaction(ctx context.Context, ev domain.CashTransactionEvent, actor string) (*domain.JournalizeResult, error)
	JournalizeDamagedGoods(ctx context.Context, ev domain.DamagedGoodsEvent, actor string) (*domain.JournalizeResult, error)
	JournalizeVendorCredit(ctx context.Context, ev domain.VendorCreditEvent, actor string) (*domain.JournalizeResult, error)
	JournalizeCashDrop(ctx context.Context, ev domain.CashDropEvent, actor string) (*domain.JournalizeResult, error)
}
