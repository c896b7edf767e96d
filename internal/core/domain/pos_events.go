package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source document types written by the POS bridge and the subledgers.
// Together with the document id they form the idempotency key of a journal entry.
const (
	SourceOrder                   = "order"
	SourceOrderVoid               = "order_void"
	SourceReturn                  = "return"
	SourcePendingShipment         = "pending_shipment"
	SourceRegisterClose           = "register_close"
	SourceCashTransaction         = "cash_transaction"
	SourceDiscrepancy             = "discrepancy"
	SourceDiscrepancyVendorCredit = "discrepancy_vendor_credit"
	SourceDailyCashCount          = "daily_cash_count"
	SourceBill                    = "bill"
	SourceBillPayment             = "bill_payment"
	SourceInvoice                 = "invoice"
	SourceCustomerPayment         = "customer_payment"
)

// SaleEvent is a completed POS order.
type SaleEvent struct {
	OrderID       string
	OrderDate     time.Time
	PaymentMethod string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Tip           decimal.Decimal
	ProcessingFee decimal.Decimal
	COGS          decimal.Decimal
}

// VoidSaleEvent reverses a previously journalized sale.
type VoidSaleEvent struct {
	OrderID  string
	VoidDate time.Time
	Reason   string
}

// ReturnEvent is merchandise returned for refund or exchange.
type ReturnEvent struct {
	ReturnID      string
	ReturnDate    time.Time
	Amount        decimal.Decimal
	PaymentMethod string
	ReturnType    string          // "refund" or "exchange"
}

// ShipmentReceivedEvent is an approved vendor shipment added to inventory.
type ShipmentReceivedEvent struct {
	ShipmentID   string
	ReceivedDate time.Time
	VendorID     string
	TotalCost    decimal.Decimal
}

// RegisterCloseEvent is the end-of-session cash count. Discrepancy is counted minus expected.
type RegisterCloseEvent struct {
	SessionID   string
	CloseDate   time.Time
	Discrepancy decimal.Decimal
}

// CashTransactionEvent is a manual movement of cash into or out of the drawer.
type CashTransactionEvent struct {
	CashTransactionID string
	SessionID         string
	TransactionDate   time.Time
	Kind              string          // cash_in, cash_out, deposit, withdrawal
	Amount            decimal.Decimal
	Reason            string
}

// DamagedGoodsEvent writes off inventory found damaged on receipt.
type DamagedGoodsEvent struct {
	DiscrepancyID string
	EventDate     time.Time
	Amount        decimal.Decimal
	Description   string
}

// VendorCreditEvent records a credit from a vendor against a discrepancy.
type VendorCreditEvent struct {
	DiscrepancyID string
	EventDate     time.Time
	VendorID      string
	Amount        decimal.Decimal
}

// CashDropEvent records cash removed from the drawer at the daily count.
type CashDropEvent struct {
	CountID   string
	CountDate time.Time
	Amount    decimal.Decimal
}

// JournalizeResult reports the outcome of journalizing one event.
type JournalizeResult struct {
	TransactionID     string `json:"transactionID,omitempty"`
	TransactionNumber string `json:"transactionNumber,omitempty"`
	Skipped           bool   `json:"skipped"`
	Message           string `json:"message,omitempty"`
}
