package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleEventRequest is posted by the register when an order completes.
type SaleEventRequest struct {
	OrderID       string          `json:"orderID" binding:"required"`
	OrderDate     time.Time       `json:"orderDate" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Tip           decimal.Decimal `json:"tip"`
	ProcessingFee decimal.Decimal `json:"processingFee"`
	COGS          decimal.Decimal `json:"cogs"`
}

// ToDomain converts the request into a domain event.
func (r SaleEventRequest) ToDomain() domain.SaleEvent {
	return domain.SaleEvent{
		OrderID:       r.OrderID,
		OrderDate:     r.OrderDate,
		PaymentMethod: r.PaymentMethod,
		Subtotal:      r.Subtotal,
		Tax:           r.Tax,
		Total:         r.Total,
		Tip:           r.Tip,
		ProcessingFee: r.ProcessingFee,
		COGS:          r.COGS,
	}
}

// VoidSaleEventRequest is posted when a completed order is voided.
type VoidSaleEventRequest struct {
	OrderID  string    `json:"orderID" binding:"required"`
	VoidDate time.Time `json:"voidDate" binding:"required"`
	Reason   string    `json:"reason"`
}

// ReturnEventRequest is posted when merchandise is returned.
type ReturnEventRequest struct {
	ReturnID      string          `json:"returnID" binding:"required"`
	ReturnDate    time.Time       `json:"returnDate" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	ReturnType    string          `json:"returnType" binding:"omitempty,oneof=refund exchange"`
}

// ShipmentReceivedEventRequest is posted when a vendor shipment is approved into stock.
type ShipmentReceivedEventRequest struct {
	ShipmentID   string          `json:"shipmentID" binding:"required"`
	ReceivedDate time.Time       `json:"receivedDate" binding:"required"`
	VendorID     string          `json:"vendorID"`
	TotalCost    decimal.Decimal `json:"totalCost"`
}

// RegisterCloseEventRequest is posted when a register session is closed.
type RegisterCloseEventRequest struct {
	SessionID   string          `json:"sessionID" binding:"required"`
	CloseDate   time.Time       `json:"closeDate" binding:"required"`
	Discrepancy decimal.Decimal `json:"discrepancy"` // counted minus expected
}

// CashTransactionEventRequest is posted for manual drawer movements.
type CashTransactionEventRequest struct {
	CashTransactionID string          `json:"cashTransactionID" binding:"required"`
	SessionID         string          `json:"sessionID"`
	TransactionDate   time.Time       `json:"transactionDate" binding:"required"`
	Kind              string          `json:"kind" binding:"required"`
	Amount            decimal.Decimal `json:"amount"`
	Reason            string          `json:"reason"`
}

// DamagedGoodsEventRequest is posted when received goods are written off.
type DamagedGoodsEventRequest struct {
	DiscrepancyID string          `json:"discrepancyID" binding:"required"`
	EventDate     time.Time       `json:"eventDate" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// VendorCreditEventRequest is posted when a vendor credits a discrepancy.
type VendorCreditEventRequest struct {
	DiscrepancyID string          `json:"discrepancyID" binding:"required"`
	EventDate     time.Time       `json:"eventDate" binding:"required"`
	VendorID      string          `json:"vendorID"`
	Amount        decimal.Decimal `json:"amount"`
}

// CashDropEventRequest is posted at the daily cash count.
type CashDropEventRequest struct {
	CountID   string          `json:"countID" binding:"required"`
	CountDate time.Time       `json:"countDate" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

func (r VoidSaleEventRequest) ToDomain() domain.VoidSaleEvent {
	return domain.VoidSaleEvent{OrderID: r.OrderID, VoidDate: r.VoidDate, Reason: r.Reason}
}

func (r ReturnEventRequest) ToDomain() domain.ReturnEvent {
	return domain.ReturnEvent{
		ReturnID:      r.ReturnID,
		ReturnDate:    r.ReturnDate,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		ReturnType:    r.ReturnType,
	}
}

func (r ShipmentReceivedEventRequest) ToDomain() domain.ShipmentReceivedEvent {
	return domain.ShipmentReceivedEvent{
		ShipmentID:   r.ShipmentID,
		ReceivedDate: r.ReceivedDate,
		VendorID:     r.VendorID,
		TotalCost:    r.TotalCost,
	}
}

func (r RegisterCloseEventRequest) ToDomain() domain.RegisterCloseEvent {
	return domain.RegisterCloseEvent{SessionID: r.SessionID, CloseDate: r.CloseDate, Discrepancy: r.Discrepancy}
}

func (r CashTransactionEventRequest) ToDomain() domain.CashTransactionEvent {
	return domain.CashTransactionEvent{
		CashTransactionID: r.CashTransactionID,
		SessionID:         r.SessionID,
		TransactionDate:   r.TransactionDate,
		Kind:              r.Kind,
		Amount:            r.Amount,
		Reason:            r.Reason,
	}
}

func (r DamagedGoodsEventRequest) ToDomain() domain.DamagedGoodsEvent {
	return domain.DamagedGoodsEvent{
		DiscrepancyID: r.DiscrepancyID,
		EventDate:     r.EventDate,
		Amount:        r.Amount,
		Description:   r.Description,
	}
}

func (r VendorCreditEventRequest) ToDomain() domain.VendorCreditEvent {
	return domain.VendorCreditEvent{
		DiscrepancyID: r.DiscrepancyID,
		EventDate:     r.EventDate,
		VendorID:      r.VendorID,
		Amount:        r.Amount,
	}
}

func (r CashDropEventRequest) ToDomain() domain.CashDropEvent {
	return domain.CashDropEvent{CountID: r.CountID, CountDate: r.CountDate, Amount: r.Amount}
}
