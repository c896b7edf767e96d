package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the lifecycle state of a vendor bill.
type BillStatus string

const (
	BillDraft   BillStatus = "draft"
	BillOpen    BillStatus = "open"
	BillPartial BillStatus = "partial"
	BillPaid    BillStatus = "paid"
	BillVoid    BillStatus = "void"
)

// DefaultPaymentTermsDays applies when a vendor has no explicit terms.
const DefaultPaymentTermsDays = 30

// Bill is a vendor invoice tracked in the accounts-payable subledger.
type Bill struct {
	BillID          string          `json:"billID"`
	BillNumber      string          `json:"billNumber"`
	VendorID        string          `json:"vendorID"`
	VendorReference string          `json:"vendorReference"`
	BillDate        time.Time       `json:"billDate"`
	DueDate         time.Time       `json:"dueDate"`
	Terms           string          `json:"terms"`
	Status          BillStatus      `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	BalanceDue      decimal.Decimal `json:"balanceDue"`
	Memo            string          `json:"memo"`
	TransactionID   string          `json:"transactionID"`
	VoidDate        *time.Time      `json:"voidDate,omitempty"`
	VoidReason      string          `json:"voidReason"`
	Lines           []BillLine      `json:"lines"`
	AuditFields
}

// BillLine is one purchased item or expense on a bill.
type BillLine struct {
	BillLineID  string          `json:"billLineID"`
	BillID      string          `json:"billID"`
	LineNumber  int             `json:"lineNumber"`
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	TaxRateID   string          `json:"taxRateID"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	AccountID   string          `json:"accountID"`
	ClassID     string          `json:"classID"`
	Billable    bool            `json:"billable"`
	CustomerID  string          `json:"customerID"`
}

// RecomputeTotals derives subtotal, tax and total from the lines and refreshes balance due.
func (b *Bill) RecomputeTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, l := range b.Lines {
		subtotal = subtotal.Add(l.LineTotal)
		tax = tax.Add(l.TaxAmount)
	}
	b.Subtotal = subtotal
	b.TaxAmount = tax
	b.TotalAmount = subtotal.Add(tax)
	b.BalanceDue = b.TotalAmount.Sub(b.AmountPaid)
}

// DeriveStatus computes the status from amounts. A void bill stays void.
func (b Bill) DeriveStatus() BillStatus {
	switch {
	case b.Status == BillVoid:
		return BillVoid
	case !b.BalanceDue.IsPositive():
		return BillPaid
	case b.AmountPaid.IsPositive():
		return BillPartial
	default:
		return BillOpen
	}
}

// ApplyPayment moves amount from balance due to amount paid and refreshes the status.
func (b *Bill) ApplyPayment(amount decimal.Decimal) {
	b.AmountPaid = b.AmountPaid.Add(amount)
	b.BalanceDue = b.BalanceDue.Sub(amount)
	b.Status = b.DeriveStatus()
}

// ReversePayment undoes ApplyPayment for amount. A paid bill is demoted to
// partial; any other status is left as it is.
func (b *Bill) ReversePayment(amount decimal.Decimal) {
	b.AmountPaid = b.AmountPaid.Sub(amount)
	b.BalanceDue = b.BalanceDue.Add(amount)
	if b.Status == BillPaid && b.BalanceDue.IsPositive() {
		b.Status = BillPartial
	}
}

// IsLocked reports whether header and lines may no longer be edited directly.
func (b Bill) IsLocked() bool {
	return b.Status == BillPaid || b.Status == BillVoid || b.AmountPaid.IsPositive()
}

// BillFilter narrows bill listings.
type BillFilter struct {
	VendorID *string
	Status   *BillStatus
}
