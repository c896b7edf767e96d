package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of a customer invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceOpen    InvoiceStatus = "open"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceVoid    InvoiceStatus = "void"
)

// Invoice is a sale on account tracked in the accounts-receivable subledger.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	PONumber      string          `json:"poNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       time.Time       `json:"dueDate"`
	Terms         string          `json:"terms"`
	Status        InvoiceStatus   `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	BalanceDue    decimal.Decimal `json:"balanceDue"`
	Memo          string          `json:"memo"`
	TransactionID string          `json:"transactionID"`
	VoidDate      *time.Time      `json:"voidDate,omitempty"`
	VoidReason    string          `json:"voidReason"`
	Lines         []InvoiceLine   `json:"lines"`
	AuditFields
}

// InvoiceLine is one item or service sold on an invoice.
type InvoiceLine struct {
	InvoiceLineID string          `json:"invoiceLineID"`
	InvoiceID     string          `json:"invoiceID"`
	LineNumber    int             `json:"lineNumber"`
	ItemID        string          `json:"itemID"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	TaxRateID     string          `json:"taxRateID"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	AccountID     string          `json:"accountID"`
	ClassID       string          `json:"classID"`
}

// RecomputeTotals derives subtotal, tax and total from the lines and refreshes balance due.
func (i *Invoice) RecomputeTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, l := range i.Lines {
		subtotal = subtotal.Add(l.LineTotal)
		tax = tax.Add(l.TaxAmount)
	}
	i.Subtotal = subtotal
	i.TaxAmount = tax
	i.TotalAmount = subtotal.Add(tax)
	i.BalanceDue = i.TotalAmount.Sub(i.AmountPaid)
}

// DeriveStatus computes the status from amounts. A void invoice stays void.
func (i Invoice) DeriveStatus() InvoiceStatus {
	switch {
	case i.Status == InvoiceVoid:
		return InvoiceVoid
	case !i.BalanceDue.IsPositive():
		return InvoicePaid
	case i.AmountPaid.IsPositive():
		return InvoicePartial
	default:
		return InvoiceOpen
	}
}

// ApplyPayment moves amount from balance due to amount paid and refreshes the status.
func (i *Invoice) ApplyPayment(amount decimal.Decimal) {
	i.AmountPaid = i.AmountPaid.Add(amount)
	i.BalanceDue = i.BalanceDue.Sub(amount)
	i.Status = i.DeriveStatus()
}

// ReversePayment undoes ApplyPayment for amount. A paid invoice is demoted to
// partial; any other status is left as it is.
func (i *Invoice) ReversePayment(amount decimal.Decimal) {
	i.AmountPaid = i.AmountPaid.Sub(amount)
	i.BalanceDue = i.BalanceDue.Add(amount)
	if i.Status == InvoicePaid && i.BalanceDue.IsPositive() {
		i.Status = InvoicePartial
	}
}

// IsLocked reports whether header and lines may no longer be edited directly.
func (i Invoice) IsLocked() bool {
	return i.Status == InvoicePaid || i.Status == InvoiceVoid || i.AmountPaid.IsPositive()
}

// IsOverdue reports whether an unpaid balance is past its due date on asOf.
func (i Invoice) IsOverdue(asOf time.Time) bool {
	return i.Status != InvoiceVoid && i.BalanceDue.IsPositive() && asOf.After(i.DueDate)
}

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	CustomerID *string
	Status     *InvoiceStatus
}
