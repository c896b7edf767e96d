package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerPaymentStatus is the lifecycle state of a customer payment.
type CustomerPaymentStatus string

const (
	CustomerPaymentReceived CustomerPaymentStatus = "received"
	CustomerPaymentVoid     CustomerPaymentStatus = "void"
)

// CustomerPayment records money received from a customer and how it was applied to invoices.
type CustomerPayment struct {
	PaymentID          string                       `json:"paymentID"`
	PaymentNumber      string                       `json:"paymentNumber"`
	CustomerID         string                       `json:"customerID"`
	PaymentDate        time.Time                    `json:"paymentDate"`
	PaymentMethod      PaymentMethod                `json:"paymentMethod"`
	ReferenceNumber    string                       `json:"referenceNumber"`
	Memo               string                       `json:"memo"`
	PaymentAmount      decimal.Decimal              `json:"paymentAmount"`
	UnappliedAmount    decimal.Decimal              `json:"unappliedAmount"`
	DepositToAccountID string                       `json:"depositToAccountID"`
	Status             CustomerPaymentStatus        `json:"status"`
	TransactionID      string                       `json:"transactionID"`
	VoidDate           *time.Time                   `json:"voidDate,omitempty"`
	VoidReason         string                       `json:"voidReason"`
	Applications       []CustomerPaymentApplication `json:"applications"`
	AuditFields
}

// CustomerPaymentApplication is the portion of a payment applied to one invoice.
type CustomerPaymentApplication struct {
	ApplicationID string          `json:"applicationID"`
	PaymentID     string          `json:"paymentID"`
	InvoiceID     string          `json:"invoiceID"`
	AmountApplied decimal.Decimal `json:"amountApplied"`
}

// TotalApplied sums every application of the payment.
func (p CustomerPayment) TotalApplied() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Applications {
		total = total.Add(a.AmountApplied)
	}
	return total
}
