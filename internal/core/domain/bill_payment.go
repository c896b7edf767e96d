package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a vendor was paid.
type PaymentMethod string

const (
	PaymentCheck      PaymentMethod = "check"
	PaymentACH        PaymentMethod = "ach"
	PaymentWire       PaymentMethod = "wire"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentCash       PaymentMethod = "cash"
	PaymentOther      PaymentMethod = "other"
)

// IsValid reports whether m is an accepted payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCheck, PaymentACH, PaymentWire, PaymentCreditCard, PaymentCash, PaymentOther:
		return true
	}
	return false
}

// BillPaymentStatus is the lifecycle state of a bill payment.
type BillPaymentStatus string

const (
	BillPaymentPending BillPaymentStatus = "pending"
	BillPaymentVoid    BillPaymentStatus = "void"
)

// BillPayment records money paid to a vendor and how it was applied to bills.
type BillPayment struct {
	PaymentID         string                   `json:"paymentID"`
	PaymentNumber     string                   `json:"paymentNumber"`
	VendorID          string                   `json:"vendorID"`
	PaymentDate       time.Time                `json:"paymentDate"`
	PaymentMethod     PaymentMethod            `json:"paymentMethod"`
	ReferenceNumber   string                   `json:"referenceNumber"`
	Memo              string                   `json:"memo"`
	PaymentAmount     decimal.Decimal          `json:"paymentAmount"`
	UnappliedAmount   decimal.Decimal          `json:"unappliedAmount"`
	PaidFromAccountID string                   `json:"paidFromAccountID"`
	Status            BillPaymentStatus        `json:"status"`
	TransactionID     string                   `json:"transactionID"`
	VoidDate          *time.Time               `json:"voidDate,omitempty"`
	VoidReason        string                   `json:"voidReason"`
	Applications      []BillPaymentApplication `json:"applications"`
	AuditFields
}

// BillPaymentApplication is the portion of a payment applied to one bill.
type BillPaymentApplication struct {
	ApplicationID string          `json:"applicationID"`
	PaymentID     string          `json:"paymentID"`
	BillID        string          `json:"billID"`
	AmountApplied decimal.Decimal `json:"amountApplied"`
}

// TotalApplied sums every application of the payment.
func (p BillPayment) TotalApplied() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Applications {
		total = total.Add(a.AmountApplied)
	}
	return total
}
