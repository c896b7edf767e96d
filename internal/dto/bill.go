package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillLineRequest is one item or expense on a bill payload.
type BillLineRequest struct {
	ItemID      string          `json:"itemID"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	TaxRateID   string          `json:"taxRateID"`
	AccountID   string          `json:"accountID" binding:"required"`
	ClassID     string          `json:"classID"`
	Billable    bool            `json:"billable"`
	CustomerID  string          `json:"customerID"`
}

// CreateBillRequest defines the payload for entering a vendor bill.
type CreateBillRequest struct {
	VendorID        string            `json:"vendorID" binding:"required"`
	VendorReference string            `json:"vendorReference"`
	BillDate        time.Time         `json:"billDate" binding:"required"`
	DueDate         *time.Time        `json:"dueDate"` // derived from vendor terms when omitted
	Terms           string            `json:"terms"`
	Memo            string            `json:"memo"`
	Lines           []BillLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateBillRequest patches an unpaid bill. Lines, when given, replace all lines.
type UpdateBillRequest struct {
	VendorReference *string           `json:"vendorReference"`
	BillDate        *time.Time        `json:"billDate"`
	DueDate         *time.Time        `json:"dueDate"`
	Terms           *string           `json:"terms"`
	Memo            *string           `json:"memo"`
	Lines           []BillLineRequest `json:"lines" binding:"omitempty,dive"`
}

// ToDomainBillLines converts request lines to domain lines numbered from 1.
func ToDomainBillLines(lines []BillLineRequest) []domain.BillLine {
	res := make([]domain.BillLine, len(lines))
	for i, l := range lines {
		res[i] = domain.BillLine{
			LineNumber:  i + 1,
			ItemID:      l.ItemID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			TaxRateID:   l.TaxRateID,
			AccountID:   l.AccountID,
			ClassID:     l.ClassID,
			Billable:    l.Billable,
			CustomerID:  l.CustomerID,
		}
	}
	return res
}

// ListBillsParams defines query parameters for listing bills.
type ListBillsParams struct {
	VendorID string `form:"vendorID"`
	Status   string `form:"status" binding:"omitempty,oneof=draft open partial paid void"`
}

// BillResponse is the hydrated bill returned by the API.
type BillResponse struct {
	domain.Bill
}

// ToBillResponse converts a domain.Bill to BillResponse DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	if b.Lines == nil {
		b.Lines = []domain.BillLine{}
	}
	return BillResponse{Bill: *b}
}

// ToBillResponses converts a slice of domain.Bill to []BillResponse.
func ToBillResponses(bills []domain.Bill) []BillResponse {
	res := make([]BillResponse, len(bills))
	for i, b := range bills {
		res[i] = ToBillResponse(&b)
	}
	return res
}

// BillPaymentApplicationRequest applies part of a payment to one bill.
type BillPaymentApplicationRequest struct {
	BillID        string          `json:"billID" binding:"required"`
	AmountApplied decimal.Decimal `json:"amountApplied"`
}

// CreateBillPaymentRequest defines the payload for paying a vendor.
type CreateBillPaymentRequest struct {
	VendorID          string                          `json:"vendorID" binding:"required"`
	PaymentDate       time.Time                       `json:"paymentDate" binding:"required"`
	PaymentMethod     domain.PaymentMethod            `json:"paymentMethod" binding:"required,paymentmethod"`
	ReferenceNumber   string                          `json:"referenceNumber"`
	Memo              string                          `json:"memo"`
	PaymentAmount     decimal.Decimal                 `json:"paymentAmount"`
	PaidFromAccountID string                          `json:"paidFromAccountID" binding:"required"`
	Applications      []BillPaymentApplicationRequest `json:"applications" binding:"required,min=1,dive"`
}

// UpdateBillPaymentRequest patches the non-structural fields of a payment.
// Applications are accepted only so that attempts to change them can be rejected explicitly.
type UpdateBillPaymentRequest struct {
	PaymentDate     *time.Time                      `json:"paymentDate"`
	PaymentMethod   *domain.PaymentMethod           `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	ReferenceNumber *string                         `json:"referenceNumber"`
	Memo            *string                         `json:"memo"`
	Applications    []BillPaymentApplicationRequest `json:"applications"`
}

// BillPaymentResponse is the hydrated payment returned by the API.
type BillPaymentResponse struct {
	domain.BillPayment
}

// ToBillPaymentResponse converts a domain.BillPayment to BillPaymentResponse DTO.
func ToBillPaymentResponse(p *domain.BillPayment) BillPaymentResponse {
	if p.Applications == nil {
		p.Applications = []domain.BillPaymentApplication{}
	}
	return BillPaymentResponse{BillPayment: *p}
}

// ToBillPaymentResponses converts a slice of domain.BillPayment to []BillPaymentResponse.
func ToBillPaymentResponses(payments []domain.BillPayment) []BillPaymentResponse {
	res := make([]BillPaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToBillPaymentResponse(&p)
	}
	return res
}
