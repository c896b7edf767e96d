package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the payload for creating a customer.
type CreateCustomerRequest struct {
	CustomerNumber   string `json:"customerNumber" binding:"required,max=50"`
	CustomerName     string `json:"customerName" binding:"required,max=255"`
	PaymentTermsDays int    `json:"paymentTermsDays" binding:"omitempty,min=0,max=365"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone"`
	BillingAddress   string `json:"billingAddress"`
}

// UpdateCustomerRequest patches a customer.
type UpdateCustomerRequest struct {
	CustomerName     *string `json:"customerName"`
	PaymentTermsDays *int    `json:"paymentTermsDays" binding:"omitempty,min=0,max=365"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	BillingAddress   *string `json:"billingAddress"`
	IsActive         *bool   `json:"isActive"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

// CustomerResponse is returned for customer endpoints.
type CustomerResponse struct {
	domain.Customer
}

// ToCustomerResponses converts customers to responses.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = CustomerResponse{Customer: c}
	}
	return res
}

// InvoiceLineRequest is one item or service on an invoice payload.
type InvoiceLineRequest struct {
	ItemID      string          `json:"itemID"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRateID   string          `json:"taxRateID"`
	AccountID   string          `json:"accountID"` // defaults to the sales revenue account
	ClassID     string          `json:"classID"`
}

// CreateInvoiceRequest defines the payload for invoicing a customer.
type CreateInvoiceRequest struct {
	CustomerID  string               `json:"customerID" binding:"required"`
	PONumber    string               `json:"poNumber"`
	InvoiceDate time.Time            `json:"invoiceDate" binding:"required"`
	DueDate     *time.Time           `json:"dueDate"` // derived from customer terms when omitted
	Terms       string               `json:"terms"`
	Memo        string               `json:"memo"`
	Lines       []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest patches an unpaid invoice. Lines, when given, replace all lines.
type UpdateInvoiceRequest struct {
	PONumber    *string              `json:"poNumber"`
	InvoiceDate *time.Time           `json:"invoiceDate"`
	DueDate     *time.Time           `json:"dueDate"`
	Terms       *string              `json:"terms"`
	Memo        *string              `json:"memo"`
	Lines       []InvoiceLineRequest `json:"lines" binding:"omitempty,dive"`
}

// ToDomainInvoiceLines converts request lines to domain lines numbered from 1.
func ToDomainInvoiceLines(lines []InvoiceLineRequest) []domain.InvoiceLine {
	res := make([]domain.InvoiceLine, len(lines))
	for i, l := range lines {
		res[i] = domain.InvoiceLine{
			LineNumber:  i + 1,
			ItemID:      l.ItemID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRateID:   l.TaxRateID,
			AccountID:   l.AccountID,
			ClassID:     l.ClassID,
		}
	}
	return res
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	CustomerID string `form:"customerID"`
	Status     string `form:"status" binding:"omitempty,oneof=draft open partial paid void"`
}

// InvoiceResponse is the hydrated invoice returned by the API.
type InvoiceResponse struct {
	domain.Invoice
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	if inv.Lines == nil {
		inv.Lines = []domain.InvoiceLine{}
	}
	return InvoiceResponse{Invoice: *inv}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}

// CustomerPaymentApplicationRequest applies part of a payment to one invoice.
type CustomerPaymentApplicationRequest struct {
	InvoiceID     string          `json:"invoiceID" binding:"required"`
	AmountApplied decimal.Decimal `json:"amountApplied"`
}

// CreateCustomerPaymentRequest defines the payload for receiving a customer payment.
type CreateCustomerPaymentRequest struct {
	CustomerID         string                              `json:"customerID" binding:"required"`
	PaymentDate        time.Time                           `json:"paymentDate" binding:"required"`
	PaymentMethod      domain.PaymentMethod                `json:"paymentMethod" binding:"required,paymentmethod"`
	ReferenceNumber    string                              `json:"referenceNumber"`
	Memo               string                              `json:"memo"`
	PaymentAmount      decimal.Decimal                     `json:"paymentAmount"`
	DepositToAccountID string                              `json:"depositToAccountID" binding:"required"`
	Applications       []CustomerPaymentApplicationRequest `json:"applications" binding:"required,min=1,dive"`
}

// UpdateCustomerPaymentRequest patches the non-structural fields of a payment.
// Applications are accepted only so that attempts to change them can be rejected explicitly.
type UpdateCustomerPaymentRequest struct {
	PaymentDate     *time.Time                          `json:"paymentDate"`
	PaymentMethod   *domain.PaymentMethod               `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	ReferenceNumber *string                             `json:"referenceNumber"`
	Memo            *string                             `json:"memo"`
	Applications    []CustomerPaymentApplicationRequest `json:"applications"`
}

// CustomerPaymentResponse is the hydrated payment returned by the API.
type CustomerPaymentResponse struct {
	domain.CustomerPayment
}

// ToCustomerPaymentResponse converts a domain.CustomerPayment to CustomerPaymentResponse DTO.
func ToCustomerPaymentResponse(p *domain.CustomerPayment) CustomerPaymentResponse {
	if p.Applications == nil {
		p.Applications = []domain.CustomerPaymentApplication{}
	}
	return CustomerPaymentResponse{CustomerPayment: *p}
}

// ToCustomerPaymentResponses converts a slice of domain.CustomerPayment to []CustomerPaymentResponse.
func ToCustomerPaymentResponses(payments []domain.CustomerPayment) []CustomerPaymentResponse {
	res := make([]CustomerPaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToCustomerPaymentResponse(&p)
	}
	return res
}
