package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a customer row.
type Customer struct {
	CustomerID       string         `db:"customer_id"`
	CustomerNumber   sql.NullString `db:"customer_number"`
	CustomerName     string         `db:"customer_name"`
	PaymentTermsDays int            `db:"payment_terms_days"`
	Email            sql.NullString `db:"email"`
	Phone            sql.NullString `db:"phone"`
	BillingAddress   sql.NullString `db:"billing_address"`
	IsActive         bool           `db:"is_active"`
	AuditFields
}

// Invoice is a customer invoice header row.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CustomerID    string          `db:"customer_id"`
	PONumber      sql.NullString  `db:"po_number"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DueDate       time.Time       `db:"due_date"`
	Terms         sql.NullString  `db:"terms"`
	Status        string          `db:"status"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	AmountPaid    decimal.Decimal `db:"amount_paid"`
	BalanceDue    decimal.Decimal `db:"balance_due"`
	Memo          sql.NullString  `db:"memo"`
	TransactionID sql.NullString  `db:"transaction_id"`
	VoidDate      sql.NullTime    `db:"void_date"`
	VoidReason    sql.NullString  `db:"void_reason"`
	AuditFields
}

// InvoiceLine is an item or service line of an invoice.
type InvoiceLine struct {
	InvoiceLineID string          `db:"invoice_line_id"`
	InvoiceID     string          `db:"invoice_id"`
	LineNumber    int             `db:"line_number"`
	ItemID        sql.NullString  `db:"item_id"`
	Description   sql.NullString  `db:"description"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	LineTotal     decimal.Decimal `db:"line_total"`
	TaxRateID     sql.NullString  `db:"tax_rate_id"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
	AccountID     sql.NullString  `db:"account_id"`
	ClassID       sql.NullString  `db:"class_id"`
}

// CustomerPayment is a received payment row; applications live in customer_payment_applications.
type CustomerPayment struct {
	PaymentID          string          `db:"payment_id"`
	PaymentNumber      string          `db:"payment_number"`
	CustomerID         string          `db:"customer_id"`
	PaymentDate        time.Time       `db:"payment_date"`
	PaymentMethod      string          `db:"payment_method"`
	ReferenceNumber    sql.NullString  `db:"reference_number"`
	Memo               sql.NullString  `db:"memo"`
	PaymentAmount      decimal.Decimal `db:"payment_amount"`
	UnappliedAmount    decimal.Decimal `db:"unapplied_amount"`
	DepositToAccountID string          `db:"deposit_to_account_id"`
	Status             string          `db:"status"`
	TransactionID      sql.NullString  `db:"transaction_id"`
	VoidDate           sql.NullTime    `db:"void_date"`
	VoidReason         sql.NullString  `db:"void_reason"`
	AuditFields
}

// CustomerPaymentApplication ties part of a customer payment to one invoice.
type CustomerPaymentApplication struct {
	ApplicationID string          `db:"application_id"`
	PaymentID     string          `db:"payment_id"`
	InvoiceID     string          `db:"invoice_id"`
	AmountApplied decimal.Decimal `db:"amount_applied"`
}
