package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a vendor bill header row.
type Bill struct {
	BillID          string          `db:"bill_id"`
	BillNumber      string          `db:"bill_number"`
	VendorID        string          `db:"vendor_id"`
	VendorReference sql.NullString  `db:"vendor_reference"`
	BillDate        time.Time       `db:"bill_date"`
	DueDate         time.Time       `db:"due_date"`
	Terms           sql.NullString  `db:"terms"`
	Status          string          `db:"status"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	BalanceDue      decimal.Decimal `db:"balance_due"`
	Memo            sql.NullString  `db:"memo"`
	TransactionID   sql.NullString  `db:"transaction_id"`
	VoidDate        sql.NullTime    `db:"void_date"`
	VoidReason      sql.NullString  `db:"void_reason"`
	AuditFields
}

// BillLine is an item or expense line of a bill.
type BillLine struct {
	BillLineID  string          `db:"bill_line_id"`
	BillID      string          `db:"bill_id"`
	LineNumber  int             `db:"line_number"`
	ItemID      sql.NullString  `db:"item_id"`
	Description sql.NullString  `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitCost    decimal.Decimal `db:"unit_cost"`
	LineTotal   decimal.Decimal `db:"line_total"`
	TaxRateID   sql.NullString  `db:"tax_rate_id"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	AccountID   sql.NullString  `db:"account_id"`
	ClassID     sql.NullString  `db:"class_id"`
	Billable    bool            `db:"billable"`
	CustomerID  sql.NullString  `db:"customer_id"`
}

// BillPayment is a payment row; applications live in bill_payment_applications.
type BillPayment struct {
	PaymentID         string          `db:"payment_id"`
	PaymentNumber     string          `db:"payment_number"`
	VendorID          string          `db:"vendor_id"`
	PaymentDate       time.Time       `db:"payment_date"`
	PaymentMethod     string          `db:"payment_method"`
	ReferenceNumber   sql.NullString  `db:"reference_number"`
	Memo              sql.NullString  `db:"memo"`
	PaymentAmount     decimal.Decimal `db:"payment_amount"`
	UnappliedAmount   decimal.Decimal `db:"unapplied_amount"`
	PaidFromAccountID string          `db:"paid_from_account_id"`
	Status            string          `db:"status"`
	TransactionID     sql.NullString  `db:"transaction_id"`
	VoidDate          sql.NullTime    `db:"void_date"`
	VoidReason        sql.NullString  `db:"void_reason"`
	AuditFields
}

// BillPaymentApplication ties part of a payment to one bill.
type BillPaymentApplication struct {
	ApplicationID string          `db:"application_id"`
	PaymentID     string          `db:"payment_id"`
	BillID        string          `db:"bill_id"`
	AmountApplied decimal.Decimal `db:"amount_applied"`
}
