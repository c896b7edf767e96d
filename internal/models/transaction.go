package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a journal entry header row.
type Transaction struct {
	TransactionID      string         `db:"transaction_id"`
	TransactionNumber  string         `db:"transaction_number"`
	TransactionDate    time.Time      `db:"transaction_date"`
	TransactionType    string         `db:"transaction_type"`
	Description        sql.NullString `db:"description"`
	ReferenceNumber    sql.NullString `db:"reference_number"`
	SourceDocumentType sql.NullString `db:"source_document_type"`
	SourceDocumentID   sql.NullString `db:"source_document_id"`
	IsPosted           bool           `db:"is_posted"`
	IsVoid             bool           `db:"is_void"`
	VoidDate           sql.NullTime   `db:"void_date"`
	VoidReason         sql.NullString `db:"void_reason"`
	AuditFields
}

// TransactionLine is a single debit or credit against one account.
type TransactionLine struct {
	LineID        string          `db:"line_id"`
	TransactionID string          `db:"transaction_id"`
	LineNumber    int             `db:"line_number"`
	AccountID     string          `db:"account_id"`
	DebitAmount   decimal.Decimal `db:"debit_amount"`
	CreditAmount  decimal.Decimal `db:"credit_amount"`
	Description   sql.NullString  `db:"description"`
	EntityType    sql.NullString  `db:"entity_type"`
	EntityID      sql.NullString  `db:"entity_id"`
	ClassID       sql.NullString  `db:"class_id"`
	Billable      bool            `db:"billable"`
}
