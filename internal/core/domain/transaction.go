package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum allowed difference between total debits and credits.
var BalanceTolerance = decimal.New(1, -2)

// TransactionType classifies a journal entry by the business event that produced it.
type TransactionType string

const (
	JournalEntry  TransactionType = "journal_entry"
	InvoiceTx     TransactionType = "invoice"
	BillEntry     TransactionType = "bill"
	Payment       TransactionType = "payment"
	SalesReceipt  TransactionType = "sales_receipt"
	Purchase      TransactionType = "purchase"
	Refund        TransactionType = "refund"
	Adjustment    TransactionType = "adjustment"
	Transfer      TransactionType = "transfer"
	Deposit       TransactionType = "deposit"
	Withdrawal    TransactionType = "withdrawal"
	BillPaymentTx TransactionType = "bill_payment"
)

var transactionTypes = map[TransactionType]struct{}{
	JournalEntry: {}, InvoiceTx: {}, BillEntry: {}, Payment: {}, SalesReceipt: {}, Purchase: {},
	Refund: {}, Adjustment: {}, Transfer: {}, Deposit: {}, Withdrawal: {}, BillPaymentTx: {},
}

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	_, ok := transactionTypes[t]
	return ok
}

// TransactionStatus is the derived lifecycle state of a journal entry.
type TransactionStatus string

const (
	StatusDraft  TransactionStatus = "draft"
	StatusPosted TransactionStatus = "posted"
	StatusVoid   TransactionStatus = "void"
)

// Transaction is a journal entry: a balanced set of lines recorded for one business event.
type Transaction struct {
	TransactionID      string            `json:"transactionID"`
	TransactionNumber  string            `json:"transactionNumber"`
	TransactionDate    time.Time         `json:"transactionDate"`
	TransactionType    TransactionType   `json:"transactionType"`
	Description        string            `json:"description"`
	ReferenceNumber    string            `json:"referenceNumber"`
	SourceDocumentType string            `json:"sourceDocumentType"` // empty when not tied to a business event
	SourceDocumentID   string            `json:"sourceDocumentID"`
	IsPosted           bool              `json:"isPosted"`
	IsVoid             bool              `json:"isVoid"`
	VoidDate           *time.Time        `json:"voidDate,omitempty"`
	VoidReason         string            `json:"voidReason"`
	Lines              []TransactionLine `json:"lines"`
	AuditFields
}

// TransactionLine is one debit or credit against a single account.
type TransactionLine struct {
	LineID        string          `json:"lineID"`
	TransactionID string          `json:"transactionID"`
	LineNumber    int             `json:"lineNumber"`
	AccountID     string          `json:"accountID"`
	DebitAmount   decimal.Decimal `json:"debitAmount"`
	CreditAmount  decimal.Decimal `json:"creditAmount"`
	Description   string          `json:"description"`
	EntityType    string          `json:"entityType"`
	EntityID      string          `json:"entityID"`
	ClassID       string          `json:"classID"`
	Billable      bool            `json:"billable"`
}

// Status derives the lifecycle state from the posted and void flags.
func (t Transaction) Status() TransactionStatus {
	switch {
	case t.IsVoid:
		return StatusVoid
	case t.IsPosted:
		return StatusPosted
	default:
		return StatusDraft
	}
}

// TotalDebits sums the debit side of all lines.
func (t Transaction) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Lines {
		total = total.Add(l.DebitAmount)
	}
	return total
}

// TotalCredits sums the credit side of all lines.
func (t Transaction) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Lines {
		total = total.Add(l.CreditAmount)
	}
	return total
}

// IsBalanced reports whether debits equal credits within BalanceTolerance.
func (t Transaction) IsBalanced() bool {
	return t.TotalDebits().Sub(t.TotalCredits()).Abs().LessThan(BalanceTolerance)
}

// HasValidPolarity reports whether exactly one of debit or credit is positive and neither is negative.
func (l TransactionLine) HasValidPolarity() bool {
	if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
		return false
	}
	return l.DebitAmount.IsPositive() != l.CreditAmount.IsPositive()
}

// IsDebit reports whether the line sits on the debit side.
func (l TransactionLine) IsDebit() bool {
	return l.DebitAmount.IsPositive()
}

// Amount returns whichever side of the line is populated.
func (l TransactionLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.DebitAmount
	}
	return l.CreditAmount
}

// MirrorLines returns a copy of lines with debit and credit swapped, renumbered from 1.
func MirrorLines(lines []TransactionLine) []TransactionLine {
	mirrored := make([]TransactionLine, len(lines))
	for i, l := range lines {
		mirrored[i] = TransactionLine{
			LineNumber:   i + 1,
			AccountID:    l.AccountID,
			DebitAmount:  l.CreditAmount,
			CreditAmount: l.DebitAmount,
			Description:  l.Description,
			EntityType:   l.EntityType,
			EntityID:     l.EntityID,
			ClassID:      l.ClassID,
			Billable:     l.Billable,
		}
	}
	return mirrored
}

// TransactionFilter narrows journal listings.
type TransactionFilter struct {
	TransactionType    *TransactionType
	Status             *TransactionStatus
	SourceDocumentType *string
	StartDate          *time.Time
	EndDate            *time.Time
	Limit              int
	NextToken          *string
}

// LedgerFilter selects the lines returned by the general ledger.
type LedgerFilter struct {
	AccountID *string
	StartDate *time.Time
	EndDate   *time.Time
}

// LedgerEntry is one posted line joined with its transaction header and account metadata.
type LedgerEntry struct {
	TransactionID     string           `json:"transactionID"`
	TransactionNumber string           `json:"transactionNumber"`
	TransactionDate   time.Time        `json:"transactionDate"`
	TransactionType   TransactionType  `json:"transactionType"`
	Description       string           `json:"description"`
	LineNumber        int              `json:"lineNumber"`
	LineDescription   string           `json:"lineDescription"`
	AccountID         string           `json:"accountID"`
	AccountNumber     string           `json:"accountNumber"`
	AccountName       string           `json:"accountName"`
	AccountType       AccountType      `json:"accountType"`
	BalanceType       BalanceType      `json:"balanceType"`
	DebitAmount       decimal.Decimal  `json:"debitAmount"`
	CreditAmount      decimal.Decimal  `json:"creditAmount"`
	EntityType        string           `json:"entityType"`
	EntityID          string           `json:"entityID"`
	RunningBalance    *decimal.Decimal `json:"runningBalance,omitempty"`
}
