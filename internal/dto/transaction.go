package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionLineRequest is one debit or credit in a create/update payload.
type TransactionLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	EntityType   string          `json:"entityType"`
	EntityID     string          `json:"entityID"`
	ClassID      string          `json:"classID"`
	Billable     bool            `json:"billable"`
}

// CreateTransactionRequest defines the payload for creating a journal entry.
type CreateTransactionRequest struct {
	TransactionDate    time.Time                `json:"transactionDate" binding:"required"`
	TransactionType    domain.TransactionType   `json:"transactionType" binding:"required,transactiontype"`
	Description        string                   `json:"description"`
	ReferenceNumber    string                   `json:"referenceNumber"`
	SourceDocumentType string                   `json:"sourceDocumentType"`
	SourceDocumentID   string                   `json:"sourceDocumentID" binding:"required_with=SourceDocumentType"`
	Lines              []TransactionLineRequest `json:"lines" binding:"required,min=2,dive"`
	Post               bool                     `json:"post"` // create and post in one unit of work
}

// ToDomainLines converts request lines to domain lines numbered from 1.
func ToDomainLines(lines []TransactionLineRequest) []domain.TransactionLine {
	res := make([]domain.TransactionLine, len(lines))
	for i, l := range lines {
		res[i] = domain.TransactionLine{
			LineNumber:   i + 1,
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
			EntityType:   l.EntityType,
			EntityID:     l.EntityID,
			ClassID:      l.ClassID,
			Billable:     l.Billable,
		}
	}
	return res
}

// UpdateTransactionRequest patches a draft journal entry. Lines, when given, replace all lines.
type UpdateTransactionRequest struct {
	TransactionDate *time.Time               `json:"transactionDate"`
	Description     *string                  `json:"description"`
	ReferenceNumber *string                  `json:"referenceNumber"`
	Lines           []TransactionLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
	Post            bool                     `json:"post"`
}

// VoidRequest carries the mandatory reason for voiding an entry, bill or payment.
type VoidRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// TransactionLineResponse is one line of a journal entry.
type TransactionLineResponse struct {
	LineID       string          `json:"lineID"`
	LineNumber   int             `json:"lineNumber"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	EntityType   string          `json:"entityType,omitempty"`
	EntityID     string          `json:"entityID,omitempty"`
	ClassID      string          `json:"classID,omitempty"`
	Billable     bool            `json:"billable"`
}

// TransactionResponse defines the data returned for a journal entry.
type TransactionResponse struct {
	TransactionID      string                    `json:"transactionID"`
	TransactionNumber  string                    `json:"transactionNumber"`
	TransactionDate    time.Time                 `json:"transactionDate"`
	TransactionType    domain.TransactionType    `json:"transactionType"`
	Status             domain.TransactionStatus  `json:"status"`
	Description        string                    `json:"description"`
	ReferenceNumber    string                    `json:"referenceNumber"`
	SourceDocumentType string                    `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   string                    `json:"sourceDocumentID,omitempty"`
	IsPosted           bool                      `json:"isPosted"`
	IsVoid             bool                      `json:"isVoid"`
	VoidDate           *time.Time                `json:"voidDate,omitempty"`
	VoidReason         string                    `json:"voidReason,omitempty"`
	TotalDebits        decimal.Decimal           `json:"totalDebits"`
	TotalCredits       decimal.Decimal           `json:"totalCredits"`
	Lines              []TransactionLineResponse `json:"lines,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
	CreatedBy          string                    `json:"createdBy"`
	LastUpdatedAt      time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy      string                    `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	lines := make([]TransactionLineResponse, len(txn.Lines))
	for i, l := range txn.Lines {
		lines[i] = TransactionLineResponse{
			LineID:       l.LineID,
			LineNumber:   l.LineNumber,
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
			EntityType:   l.EntityType,
			EntityID:     l.EntityID,
			ClassID:      l.ClassID,
			Billable:     l.Billable,
		}
	}
	return TransactionResponse{
		TransactionID:      txn.TransactionID,
		TransactionNumber:  txn.TransactionNumber,
		TransactionDate:    txn.TransactionDate,
		TransactionType:    txn.TransactionType,
		Status:             txn.Status(),
		Description:        txn.Description,
		ReferenceNumber:    txn.ReferenceNumber,
		SourceDocumentType: txn.SourceDocumentType,
		SourceDocumentID:   txn.SourceDocumentID,
		IsPosted:           txn.IsPosted,
		IsVoid:             txn.IsVoid,
		VoidDate:           txn.VoidDate,
		VoidReason:         txn.VoidReason,
		TotalDebits:        txn.TotalDebits(),
		TotalCredits:       txn.TotalCredits(),
		Lines:              lines,
		CreatedAt:          txn.CreatedAt,
		CreatedBy:          txn.CreatedBy,
		LastUpdatedAt:      txn.LastUpdatedAt,
		LastUpdatedBy:      txn.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ListTransactionsParams defines query parameters for listing journal entries.
type ListTransactionsParams struct {
	TransactionType    string `form:"transactionType"`
	Status             string `form:"status" binding:"omitempty,oneof=draft posted void"`
	SourceDocumentType string `form:"sourceDocumentType"`
	StartDate          string `form:"startDate"` // YYYY-MM-DD
	EndDate            string `form:"endDate"`
	Limit              int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken          string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of journal entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// SourceDocumentParams identifies a business event for the idempotency lookup.
type SourceDocumentParams struct {
	Type string `form:"type" binding:"required"`
	ID   string `form:"id" binding:"required"`
}

// GeneralLedgerParams defines query parameters for the general ledger.
type GeneralLedgerParams struct {
	AccountID string `form:"accountID"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// GeneralLedgerResponse wraps general ledger lines.
type GeneralLedgerResponse struct {
	Entries []domain.LedgerEntry `json:"entries"`
}
