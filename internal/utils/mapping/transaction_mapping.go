package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction header to its model
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		TransactionNumber:  d.TransactionNumber,
		TransactionDate:    d.TransactionDate,
		TransactionType:    string(d.TransactionType),
		Description:        NullString(d.Description),
		ReferenceNumber:    NullString(d.ReferenceNumber),
		SourceDocumentType: NullString(d.SourceDocumentType),
		SourceDocumentID:   NullString(d.SourceDocumentID),
		IsPosted:           d.IsPosted,
		IsVoid:             d.IsVoid,
		VoidDate:           NullTime(d.VoidDate),
		VoidReason:         NullString(d.VoidReason),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model header and its lines to a domain Transaction
func ToDomainTransaction(m models.Transaction, lines []models.TransactionLine) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		TransactionNumber:  m.TransactionNumber,
		TransactionDate:    m.TransactionDate,
		TransactionType:    domain.TransactionType(m.TransactionType),
		Description:        m.Description.String,
		ReferenceNumber:    m.ReferenceNumber.String,
		SourceDocumentType: m.SourceDocumentType.String,
		SourceDocumentID:   m.SourceDocumentID.String,
		IsPosted:           m.IsPosted,
		IsVoid:             m.IsVoid,
		VoidDate:           TimePtr(m.VoidDate),
		VoidReason:         m.VoidReason.String,
		Lines:              ToDomainTransactionLineSlice(lines),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionLine converts a domain line to its model
func ToModelTransactionLine(d domain.TransactionLine) models.TransactionLine {
	return models.TransactionLine{
		LineID:        d.LineID,
		TransactionID: d.TransactionID,
		LineNumber:    d.LineNumber,
		AccountID:     d.AccountID,
		DebitAmount:   d.DebitAmount,
		CreditAmount:  d.CreditAmount,
		Description:   NullString(d.Description),
		EntityType:    NullString(d.EntityType),
		EntityID:      NullString(d.EntityID),
		ClassID:       NullString(d.ClassID),
		Billable:      d.Billable,
	}
}

// ToDomainTransactionLine converts a model line to its domain form
func ToDomainTransactionLine(m models.TransactionLine) domain.TransactionLine {
	return domain.TransactionLine{
		LineID:        m.LineID,
		TransactionID: m.TransactionID,
		LineNumber:    m.LineNumber,
		AccountID:     m.AccountID,
		DebitAmount:   m.DebitAmount,
		CreditAmount:  m.CreditAmount,
		Description:   m.Description.String,
		EntityType:    m.EntityType.String,
		EntityID:      m.EntityID.String,
		ClassID:       m.ClassID.String,
		Billable:      m.Billable,
	}
}

// ToDomainTransactionLineSlice converts model lines, never returning nil
func ToDomainTransactionLineSlice(ms []models.TransactionLine) []domain.TransactionLine {
	ds := make([]domain.TransactionLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionLine(m)
	}
	return ds
}
