package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelBill converts a domain Bill header to its model
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:          d.BillID,
		BillNumber:      d.BillNumber,
		VendorID:        d.VendorID,
		VendorReference: NullString(d.VendorReference),
		BillDate:        d.BillDate,
		DueDate:         d.DueDate,
		Terms:           NullString(d.Terms),
		Status:          string(d.Status),
		Subtotal:        d.Subtotal,
		TaxAmount:       d.TaxAmount,
		TotalAmount:     d.TotalAmount,
		AmountPaid:      d.AmountPaid,
		BalanceDue:      d.BalanceDue,
		Memo:            NullString(d.Memo),
		TransactionID:   NullString(d.TransactionID),
		VoidDate:        NullTime(d.VoidDate),
		VoidReason:      NullString(d.VoidReason),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a model Bill header and its lines to a domain Bill
func ToDomainBill(m models.Bill, lines []models.BillLine) domain.Bill {
	d := domain.Bill{
		BillID:          m.BillID,
		BillNumber:      m.BillNumber,
		VendorID:        m.VendorID,
		VendorReference: m.VendorReference.String,
		BillDate:        m.BillDate,
		DueDate:         m.DueDate,
		Terms:           m.Terms.String,
		Status:          domain.BillStatus(m.Status),
		Subtotal:        m.Subtotal,
		TaxAmount:       m.TaxAmount,
		TotalAmount:     m.TotalAmount,
		AmountPaid:      m.AmountPaid,
		BalanceDue:      m.BalanceDue,
		Memo:            m.Memo.String,
		TransactionID:   m.TransactionID.String,
		VoidDate:        TimePtr(m.VoidDate),
		VoidReason:      m.VoidReason.String,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	d.Lines = make([]domain.BillLine, len(lines))
	for i, l := range lines {
		d.Lines[i] = ToDomainBillLine(l)
	}
	return d
}

// ToModelBillLine converts a domain bill line to its model
func ToModelBillLine(d domain.BillLine) models.BillLine {
	return models.BillLine{
		BillLineID:  d.BillLineID,
		BillID:      d.BillID,
		LineNumber:  d.LineNumber,
		ItemID:      NullString(d.ItemID),
		Description: NullString(d.Description),
		Quantity:    d.Quantity,
		UnitCost:    d.UnitCost,
		LineTotal:   d.LineTotal,
		TaxRateID:   NullString(d.TaxRateID),
		TaxAmount:   d.TaxAmount,
		AccountID:   NullString(d.AccountID),
		ClassID:     NullString(d.ClassID),
		Billable:    d.Billable,
		CustomerID:  NullString(d.CustomerID),
	}
}

// ToDomainBillLine converts a model bill line to its domain form
func ToDomainBillLine(m models.BillLine) domain.BillLine {
	return domain.BillLine{
		BillLineID:  m.BillLineID,
		BillID:      m.BillID,
		LineNumber:  m.LineNumber,
		ItemID:      m.ItemID.String,
		Description: m.Description.String,
		Quantity:    m.Quantity,
		UnitCost:    m.UnitCost,
		LineTotal:   m.LineTotal,
		TaxRateID:   m.TaxRateID.String,
		TaxAmount:   m.TaxAmount,
		AccountID:   m.AccountID.String,
		ClassID:     m.ClassID.String,
		Billable:    m.Billable,
		CustomerID:  m.CustomerID.String,
	}
}

// ToModelBillPayment converts a domain BillPayment header to its model
func ToModelBillPayment(d domain.BillPayment) models.BillPayment {
	return models.BillPayment{
		PaymentID:         d.PaymentID,
		PaymentNumber:     d.PaymentNumber,
		VendorID:          d.VendorID,
		PaymentDate:       d.PaymentDate,
		PaymentMethod:     string(d.PaymentMethod),
		ReferenceNumber:   NullString(d.ReferenceNumber),
		Memo:              NullString(d.Memo),
		PaymentAmount:     d.PaymentAmount,
		UnappliedAmount:   d.UnappliedAmount,
		PaidFromAccountID: d.PaidFromAccountID,
		Status:            string(d.Status),
		TransactionID:     NullString(d.TransactionID),
		VoidDate:          NullTime(d.VoidDate),
		VoidReason:        NullString(d.VoidReason),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBillPayment converts a model payment and its applications to a domain BillPayment
func ToDomainBillPayment(m models.BillPayment, apps []models.BillPaymentApplication) domain.BillPayment {
	d := domain.BillPayment{
		PaymentID:         m.PaymentID,
		PaymentNumber:     m.PaymentNumber,
		VendorID:          m.VendorID,
		PaymentDate:       m.PaymentDate,
		PaymentMethod:     domain.PaymentMethod(m.PaymentMethod),
		ReferenceNumber:   m.ReferenceNumber.String,
		Memo:              m.Memo.String,
		PaymentAmount:     m.PaymentAmount,
		UnappliedAmount:   m.UnappliedAmount,
		PaidFromAccountID: m.PaidFromAccountID,
		Status:            domain.BillPaymentStatus(m.Status),
		TransactionID:     m.TransactionID.String,
		VoidDate:          TimePtr(m.VoidDate),
		VoidReason:        m.VoidReason.String,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	d.Applications = make([]domain.BillPaymentApplication, len(apps))
	for i, a := range apps {
		d.Applications[i] = domain.BillPaymentApplication{
			ApplicationID: a.ApplicationID,
			PaymentID:     a.PaymentID,
			BillID:        a.BillID,
			AmountApplied: a.AmountApplied,
		}
	}
	return d
}
