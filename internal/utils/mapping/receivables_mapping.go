package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:       d.CustomerID,
		CustomerNumber:   NullString(d.CustomerNumber),
		CustomerName:     d.CustomerName,
		PaymentTermsDays: d.PaymentTermsDays,
		Email:            NullString(d.Email),
		Phone:            NullString(d.Phone),
		BillingAddress:   NullString(d.BillingAddress),
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:       m.CustomerID,
		CustomerNumber:   m.CustomerNumber.String,
		CustomerName:     m.CustomerName,
		PaymentTermsDays: m.PaymentTermsDays,
		Email:            m.Email.String,
		Phone:            m.Phone.String,
		BillingAddress:   m.BillingAddress.String,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoice converts a domain Invoice header to its model
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		CustomerID:    d.CustomerID,
		PONumber:      NullString(d.PONumber),
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		Terms:         NullString(d.Terms),
		Status:        string(d.Status),
		Subtotal:      d.Subtotal,
		TaxAmount:     d.TaxAmount,
		TotalAmount:   d.TotalAmount,
		AmountPaid:    d.AmountPaid,
		BalanceDue:    d.BalanceDue,
		Memo:          NullString(d.Memo),
		TransactionID: NullString(d.TransactionID),
		VoidDate:      NullTime(d.VoidDate),
		VoidReason:    NullString(d.VoidReason),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice header and its lines to a domain Invoice
func ToDomainInvoice(m models.Invoice, lines []models.InvoiceLine) domain.Invoice {
	d := domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		PONumber:      m.PONumber.String,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		Terms:         m.Terms.String,
		Status:        domain.InvoiceStatus(m.Status),
		Subtotal:      m.Subtotal,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		AmountPaid:    m.AmountPaid,
		BalanceDue:    m.BalanceDue,
		Memo:          m.Memo.String,
		TransactionID: m.TransactionID.String,
		VoidDate:      TimePtr(m.VoidDate),
		VoidReason:    m.VoidReason.String,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	d.Lines = make([]domain.InvoiceLine, len(lines))
	for i, l := range lines {
		d.Lines[i] = ToDomainInvoiceLine(l)
	}
	return d
}

// ToModelInvoiceLine converts a domain invoice line to its model
func ToModelInvoiceLine(d domain.InvoiceLine) models.InvoiceLine {
	return models.InvoiceLine{
		InvoiceLineID: d.InvoiceLineID,
		InvoiceID:     d.InvoiceID,
		LineNumber:    d.LineNumber,
		ItemID:        NullString(d.ItemID),
		Description:   NullString(d.Description),
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		LineTotal:     d.LineTotal,
		TaxRateID:     NullString(d.TaxRateID),
		TaxAmount:     d.TaxAmount,
		AccountID:     NullString(d.AccountID),
		ClassID:       NullString(d.ClassID),
	}
}

// ToDomainInvoiceLine converts a model invoice line to its domain form
func ToDomainInvoiceLine(m models.InvoiceLine) domain.InvoiceLine {
	return domain.InvoiceLine{
		InvoiceLineID: m.InvoiceLineID,
		InvoiceID:     m.InvoiceID,
		LineNumber:    m.LineNumber,
		ItemID:        m.ItemID.String,
		Description:   m.Description.String,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		LineTotal:     m.LineTotal,
		TaxRateID:     m.TaxRateID.String,
		TaxAmount:     m.TaxAmount,
		AccountID:     m.AccountID.String,
		ClassID:       m.ClassID.String,
	}
}

// ToModelCustomerPayment converts a domain CustomerPayment header to its model
func ToModelCustomerPayment(d domain.CustomerPayment) models.CustomerPayment {
	return models.CustomerPayment{
		PaymentID:          d.PaymentID,
		PaymentNumber:      d.PaymentNumber,
		CustomerID:         d.CustomerID,
		PaymentDate:        d.PaymentDate,
		PaymentMethod:      string(d.PaymentMethod),
		ReferenceNumber:    NullString(d.ReferenceNumber),
		Memo:               NullString(d.Memo),
		PaymentAmount:      d.PaymentAmount,
		UnappliedAmount:    d.UnappliedAmount,
		DepositToAccountID: d.DepositToAccountID,
		Status:             string(d.Status),
		TransactionID:      NullString(d.TransactionID),
		VoidDate:           NullTime(d.VoidDate),
		VoidReason:         NullString(d.VoidReason),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomerPayment converts a model payment and its applications to a domain CustomerPayment
func ToDomainCustomerPayment(m models.CustomerPayment, apps []models.CustomerPaymentApplication) domain.CustomerPayment {
	d := domain.CustomerPayment{
		PaymentID:          m.PaymentID,
		PaymentNumber:      m.PaymentNumber,
		CustomerID:         m.CustomerID,
		PaymentDate:        m.PaymentDate,
		PaymentMethod:      domain.PaymentMethod(m.PaymentMethod),
		ReferenceNumber:    m.ReferenceNumber.String,
		Memo:               m.Memo.String,
		PaymentAmount:      m.PaymentAmount,
		UnappliedAmount:    m.UnappliedAmount,
		DepositToAccountID: m.DepositToAccountID,
		Status:             domain.CustomerPaymentStatus(m.Status),
		TransactionID:      m.TransactionID.String,
		VoidDate:           TimePtr(m.VoidDate),
		VoidReason:         m.VoidReason.String,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
	d.Applications = make([]domain.CustomerPaymentApplication, len(apps))
	for i, a := range apps {
		d.Applications[i] = domain.CustomerPaymentApplication{
			ApplicationID: a.ApplicationID,
			PaymentID:     a.PaymentID,
			InvoiceID:     a.InvoiceID,
			AmountApplied: a.AmountApplied,
		}
	}
	return d
}
