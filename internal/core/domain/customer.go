package domain

// Customer is a buyer invoiced on account.
type Customer struct {
	CustomerID       string `json:"customerID"`
	CustomerNumber   string `json:"customerNumber"`
	CustomerName     string `json:"customerName"`
	PaymentTermsDays int    `json:"paymentTermsDays"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	BillingAddress   string `json:"billingAddress"`
	IsActive         bool   `json:"isActive"`
	AuditFields
}

// TermsDays returns the customer's payment terms, falling back to the default.
func (c Customer) TermsDays() int {
	if c.PaymentTermsDays <= 0 {
		return DefaultPaymentTermsDays
	}
	return c.PaymentTermsDays
}
