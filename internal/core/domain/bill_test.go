package domain_test

import (
	"testing"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBill_RecomputeTotals(t *testing.T) {
	bill := domain.Bill{
		AmountPaid: dec("20"),
		Lines: []domain.BillLine{
			{LineTotal: dec("50"), TaxAmount: dec("4.125")},
			{LineTotal: dec("25"), TaxAmount: decimal.Zero},
		},
	}

	bill.RecomputeTotals()

	assert.True(t, bill.Subtotal.Equal(dec("75")))
	assert.True(t, bill.TaxAmount.Equal(dec("4.125")))
	assert.True(t, bill.TotalAmount.Equal(dec("79.125")))
	assert.True(t, bill.BalanceDue.Equal(dec("59.125")))
}

func TestBill_PaymentLifecycle(t *testing.T) {
	bill := domain.Bill{Status: domain.BillOpen, TotalAmount: dec("150"), AmountPaid: decimal.Zero, BalanceDue: dec("150")}

	bill.ApplyPayment(dec("50"))
	assert.True(t, bill.BalanceDue.Equal(dec("100")))
	assert.Equal(t, domain.BillPartial, bill.Status)

	bill.ApplyPayment(dec("100"))
	assert.True(t, bill.BalanceDue.IsZero())
	assert.Equal(t, domain.BillPaid, bill.Status)
	assert.True(t, bill.IsLocked())

	bill.ReversePayment(dec("100"))
	assert.True(t, bill.BalanceDue.Equal(dec("100")))
	assert.Equal(t, domain.BillPartial, bill.Status)

	bill.ReversePayment(dec("50"))
	assert.True(t, bill.BalanceDue.Equal(dec("150")))
	assert.Equal(t, domain.BillPartial, bill.Status, "only paid bills are demoted")
	assert.False(t, bill.IsLocked())
}

func TestBill_DeriveStatusKeepsVoid(t *testing.T) {
	bill := domain.Bill{Status: domain.BillVoid, BalanceDue: dec("10")}
	assert.Equal(t, domain.BillVoid, bill.DeriveStatus())
}

func TestVendor_TermsAndTaxID(t *testing.T) {
	assert.Equal(t, domain.DefaultPaymentTermsDays, domain.Vendor{}.TermsDays())
	assert.Equal(t, 45, domain.Vendor{PaymentTermsDays: 45}.TermsDays())

	assert.True(t, domain.ValidTaxID(""))
	assert.True(t, domain.ValidTaxID("12-3456789"))
	assert.False(t, domain.ValidTaxID("123456789"))
	assert.False(t, domain.ValidTaxID("12-345678"))
}

func TestNewVariance(t *testing.T) {
	v := domain.NewVariance(dec("150"), dec("100"))
	assert.True(t, v.Variance.Equal(dec("50")))
	assert.True(t, v.VariancePercentage.Equal(dec("50")))

	negPrior := domain.NewVariance(dec("-50"), dec("-100"))
	assert.True(t, negPrior.Variance.Equal(dec("50")))
	assert.True(t, negPrior.VariancePercentage.Equal(dec("50")))

	zeroPrior := domain.NewVariance(dec("10"), decimal.Zero)
	assert.True(t, zeroPrior.VariancePercentage.IsZero())
}
