package domain_test

import (
	"testing"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTransactionLine_HasValidPolarity(t *testing.T) {
	tests := []struct {
		name string
		line domain.TransactionLine
		want bool
	}{
		{"debit only", domain.TransactionLine{DebitAmount: dec("10"), CreditAmount: decimal.Zero}, true},
		{"credit only", domain.TransactionLine{DebitAmount: decimal.Zero, CreditAmount: dec("10")}, true},
		{"both sides", domain.TransactionLine{DebitAmount: dec("10"), CreditAmount: dec("10")}, false},
		{"neither side", domain.TransactionLine{DebitAmount: decimal.Zero, CreditAmount: decimal.Zero}, false},
		{"negative debit", domain.TransactionLine{DebitAmount: dec("-5"), CreditAmount: decimal.Zero}, false},
		{"negative credit with debit", domain.TransactionLine{DebitAmount: dec("5"), CreditAmount: dec("-5")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.HasValidPolarity())
		})
	}
}

func TestTransaction_IsBalanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.TransactionLine
		want  bool
	}{
		{
			name: "exactly balanced",
			lines: []domain.TransactionLine{
				{DebitAmount: dec("100.00")},
				{CreditAmount: dec("60.00")},
				{CreditAmount: dec("40.00")},
			},
			want: true,
		},
		{
			name: "within tolerance",
			lines: []domain.TransactionLine{
				{DebitAmount: dec("100.005")},
				{CreditAmount: dec("100.00")},
			},
			want: true,
		},
		{
			name: "off by one cent",
			lines: []domain.TransactionLine{
				{DebitAmount: dec("100.01")},
				{CreditAmount: dec("100.00")},
			},
			want: false,
		},
		{
			name: "credits exceed debits",
			lines: []domain.TransactionLine{
				{DebitAmount: dec("10")},
				{CreditAmount: dec("25")},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.Transaction{Lines: tt.lines}
			assert.Equal(t, tt.want, txn.IsBalanced())
		})
	}
}

func TestTransaction_Status(t *testing.T) {
	assert.Equal(t, domain.StatusDraft, domain.Transaction{}.Status())
	assert.Equal(t, domain.StatusPosted, domain.Transaction{IsPosted: true}.Status())
	assert.Equal(t, domain.StatusVoid, domain.Transaction{IsPosted: true, IsVoid: true}.Status())
	assert.Equal(t, domain.StatusVoid, domain.Transaction{IsVoid: true}.Status())
}

func TestMirrorLines(t *testing.T) {
	original := []domain.TransactionLine{
		{LineNumber: 1, AccountID: "cash", DebitAmount: dec("105.00"), CreditAmount: decimal.Zero},
		{LineNumber: 2, AccountID: "revenue", DebitAmount: decimal.Zero, CreditAmount: dec("100.00")},
		{LineNumber: 3, AccountID: "tax", DebitAmount: decimal.Zero, CreditAmount: dec("8.00")},
		{LineNumber: 4, AccountID: "fees", DebitAmount: dec("3.00"), CreditAmount: decimal.Zero},
	}

	mirrored := domain.MirrorLines(original)

	assert.Len(t, mirrored, len(original))
	for i := range original {
		assert.Equal(t, original[i].AccountID, mirrored[i].AccountID)
		assert.True(t, original[i].DebitAmount.Equal(mirrored[i].CreditAmount))
		assert.True(t, original[i].CreditAmount.Equal(mirrored[i].DebitAmount))
		assert.Equal(t, i+1, mirrored[i].LineNumber)
	}
	assert.True(t, domain.Transaction{Lines: mirrored}.IsBalanced())
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, domain.SalesReceipt.IsValid())
	assert.True(t, domain.BillPaymentTx.IsValid())
	assert.False(t, domain.TransactionType("gift").IsValid())
}
