package accounting

import (
	"testing"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedBalance(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name        string
		balanceType domain.BalanceType
		opening     string
		debits      string
		credits     string
		want        string
	}{
		{"credit account with one credit", domain.CreditBalance, "0", "0", "500", "500"},
		{"debit account with one debit", domain.DebitBalance, "0", "500", "0", "500"},
		{"debit account with debit and credit", domain.DebitBalance, "0", "500", "200", "300"},
		{"credit account with opening balance", domain.CreditBalance, "1000", "250", "100", "850"},
		{"debit account driven negative", domain.DebitBalance, "0", "50", "80", "-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignedBalance(tt.balanceType, d(tt.opening), d(tt.debits), d(tt.credits))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSignedLineAmount(t *testing.T) {
	line := domain.TransactionLine{DebitAmount: decimal.NewFromInt(40), CreditAmount: decimal.Zero}
	assert.True(t, SignedLineAmount(domain.DebitBalance, line).Equal(decimal.NewFromInt(40)))
	assert.True(t, SignedLineAmount(domain.CreditBalance, line).Equal(decimal.NewFromInt(-40)))
}

func TestValidateLines(t *testing.T) {
	balanced := []domain.TransactionLine{
		{LineNumber: 1, AccountID: "a", DebitAmount: decimal.NewFromInt(10), CreditAmount: decimal.Zero},
		{LineNumber: 2, AccountID: "b", DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(10)},
	}
	assert.NoError(t, ValidateLines(balanced))

	assert.Error(t, ValidateLines(balanced[:1]))

	unbalanced := []domain.TransactionLine{
		{LineNumber: 1, AccountID: "a", DebitAmount: decimal.NewFromInt(10), CreditAmount: decimal.Zero},
		{LineNumber: 2, AccountID: "b", DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(9)},
	}
	assert.ErrorContains(t, ValidateLines(unbalanced), "do not equal")
	assert.ErrorIs(t, ValidateLines(unbalanced), apperrors.ErrTransactionUnbalanced)
	assert.ErrorIs(t, ValidateLines(unbalanced), apperrors.ErrValidation)

	bothSides := []domain.TransactionLine{
		{LineNumber: 1, AccountID: "a", DebitAmount: decimal.NewFromInt(10), CreditAmount: decimal.NewFromInt(10)},
		{LineNumber: 2, AccountID: "b", DebitAmount: decimal.Zero, CreditAmount: decimal.Zero},
	}
	assert.ErrorContains(t, ValidateLines(bothSides), "line 1")
	assert.ErrorIs(t, ValidateLines(bothSides), apperrors.ErrInvalidLine)
}
