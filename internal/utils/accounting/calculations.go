package accounting

import (
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedBalance applies the account's natural side to raw debit and credit totals.
// This is used by the chart of accounts, the general ledger and every statement so
// that a balance means the same thing wherever it is computed.
//
//	debit-type:  opening + debits - credits
//	credit-type: opening + credits - debits
func SignedBalance(balanceType domain.BalanceType, opening, debits, credits decimal.Decimal) decimal.Decimal {
	if balanceType == domain.CreditBalance {
		return opening.Add(credits).Sub(debits)
	}
	return opening.Add(debits).Sub(credits)
}

// SignedActivity is SignedBalance without an opening balance, for period activity.
func SignedActivity(balanceType domain.BalanceType, debits, credits decimal.Decimal) decimal.Decimal {
	return SignedBalance(balanceType, decimal.Zero, debits, credits)
}

// SignedLineAmount returns the effect of a single line on an account of balanceType.
func SignedLineAmount(balanceType domain.BalanceType, line domain.TransactionLine) decimal.Decimal {
	return SignedActivity(balanceType, line.DebitAmount, line.CreditAmount)
}

// ValidateLines checks per-line polarity and overall balance of a journal entry.
func ValidateLines(lines []domain.TransactionLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrInvalidLine)
	}
	for _, l := range lines {
		if !l.HasValidPolarity() {
			return fmt.Errorf("%w: line %d must have exactly one of debit or credit greater than zero", apperrors.ErrInvalidLine, l.LineNumber)
		}
	}
	txn := domain.Transaction{Lines: lines}
	if !txn.IsBalanced() {
		return fmt.Errorf("%w: debits %s do not equal credits %s", apperrors.ErrTransactionUnbalanced, txn.TotalDebits().StringFixed(2), txn.TotalCredits().StringFixed(2))
	}
	return nil
}
