package apperrors

import "fmt"

// Ledger-specific errors. Each wraps one of the generic kinds so callers can
// match either the precise condition or the kind.
var (
	ErrTransactionUnbalanced = fmt.Errorf("%w: debits do not equal credits", ErrValidation)
	ErrInvalidLine           = fmt.Errorf("%w: invalid journal line", ErrValidation)
	ErrCircularHierarchy     = fmt.Errorf("%w: circular parent-child relationship", ErrValidation)
	ErrOverApplication       = fmt.Errorf("%w: amount applied exceeds balance due", ErrValidation)

	ErrAlreadyPosted = fmt.Errorf("%w: transaction is already posted", ErrConflict)
	ErrNotPosted     = fmt.Errorf("%w: transaction is not posted", ErrConflict)
	ErrAlreadyVoid   = fmt.Errorf("%w: already void", ErrConflict)
	ErrNotDraft      = fmt.Errorf("%w: only draft transactions can be changed", ErrConflict)
	ErrBillLocked    = fmt.Errorf("%w: bill has payments applied or is closed, reverse payments first", ErrConflict)
	ErrInvoiceLocked = fmt.Errorf("%w: invoice has payments applied or is closed, reverse payments first", ErrConflict)
	ErrAccountInUse  = fmt.Errorf("%w: account is in use", ErrConflict)
	ErrSystemAccount = fmt.Errorf("%w: system accounts cannot be deleted", ErrConflict)
)
