package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
)

// DateLayout is the format of every date query parameter.
const DateLayout = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD value. Empty input yields nil.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return &t, nil
}

// ParseRequiredDate parses a YYYY-MM-DD value that must be present.
func ParseRequiredDate(name, value string) (time.Time, error) {
	t, err := ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, fmt.Errorf("%w: %s is required", apperrors.ErrValidation, name)
	}
	return *t, nil
}
