package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset         AccountType = "Asset"
	Liability     AccountType = "Liability"
	Equity        AccountType = "Equity"
	Revenue       AccountType = "Revenue"
	ContraRevenue AccountType = "Contra Revenue"
	COGS          AccountType = "COGS"
	Expense       AccountType = "Expense"
	OtherIncome   AccountType = "Other Income"
)

// AccountTypes lists every valid account type in presentation order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, ContraRevenue, COGS, Expense, OtherIncome}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// BalanceType is the side on which an account's balance naturally increases.
type BalanceType string

const (
	DebitBalance  BalanceType = "debit"
	CreditBalance BalanceType = "credit"
)

// IsValid reports whether b is debit or credit.
func (b BalanceType) IsValid() bool {
	return b == DebitBalance || b == CreditBalance
}

// Account represents a financial account within the chart of accounts.
type Account struct {
	AccountID          string          `json:"accountID"`
	AccountNumber      string          `json:"accountNumber"` // unique, stable key used by roles and templates
	AccountName        string          `json:"accountName"`
	AccountType        AccountType     `json:"accountType"`
	SubType            string          `json:"subType"`
	ParentAccountID    string          `json:"parentAccountID"` // empty for root accounts
	BalanceType        BalanceType     `json:"balanceType"`
	Description        string          `json:"description"`
	IsActive           bool            `json:"isActive"`
	IsSystemAccount    bool            `json:"isSystemAccount"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	OpeningBalanceDate *time.Time      `json:"openingBalanceDate,omitempty"`
	AuditFields
}

// OpeningBalanceAsOf returns the opening balance if it is effective on asOf.
func (a Account) OpeningBalanceAsOf(asOf time.Time) decimal.Decimal {
	if a.OpeningBalanceDate != nil && a.OpeningBalanceDate.After(asOf) {
		return decimal.Zero
	}
	return a.OpeningBalance
}

// IsExpenseLike reports whether the account may be the target of a vendor bill line.
func (a Account) IsExpenseLike() bool {
	return a.AccountType == Expense || a.AccountType == COGS
}

// IsIncomeLike reports whether invoice lines may credit the account.
func (a Account) IsIncomeLike() bool {
	return a.AccountType == Revenue || a.AccountType == OtherIncome
}

// AccountFilter narrows account listings.
type AccountFilter struct {
	AccountType *AccountType
	IsActive    *bool
	ParentID    *string
}
