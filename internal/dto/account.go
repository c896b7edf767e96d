package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountNumber      string             `json:"accountNumber" binding:"required,max=20"`
	AccountName        string             `json:"accountName" binding:"required,max=255"`
	AccountType        domain.AccountType `json:"accountType" binding:"required,accounttype"`
	SubType            string             `json:"subType"`
	ParentAccountID    *string            `json:"parentAccountID"` // Optional, use pointer for nullability
	BalanceType        domain.BalanceType `json:"balanceType" binding:"required,oneof=debit credit"`
	Description        string             `json:"description"`
	OpeningBalance     decimal.Decimal    `json:"openingBalance"`
	OpeningBalanceDate *time.Time         `json:"openingBalanceDate"`
	IsSystemAccount    bool               `json:"isSystemAccount"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	AccountNumber      *string             `json:"accountNumber"`
	AccountName        *string             `json:"accountName"`
	AccountType        *domain.AccountType `json:"accountType" binding:"omitempty,accounttype"`
	SubType            *string             `json:"subType"`
	ParentAccountID    *string             `json:"parentAccountID"` // empty string detaches from the parent
	BalanceType        *domain.BalanceType `json:"balanceType" binding:"omitempty,oneof=debit credit"`
	Description        *string             `json:"description"`
	IsActive           *bool               `json:"isActive"`
	OpeningBalance     *decimal.Decimal    `json:"openingBalance"`
	OpeningBalanceDate *time.Time          `json:"openingBalanceDate"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID          string             `json:"accountID"`
	AccountNumber      string             `json:"accountNumber"`
	AccountName        string             `json:"accountName"`
	AccountType        domain.AccountType `json:"accountType"`
	SubType            string             `json:"subType"`
	ParentAccountID    string             `json:"parentAccountID"` // Note: Empty string if null in DB
	BalanceType        domain.BalanceType `json:"balanceType"`
	Description        string             `json:"description"`
	IsActive           bool               `json:"isActive"`
	IsSystemAccount    bool               `json:"isSystemAccount"`
	OpeningBalance     decimal.Decimal    `json:"openingBalance"`
	OpeningBalanceDate *time.Time         `json:"openingBalanceDate,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	CreatedBy          string             `json:"createdBy"`
	LastUpdatedAt      time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy      string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:          acc.AccountID,
		AccountNumber:      acc.AccountNumber,
		AccountName:        acc.AccountName,
		AccountType:        acc.AccountType,
		SubType:            acc.SubType,
		ParentAccountID:    acc.ParentAccountID,
		BalanceType:        acc.BalanceType,
		Description:        acc.Description,
		IsActive:           acc.IsActive,
		IsSystemAccount:    acc.IsSystemAccount,
		OpeningBalance:     acc.OpeningBalance,
		OpeningBalanceDate: acc.OpeningBalanceDate,
		CreatedAt:          acc.CreatedAt,
		CreatedBy:          acc.CreatedBy,
		LastUpdatedAt:      acc.LastUpdatedAt,
		LastUpdatedBy:      acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc) // Reuse the single converter
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOfDate  string          `json:"asOfDate"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	AccountType string `form:"accountType"`
	ActiveOnly  bool   `form:"activeOnly"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// SeedChartResponse reports what the default chart seeding created.
type SeedChartResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
