package dto

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// PeriodParams selects a reporting period. Dates are YYYY-MM-DD.
type PeriodParams struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// AsOfParams selects a point in time. Defaults to today when omitted.
type AsOfParams struct {
	AsOfDate        string `form:"asOfDate"`
	EstablishmentID string `form:"establishmentID"`
}

// ComparativePeriodParams selects a current and a prior period.
type ComparativePeriodParams struct {
	StartDate      string `form:"startDate" binding:"required"`
	EndDate        string `form:"endDate" binding:"required"`
	PriorStartDate string `form:"priorStartDate" binding:"required"`
	PriorEndDate   string `form:"priorEndDate" binding:"required"`
}

// ComparativeAsOfParams selects two points in time.
type ComparativeAsOfParams struct {
	AsOfDate        string `form:"asOfDate" binding:"required"`
	PriorAsOfDate   string `form:"priorAsOfDate" binding:"required"`
	EstablishmentID string `form:"establishmentID"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	domain.TrialBalance
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	domain.IncomeStatement
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	domain.BalanceSheet
	IsBalanced bool `json:"isBalanced"`
}

// CashFlowResponse represents the cash flow statement response
type CashFlowResponse struct {
	domain.CashFlowStatement
}

// ToBalanceSheetResponse adds the identity check to a balance sheet.
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		BalanceSheet: *bs,
		IsBalanced:   bs.TotalAssets.Sub(bs.TotalLiabilitiesEquity).Abs().LessThan(domain.BalanceTolerance),
	}
}
