package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTotals is the raw posted activity for one account over a window.
type AccountTotals struct {
	AccountID string
	Debits    decimal.Decimal
	Credits   decimal.Decimal
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account with a non-zero balance.
type TrialBalance struct {
	AsOfDate     time.Time         `json:"asOfDate"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	IsBalanced   bool              `json:"isBalanced"`
}

// StatementLine is one account row of a financial statement.
type StatementLine struct {
	AccountID           string          `json:"accountID,omitempty"`
	AccountNumber       string          `json:"accountNumber,omitempty"`
	AccountName         string          `json:"accountName"`
	Balance             decimal.Decimal `json:"balance"`
	PercentageOfRevenue decimal.Decimal `json:"percentageOfRevenue"`
}

// StatementSection is a titled group of lines with a subtotal.
type StatementSection struct {
	Title string          `json:"title"`
	Lines []StatementLine `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// IncomeStatement is the profit and loss report for a period.
type IncomeStatement struct {
	StartDate         time.Time        `json:"startDate"`
	EndDate           time.Time        `json:"endDate"`
	Revenue           StatementSection `json:"revenue"`
	ContraRevenue     StatementSection `json:"contraRevenue"`
	NetSales          decimal.Decimal  `json:"netSales"`
	CostOfGoodsSold   StatementSection `json:"costOfGoodsSold"`
	GrossProfit       decimal.Decimal  `json:"grossProfit"`
	OperatingExpenses StatementSection `json:"operatingExpenses"`
	OperatingProfit   decimal.Decimal  `json:"operatingProfit"`
	OtherIncome       StatementSection `json:"otherIncome"`
	ProfitBeforeTax   decimal.Decimal  `json:"profitBeforeTax"`
	TaxExpense        StatementSection `json:"taxExpense"`
	NetIncome         decimal.Decimal  `json:"netIncome"`
}

// BalanceSheet is the statement of financial position at a point in time.
type BalanceSheet struct {
	AsOfDate               time.Time        `json:"asOfDate"`
	CurrentAssets          StatementSection `json:"currentAssets"`
	FixedAssets            StatementSection `json:"fixedAssets"`
	OtherAssets            StatementSection `json:"otherAssets"`
	TotalAssets            decimal.Decimal  `json:"totalAssets"`
	CurrentLiabilities     StatementSection `json:"currentLiabilities"`
	LongTermLiabilities    StatementSection `json:"longTermLiabilities"`
	TotalLiabilities       decimal.Decimal  `json:"totalLiabilities"`
	Equity                 StatementSection `json:"equity"`
	TotalEquity            decimal.Decimal  `json:"totalEquity"`
	InventoryAdjustment    decimal.Decimal  `json:"inventoryValuationAdjustment"`
	TotalLiabilitiesEquity decimal.Decimal  `json:"totalLiabilitiesAndEquity"`
}

// CashFlowBucket is one named receipt or payment category.
type CashFlowBucket struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlowActivity groups the buckets of one activity (operating, investing, financing).
type CashFlowActivity struct {
	Receipts []CashFlowBucket `json:"receipts"`
	Payments []CashFlowBucket `json:"payments"`
	Net      decimal.Decimal  `json:"net"`
}

// CashFlowStatement is the direct-method statement of cash flows.
type CashFlowStatement struct {
	StartDate     time.Time        `json:"startDate"`
	EndDate       time.Time        `json:"endDate"`
	Operating     CashFlowActivity `json:"operating"`
	Investing     CashFlowActivity `json:"investing"`
	Financing     CashFlowActivity `json:"financing"`
	NetChange     decimal.Decimal  `json:"netChange"`
	BeginningCash decimal.Decimal  `json:"beginningCash"`
	EndingCash    decimal.Decimal  `json:"endingCash"`
}

// Variance compares one figure across two periods.
type Variance struct {
	Current            decimal.Decimal `json:"current"`
	Prior              decimal.Decimal `json:"prior"`
	Variance           decimal.Decimal `json:"variance"`
	VariancePercentage decimal.Decimal `json:"variancePercentage"`
}

// NewVariance computes current-prior and its percentage of |prior| (zero when prior is zero).
func NewVariance(current, prior decimal.Decimal) Variance {
	v := Variance{Current: current, Prior: prior, Variance: current.Sub(prior), VariancePercentage: decimal.Zero}
	if !prior.IsZero() {
		v.VariancePercentage = v.Variance.Div(prior.Abs()).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return v
}

// ComparativeIncomeStatement pairs two income statements with headline variances.
type ComparativeIncomeStatement struct {
	Current   IncomeStatement     `json:"current"`
	Prior     IncomeStatement     `json:"prior"`
	Variances map[string]Variance `json:"variances"`
}

// ComparativeBalanceSheet pairs two balance sheets with headline variances.
type ComparativeBalanceSheet struct {
	Current   BalanceSheet        `json:"current"`
	Prior     BalanceSheet        `json:"prior"`
	Variances map[string]Variance `json:"variances"`
}

// ComparativeCashFlow pairs two cash flow statements with headline variances.
type ComparativeCashFlow struct {
	Current   CashFlowStatement   `json:"current"`
	Prior     CashFlowStatement   `json:"prior"`
	Variances map[string]Variance `json:"variances"`
}
