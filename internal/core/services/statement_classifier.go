package services

import (
	"strings"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// BalanceSheetSection is where an account is presented on the balance sheet.
type BalanceSheetSection int

const (
	SectionNone BalanceSheetSection = iota
	SectionCurrentAssets
	SectionFixedAssets
	SectionOtherAssets
	SectionCurrentLiabilities
	SectionLongTermLiabilities
	SectionEquity
)

// CashFlowActivityKind is one of the three direct-method activities.
type CashFlowActivityKind int

const (
	ActivityOperating CashFlowActivityKind = iota
	ActivityInvesting
	ActivityFinancing
)

// CashFlowCategory names the bucket a cash movement is reported under.
type CashFlowCategory struct {
	Activity CashFlowActivityKind
	Bucket   string
}

// StatementClassifier decides how accounts are grouped on the statements.
type StatementClassifier interface {
	BalanceSheetSection(a domain.Account) BalanceSheetSection
	IsContraAsset(a domain.Account) bool
	IsTaxExpense(a domain.Account) bool
	IsCashAccount(a domain.Account) bool
	// CashFlowCategory classifies the counterpart account of a cash movement.
	// receipt is true when cash increased. ok is false for unclassifiable accounts.
	CashFlowCategory(counterpart domain.Account, receipt bool) (category CashFlowCategory, ok bool)
}

// Cash flow buckets in presentation order.
const (
	BucketCustomers            = "Customers"
	BucketInterestReceived     = "Interest received"
	BucketOtherOperatingIn     = "Other operating receipts"
	BucketInventoryPurchases   = "Inventory purchases"
	BucketSuppliers            = "Suppliers and operating expenses"
	BucketWages                = "Wage expenses"
	BucketRent                 = "Rent"
	BucketInterestPaid         = "Interest paid"
	BucketIncomeTaxes          = "Income taxes"
	BucketSalesTaxRemitted     = "Sales tax remitted"
	BucketCustomerRefunds      = "Customer refunds"
	BucketSaleOfFixedAssets    = "Sale of fixed assets"
	BucketSaleOfInvestments    = "Sale of investments"
	BucketCollectionOfLoans    = "Collection of loans"
	BucketPurchaseFixedAssets  = "Purchase of fixed assets"
	BucketPurchaseInvestments  = "Purchase of investments"
	BucketLoansMade            = "Loans made"
	BucketProceedsFromLoans    = "Proceeds from loans"
	BucketOwnerContributions   = "Owner contributions"
	BucketRepaymentOfLoans     = "Repayment of loans"
	BucketOwnerWithdrawals     = "Owner withdrawals"
	BucketDividendsPaid        = "Dividends paid"
	BucketTreasuryStockBuyback = "Purchase of treasury stock"
)

// CashFlowReceiptBuckets and CashFlowPaymentBuckets fix the presentation order per activity.
var (
	CashFlowReceiptBuckets = map[CashFlowActivityKind][]string{
		ActivityOperating: {BucketCustomers, BucketInterestReceived, BucketOtherOperatingIn},
		ActivityInvesting: {BucketSaleOfFixedAssets, BucketSaleOfInvestments, BucketCollectionOfLoans},
		ActivityFinancing: {BucketProceedsFromLoans, BucketOwnerContributions},
	}
	CashFlowPaymentBuckets = map[CashFlowActivityKind][]string{
		ActivityOperating: {BucketInventoryPurchases, BucketSuppliers, BucketWages, BucketRent,
			BucketInterestPaid, BucketIncomeTaxes, BucketSalesTaxRemitted, BucketCustomerRefunds},
		ActivityInvesting: {BucketPurchaseFixedAssets, BucketPurchaseInvestments, BucketLoansMade},
		ActivityFinancing: {BucketRepaymentOfLoans, BucketOwnerWithdrawals, BucketDividendsPaid, BucketTreasuryStockBuyback},
	}
)

func operating(bucket string) CashFlowCategory { return CashFlowCategory{ActivityOperating, bucket} }
func investing(bucket string) CashFlowCategory { return CashFlowCategory{ActivityInvesting, bucket} }
func financing(bucket string) CashFlowCategory { return CashFlowCategory{ActivityFinancing, bucket} }

var cashFlowReceipts = map[string]CashFlowCategory{
	"1100": operating(BucketCustomers),
	"2110": operating(BucketCustomers),
	"2300": operating(BucketCustomers),
	"4000": operating(BucketCustomers),
	"4010": operating(BucketCustomers),
	"4020": operating(BucketCustomers),
	"2040": operating(BucketCustomers),
	"4110": operating(BucketInterestReceived),
	"4100": operating(BucketOtherOperatingIn),
	"1300": operating(BucketOtherOperatingIn),

	"1500": investing(BucketSaleOfFixedAssets),
	"1510": investing(BucketSaleOfFixedAssets),
	"1530": investing(BucketSaleOfFixedAssets),
	"1540": investing(BucketSaleOfFixedAssets),
	"1550": investing(BucketSaleOfFixedAssets),
	"1600": investing(BucketSaleOfFixedAssets),
	"1350": investing(BucketSaleOfInvestments),
	"1450": investing(BucketSaleOfInvestments),
	"1400": investing(BucketCollectionOfLoans),

	"2100": financing(BucketProceedsFromLoans),
	"2120": financing(BucketProceedsFromLoans),
	"2500": financing(BucketProceedsFromLoans),
	"2590": financing(BucketProceedsFromLoans),
	"3000": financing(BucketOwnerContributions),
	"3100": financing(BucketOwnerContributions),
	"3700": financing(BucketOwnerContributions),
}

var cashFlowPayments = map[string]CashFlowCategory{
	"1200": operating(BucketInventoryPurchases),
	"5000": operating(BucketInventoryPurchases),
	"5020": operating(BucketInventoryPurchases),
	"2000": operating(BucketSuppliers),
	"1300": operating(BucketSuppliers),
	"5100": operating(BucketSuppliers),
	"5120": operating(BucketSuppliers),
	"5130": operating(BucketSuppliers),
	"5140": operating(BucketSuppliers),
	"5160": operating(BucketSuppliers),
	"5170": operating(BucketSuppliers),
	"5180": operating(BucketSuppliers),
	"5190": operating(BucketSuppliers),
	"5200": operating(BucketSuppliers),
	"5290": operating(BucketSuppliers),
	"2020": operating(BucketWages),
	"5010": operating(BucketWages),
	"5110": operating(BucketWages),
	"5150": operating(BucketRent),
	"5220": operating(BucketInterestPaid),
	"2050": operating(BucketIncomeTaxes),
	"6000": operating(BucketIncomeTaxes),
	"2040": operating(BucketSalesTaxRemitted),
	"4000": operating(BucketCustomerRefunds),
	"4010": operating(BucketCustomerRefunds),
	"4020": operating(BucketCustomerRefunds),
	"2110": operating(BucketCustomerRefunds),

	"1500": investing(BucketPurchaseFixedAssets),
	"1510": investing(BucketPurchaseFixedAssets),
	"1530": investing(BucketPurchaseFixedAssets),
	"1540": investing(BucketPurchaseFixedAssets),
	"1550": investing(BucketPurchaseFixedAssets),
	"1600": investing(BucketPurchaseFixedAssets),
	"1350": investing(BucketPurchaseInvestments),
	"1450": investing(BucketPurchaseInvestments),
	"1400": investing(BucketLoansMade),

	"2100": financing(BucketRepaymentOfLoans),
	"2120": financing(BucketRepaymentOfLoans),
	"2500": financing(BucketRepaymentOfLoans),
	"2590": financing(BucketRepaymentOfLoans),
	"3000": financing(BucketOwnerWithdrawals),
	"3100": financing(BucketOwnerWithdrawals),
	"3700": financing(BucketOwnerWithdrawals),
	"3310": financing(BucketDividendsPaid),
	"3200": financing(BucketTreasuryStockBuyback),
}

// HeuristicClassifier infers presentation from account numbers, sub types and names.
// Accounts outside the seeded chart are matched by keyword, which is inherently fuzzy.
type HeuristicClassifier struct{}

var _ StatementClassifier = HeuristicClassifier{}

func classifierText(a domain.Account) (subType, all string) {
	subType = strings.ToLower(a.SubType)
	return subType, subType + " " + strings.ToLower(a.AccountName)
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func (HeuristicClassifier) BalanceSheetSection(a domain.Account) BalanceSheetSection {
	subType, text := classifierText(a)
	switch a.AccountType {
	case domain.Asset:
		switch {
		case containsAny(subType, "fixed"):
			return SectionFixedAssets
		case containsAny(subType, "other", "non-current", "noncurrent"):
			return SectionOtherAssets
		case containsAny(subType, "current"):
			return SectionCurrentAssets
		case containsAny(text, "fixed", "equipment", "depreciat", "property", "vehicle", "furniture", "building"):
			return SectionFixedAssets
		case containsAny(text, "cash", "bank", "receivable", "inventory", "prepaid", "clearing"):
			return SectionCurrentAssets
		}
		return SectionOtherAssets
	case domain.Liability:
		switch {
		case containsAny(subType, "long", "non-current", "noncurrent"):
			return SectionLongTermLiabilities
		case containsAny(subType, "current"):
			return SectionCurrentLiabilities
		case containsAny(text, "long-term", "long term", "mortgage", "notes payable", "deferred"):
			return SectionLongTermLiabilities
		}
		return SectionCurrentLiabilities
	case domain.Equity:
		return SectionEquity
	}
	return SectionNone
}

func (HeuristicClassifier) IsContraAsset(a domain.Account) bool {
	_, text := classifierText(a)
	return a.AccountType == domain.Asset && a.BalanceType == domain.CreditBalance && containsAny(text, "depreciat", "amortiz")
}

func (HeuristicClassifier) IsTaxExpense(a domain.Account) bool {
	subType, text := classifierText(a)
	if a.AccountType != domain.Expense {
		return false
	}
	return subType == "tax" || containsAny(text, "income tax", "tax expense")
}

func (HeuristicClassifier) IsCashAccount(a domain.Account) bool {
	if a.AccountType != domain.Asset {
		return false
	}
	_, text := classifierText(a)
	return containsAny(text, "cash", "checking", "savings", "bank") && !containsAny(text, "clearing", "receivable")
}

func (c HeuristicClassifier) CashFlowCategory(counterpart domain.Account, receipt bool) (CashFlowCategory, bool) {
	table := cashFlowPayments
	if receipt {
		table = cashFlowReceipts
	}
	if cat, ok := table[counterpart.AccountNumber]; ok {
		return cat, true
	}

	// Accounts added after seeding fall back to their type.
	switch counterpart.AccountType {
	case domain.Revenue, domain.ContraRevenue:
		if receipt {
			return operating(BucketCustomers), true
		}
		return operating(BucketCustomerRefunds), true
	case domain.OtherIncome:
		if receipt {
			return operating(BucketOtherOperatingIn), true
		}
	case domain.COGS:
		if !receipt {
			return operating(BucketInventoryPurchases), true
		}
	case domain.Expense:
		if !receipt {
			_, text := classifierText(counterpart)
			switch {
			case containsAny(text, "wage", "salar", "payroll"):
				return operating(BucketWages), true
			case containsAny(text, "rent", "lease"):
				return operating(BucketRent), true
			case c.IsTaxExpense(counterpart):
				return operating(BucketIncomeTaxes), true
			}
			return operating(BucketSuppliers), true
		}
	case domain.Asset:
		if c.BalanceSheetSection(counterpart) == SectionFixedAssets {
			if receipt {
				return investing(BucketSaleOfFixedAssets), true
			}
			return investing(BucketPurchaseFixedAssets), true
		}
	case domain.Liability:
		if c.BalanceSheetSection(counterpart) == SectionLongTermLiabilities {
			if receipt {
				return financing(BucketProceedsFromLoans), true
			}
			return financing(BucketRepaymentOfLoans), true
		}
	case domain.Equity:
		if receipt {
			return financing(BucketOwnerContributions), true
		}
		return financing(BucketOwnerWithdrawals), true
	}
	return CashFlowCategory{}, false
}
