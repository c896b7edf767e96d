package domain

// DefaultChart returns the standard retail chart of accounts seeded on first start.
// Accounts bound to a default role are flagged as system accounts. Parents are
// listed before their children; see DefaultChartParents.
func DefaultChart() []Account {
	std := func(number, name string, t AccountType, subType string, bt BalanceType, description string) Account {
		return Account{AccountNumber: number, AccountName: name, AccountType: t, SubType: subType, BalanceType: bt, Description: description, IsActive: true}
	}
	system := func(number, name string, t AccountType, subType string, bt BalanceType, description string) Account {
		a := std(number, name, t, subType, bt, description)
		a.IsSystemAccount = true
		return a
	}
	return []Account{
		system("1000", "Cash", Asset, "Current Asset", DebitBalance, "Cash on hand and in bank accounts"),
		std("1010", "Petty Cash", Asset, "Current Asset", DebitBalance, "Small cash fund"),
		system("1020", "Checking Account", Asset, "Current Asset", DebitBalance, "Primary business checking"),
		system("1100", "Accounts Receivable", Asset, "Current Asset", DebitBalance, "Amounts owed by customers"),
		system("1200", "Inventory", Asset, "Current Asset", DebitBalance, "Merchandise for sale"),
		std("1300", "Prepaid Expenses", Asset, "Current Asset", DebitBalance, "Prepaid insurance, rent"),
		std("1350", "Short-Term Investments", Asset, "Current Asset", DebitBalance, "Short-term investments"),
		std("1400", "Loans Receivable", Asset, "Other Asset", DebitBalance, "Loans made to other entities"),
		std("1450", "Long-Term Investments", Asset, "Fixed Asset", DebitBalance, "Long-term investments"),
		std("1500", "Property, Plant and Equipment", Asset, "Fixed Asset", DebitBalance, "Property, plant and equipment"),
		std("1510", "Office Equipment", Asset, "Fixed Asset", DebitBalance, "Office equipment"),
		std("1520", "Accumulated Depreciation", Asset, "Fixed Asset", CreditBalance, "Less accumulated depreciation"),
		std("1530", "Furniture & Fixture", Asset, "Fixed Asset", DebitBalance, "Furniture and fixtures"),
		std("1540", "Computer", Asset, "Fixed Asset", DebitBalance, "Computer equipment"),
		std("1550", "Company Vehicle", Asset, "Fixed Asset", DebitBalance, "Company vehicles"),
		std("1600", "Intangible Assets", Asset, "Fixed Asset", DebitBalance, "Intangible assets"),
		std("1700", "Deferred Income Tax", Asset, "Other Asset", DebitBalance, "Deferred income tax asset"),
		std("1800", "Other Assets", Asset, "Other Asset", DebitBalance, "Other non-current assets"),
		system("2000", "Accounts Payable", Liability, "Current Liability", CreditBalance, "Amounts owed to vendors"),
		std("2020", "Accrued Salaries and Wages", Liability, "Current Liability", CreditBalance, "Accrued salaries and wages"),
		system("2040", "Sales Tax Payable", Liability, "Current Liability", CreditBalance, "Sales tax collected and owed"),
		std("2050", "Income Taxes Payable", Liability, "Current Liability", CreditBalance, "Income taxes payable"),
		std("2100", "Short-term Loans", Liability, "Current Liability", CreditBalance, "Short-term loans"),
		system("2110", "Store Credit Liability", Liability, "Current Liability", CreditBalance, "Store credit owed to customers"),
		std("2120", "Current Portion of Long-Term Debt", Liability, "Current Liability", CreditBalance, "Current portion of long-term debt"),
		std("2300", "Unearned Revenue", Liability, "Current Liability", CreditBalance, "Unearned revenue / customer deposits"),
		std("2500", "Long-Term Debt", Liability, "Long-term Liability", CreditBalance, "Long-term debt"),
		std("2590", "Other Long-Term Liabilities", Liability, "Long-term Liability", CreditBalance, "Other long-term liabilities"),
		std("2600", "Deferred Income Tax", Liability, "Long-term Liability", CreditBalance, "Deferred income tax liability"),
		system("3000", "Owner's Equity", Equity, "Equity", CreditBalance, "Owner capital investment"),
		std("3100", "Owner's Investment", Equity, "Equity", CreditBalance, "Owner's capital investment"),
		std("3200", "Treasury Stock", Equity, "Contra Equity", DebitBalance, "Repurchase of stock (treasury stock)"),
		system("3300", "Retained Earnings", Equity, "Equity", CreditBalance, "Accumulated profits"),
		std("3310", "Dividends", Equity, "Equity", DebitBalance, "Dividends declared and paid"),
		std("3700", "Other Equity", Equity, "Equity", CreditBalance, "Other equity"),
		system("4000", "Sales Revenue", Revenue, "Operating Revenue", CreditBalance, "Revenue from product sales"),
		system("4010", "Sales Return", ContraRevenue, "Contra Revenue", DebitBalance, "Sales returns and refunds"),
		std("4020", "Discounts and Allowances", ContraRevenue, "Contra Revenue", DebitBalance, "Discounts and allowances"),
		system("4100", "Other Income", OtherIncome, "Other Income", CreditBalance, "Miscellaneous income"),
		std("4110", "Interest Income", OtherIncome, "Other Income", CreditBalance, "Interest income"),
		system("5000", "Cost of Goods Sold", COGS, "Cost of Sales", DebitBalance, "Direct costs of products sold (materials)"),
		std("5010", "Labor", COGS, "Cost of Sales", DebitBalance, "Labor cost of goods sold"),
		std("5020", "Overhead", COGS, "Cost of Sales", DebitBalance, "Overhead cost of goods sold"),
		system("5100", "Operating Expenses", Expense, "Operating Expense", DebitBalance, "General operating expenses"),
		std("5110", "Wages", Expense, "Operating Expense", DebitBalance, "Wages and salaries"),
		std("5120", "Advertising", Expense, "Operating Expense", DebitBalance, "Advertising expense"),
		std("5130", "Repairs & Maintenance", Expense, "Operating Expense", DebitBalance, "Repairs and maintenance"),
		std("5140", "Travel", Expense, "Operating Expense", DebitBalance, "Travel expense"),
		std("5150", "Rent/Lease", Expense, "Operating Expense", DebitBalance, "Rent and lease expense"),
		std("5160", "Delivery/Freight Expense", Expense, "Operating Expense", DebitBalance, "Delivery and freight"),
		std("5170", "Utilities/Telephone Expenses", Expense, "Operating Expense", DebitBalance, "Utilities and telephone"),
		std("5180", "Insurance", Expense, "Operating Expense", DebitBalance, "Insurance expense"),
		std("5190", "Mileage", Expense, "Operating Expense", DebitBalance, "Vehicle mileage expense"),
		std("5200", "Office Supplies", Expense, "Operating Expense", DebitBalance, "Office supplies"),
		std("5210", "Depreciation", Expense, "Operating Expense", DebitBalance, "Depreciation expense"),
		std("5220", "Interest", Expense, "Operating Expense", DebitBalance, "Interest expense"),
		std("5290", "Other Expenses", Expense, "Operating Expense", DebitBalance, "Other operating expenses"),
		std("6000", "Tax Expense", Expense, "Tax", DebitBalance, "Income tax expense"),
	}
}

// DefaultChartParents maps a default chart account number to its parent's number.
func DefaultChartParents() map[string]string {
	parents := map[string]string{
		"1010": "1000",
		"1020": "1000",
		"3100": "3000",
		"3310": "3300",
		"4020": "4010",
		"5010": "5000",
		"5020": "5000",
	}
	for _, n := range []string{"1510", "1520", "1530", "1540", "1550"} {
		parents[n] = "1500"
	}
	for _, n := range []string{"5110", "5120", "5130", "5140", "5150", "5160", "5170", "5180", "5190", "5200", "5210", "5220", "5290"} {
		parents[n] = "5100"
	}
	return parents
}
