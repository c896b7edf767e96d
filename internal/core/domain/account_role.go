package domain

// AccountRole is a logical ledger role that journalizing code posts against.
type AccountRole string

const (
	RoleCash                 AccountRole = "CASH"
	RoleCardClearing         AccountRole = "CARD_CLEARING"
	RoleInventory            AccountRole = "INVENTORY"
	RoleAccountsPayable      AccountRole = "ACCOUNTS_PAYABLE"
	RoleAccountsReceivable   AccountRole = "ACCOUNTS_RECEIVABLE"
	RoleSalesTaxPayable      AccountRole = "SALES_TAX_PAYABLE"
	RoleStoreCreditLiability AccountRole = "STORE_CREDIT_LIABILITY"
	RoleOwnerEquity          AccountRole = "OWNER_EQUITY"
	RoleSalesRevenue         AccountRole = "SALES_REVENUE"
	RoleSalesReturns         AccountRole = "SALES_RETURNS"
	RoleOtherIncome          AccountRole = "OTHER_INCOME"
	RoleCOGS                 AccountRole = "COGS"
	RoleOperatingExpense     AccountRole = "OPERATING_EXPENSE"
)

// AccountRoles lists every role that must be bound to an account number.
var AccountRoles = []AccountRole{
	RoleCash, RoleCardClearing, RoleInventory, RoleAccountsPayable, RoleAccountsReceivable, RoleSalesTaxPayable,
	RoleStoreCreditLiability, RoleOwnerEquity, RoleSalesRevenue, RoleSalesReturns,
	RoleOtherIncome, RoleCOGS, RoleOperatingExpense,
}

// DefaultRoleAccountNumbers binds each role to the seeded retail chart.
var DefaultRoleAccountNumbers = map[AccountRole]string{
	RoleCash:                 "1000",
	RoleCardClearing:         "1100",
	RoleInventory:            "1200",
	RoleAccountsPayable:      "2000",
	RoleAccountsReceivable:   "1100",
	RoleSalesTaxPayable:      "2040",
	RoleStoreCreditLiability: "2110",
	RoleOwnerEquity:          "3000",
	RoleSalesRevenue:         "4000",
	RoleSalesReturns:         "4010",
	RoleOtherIncome:          "4100",
	RoleCOGS:                 "5000",
	RoleOperatingExpense:     "5100",
}

// RoleAccountNumbers maps roles to configured account numbers.
type RoleAccountNumbers map[AccountRole]string

// Number returns the configured account number for role, falling back to the default.
func (m RoleAccountNumbers) Number(role AccountRole) string {
	if n, ok := m[role]; ok && n != "" {
		return n
	}
	return DefaultRoleAccountNumbers[role]
}
