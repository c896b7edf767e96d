package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID          string          `db:"account_id"`
	AccountNumber      string          `db:"account_number"`
	AccountName        string          `db:"account_name"`
	AccountType        string          `db:"account_type"`
	SubType            sql.NullString  `db:"sub_type"`
	ParentAccountID    sql.NullString  `db:"parent_account_id"`
	BalanceType        string          `db:"balance_type"`
	Description        sql.NullString  `db:"description"`
	IsActive           bool            `db:"is_active"`
	IsSystemAccount    bool            `db:"is_system_account"`
	OpeningBalance     decimal.Decimal `db:"opening_balance"`
	OpeningBalanceDate sql.NullTime    `db:"opening_balance_date"`
	AuditFields
}
