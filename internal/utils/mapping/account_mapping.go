package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:          d.AccountID,
		AccountNumber:      d.AccountNumber,
		AccountName:        d.AccountName,
		AccountType:        string(d.AccountType),
		SubType:            NullString(d.SubType),
		ParentAccountID:    NullString(d.ParentAccountID),
		BalanceType:        string(d.BalanceType),
		Description:        NullString(d.Description),
		IsActive:           d.IsActive,
		IsSystemAccount:    d.IsSystemAccount,
		OpeningBalance:     d.OpeningBalance,
		OpeningBalanceDate: NullTime(d.OpeningBalanceDate),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:          m.AccountID,
		AccountNumber:      m.AccountNumber,
		AccountName:        m.AccountName,
		AccountType:        domain.AccountType(m.AccountType),
		SubType:            m.SubType.String,
		ParentAccountID:    m.ParentAccountID.String,
		BalanceType:        domain.BalanceType(m.BalanceType),
		Description:        m.Description.String,
		IsActive:           m.IsActive,
		IsSystemAccount:    m.IsSystemAccount,
		OpeningBalance:     m.OpeningBalance,
		OpeningBalanceDate: TimePtr(m.OpeningBalanceDate),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
