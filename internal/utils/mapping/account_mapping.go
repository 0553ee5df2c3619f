package mapping

import (
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountNo:   d.AccountNo,
		CustomerID:  d.CustomerID,
		AccountType: d.AccountType,
		Balance:     d.Balance,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountNo:   m.AccountNo,
		CustomerID:  m.CustomerID,
		AccountType: m.AccountType,
		Balance:     m.Balance,
		Status:      domain.AccountStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountWithOwner converts a joined account row
func ToDomainAccountWithOwner(m models.AccountWithOwner) domain.AccountWithOwner {
	return domain.AccountWithOwner{
		Account:   ToDomainAccount(m.Account),
		OwnerName: m.OwnerName,
	}
}
