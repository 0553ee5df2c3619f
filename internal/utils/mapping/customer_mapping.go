package mapping

import (
	"database/sql"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer.
// An empty contact is stored as NULL.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		NationalID:  d.NationalID,
		Contact:     sql.NullString{String: d.Contact, Valid: d.Contact != ""},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		NationalID:  m.NationalID,
		Contact:     m.Contact.String,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
