package mapping

import (
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
)

func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	return models.AuditRecord{
		AuditID:     d.AuditID,
		Operation:   d.Operation,
		Subject:     d.Subject,
		Details:     d.Details,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainAuditRecord(m models.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		AuditID:     m.AuditID,
		Operation:   m.Operation,
		Subject:     m.Subject,
		Details:     m.Details,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
