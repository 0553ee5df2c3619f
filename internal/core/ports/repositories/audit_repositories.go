package repositories

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
)

// AuditReader defines read operations for the audit log
type AuditReader interface {
	// ListAuditRecords returns at most limit records, most recent first.
	ListAuditRecords(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

// AuditWriter appends to the audit log. There is no update or delete.
type AuditWriter interface {
	AppendAuditRecord(ctx context.Context, record domain.AuditRecord) (*domain.AuditRecord, error)
}

// AuditRepositoryFacade combines all audit-related repository interfaces
type AuditRepositoryFacade interface {
	AuditReader
	AuditWriter
}
