package services

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
)

// AuditSvc exposes the audit trail read-only.
type AuditSvc interface {
	// ListAuditRecords returns the most recent records first. A non-positive
	// limit selects the default; limits above the configured maximum are clamped.
	ListAuditRecords(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}
