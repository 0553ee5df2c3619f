package dto

import (
	"time"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/samber/lo"
)

// ListAuditParams defines query parameters for the audit history.
type ListAuditParams struct {
	Limit int `form:"limit" binding:"min=0"`
}

// AuditRecordResponse defines the data returned for an audit record.
type AuditRecordResponse struct {
	AuditID   int64     `json:"auditId"`
	Operation string    `json:"operation"`
	Subject   string    `json:"subject"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToListAuditResponse converts audit records to AuditRecordResponse DTOs, keeping their order.
func ToListAuditResponse(records []domain.AuditRecord) []AuditRecordResponse {
	return lo.Map(records, func(r domain.AuditRecord, _ int) AuditRecordResponse {
		return AuditRecordResponse{
			AuditID:   r.AuditID,
			Operation: r.Operation,
			Subject:   r.Subject,
			Details:   r.Details,
			CreatedAt: r.CreatedAt,
		}
	})
}
