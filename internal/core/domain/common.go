package domain

import "time"

// AuditFields holds the creation timestamp shared by persisted entities.
// Customers, accounts and audit records are never updated in place, so
// there is no last-updated pair.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
}

// OperationState traces a mutating request through the transaction engine.
type OperationState string

const (
	StateValidated  OperationState = "VALIDATED"
	StateApplied    OperationState = "APPLIED"
	StateAudited    OperationState = "AUDITED"
	StateCommitted  OperationState = "COMMITTED"
	StateRejected   OperationState = "REJECTED"
	StateRolledBack OperationState = "ROLLED_BACK"
)
