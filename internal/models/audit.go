package models

// AuditRecord is the audit_log table row.
type AuditRecord struct {
	AuditID   int64  `db:"audit_id"`
	Operation string `db:"operation"`
	Subject   string `db:"subject"`
	Details   string `db:"details"`
	AuditFields
}
