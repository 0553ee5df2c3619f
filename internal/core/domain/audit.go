package domain

// Audit operations.
const (
	OpAddCustomer   = "ADD CUSTOMER"
	OpCreateAccount = "CREATE ACCOUNT"
	OpDeposit       = "DEPOSIT"
	OpWithdraw      = "WITHDRAW"
	OpTransfer      = "TRANSFER"
)

// Audit subjects.
const (
	SubjectCustomer = "Customer"
	SubjectAccount  = "Account"
)

// AuditRecord documents one committed mutation. Records are append-only.
type AuditRecord struct {
	AuditID   int64  `json:"auditId"`
	Operation string `json:"operation"`
	Subject   string `json:"subject"`
	Details   string `json:"details"`
	AuditFields
}

// String renders the record the way it reads in the audit trail, e.g. "DEPOSIT +1000 → Account 1".
func (r AuditRecord) String() string {
	return r.Operation + " " + r.Details
}
