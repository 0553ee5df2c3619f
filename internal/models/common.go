package models

import "time"

// AuditFields holds the row creation timestamp.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
}
