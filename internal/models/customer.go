package models

import "database/sql"

// Customer is the customers table row.
type Customer struct {
	CustomerID int64          `db:"customer_id"`
	Name       string         `db:"name"`
	NationalID string         `db:"national_id"`
	Contact    sql.NullString `db:"contact"`
	AuditFields
}
