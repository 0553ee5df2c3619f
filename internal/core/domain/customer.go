package domain

// Customer is a bank customer identified by a unique national ID (CNIC).
type Customer struct {
	CustomerID int64  `json:"customerId"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	Contact    string `json:"contact"`
	AuditFields
}
