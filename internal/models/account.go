package models

import (
	"github.com/shopspring/decimal"
)

// Account is the accounts table row.
type Account struct {
	AccountNo   int64           `db:"account_no"`
	CustomerID  int64           `db:"customer_id"`
	AccountType string          `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	Status      string          `db:"status"`
	AuditFields
}

// AccountWithOwner is an accounts row joined with customers.name.
type AccountWithOwner struct {
	Account
	OwnerName string `db:"owner_name"`
}
