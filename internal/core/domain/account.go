package domain

import (
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle status of an account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

// DefaultAccountType is applied when an account is opened without a type.
const DefaultAccountType = "Savings"

// Account represents a customer account and its current balance.
type Account struct {
	AccountNo   int64           `json:"accountNo"`
	CustomerID  int64           `json:"customerId"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Status      AccountStatus   `json:"status"`
	AuditFields
}

// IsActive reports whether the account may be mutated.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}

// AccountWithOwner is an account annotated with its owner's name, as shown in listings.
type AccountWithOwner struct {
	Account
	OwnerName string `json:"ownerName"`
}
