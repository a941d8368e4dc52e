package domain

import (
	"github.com/shopspring/decimal"
)

// AccountStatus indicates whether an account is visible to operations.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// Account represents a bank account row in the account table.
// This is the primary representation used by services.
type Account struct {
	AccountNumber string          `json:"accountNumber"` // Primary key, assigned at provisioning
	HolderName    string          `json:"holderName"`    // Display name, mutated only administratively
	Balance       decimal.Decimal `json:"balance"`       // Mutated only through a validated transaction operation
	Status        AccountStatus   `json:"status"`        // Inactive accounts are treated as not found
}

// IsActive reports whether the account is visible to transaction operations.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}
