package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies a bank account product.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
	Credit   AccountType = "CREDIT"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountClosed   AccountStatus = "CLOSED"
	AccountBlocked  AccountStatus = "BLOCKED"
)

// Account represents a single bank account held by one user.
// This is the primary representation used by services.
//
// The owner identity (UserID, UserDNI, UserPhoneNumber) is denormalized onto
// every account; there is no separate user collection.
type Account struct {
	AccountID       string          `json:"id"`            // Primary key (UUID), assigned on create
	AccountNumber   string          `json:"accountNumber"` // Globally unique
	AccountType     AccountType     `json:"accountType"`
	Balance         decimal.Decimal `json:"balance"` // Arbitrary precision, never binary float
	Currency        string          `json:"currency"` // ISO-4217, 3 letters
	UserID          string          `json:"userId"`
	UserDNI         string          `json:"userDni"`
	UserPhoneNumber string          `json:"userPhoneNumber"`
	Status          AccountStatus   `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"` // Immutable after first persist
	UpdatedAt       time.Time       `json:"updatedAt"` // Refreshed on every mutation
}
