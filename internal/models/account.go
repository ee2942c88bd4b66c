package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// AccountStatus mirrors domain.AccountStatus at the storage layer.
type AccountStatus string

// Account is the DB representation of a bank account.
type Account struct {
	AccountID       string          `db:"account_id"`
	AccountNumber   string          `db:"account_number"` // Unique index
	AccountType     AccountType     `db:"account_type"`
	Balance         decimal.Decimal `db:"balance"`
	Currency        string          `db:"currency"`
	UserID          string          `db:"user_id"`
	UserDNI         string          `db:"user_dni"`
	UserPhoneNumber string          `db:"user_phone_number"`
	Status          AccountStatus   `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
