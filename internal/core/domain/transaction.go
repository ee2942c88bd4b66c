package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of monetary event kinds.
// Only kinds with an entry in the balance rule table (utils/banking) are
// executable; the rest are rejected at execution time.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Transfer   TransactionType = "TRANSFER"
	Payment    TransactionType = "PAYMENT"
	Fee        TransactionType = "FEE"
	Interest   TransactionType = "INTEREST"
)

// TransactionStatus is the lifecycle state of a transaction record.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "PENDING"
	TransactionCompleted  TransactionStatus = "COMPLETED"
	TransactionFailed     TransactionStatus = "FAILED"
	TransactionCancelled  TransactionStatus = "CANCELLED"
	TransactionProcessing TransactionStatus = "PROCESSING"
)

// Transaction represents one monetary event applied to exactly one account.
// Records are never mutated after insertion.
type Transaction struct {
	TransactionID   string            `json:"id"`        // Primary key (UUID), assigned on create
	AccountID       string            `json:"accountId"` // FK -> Account.AccountID
	Type            TransactionType   `json:"type"`
	Amount          decimal.Decimal   `json:"amount"` // Strictly positive
	Description     string            `json:"description"`
	Reference       string            `json:"reference"`
	TransactionDate time.Time         `json:"transactionDate"` // Set by the executor
	Status          TransactionStatus `json:"status"`
}
