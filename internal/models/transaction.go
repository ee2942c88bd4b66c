package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

// TransactionStatus mirrors domain.TransactionStatus at the storage layer.
type TransactionStatus string

// Transaction is the DB representation of a monetary event.
// Rows are append-only; nothing updates them after insert.
type Transaction struct {
	TransactionID   string            `db:"transaction_id"`
	AccountID       string            `db:"account_id"`
	Type            TransactionType   `db:"type"`
	Amount          decimal.Decimal   `db:"amount"`
	Description     string            `db:"description"`
	Reference       string            `db:"reference"`
	TransactionDate time.Time         `db:"transaction_date"`
	Status          TransactionStatus `db:"status"`
}
