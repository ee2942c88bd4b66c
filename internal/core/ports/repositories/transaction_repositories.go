package repositories

import (
	"context"

	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves at most limit transactions for an
	// account, ordered by transaction date descending (ties broken by id
	// descending).
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction atomically applies balanceDelta to the transaction's
	// account and inserts the transaction record. The account row is locked
	// for the duration of the write, so concurrent executes against the same
	// account are serialized; a delta that would take the locked balance
	// negative yields ErrInsufficientFunds and writes nothing.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
