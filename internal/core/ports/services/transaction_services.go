package services

import (
	"context"

	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	"github.com/banking-whatsapp/accounts-service/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves the most recent transactions for an
	// account in descending date order. The account must exist.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error)
}

// TransactionExecutorSvc is the core mutator: it validates the account,
// applies the balance rule for the transaction kind, and persists both the
// account mutation and the transaction record.
type TransactionExecutorSvc interface {
	// CreateTransaction executes a transaction request and returns the
	// persisted COMPLETED record.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionExecutorSvc
}
