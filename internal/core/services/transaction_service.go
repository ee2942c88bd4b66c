package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/banking-whatsapp/accounts-service/internal/apperrors"
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	portsrepo "github.com/banking-whatsapp/accounts-service/internal/core/ports/repositories"
	portssvc "github.com/banking-whatsapp/accounts-service/internal/core/ports/services"
	"github.com/banking-whatsapp/accounts-service/internal/dto"
	"github.com/banking-whatsapp/accounts-service/internal/utils/banking"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the requested movement against the current
// account balance, then persists the transaction and the balance change as a
// single atomic write. Deposits credit the account; withdrawals and transfers
// debit it and must not take the balance below zero. All other kinds are
// rejected as unsupported.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for transaction",
				slog.String("account_id", req.AccountID))
		}
		return nil, err
	}

	delta, err := banking.BalanceDelta(account.Balance, req.Type, req.Amount.Decimal)
	if err != nil {
		s.LogError(ctx, err, "Transaction rejected",
			slog.String("account_id", req.AccountID),
			slog.String("type", string(req.Type)),
			slog.String("amount", req.Amount.Decimal.String()))
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       account.AccountID,
		Type:            req.Type,
		Amount:          req.Amount.Decimal,
		Description:     req.Description,
		Reference:       req.Reference,
		TransactionDate: time.Now().UTC(),
		Status:          domain.TransactionCompleted,
	}

	// The repository applies the balance delta and inserts the transaction
	// under a row lock, so concurrent writes against the same account
	// serialize and the balance check holds at commit time.
	if err := s.txnRepo.SaveTransaction(ctx, txn, delta); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("account_id", txn.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Transaction retrieved successfully",
		slog.String("transaction_id", txn.TransactionID))
	return txn, nil
}

// ListTransactionsByAccount returns the most recent transactions for an
// account, newest first. The account must exist; an account with no history
// yields an empty list.
func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to verify account for transaction listing",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("account_id", accountID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}

	s.LogDebug(ctx, "Transactions listed successfully",
		slog.String("account_id", accountID),
		slog.Int("count", len(txns)))
	return txns, nil
}
