package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/banking-whatsapp/accounts-service/internal/apperrors"
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	portsrepo "github.com/banking-whatsapp/accounts-service/internal/core/ports/repositories"
	portssvc "github.com/banking-whatsapp/accounts-service/internal/core/ports/services"
	"github.com/banking-whatsapp/accounts-service/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txnReader   portssvc.TransactionReaderSvc
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithTransactionReader adds the transaction reader used by the aggregate user view
func WithTransactionReader(svc portssvc.TransactionReaderSvc) AccountServiceOption {
	return func(s *accountService) {
		s.txnReader = svc
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.AccountRequest) (*domain.Account, error) {
	// Best-effort uniqueness check before insert; the unique index on
	// account_number closes the race between concurrent creates.
	existing, err := s.accountRepo.FindAccountByNumber(ctx, req.AccountNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account number uniqueness",
			slog.String("account_number", req.AccountNumber))
		return nil, err
	}
	if existing != nil {
		err := fmt.Errorf("%w: account with number %s already exists", apperrors.ErrDuplicate, req.AccountNumber)
		s.LogError(ctx, err, "Duplicate account number on create",
			slog.String("account_number", req.AccountNumber))
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		AccountNumber:   req.AccountNumber,
		AccountType:     req.AccountType,
		Balance:         req.Balance.Decimal,
		Currency:        req.Currency,
		UserID:          req.UserID,
		UserDNI:         req.UserDNI,
		UserPhoneNumber: req.UserPhoneNumber,
		Status:          domain.AccountActive, // Always ACTIVE on create; request status is ignored
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("account_number", account.AccountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_number", account.AccountNumber))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err // Propagate error (including NotFound)
	}

	s.LogDebug(ctx, "Account retrieved successfully",
		slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by number",
				slog.String("account_number", accountNumber))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Account retrieved successfully",
		slog.String("account_number", accountNumber))
	return account, nil
}

func (s *accountService) ListAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts by user ID",
			slog.String("user_id", userID))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil // Unknown user is an empty list, not an error
	}
	return accounts, nil
}

func (s *accountService) ListAccountsByUserDNI(ctx context.Context, dni string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByUserDNI(ctx, dni)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts by user DNI",
			slog.String("user_dni", dni))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) ListAccountsByUserPhone(ctx context.Context, phoneNumber string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByUserPhone(ctx, phoneNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts by user phone number",
			slog.String("user_phone_number", phoneNumber))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.AccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err // GetAccountByID already logs errors
	}

	// Copy request fields onto the account. id, status and createdAt are
	// immutable; the request's status field is ignored on update.
	account.AccountNumber = req.AccountNumber
	account.AccountType = req.AccountType
	account.Balance = req.Balance.Decimal
	account.Currency = req.Currency
	account.UserID = req.UserID
	account.UserDNI = req.UserDNI
	account.UserPhoneNumber = req.UserPhoneNumber
	account.UpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	// Verify existence first so a missing account surfaces as NotFound.
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	// Deleting the account leaves its transaction history in place.
	if err := s.accountRepo.DeleteAccount(ctx, account.AccountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account",
			slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted successfully",
		slog.String("account_id", accountID),
		slog.String("account_number", account.AccountNumber))
	return nil
}

// GetUserViewByPhone composes the aggregate user view: all accounts matching
// the phone number, each with its most recent transactions. Per-account
// queries fan out concurrently (one in-flight query per account) and the
// assembled result preserves the account-fetch order.
func (s *accountService) GetUserViewByPhone(ctx context.Context, phoneNumber string, limit int) (*dto.UserViewResponse, error) {
	accounts, err := s.accountRepo.FindAccountsByUserPhone(ctx, phoneNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to find accounts for user view",
			slog.String("user_phone_number", phoneNumber))
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no accounts found for phone number %s", apperrors.ErrNotFound, phoneNumber)
	}

	// User identity comes from the first account in the returned order.
	first := accounts[0]

	entries := make([]dto.AccountWithTransactions, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	for i, account := range accounts {
		g.Go(func() error {
			txns, err := s.txnReader.ListTransactionsByAccount(gctx, account.AccountID, limit)
			if err != nil {
				return fmt.Errorf("failed to fetch transactions for account %s: %w", account.AccountID, err)
			}
			entries[i] = dto.AccountWithTransactions{
				Account:      dto.ToAccountResponse(&account),
				Transactions: dto.ToListTransactionResponse(txns),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Any per-account failure aborts the aggregation; no partial results.
		s.LogError(ctx, err, "User view aggregation failed",
			slog.String("user_phone_number", phoneNumber))
		return nil, err
	}

	s.LogInfo(ctx, "User view assembled successfully",
		slog.String("user_phone_number", phoneNumber),
		slog.Int("account_count", len(entries)))
	return &dto.UserViewResponse{
		UserID:          first.UserID,
		UserDNI:         first.UserDNI,
		UserPhoneNumber: first.UserPhoneNumber,
		Accounts:        entries,
	}, nil
}
