package services

import (
	"context"

	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	"github.com/banking-whatsapp/accounts-service/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByNumber retrieves an account by its account number.
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccountsByUserID retrieves all accounts owned by a user; empty is success.
	ListAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error)

	// ListAccountsByUserDNI retrieves all accounts owned by the user with the given national id.
	ListAccountsByUserDNI(ctx context.Context, dni string) ([]domain.Account, error)

	// ListAccountsByUserPhone retrieves all accounts owned by the user with the given phone number.
	ListAccountsByUserPhone(ctx context.Context, phoneNumber string) ([]domain.Account, error)

	// ListAccounts retrieves every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account after checking account-number uniqueness.
	CreateAccount(ctx context.Context, req dto.AccountRequest) (*domain.Account, error)

	// UpdateAccount copies request fields onto an existing account, preserving
	// id, status and createdAt, and refreshing updatedAt.
	UpdateAccount(ctx context.Context, accountID string, req dto.AccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account; its transactions are left in place.
	DeleteAccount(ctx context.Context, accountID string) error
}

// UserViewSvc composes the aggregate user view.
type UserViewSvc interface {
	// GetUserViewByPhone resolves all accounts for a phone number and attaches
	// each account's most recent transactions, up to limit per account.
	GetUserViewByPhone(ctx context.Context, phoneNumber string, limit int) (*dto.UserViewResponse, error)
}

// AccountSvcFacade combines all account-related service interfaces.
// This is a facade for clients that need access to all operations.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	UserViewSvc
}
