package repositories

import (
	"context"

	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its globally unique account number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindAccountsByUserID retrieves all accounts owned by a user.
	// An unknown user yields an empty slice, not an error.
	FindAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error)

	// FindAccountsByUserDNI retrieves all accounts owned by the user with the given national id.
	FindAccountsByUserDNI(ctx context.Context, dni string) ([]domain.Account, error)

	// FindAccountsByUserPhone retrieves all accounts owned by the user with the given phone number.
	FindAccountsByUserPhone(ctx context.Context, phoneNumber string) ([]domain.Account, error)

	// ListAccounts retrieves every account, ordered by creation time.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A duplicate account number yields ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount overwrites the mutable fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Transactions are left untouched.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
// This is a facade for clients that need access to all operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
