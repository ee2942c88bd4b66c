package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/banking-whatsapp/accounts-service/internal/apperrors"
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	portsrepo "github.com/banking-whatsapp/accounts-service/internal/core/ports/repositories"
	"github.com/banking-whatsapp/accounts-service/internal/models"
	"github.com/banking-whatsapp/accounts-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, account_number, account_type, balance, currency, user_id, user_dni, user_phone_number, status, created_at, updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.AccountType,
		&m.Balance,
		&m.Currency,
		&m.UserID,
		&m.UserDNI,
		&m.UserPhoneNumber,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account rows: %w", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.AccountNumber,
		m.AccountType,
		m.Balance,
		m.Currency,
		m.UserID,
		m.UserDNI,
		m.UserPhoneNumber,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account with number %s already exists", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountByNumber retrieves an account by its unique account number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account number %s", apperrors.ErrNotFound, accountNumber)
		}
		return nil, fmt.Errorf("failed to find account by number %s: %w", accountNumber, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByUserID retrieves all accounts owned by a user.
func (r *PgxAccountRepository) FindAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at;`
	return r.queryAccounts(ctx, query, userID)
}

// FindAccountsByUserDNI retrieves all accounts owned by the user with the given national id.
func (r *PgxAccountRepository) FindAccountsByUserDNI(ctx context.Context, dni string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_dni = $1 ORDER BY created_at;`
	return r.queryAccounts(ctx, query, dni)
}

// FindAccountsByUserPhone retrieves all accounts owned by the user with the given phone number.
func (r *PgxAccountRepository) FindAccountsByUserPhone(ctx context.Context, phoneNumber string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_phone_number = $1 ORDER BY created_at;`
	return r.queryAccounts(ctx, query, phoneNumber)
}

// ListAccounts retrieves every account ordered by creation time.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at;`
	return r.queryAccounts(ctx, query)
}

// UpdateAccount overwrites the mutable fields of an existing account.
// account_id, status and created_at never change here.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET account_number = $2,
		    account_type = $3,
		    balance = $4,
		    currency = $5,
		    user_id = $6,
		    user_dni = $7,
		    user_phone_number = $8,
		    updated_at = $9
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.AccountNumber,
		m.AccountType,
		m.Balance,
		m.Currency,
		m.UserID,
		m.UserDNI,
		m.UserPhoneNumber,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with number %s already exists", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// DeleteAccount removes an account row. Transaction history stays in place.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM accounts WHERE account_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
