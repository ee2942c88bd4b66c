package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/banking-whatsapp/accounts-service/internal/apperrors"
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	portsrepo "github.com/banking-whatsapp/accounts-service/internal/core/ports/repositories"
	"github.com/banking-whatsapp/accounts-service/internal/models"
	"github.com/banking-whatsapp/accounts-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, account_id, type, amount, description, reference, transaction_date, status`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.Reference,
		&m.TransactionDate,
		&m.Status,
	)
	return m, err
}

// SaveTransaction applies the balance delta to the account and inserts the
// transaction record inside one database transaction. The account row is
// locked with FOR UPDATE so concurrent writes against the same account
// serialize, and the non-negative balance check is re-verified under the
// lock before anything is written.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op after a successful commit

	lockQuery := `SELECT balance FROM accounts WHERE account_id = $1 FOR UPDATE;`
	var balance decimal.Decimal
	if err := tx.QueryRow(ctx, lockQuery, txn.AccountID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, txn.AccountID)
		}
		return fmt.Errorf("failed to lock account %s: %w", txn.AccountID, err)
	}

	newBalance := balance.Add(balanceDelta)
	if newBalance.IsNegative() {
		return fmt.Errorf("%w for withdrawal: requested %s, available %s",
			apperrors.ErrInsufficientFunds, balanceDelta.Neg().String(), balance.String())
	}

	updateQuery := `UPDATE accounts SET balance = $2, updated_at = $3 WHERE account_id = $1;`
	if _, err := tx.Exec(ctx, updateQuery, txn.AccountID, newBalance, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", txn.AccountID, err)
	}

	m := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.AccountID,
		m.Type,
		m.Amount,
		m.Description,
		m.Reference,
		m.TransactionDate,
		m.Status,
	); err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByAccount retrieves the most recent transactions for an
// account, newest first. Ties on transaction_date break by id so the order
// is deterministic.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_date DESC, transaction_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction rows: %w", err)
	}
	return txns, nil
}
