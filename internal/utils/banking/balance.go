package banking

import (
	"fmt"

	"github.com/banking-whatsapp/accounts-service/internal/apperrors"
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceDelta returns the signed balance effect of a transaction kind.
// This is used in both the executor service and the store to ensure the same
// rule is applied on both sides of the row lock.
//
// DEPOSIT               -> +amount
// WITHDRAWAL / TRANSFER -> -amount, rejected when amount > balance
// PAYMENT / FEE / INTEREST have no balance rule yet and are rejected.
func BalanceDelta(balance decimal.Decimal, kind domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: transaction amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}

	switch kind {
	case domain.Deposit:
		return amount, nil
	case domain.Withdrawal:
		if amount.GreaterThan(balance) {
			return decimal.Zero, fmt.Errorf("%w for withdrawal: requested %s, available %s",
				apperrors.ErrInsufficientFunds, amount.String(), balance.String())
		}
		return amount.Neg(), nil
	case domain.Transfer:
		if amount.GreaterThan(balance) {
			return decimal.Zero, fmt.Errorf("%w for transfer: requested %s, available %s",
				apperrors.ErrInsufficientFunds, amount.String(), balance.String())
		}
		return amount.Neg(), nil
	default:
		// PAYMENT, FEE and INTEREST fall through here until a rule is specified.
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrInvalidTransactionType, kind)
	}
}

// NewBalance applies the rule table and returns the post-transaction balance.
func NewBalance(balance decimal.Decimal, kind domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	delta, err := BalanceDelta(balance, kind, amount)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Add(delta), nil
}
