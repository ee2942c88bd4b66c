package banking_test

import (
	"testing"

	"github.com/banking-whatsapp/accounts-service/internal/apperrors"
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	"github.com/banking-whatsapp/accounts-service/internal/utils/banking"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewBalance_DepositAddsExactly(t *testing.T) {
	got, err := banking.NewBalance(d("1000.00"), domain.Deposit, d("500.00"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("1500.00")), "expected 1500.00, got %s", got)
}

func TestNewBalance_WithdrawalSubtractsExactly(t *testing.T) {
	got, err := banking.NewBalance(d("1000.00"), domain.Withdrawal, d("250.50"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("749.50")), "expected 749.50, got %s", got)
}

func TestNewBalance_WithdrawalToZeroSucceeds(t *testing.T) {
	got, err := banking.NewBalance(d("1000.00"), domain.Withdrawal, d("1000.00"))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestNewBalance_WithdrawalOverBalance(t *testing.T) {
	_, err := banking.NewBalance(d("100.00"), domain.Withdrawal, d("100.01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "100.01")
	assert.Contains(t, err.Error(), "100")
}

func TestNewBalance_TransferOverBalance(t *testing.T) {
	_, err := banking.NewBalance(d("0"), domain.Transfer, d("1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
}

func TestNewBalance_TransferSubtracts(t *testing.T) {
	got, err := banking.NewBalance(d("50.00"), domain.Transfer, d("20.00"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("30.00")))
}

func TestNewBalance_UnhandledKindsRejected(t *testing.T) {
	for _, kind := range []domain.TransactionType{
		domain.Payment,
		domain.Fee,
		domain.Interest,
		domain.TransactionType("CHARGEBACK"),
	} {
		_, err := banking.NewBalance(d("100.00"), kind, d("10.00"))
		require.Error(t, err, "kind %s should have no balance rule", kind)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransactionType)
	}
}

func TestBalanceDelta_NonPositiveAmount(t *testing.T) {
	for _, amt := range []string{"0", "-5.00"} {
		_, err := banking.BalanceDelta(d("100.00"), domain.Deposit, d(amt))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestBalanceDelta_PrecisionPreserved(t *testing.T) {
	// Sub-cent precision must survive the arithmetic untouched.
	delta, err := banking.BalanceDelta(d("10.005"), domain.Withdrawal, d("10.005"))
	require.NoError(t, err)
	assert.True(t, delta.Equal(d("-10.005")))
}
