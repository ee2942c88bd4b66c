package dto

import (
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to execute a transaction
// against a single account.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountId" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=DEPOSIT WITHDRAWAL TRANSFER PAYMENT FEE INTEREST"`
	Amount      Money                  `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	Reference   string                 `json:"reference"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID              string                   `json:"id"`
	AccountID       string                   `json:"accountId"`
	Type            domain.TransactionType   `json:"type"`
	Amount          Money                    `json:"amount"`
	Description     string                   `json:"description"`
	Reference       string                   `json:"reference"`
	TransactionDate DateTime                 `json:"transactionDate"`
	Status          domain.TransactionStatus `json:"status"`
}

// ListTransactionsParams defines query parameters for per-account listings.
type ListTransactionsParams struct {
	Limit int `form:"limit,default=10"`
}

// ToTransactionResponse converts a domain.Transaction to its wire representation.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.TransactionID,
		AccountID:       txn.AccountID,
		Type:            txn.Type,
		Amount:          NewMoney(txn.Amount),
		Description:     txn.Description,
		Reference:       txn.Reference,
		TransactionDate: NewDateTime(txn.TransactionDate),
		Status:          txn.Status,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to wire DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
