package dto

import (
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
)

// AccountRequest defines the data accepted when creating or updating an account.
// The status field is accepted for compatibility but ignored: creation always
// starts at ACTIVE and updates never change status.
type AccountRequest struct {
	AccountNumber   string             `json:"accountNumber" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CHECKING CREDIT"`
	Balance         Money              `json:"balance"`
	Currency        string             `json:"currency" binding:"required,len=3"`
	UserID          string             `json:"userId" binding:"required"`
	UserDNI         string             `json:"userDni" binding:"required"`
	UserPhoneNumber string             `json:"userPhoneNumber" binding:"required"`
	Status          string             `json:"status"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID              string               `json:"id"`
	AccountNumber   string               `json:"accountNumber"`
	AccountType     domain.AccountType   `json:"accountType"`
	Balance         Money                `json:"balance"`
	Currency        string               `json:"currency"`
	UserID          string               `json:"userId"`
	UserDNI         string               `json:"userDni"`
	UserPhoneNumber string               `json:"userPhoneNumber"`
	Status          domain.AccountStatus `json:"status"`
	CreatedAt       DateTime             `json:"createdAt"`
	UpdatedAt       DateTime             `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to its wire representation.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:              acc.AccountID,
		AccountNumber:   acc.AccountNumber,
		AccountType:     acc.AccountType,
		Balance:         NewMoney(acc.Balance),
		Currency:        acc.Currency,
		UserID:          acc.UserID,
		UserDNI:         acc.UserDNI,
		UserPhoneNumber: acc.UserPhoneNumber,
		Status:          acc.Status,
		CreatedAt:       NewDateTime(acc.CreatedAt),
		UpdatedAt:       NewDateTime(acc.UpdatedAt),
	}
}

// ToListAccountResponse converts a slice of domain.Account to wire DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
