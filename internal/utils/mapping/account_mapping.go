package mapping

import (
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	"github.com/banking-whatsapp/accounts-service/internal/models"
)

// ToModelAccount converts a domain.Account to its DB representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		AccountNumber:   d.AccountNumber,
		AccountType:     models.AccountType(d.AccountType),
		Balance:         d.Balance,
		Currency:        d.Currency,
		UserID:          d.UserID,
		UserDNI:         d.UserDNI,
		UserPhoneNumber: d.UserPhoneNumber,
		Status:          models.AccountStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainAccount converts a DB account row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		AccountNumber:   m.AccountNumber,
		AccountType:     domain.AccountType(m.AccountType),
		Balance:         m.Balance,
		Currency:        m.Currency,
		UserID:          m.UserID,
		UserDNI:         m.UserDNI,
		UserPhoneNumber: m.UserPhoneNumber,
		Status:          domain.AccountStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
