package mapping

import (
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	"github.com/banking-whatsapp/accounts-service/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its DB representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		Type:            models.TransactionType(d.Type),
		Amount:          d.Amount,
		Description:     d.Description,
		Reference:       d.Reference,
		TransactionDate: d.TransactionDate,
		Status:          models.TransactionStatus(d.Status),
	}
}

// ToDomainTransaction converts a DB transaction row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		Type:            domain.TransactionType(m.Type),
		Amount:          m.Amount,
		Description:     m.Description,
		Reference:       m.Reference,
		TransactionDate: m.TransactionDate,
		Status:          domain.TransactionStatus(m.Status),
	}
}
