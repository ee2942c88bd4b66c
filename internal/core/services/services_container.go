package services

import (
	portsrepo "github.com/banking-whatsapp/accounts-service/internal/core/ports/repositories"
	portssvc "github.com/banking-whatsapp/accounts-service/internal/core/ports/services"
	"github.com/banking-whatsapp/accounts-service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Transaction service first since the account service needs its reader
	// for the aggregate user view.
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo)

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithTransactionReader(container.Transaction),
	)

	return container
}
