package services

import (
	portsrepo "github.com/imoveis-app/imoveis_backend/internal/core/ports/repositories"
	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Property = NewPropertyService(repos.PropertyRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.PropertyRepo)
	container.Dashboard = NewDashboardService(repos.PropertyRepo, repos.TransactionRepo)
	container.Importer = NewImportService(container.Property)

	return container
}
