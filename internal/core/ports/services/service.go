package services

// ServiceContainer holds all service facades needed by the handlers.
type ServiceContainer struct {
	Property    PropertySvcFacade
	Transaction TransactionSvcFacade
	Dashboard   DashboardSvcFacade
	Importer    ImportSvcFacade
}
