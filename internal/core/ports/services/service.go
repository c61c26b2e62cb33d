package services

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Company CompanySvcFacade
	Invoice InvoiceSvcFacade
}
