package services

import (
	portsrepo "github.com/biztime/biztime_backend/internal/core/ports/repositories"
	portssvc "github.com/biztime/biztime_backend/internal/core/ports/services"
)

// NewServiceContainer builds every service on top of the repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Company: NewCompanyService(repos.Company),
		Invoice: NewInvoiceService(repos.Invoice),
	}
}
