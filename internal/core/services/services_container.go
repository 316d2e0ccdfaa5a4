package services

import (
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/products_accounts/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		InterestRate:   NewInterestRateService(repos.InterestRateRepo, options...),
		ProductAccount: NewProductAccountService(repos.ProductAccountRepo, options...),
	}
}
