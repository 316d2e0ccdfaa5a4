package services

import (
	"context"

	"github.com/SscSPs/products_accounts/internal/core/domain"
)

// ProductAccountReaderSvc defines read operations for product accounts
type ProductAccountReaderSvc interface {
	ListAllActives(ctx context.Context) ([]domain.ProductAccount, error)
	ObtainByID(ctx context.Context, id string) (*domain.ProductAccount, error)
}

// ProductAccountWriterSvc defines write operations for product accounts
type ProductAccountWriterSvc interface {
	// Create persists an already mapped product account.
	Create(ctx context.Context, account domain.ProductAccount) (*domain.ProductAccount, error)
	Update(ctx context.Context, id string, account domain.ProductAccount) (*domain.ProductAccount, error)
	Inactivate(ctx context.Context, id string) (*domain.ProductAccount, error)
}

// ProductAccountSvcFacade combines all product account service interfaces
type ProductAccountSvcFacade interface {
	ProductAccountReaderSvc
	ProductAccountWriterSvc
}
