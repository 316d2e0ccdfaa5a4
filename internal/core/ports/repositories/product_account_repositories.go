package repositories

import (
	"context"

	"github.com/SscSPs/products_accounts/internal/core/domain"
)

// ProductAccountReader defines read operations for product account data
type ProductAccountReader interface {
	// FindByState retrieves every product account in the given lifecycle state.
	FindByState(ctx context.Context, state domain.State) ([]domain.ProductAccount, error)

	// FindByID retrieves a product account by its ID.
	// Returns apperrors.ErrNotFound when no row matches.
	FindByID(ctx context.Context, id string) (*domain.ProductAccount, error)
}

// ProductAccountWriter defines write operations for product account data
type ProductAccountWriter interface {
	// Save inserts or overwrites the product account keyed by its ID.
	Save(ctx context.Context, account domain.ProductAccount) (*domain.ProductAccount, error)
}

// ProductAccountRepositoryFacade combines all product account repository interfaces
type ProductAccountRepositoryFacade interface {
	ProductAccountReader
	ProductAccountWriter
}
