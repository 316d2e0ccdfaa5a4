package repositories

import (
	"context"

	"github.com/SscSPs/products_accounts/internal/core/domain"
)

// InterestRateReader defines read operations for interest rate data
type InterestRateReader interface {
	// FindByState retrieves every interest rate in the given lifecycle state.
	FindByState(ctx context.Context, state domain.State) ([]domain.InterestRate, error)

	// FindByID retrieves an interest rate by its ID.
	// Returns apperrors.ErrNotFound when no row matches.
	FindByID(ctx context.Context, id int) (*domain.InterestRate, error)
}

// InterestRateWriter defines write operations for interest rate data
type InterestRateWriter interface {
	// Save inserts the rate when its ID is zero, otherwise overwrites the stored row.
	Save(ctx context.Context, rate domain.InterestRate) (*domain.InterestRate, error)
}

// InterestRateRepositoryFacade combines all interest rate repository interfaces
type InterestRateRepositoryFacade interface {
	InterestRateReader
	InterestRateWriter
}
