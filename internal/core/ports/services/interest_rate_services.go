package services

import (
	"context"

	"github.com/SscSPs/products_accounts/internal/core/domain"
)

// InterestRateReaderSvc defines read operations for interest rates
type InterestRateReaderSvc interface {
	// ListAllActives returns every interest rate in the ACT state.
	ListAllActives(ctx context.Context) ([]domain.InterestRate, error)

	// ObtainByID returns the rate with the given ID or a not-found CRUD error.
	ObtainByID(ctx context.Context, id int) (*domain.InterestRate, error)
}

// InterestRateWriterSvc defines write operations for interest rates
type InterestRateWriterSvc interface {
	Create(ctx context.Context, rate domain.InterestRate) (*domain.InterestRate, error)
	Update(ctx context.Context, id int, rate domain.InterestRate) (*domain.InterestRate, error)
	Inactivate(ctx context.Context, id int) (*domain.InterestRate, error)
}

// InterestRateSvcFacade combines all interest rate service interfaces
type InterestRateSvcFacade interface {
	InterestRateReaderSvc
	InterestRateWriterSvc
}
