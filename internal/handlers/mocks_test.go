package handlers_test

import (
	"context"

	"github.com/SscSPs/products_accounts/internal/core/domain"
	portssvc "github.com/SscSPs/products_accounts/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock InterestRateService ---
type MockInterestRateService struct {
	mock.Mock
}

func (m *MockInterestRateService) ListAllActives(ctx context.Context) ([]domain.InterestRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestRate), args.Error(1)
}
func (m *MockInterestRateService) ObtainByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRate), args.Error(1)
}
func (m *MockInterestRateService) Create(ctx context.Context, rate domain.InterestRate) (*domain.InterestRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRate), args.Error(1)
}
func (m *MockInterestRateService) Update(ctx context.Context, id int, rate domain.InterestRate) (*domain.InterestRate, error) {
	args := m.Called(ctx, id, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRate), args.Error(1)
}
func (m *MockInterestRateService) Inactivate(ctx context.Context, id int) (*domain.InterestRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRate), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InterestRateSvcFacade = (*MockInterestRateService)(nil)

// --- Mock ProductAccountService ---
type MockProductAccountService struct {
	mock.Mock
}

func (m *MockProductAccountService) ListAllActives(ctx context.Context) ([]domain.ProductAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductAccount), args.Error(1)
}
func (m *MockProductAccountService) ObtainByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductAccount), args.Error(1)
}
func (m *MockProductAccountService) Create(ctx context.Context, account domain.ProductAccount) (*domain.ProductAccount, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductAccount), args.Error(1)
}
func (m *MockProductAccountService) Update(ctx context.Context, id string, account domain.ProductAccount) (*domain.ProductAccount, error) {
	args := m.Called(ctx, id, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductAccount), args.Error(1)
}
func (m *MockProductAccountService) Inactivate(ctx context.Context, id string) (*domain.ProductAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductAccount), args.Error(1)
}

var _ portssvc.ProductAccountSvcFacade = (*MockProductAccountService)(nil)
