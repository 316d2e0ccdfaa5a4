package services_test

import (
	"context"

	"github.com/SscSPs/products_accounts/internal/core/domain"
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock InterestRateRepository ---
type MockInterestRateRepository struct {
	mock.Mock
}

func (m *MockInterestRateRepository) FindByState(ctx context.Context, state domain.State) ([]domain.InterestRate, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestRate), args.Error(1)
}

func (m *MockInterestRateRepository) FindByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRate), args.Error(1)
}

func (m *MockInterestRateRepository) Save(ctx context.Context, rate domain.InterestRate) (*domain.InterestRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRate), args.Error(1)
}

var _ portsrepo.InterestRateRepositoryFacade = (*MockInterestRateRepository)(nil)

// --- Mock ProductAccountRepository ---
type MockProductAccountRepository struct {
	mock.Mock
}

func (m *MockProductAccountRepository) FindByState(ctx context.Context, state domain.State) ([]domain.ProductAccount, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductAccount), args.Error(1)
}

func (m *MockProductAccountRepository) FindByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductAccount), args.Error(1)
}

func (m *MockProductAccountRepository) Save(ctx context.Context, account domain.ProductAccount) (*domain.ProductAccount, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductAccount), args.Error(1)
}

var _ portsrepo.ProductAccountRepositoryFacade = (*MockProductAccountRepository)(nil)

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, stream, eventType string, data any) error {
	args := m.Called(ctx, stream, eventType, data)
	return args.Error(0)
}

var _ portsrepo.EventPublisher = (*MockEventPublisher)(nil)

func portsRepoProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InterestRateRepo:   new(MockInterestRateRepository),
		ProductAccountRepo: new(MockProductAccountRepository),
	}
}
