package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/SscSPs/products_accounts/internal/core/domain"
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
)

type ProductAccountRepository struct {
	mu   sync.RWMutex
	data map[string]domain.ProductAccount
}

func NewProductAccountRepository() *ProductAccountRepository {
	return &ProductAccountRepository{data: map[string]domain.ProductAccount{}}
}

var _ portsrepo.ProductAccountRepositoryFacade = (*ProductAccountRepository)(nil)

func (r *ProductAccountRepository) FindByState(_ context.Context, state domain.State) ([]domain.ProductAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.ProductAccount, 0, len(r.data))
	for _, account := range r.data {
		if account.State == state {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Name != accounts[j].Name {
			return accounts[i].Name < accounts[j].Name
		}
		return accounts[i].ID < accounts[j].ID
	})
	return accounts, nil
}

func (r *ProductAccountRepository) FindByID(_ context.Context, id string) (*domain.ProductAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.data[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (r *ProductAccountRepository) Save(_ context.Context, account domain.ProductAccount) (*domain.ProductAccount, error) {
	if account.ID == "" {
		return nil, fmt.Errorf("%w: product account id is required", apperrors.ErrValidation)
	}
	if !account.State.IsValid() {
		return nil, fmt.Errorf("%w: unknown state %q", apperrors.ErrValidation, account.State)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[account.ID] = account
	return &account, nil
}

// NewRepositoryProvider builds a provider over fresh in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InterestRateRepo:   NewInterestRateRepository(),
		ProductAccountRepo: NewProductAccountRepository(),
	}
}
