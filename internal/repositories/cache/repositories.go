package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/products_accounts/internal/core/domain"
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	interestRateKeyPrefix   = "interest_rate:"
	productAccountKeyPrefix = "product_account:"
)

// InterestRateRepository caches FindByID results and evicts the entry on Save.
type InterestRateRepository struct {
	next  portsrepo.InterestRateRepositoryFacade
	views *ViewCache[domain.InterestRate]
}

func NewInterestRateRepository(next portsrepo.InterestRateRepositoryFacade, client redis.UniversalClient, ttl time.Duration) *InterestRateRepository {
	return &InterestRateRepository{next: next, views: NewViewCache[domain.InterestRate](client, ttl)}
}

var _ portsrepo.InterestRateRepositoryFacade = (*InterestRateRepository)(nil)

func interestRateKey(id int) string {
	return interestRateKeyPrefix + strconv.Itoa(id)
}

func (r *InterestRateRepository) FindByState(ctx context.Context, state domain.State) ([]domain.InterestRate, error) {
	return r.next.FindByState(ctx, state)
}

func (r *InterestRateRepository) FindByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	if rate, ok := r.views.Get(ctx, interestRateKey(id)); ok {
		return rate, nil
	}
	rate, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.views.Set(ctx, interestRateKey(id), rate)
	return rate, nil
}

// Save evicts the cached entry whatever the outcome; the next FindByID reloads it from the store.
// Writing the saved value back could let a slower save overwrite a newer one.
func (r *InterestRateRepository) Save(ctx context.Context, rate domain.InterestRate) (*domain.InterestRate, error) {
	saved, err := r.next.Save(ctx, rate)
	if rate.ID != 0 {
		r.views.Delete(ctx, interestRateKey(rate.ID))
	}
	if err != nil {
		return nil, err
	}
	if saved.ID != rate.ID {
		r.views.Delete(ctx, interestRateKey(saved.ID))
	}
	return saved, nil
}

// ProductAccountRepository caches FindByID results and evicts the entry on Save.
type ProductAccountRepository struct {
	next  portsrepo.ProductAccountRepositoryFacade
	views *ViewCache[domain.ProductAccount]
}

func NewProductAccountRepository(next portsrepo.ProductAccountRepositoryFacade, client redis.UniversalClient, ttl time.Duration) *ProductAccountRepository {
	return &ProductAccountRepository{next: next, views: NewViewCache[domain.ProductAccount](client, ttl)}
}

var _ portsrepo.ProductAccountRepositoryFacade = (*ProductAccountRepository)(nil)

func (r *ProductAccountRepository) FindByState(ctx context.Context, state domain.State) ([]domain.ProductAccount, error) {
	return r.next.FindByState(ctx, state)
}

func (r *ProductAccountRepository) FindByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	key := productAccountKeyPrefix + id
	if account, ok := r.views.Get(ctx, key); ok {
		return account, nil
	}
	account, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.views.Set(ctx, key, account)
	return account, nil
}

// Save evicts the cached entry whatever the outcome, like InterestRateRepository.Save.
func (r *ProductAccountRepository) Save(ctx context.Context, account domain.ProductAccount) (*domain.ProductAccount, error) {
	saved, err := r.next.Save(ctx, account)
	if account.ID != "" {
		r.views.Delete(ctx, productAccountKeyPrefix+account.ID)
	}
	if err != nil {
		return nil, err
	}
	if saved.ID != account.ID {
		r.views.Delete(ctx, productAccountKeyPrefix+saved.ID)
	}
	return saved, nil
}

// WrapRepositoryProvider puts both repositories of repos behind the cache.
func WrapRepositoryProvider(repos portsrepo.RepositoryProvider, client redis.UniversalClient, ttl time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InterestRateRepo:   NewInterestRateRepository(repos.InterestRateRepo, client, ttl),
		ProductAccountRepo: NewProductAccountRepository(repos.ProductAccountRepo, client, ttl),
	}
}
