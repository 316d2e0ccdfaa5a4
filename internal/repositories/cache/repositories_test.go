package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/SscSPs/products_accounts/internal/core/domain"
	"github.com/SscSPs/products_accounts/internal/repositories/cache"
	"github.com/SscSPs/products_accounts/internal/repositories/memory"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

type countingInterestRateRepo struct {
	mock.Mock
	*memory.InterestRateRepository
}

func (r *countingInterestRateRepo) FindByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	r.Called(id)
	return r.InterestRateRepository.FindByID(ctx, id)
}

func TestInterestRateRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	inner := &countingInterestRateRepo{InterestRateRepository: memory.NewInterestRateRepository()}
	inner.On("FindByID", mock.Anything).Return()

	saved, err := inner.Save(ctx, domain.InterestRate{Name: "Base", InterestRate: decimal.RequireFromString("0.05"), State: domain.StateActive})
	require.NoError(t, err)

	repo := cache.NewInterestRateRepository(inner, client, time.Minute)

	first, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.True(t, first.InterestRate.Equal(second.InterestRate))
	inner.AssertNumberOfCalls(t, "FindByID", 1)
	assert.True(t, mr.Exists("interest_rate:1"))
	assert.Equal(t, time.Minute, mr.TTL("interest_rate:1"))
}

func TestInterestRateRepository_SaveEvictsEntry(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	repo := cache.NewInterestRateRepository(memory.NewInterestRateRepository(), client, 0)

	saved, err := repo.Save(ctx, domain.InterestRate{Name: "Base", State: domain.StateActive})
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)

	saved.State = domain.StateInactive
	_, err = repo.Save(ctx, *saved)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInactive, found.State)
}

func TestInterestRateRepository_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	repo := cache.NewInterestRateRepository(memory.NewInterestRateRepository(), client, time.Minute)

	_, err := repo.FindByID(ctx, 7)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.False(t, mr.Exists("interest_rate:7"))
}

func TestInterestRateRepository_RedisDownFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	inner := memory.NewInterestRateRepository()
	saved, err := inner.Save(ctx, domain.InterestRate{Name: "Base", State: domain.StateActive})
	require.NoError(t, err)
	repo := cache.NewInterestRateRepository(inner, client, time.Minute)
	mr.Close()

	found, err := repo.FindByID(ctx, saved.ID)

	require.NoError(t, err)
	assert.Equal(t, "Base", found.Name)
}

func TestProductAccountRepository_ReadThroughAndInvalidate(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	provider := cache.WrapRepositoryProvider(memory.NewRepositoryProvider(), client, time.Minute)
	repo := provider.ProductAccountRepo

	_, err := repo.Save(ctx, domain.ProductAccount{ID: "SAV", Name: "Savings", PayInterest: true, State: domain.StateActive})
	require.NoError(t, err)
	assert.False(t, mr.Exists("product_account:SAV"))

	found, err := repo.FindByID(ctx, "SAV")
	require.NoError(t, err)
	assert.True(t, found.PayInterest)
	assert.True(t, mr.Exists("product_account:SAV"))

	_, err = repo.Save(ctx, domain.ProductAccount{ID: "SAV", Name: "Savings", State: domain.StateInactive})
	require.NoError(t, err)
	assert.False(t, mr.Exists("product_account:SAV"))

	found, err = repo.FindByID(ctx, "SAV")
	require.NoError(t, err)
	assert.Equal(t, domain.StateInactive, found.State)

	_, err = repo.Save(ctx, domain.ProductAccount{Name: "no id"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	actives, err := repo.FindByState(ctx, domain.StateActive)
	require.NoError(t, err)
	assert.Len(t, actives, 1)
}

// heldInterestRateRepo blocks the save of a rate named holdName after it reached the store.
type heldInterestRateRepo struct {
	*memory.InterestRateRepository
	holdName  string
	committed chan struct{}
	release   chan struct{}
}

func (r *heldInterestRateRepo) Save(ctx context.Context, rate domain.InterestRate) (*domain.InterestRate, error) {
	saved, err := r.InterestRateRepository.Save(ctx, rate)
	if rate.Name == r.holdName {
		close(r.committed)
		<-r.release
	}
	return saved, err
}

func TestInterestRateRepository_InterleavedSavesServeLatestCommit(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	inner := &heldInterestRateRepo{
		InterestRateRepository: memory.NewInterestRateRepository(),
		holdName:               "v1",
		committed:              make(chan struct{}),
		release:                make(chan struct{}),
	}
	repo := cache.NewInterestRateRepository(inner, client, time.Minute)

	created, err := repo.Save(ctx, domain.InterestRate{Name: "v0", State: domain.StateActive})
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := repo.Save(ctx, domain.InterestRate{ID: created.ID, Name: "v1", State: domain.StateActive})
		done <- err
	}()
	<-inner.committed

	_, err = repo.Save(ctx, domain.InterestRate{ID: created.ID, Name: "v2", State: domain.StateInactive})
	require.NoError(t, err)
	close(inner.release)
	require.NoError(t, <-done)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", found.Name)
	assert.Equal(t, domain.StateInactive, found.State)
}

type failingInterestRateRepo struct {
	*memory.InterestRateRepository
}

func (r *failingInterestRateRepo) Save(context.Context, domain.InterestRate) (*domain.InterestRate, error) {
	return nil, errors.New("write timeout")
}

func TestInterestRateRepository_FailedSaveEvictsEntry(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	store := memory.NewInterestRateRepository()
	saved, err := store.Save(ctx, domain.InterestRate{Name: "Base", State: domain.StateActive})
	require.NoError(t, err)

	repo := cache.NewInterestRateRepository(&failingInterestRateRepo{InterestRateRepository: store}, client, time.Minute)
	_, err = repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists("interest_rate:1"))

	_, err = repo.Save(ctx, *saved)

	assert.Error(t, err)
	assert.False(t, mr.Exists("interest_rate:1"))
}
