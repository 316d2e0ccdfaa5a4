package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/SscSPs/products_accounts/internal/core/domain"
	"github.com/SscSPs/products_accounts/internal/core/services"
	"github.com/SscSPs/products_accounts/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestRateRepository_SaveAssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInterestRateRepository()

	first, err := repo.Save(ctx, domain.InterestRate{Name: "a", State: domain.StateActive})
	require.NoError(t, err)
	second, err := repo.Save(ctx, domain.InterestRate{Name: "b", State: domain.StateActive})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	explicit, err := repo.Save(ctx, domain.InterestRate{ID: 10, Name: "c", State: domain.StateActive})
	require.NoError(t, err)
	assert.Equal(t, 10, explicit.ID)

	next, err := repo.Save(ctx, domain.InterestRate{Name: "d", State: domain.StateActive})
	require.NoError(t, err)
	assert.Equal(t, 11, next.ID)
}

func TestInterestRateRepository_FindByState(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInterestRateRepository()
	for _, state := range []domain.State{domain.StateActive, domain.StateInactive, domain.StateActive} {
		_, err := repo.Save(ctx, domain.InterestRate{Name: "r", State: state})
		require.NoError(t, err)
	}

	actives, err := repo.FindByState(ctx, domain.StateActive)
	require.NoError(t, err)
	require.Len(t, actives, 2)
	assert.Equal(t, 1, actives[0].ID)
	assert.Equal(t, 3, actives[1].ID)
}

func TestInterestRateRepository_FindByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInterestRateRepository()
	saved, err := repo.Save(ctx, domain.InterestRate{Name: "r", State: domain.StateActive})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	found.State = domain.StateInactive

	again, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateActive, again.State)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductAccountRepository()

	_, err := repo.Save(ctx, domain.ProductAccount{Name: "no id"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = repo.Save(ctx, domain.ProductAccount{ID: "b", Name: "Savings", State: domain.StateActive})
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.ProductAccount{ID: "a", Name: "Checking", State: domain.StateActive})
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.ProductAccount{ID: "c", Name: "Old", State: domain.StateInactive})
	require.NoError(t, err)

	actives, err := repo.FindByState(ctx, domain.StateActive)
	require.NoError(t, err)
	require.Len(t, actives, 2)
	assert.Equal(t, "Checking", actives[0].Name)

	_, err = repo.FindByID(ctx, "zzz")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveRejectsUnknownState(t *testing.T) {
	ctx := context.Background()

	_, err := memory.NewInterestRateRepository().Save(ctx, domain.InterestRate{Name: "r"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = memory.NewProductAccountRepository().Save(ctx, domain.ProductAccount{ID: "a", State: "DEL"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// The services driven end to end over the in-memory store.
func TestServicesOverMemoryStore(t *testing.T) {
	ctx := context.Background()
	container := services.NewServiceContainer(memory.NewRepositoryProvider())

	rate, err := container.InterestRate.Create(ctx, domain.InterestRate{
		Name:         "Savings base",
		InterestRate: decimal.RequireFromString("0.035"),
		State:        domain.StateActive,
	})
	require.NoError(t, err)

	_, err = container.InterestRate.Update(ctx, rate.ID, domain.InterestRate{Name: "Renamed", State: domain.StateActive})
	require.NoError(t, err)

	stored, err := container.InterestRate.ObtainByID(ctx, rate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.True(t, stored.InterestRate.IsZero(), "update overwrites, it does not merge")

	_, err = container.InterestRate.Inactivate(ctx, rate.ID)
	require.NoError(t, err)

	actives, err := container.InterestRate.ListAllActives(ctx)
	require.NoError(t, err)
	assert.Empty(t, actives)

	_, err = container.InterestRate.ObtainByID(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	account, err := container.ProductAccount.Create(ctx, domain.ProductAccount{ID: "SAV", Name: "Savings", State: domain.StateActive})
	require.NoError(t, err)
	inactive, err := container.ProductAccount.Inactivate(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInactive, inactive.State)

	_, err = container.ProductAccount.Update(ctx, "missing", domain.ProductAccount{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
