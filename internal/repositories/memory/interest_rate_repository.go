// Package memory provides map backed repositories for local runs and tests.
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

type InterestRateRepository struct {
	mu     sync.RWMutex
	data   map[int]domain.InterestRate
	lastID int
}

func NewInterestRateRepository() *InterestRateRepository {
	return &InterestRateRepository{data: map[int]domain.InterestRate{}}
}

var _ portsrepo.InterestRateRepositoryFacade = (*InterestRateRepository)(nil)

func (r *InterestRateRepository) FindByState(_ context.Context, state domain.State) ([]domain.InterestRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rates := make([]domain.InterestRate, 0, len(r.data))
	for _, rate := range r.data {
		if rate.State == state {
			rates = append(rates, rate)
		}
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].ID < rates[j].ID })
	return rates, nil
}

func (r *InterestRateRepository) FindByID(_ context.Context, id int) (*domain.InterestRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rate, ok := r.data[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &rate, nil
}

// Save assigns the next id to rates without one, like a serial column would.
func (r *InterestRateRepository) Save(_ context.Context, rate domain.InterestRate) (*domain.InterestRate, error) {
	if !rate.State.IsValid() {
		return nil, fmt.Errorf("%w: unknown state %q", apperrors.ErrValidation, rate.State)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rate.ID == 0 {
		r.lastID++
		rate.ID = r.lastID
	} else if rate.ID > r.lastID {
		r.lastID = rate.ID
	}
	r.data[rate.ID] = rate
	return &rate, nil
}
