package mapping

import (
	"github.com/SscSPs/products_accounts/internal/core/domain"
	"github.com/SscSPs/products_accounts/internal/dto"
	"github.com/SscSPs/products_accounts/internal/models"
)

// MapToInterestRate converts a request into a domain InterestRate.
// An empty state is read as active.
func MapToInterestRate(r dto.InterestRateRQRS) domain.InterestRate {
	return domain.InterestRate{
		ID:           r.ID,
		Name:         r.Name,
		InterestRate: r.InterestRate,
		State:        stateOrActive(r.State),
	}
}

// MapToInterestRateRQRS converts a domain InterestRate into its response shape.
func MapToInterestRateRQRS(d domain.InterestRate) dto.InterestRateRQRS {
	return dto.InterestRateRQRS{
		ID:           d.ID,
		Name:         d.Name,
		InterestRate: d.InterestRate,
		State:        string(d.State),
	}
}

// MapToInterestRateRQRSSlice converts a slice of domain InterestRates into response shapes.
func MapToInterestRateRQRSSlice(ds []domain.InterestRate) []dto.InterestRateRQRS {
	res := make([]dto.InterestRateRQRS, len(ds))
	for i, d := range ds {
		res[i] = MapToInterestRateRQRS(d)
	}
	return res
}

// ToModelInterestRate converts a domain InterestRate to a model InterestRate
func ToModelInterestRate(d domain.InterestRate) models.InterestRate {
	return models.InterestRate{
		ID:           d.ID,
		Name:         d.Name,
		InterestRate: d.InterestRate,
		State:        string(d.State),
	}
}

// ToDomainInterestRate converts a model InterestRate to a domain InterestRate
func ToDomainInterestRate(m models.InterestRate) domain.InterestRate {
	return domain.InterestRate{
		ID:           m.ID,
		Name:         m.Name,
		InterestRate: m.InterestRate,
		State:        domain.State(m.State),
	}
}

// ToDomainInterestRateSlice converts a slice of model InterestRates to domain InterestRates
func ToDomainInterestRateSlice(ms []models.InterestRate) []domain.InterestRate {
	ds := make([]domain.InterestRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInterestRate(m)
	}
	return ds
}

func stateOrActive(s string) domain.State {
	if s == "" {
		return domain.StateActive
	}
	return domain.State(s)
}
