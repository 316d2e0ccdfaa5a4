package mapping

import (
	"github.com/SscSPs/products_accounts/internal/core/domain"
	"github.com/SscSPs/products_accounts/internal/dto"
	"github.com/SscSPs/products_accounts/internal/models"
	"github.com/google/uuid"
)

// MapToProductAccount converts a request into a domain ProductAccount.
// A missing id is replaced by a fresh UUID; the "Yes"/"No" flags become booleans.
func MapToProductAccount(r dto.ProductAccountRQRS) domain.ProductAccount {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	payInterest, _ := dto.ParseFlag(r.PayInterest)
	acceptsChecks, _ := dto.ParseFlag(r.AcceptsChecks)

	return domain.ProductAccount{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		MinimumBalance: r.MinimumBalance,
		PayInterest:    payInterest,
		AcceptsChecks:  acceptsChecks,
		State:          stateOrActive(r.State),
	}
}

// MapToProductAccountRQRS converts a domain ProductAccount into its response shape.
func MapToProductAccountRQRS(d domain.ProductAccount) dto.ProductAccountRQRS {
	return dto.ProductAccountRQRS{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		MinimumBalance: d.MinimumBalance,
		PayInterest:    dto.FormatFlag(d.PayInterest),
		AcceptsChecks:  dto.FormatFlag(d.AcceptsChecks),
		State:          string(d.State),
	}
}

func MapToProductAccountRQRSSlice(ds []domain.ProductAccount) []dto.ProductAccountRQRS {
	res := make([]dto.ProductAccountRQRS, len(ds))
	for i, d := range ds {
		res[i] = MapToProductAccountRQRS(d)
	}
	return res
}

// ToModelProductAccount converts a domain ProductAccount to a model ProductAccount
func ToModelProductAccount(d domain.ProductAccount) models.ProductAccount {
	return models.ProductAccount{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		MinimumBalance: d.MinimumBalance,
		PayInterest:    d.PayInterest,
		AcceptsChecks:  d.AcceptsChecks,
		State:          string(d.State),
	}
}

// ToDomainProductAccount converts a model ProductAccount to a domain ProductAccount
func ToDomainProductAccount(m models.ProductAccount) domain.ProductAccount {
	return domain.ProductAccount{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		MinimumBalance: m.MinimumBalance,
		PayInterest:    m.PayInterest,
		AcceptsChecks:  m.AcceptsChecks,
		State:          domain.State(m.State),
	}
}

func ToDomainProductAccountSlice(ms []models.ProductAccount) []domain.ProductAccount {
	ds := make([]domain.ProductAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProductAccount(m)
	}
	return ds
}
