package dto

import (
	"fmt"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/SscSPs/products_accounts/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InterestRateRQRS is the request and response shape of an interest rate.
type InterestRateRQRS struct {
	ID           int             `json:"id"`
	Name         string          `json:"name" binding:"required,max=100"`
	InterestRate decimal.Decimal `json:"interestRate"`
	State        string          `json:"state" binding:"omitempty,oneof=ACT INA"`
}

// Validate checks the values against the domain rules, independent of gin binding.
func (r InterestRateRQRS) Validate() error {
	if r.InterestRate.IsNegative() {
		return fmt.Errorf("%w: interest rate must not be negative", apperrors.ErrValidation)
	}
	if r.State != "" && !domain.State(r.State).IsValid() {
		return fmt.Errorf("%w: unknown state %q", apperrors.ErrValidation, r.State)
	}
	return nil
}
