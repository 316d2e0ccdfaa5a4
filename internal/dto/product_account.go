package dto

import (
	"fmt"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/SscSPs/products_accounts/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductAccountRQRS is the request and response shape of a product account.
// The flags travel as "Yes"/"No" text.
type ProductAccountRQRS struct {
	ID             string          `json:"id" binding:"omitempty,max=36"`
	Name           string          `json:"name" binding:"required,max=100"`
	Description    string          `json:"description" binding:"max=500"`
	MinimumBalance decimal.Decimal `json:"minimumBalance"`
	PayInterest    string          `json:"payInterest" binding:"required,yesno"`
	AcceptsChecks  string          `json:"acceptsChecks" binding:"required,yesno"`
	State          string          `json:"state" binding:"omitempty,oneof=ACT INA"`
}

// Validate checks the values against the domain rules, independent of gin binding.
func (r ProductAccountRQRS) Validate() error {
	if r.MinimumBalance.IsNegative() {
		return fmt.Errorf("%w: minimum balance must not be negative", apperrors.ErrValidation)
	}
	if r.State != "" && !domain.State(r.State).IsValid() {
		return fmt.Errorf("%w: unknown state %q", apperrors.ErrValidation, r.State)
	}
	return nil
}
