package domain

import (
	"github.com/shopspring/decimal"
)

// InterestRate is a named rate that product accounts can pay on balances.
// ID is assigned by the store on first save and never changes afterwards.
type InterestRate struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	InterestRate decimal.Decimal `json:"interestRate"`
	State        State           `json:"state"`
}
