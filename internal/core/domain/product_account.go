package domain

import (
	"github.com/shopspring/decimal"
)

// ProductAccount is the definition of an account product offered by the bank.
type ProductAccount struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	MinimumBalance decimal.Decimal `json:"minimumBalance"`
	PayInterest    bool            `json:"payInterest"`
	AcceptsChecks  bool            `json:"acceptsChecks"`
	State          State           `json:"state"`
}
