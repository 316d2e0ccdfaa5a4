package models

import (
	"github.com/shopspring/decimal"
)

// InterestRate is the interest_rates row.
type InterestRate struct {
	ID           int             `db:"interest_rate_id"`
	Name         string          `db:"name"`
	InterestRate decimal.Decimal `db:"interest_rate"`
	State        string          `db:"state"`
}
