package models

import (
	"github.com/shopspring/decimal"
)

// ProductAccount is the product_accounts row.
type ProductAccount struct {
	ID             string          `db:"product_account_id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	MinimumBalance decimal.Decimal `db:"minimum_balance"`
	PayInterest    bool            `db:"pay_interest"`
	AcceptsChecks  bool            `db:"accepts_checks"`
	State          string          `db:"state"`
}
