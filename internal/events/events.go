package events

import "time"

// Event types
const (
	InterestRateCreated     = "interest_rate.created"
	InterestRateUpdated     = "interest_rate.updated"
	InterestRateInactivated = "interest_rate.inactivated"

	ProductAccountCreated     = "product_account.created"
	ProductAccountUpdated     = "product_account.updated"
	ProductAccountInactivated = "product_account.inactivated"
)

// Stream names
const (
	InterestRateEventsStream   = "interest_rate.events"
	ProductAccountEventsStream = "product_account.events"
)

// Event is the envelope written to a stream entry.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}
