package domain

import "time"

// Subscription is an entry in the email-subscription ledger. It is
// independent of User: subscribing does not require an account.
// Unsubscribing flips Active instead of deleting the record.
type Subscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
	Active       bool      `json:"active"`
}
