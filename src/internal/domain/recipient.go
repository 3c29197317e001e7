package domain

import "time"

// RecipientFavorite is a saved send target. The identifier is free-form
// (phone number or card reference), not a foreign key to another wallet.
type RecipientFavorite struct {
	ID                  string
	UserID              string
	RecipientName       string
	RecipientIdentifier string
	LastUsedAt          time.Time
	CreatedAt           time.Time
}
