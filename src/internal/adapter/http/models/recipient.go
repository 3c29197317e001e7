package models

import (
	"errors"
	"strings"
	"time"
)

type UpsertRecipientRequest struct {
	RecipientName       string `json:"recipientName"`
	RecipientIdentifier string `json:"recipientIdentifier"`
}

func (r UpsertRecipientRequest) Validate() error {
	var errs []string

	identifier := strings.TrimSpace(r.RecipientIdentifier)
	if len(identifier) < 2 || len(identifier) > 255 {
		errs = append(errs, "recipientIdentifier must be between 2 and 255 characters")
	} else if !recipientPattern.MatchString(identifier) {
		errs = append(errs, "recipientIdentifier contains invalid characters")
	}

	if name := strings.TrimSpace(r.RecipientName); name != "" && len(name) > 255 {
		errs = append(errs, "recipientName must be at most 255 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type RecipientFavoriteResponse struct {
	ID                  string    `json:"id"`
	RecipientName       string    `json:"recipientName"`
	RecipientIdentifier string    `json:"recipientIdentifier"`
	LastUsedAt          time.Time `json:"lastUsedAt"`
	CreatedAt           time.Time `json:"createdAt"`
}
