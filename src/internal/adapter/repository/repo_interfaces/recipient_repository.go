package repo_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/domain"
)

type RecipientRepository interface {
	ListFavorites(ctx context.Context, userID string, limit int) ([]domain.RecipientFavorite, error)
	UpsertFavorite(ctx context.Context, userID, recipientName, recipientIdentifier string) (domain.RecipientFavorite, error)
	DeleteFavorite(ctx context.Context, userID, favoriteID string) (bool, error)
}
