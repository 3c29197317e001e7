package service_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
)

type RecipientService interface {
	ListFavorites(ctx context.Context, userID string, limit int) (commons.Response[[]models.RecipientFavoriteResponse], error)
	UpsertFavorite(ctx context.Context, userID string, req models.UpsertRecipientRequest) (commons.Response[models.RecipientFavoriteResponse], error)
	DeleteFavorite(ctx context.Context, userID, favoriteID string) (commons.Response[struct{}], error)
}
