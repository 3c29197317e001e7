package services

import (
	"context"
	"strings"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/logger"
	"github.com/payza/wallet-backend/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.RecipientService = (*RecipientService)(nil)

type RecipientService struct {
	recipientRepo repo_interfaces.RecipientRepository
}

func NewRecipientService(recipientRepo repo_interfaces.RecipientRepository) *RecipientService {
	return &RecipientService{recipientRepo: recipientRepo}
}

func (s *RecipientService) ListFavorites(ctx context.Context, userID string, limit int) (commons.Response[[]models.RecipientFavoriteResponse], error) {
	favorites, err := s.recipientRepo.ListFavorites(ctx, userID, limit)
	if err != nil {
		logger.Error("recipient service list failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[[]models.RecipientFavoriteResponse]("failed to list recipients", "Unable to fetch recipients right now"), err
	}

	rows := make([]models.RecipientFavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		rows = append(rows, mapFavoriteResponse(favorite))
	}

	return commons.SuccessResponse("recipients fetched", rows), nil
}

func (s *RecipientService) UpsertFavorite(ctx context.Context, userID string, req models.UpsertRecipientRequest) (commons.Response[models.RecipientFavoriteResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.RecipientFavoriteResponse]("validation failed", err.Error()), err
	}

	identifier := strings.TrimSpace(req.RecipientIdentifier)
	name := strings.TrimSpace(req.RecipientName)
	if name == "" {
		name = identifier
	}

	favorite, err := s.recipientRepo.UpsertFavorite(ctx, userID, name, identifier)
	if err != nil {
		logger.Error("recipient service upsert failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.RecipientFavoriteResponse]("failed to save recipient", "Unable to save recipient right now"), err
	}

	return commons.SuccessResponse("recipient saved", mapFavoriteResponse(favorite)), nil
}

func (s *RecipientService) DeleteFavorite(ctx context.Context, userID, favoriteID string) (commons.Response[struct{}], error) {
	deleted, err := s.recipientRepo.DeleteFavorite(ctx, userID, favoriteID)
	if err != nil {
		logger.Error("recipient service delete failed", err, logger.Fields{
			"userId":     userID,
			"favoriteId": favoriteID,
		})
		return commons.ErrorResponse[struct{}]("failed to delete recipient", "Unable to delete recipient right now"), err
	}
	if !deleted {
		return commons.ErrorResponse[struct{}]("Recipient not found"), commons.ErrRecordNotFound
	}

	return commons.SuccessResponse("recipient deleted", struct{}{}), nil
}

func mapFavoriteResponse(favorite domain.RecipientFavorite) models.RecipientFavoriteResponse {
	return models.RecipientFavoriteResponse{
		ID:                  favorite.ID,
		RecipientName:       favorite.RecipientName,
		RecipientIdentifier: favorite.RecipientIdentifier,
		LastUsedAt:          favorite.LastUsedAt,
		CreatedAt:           favorite.CreatedAt,
	}
}
