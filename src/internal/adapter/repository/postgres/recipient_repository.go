package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/logger"
)

type RecipientRepository struct {
	db *sql.DB
}

func NewRecipientRepository(db *sql.DB) *RecipientRepository {
	return &RecipientRepository{db: db}
}

func (r *RecipientRepository) ListFavorites(ctx context.Context, userID string, limit int) ([]domain.RecipientFavorite, error) {
	const query = `
SELECT id, user_id, recipient_name, recipient_identifier, last_used_at, created_at
FROM recipient_favorites
WHERE user_id = $1
ORDER BY last_used_at DESC
LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		logger.Error("recipient repository list failed", err, logger.Fields{
			"userId": userID,
		})
		return nil, fmt.Errorf("list recipient favorites: %w", err)
	}
	defer rows.Close()

	var favorites []domain.RecipientFavorite
	for rows.Next() {
		var favorite domain.RecipientFavorite
		if err := rows.Scan(
			&favorite.ID,
			&favorite.UserID,
			&favorite.RecipientName,
			&favorite.RecipientIdentifier,
			&favorite.LastUsedAt,
			&favorite.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recipient favorite: %w", err)
		}
		favorites = append(favorites, favorite)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipient favorites: %w", err)
	}

	return favorites, nil
}

func (r *RecipientRepository) UpsertFavorite(ctx context.Context, userID, recipientName, recipientIdentifier string) (domain.RecipientFavorite, error) {
	const query = `
INSERT INTO recipient_favorites (user_id, recipient_name, recipient_identifier, last_used_at, updated_at)
VALUES ($1, $2, $3, NOW(), NOW())
ON CONFLICT (user_id, recipient_identifier)
DO UPDATE SET
	recipient_name = EXCLUDED.recipient_name,
	last_used_at = NOW(),
	updated_at = NOW()
RETURNING id, user_id, recipient_name, recipient_identifier, last_used_at, created_at`

	var favorite domain.RecipientFavorite
	if err := r.db.QueryRowContext(ctx, query, userID, recipientName, recipientIdentifier).Scan(
		&favorite.ID,
		&favorite.UserID,
		&favorite.RecipientName,
		&favorite.RecipientIdentifier,
		&favorite.LastUsedAt,
		&favorite.CreatedAt,
	); err != nil {
		logger.Error("recipient repository upsert failed", err, logger.Fields{
			"userId": userID,
		})
		return domain.RecipientFavorite{}, fmt.Errorf("upsert recipient favorite: %w", err)
	}

	return favorite, nil
}

func (r *RecipientRepository) DeleteFavorite(ctx context.Context, userID, favoriteID string) (bool, error) {
	const query = `
DELETE FROM recipient_favorites
WHERE user_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, favoriteID)
	if err != nil {
		logger.Error("recipient repository delete failed", err, logger.Fields{
			"userId":     userID,
			"favoriteId": favoriteID,
		})
		return false, fmt.Errorf("delete recipient favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete recipient favorite rows affected: %w", err)
	}

	return rows > 0, nil
}
