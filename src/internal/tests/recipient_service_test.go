package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/usecase/services"
)

type fakeRecipientRepo struct {
	favorites []domain.RecipientFavorite
	upserts   []domain.RecipientFavorite
	deleted   bool
}

func (r *fakeRecipientRepo) ListFavorites(ctx context.Context, userID string, limit int) ([]domain.RecipientFavorite, error) {
	return r.favorites, nil
}

func (r *fakeRecipientRepo) UpsertFavorite(ctx context.Context, userID, recipientName, recipientIdentifier string) (domain.RecipientFavorite, error) {
	favorite := domain.RecipientFavorite{
		ID:                  "f1",
		UserID:              userID,
		RecipientName:       recipientName,
		RecipientIdentifier: recipientIdentifier,
		LastUsedAt:          time.Now().UTC(),
		CreatedAt:           time.Now().UTC(),
	}
	r.upserts = append(r.upserts, favorite)
	return favorite, nil
}

func (r *fakeRecipientRepo) DeleteFavorite(ctx context.Context, userID, favoriteID string) (bool, error) {
	return r.deleted, nil
}

func TestRecipientServiceUpsertDefaultsNameToIdentifier(t *testing.T) {
	repo := &fakeRecipientRepo{}
	svc := services.NewRecipientService(repo)

	response, err := svc.UpsertFavorite(context.Background(), "user-1", models.UpsertRecipientRequest{
		RecipientIdentifier: "bob@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Data == nil || response.Data.RecipientName != "bob@example.com" {
		t.Fatalf("expected name to default to the identifier, got %+v", response.Data)
	}
}

func TestRecipientServiceUpsertValidationError(t *testing.T) {
	svc := services.NewRecipientService(&fakeRecipientRepo{})

	_, err := svc.UpsertFavorite(context.Background(), "user-1", models.UpsertRecipientRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty upsert request")
	}
}

func TestRecipientServiceDeleteNotFound(t *testing.T) {
	svc := services.NewRecipientService(&fakeRecipientRepo{deleted: false})

	_, err := svc.DeleteFavorite(context.Background(), "user-1", "f-missing")
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}
}
