package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/middleware"
	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	defaultFavoritesLimit = 20
	maxFavoritesLimit     = 50
)

type RecipientService interface {
	ListFavorites(ctx context.Context, userID string, limit int) (commons.Response[[]models.RecipientFavoriteResponse], error)
	UpsertFavorite(ctx context.Context, userID string, req models.UpsertRecipientRequest) (commons.Response[models.RecipientFavoriteResponse], error)
	DeleteFavorite(ctx context.Context, userID, favoriteID string) (commons.Response[struct{}], error)
}

type RecipientController struct {
	service RecipientService
}

func NewRecipientController(service RecipientService) *RecipientController {
	return &RecipientController{service: service}
}

func (c *RecipientController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/recipients", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/", c.list)
		r.Post("/", c.upsert)
		r.Delete("/{id}", c.remove)
	})
}

func (c *RecipientController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	limit := defaultFavoritesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxFavoritesLimit {
			response := commons.ErrorResponse[[]models.RecipientFavoriteResponse]("validation failed", "limit must be an integer between 1 and 50")
			writeJSON(w, http.StatusBadRequest, response)
			logResponse(r, http.StatusBadRequest, response, start)
			return
		}
		limit = parsed
	}

	userID := middleware.UserID(r.Context())
	response, err := c.service.ListFavorites(r.Context(), userID, limit)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *RecipientController) upsert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.UpsertRecipientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.RecipientFavoriteResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	userID := middleware.UserID(r.Context())
	response, err := c.service.UpsertFavorite(r.Context(), userID, req)
	if err != nil {
		status := http.StatusInternalServerError
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		} else {
			logError(r, err, nil)
		}
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *RecipientController) remove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		response := commons.ErrorResponse[struct{}]("validation failed", "Invalid recipient id")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	userID := middleware.UserID(r.Context())
	response, err := c.service.DeleteFavorite(r.Context(), userID, id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, commons.ErrRecordNotFound) {
			status = http.StatusNotFound
		} else {
			logError(r, err, nil)
		}
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
