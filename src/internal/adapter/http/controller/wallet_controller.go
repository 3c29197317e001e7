package controller

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/middleware"
	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/go-chi/chi/v5"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

type WalletService interface {
	Balances(ctx context.Context, userID string) (commons.Response[[]models.WalletBalance], error)
	Overview(ctx context.Context, userID string, recentLimit int) (commons.Response[models.WalletOverviewResponse], error)
}

type WalletController struct {
	service WalletService
}

func NewWalletController(service WalletService) *WalletController {
	return &WalletController{service: service}
}

func (c *WalletController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/wallet", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/balances", c.balances)
		r.Get("/overview", c.overview)
	})
}

func (c *WalletController) balances(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID := middleware.UserID(r.Context())
	response, err := c.service.Balances(r.Context(), userID)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *WalletController) overview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	limit := defaultRecentLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxRecentLimit {
			response := commons.ErrorResponse[models.WalletOverviewResponse]("validation failed", "limit must be an integer between 1 and 50")
			writeJSON(w, http.StatusBadRequest, response)
			logResponse(r, http.StatusBadRequest, response, start)
			return
		}
		limit = parsed
	}

	userID := middleware.UserID(r.Context())
	response, err := c.service.Overview(r.Context(), userID, limit)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
