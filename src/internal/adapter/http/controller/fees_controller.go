package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/go-chi/chi/v5"
)

type FeeQuoter interface {
	Quote(ctx context.Context, amount string, code string) (commons.Response[models.FeeQuoteResponse], error)
}

type FeesController struct {
	service FeeQuoter
}

func NewFeesController(service FeeQuoter) *FeesController {
	return &FeesController{service: service}
}

func (c *FeesController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/fees", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/quote", c.quote)
	})
}

func (c *FeesController) quote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	amount := r.URL.Query().Get("amount")
	code := r.URL.Query().Get("currency")

	response, err := c.service.Quote(r.Context(), amount, code)
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
