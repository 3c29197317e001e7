package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/middleware"
	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransferService interface {
	CreateTransfer(ctx context.Context, userID string, req models.CreateTransactionRequest, idempotencyKey string) (commons.Response[models.CreateTransactionResponse], error)
	ListTransfers(ctx context.Context, userID string, query models.ListTransactionsQuery) (commons.Response[models.ListTransactionsResponse], error)
	GetTransfer(ctx context.Context, userID, id string) (commons.Response[models.TransactionResponse], error)
}

type TransactionController struct {
	service TransferService
}

func NewTransactionController(service TransferService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/transactions", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Post("/", c.create)
		r.Get("/", c.list)
		r.Get("/{id}", c.get)
	})
}

func (c *TransactionController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.CreateTransactionResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	idempotencyKey := r.Header.Get("Idempotency-Key")
	if err := models.ValidateIdempotencyKey(idempotencyKey); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.CreateTransactionResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	userID := middleware.UserID(r.Context())
	response, err := c.service.CreateTransfer(r.Context(), userID, req, idempotencyKey)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := transferErrorStatus(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	status := http.StatusCreated
	if response.Data != nil && response.Data.Reused {
		status = http.StatusOK
	}
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func (c *TransactionController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	query, err := models.ParseListTransactionsQuery(r.URL.Query())
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.ListTransactionsResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	userID := middleware.UserID(r.Context())
	response, err := c.service.ListTransfers(r.Context(), userID, query)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) get(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		response := commons.ErrorResponse[models.TransactionResponse]("validation failed", "Invalid transaction id")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	userID := middleware.UserID(r.Context())
	response, err := c.service.GetTransfer(r.Context(), userID, id)
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

func transferErrorStatus(err error, message string) int {
	switch {
	case errors.Is(err, commons.ErrWalletNotFound):
		return http.StatusNotFound
	case errors.Is(err, commons.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commons.ErrInvalidAmount):
		return http.StatusBadRequest
	case message == "validation failed":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
