package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/go-chi/chi/v5"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.AuthResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AuthResponse], error)
}

type AuthController struct {
	service UserService
}

func NewAuthController(service UserService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) RegisterRoutes(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", c.register)
		r.Post("/login", c.login)
	})
}

func (c *AuthController) register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AuthResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.Register(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, commons.ErrEmailAlreadyUsed):
			status = http.StatusConflict
		case response.Message == "validation failed":
			status = http.StatusBadRequest
		default:
			logError(r, err, nil)
		}
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AuthController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AuthResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.Login(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, commons.ErrInvalidCredentials):
			status = http.StatusUnauthorized
		case response.Message == "validation failed":
			status = http.StatusBadRequest
		default:
			logError(r, err, nil)
		}
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
