package router

import (
	"context"
	"net/http"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AuthRouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

type WalletRouteRegistrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

type TransactionRouteRegistrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

type RecipientRouteRegistrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

type FeesRouteRegistrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

// Pinger reports whether the backing store is reachable. Satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func New(
	authController AuthRouteRegistrar,
	walletController WalletRouteRegistrar,
	transactionController TransactionRouteRegistrar,
	recipientController RecipientRouteRegistrar,
	feesController FeesRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
	db Pinger,
) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)

	registerHealthRoutes(r, db)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if authController != nil {
		authController.RegisterRoutes(r)
	}
	if walletController != nil {
		walletController.RegisterRoutes(r, authMiddleware)
	}
	if transactionController != nil {
		transactionController.RegisterRoutes(r, authMiddleware)
	}
	if recipientController != nil {
		recipientController.RegisterRoutes(r, authMiddleware)
	}
	if feesController != nil {
		feesController.RegisterRoutes(r, authMiddleware)
	}

	return r
}

func registerHealthRoutes(r chi.Router, db Pinger) {
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if db != nil {
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded","database":"unreachable"}`))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}
