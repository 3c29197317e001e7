package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/payza/wallet-backend/src/internal/adapter/http/controller"
	"github.com/payza/wallet-backend/src/internal/adapter/http/middleware"
	"github.com/payza/wallet-backend/src/internal/adapter/http/router"
	"github.com/payza/wallet-backend/src/internal/adapter/repository/postgres"
	"github.com/payza/wallet-backend/src/internal/config"
	"github.com/payza/wallet-backend/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		cancel()
		log.Fatalf("open database: %v", err)
	}

	if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		cancel()
		log.Fatalf("run migrations: %v", err)
	}
	cancel()

	txManager := postgres.NewTxManager(db)
	userRepo := postgres.NewUserRepository(db)
	walletRepo := postgres.NewWalletRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	eventRepo := postgres.NewTransactionEventRepository(db)
	recipientRepo := postgres.NewRecipientRepository(db)

	feesService := services.NewFeesService()
	transferService := services.NewTransferService(txManager, walletRepo, transactionRepo, eventRepo, feesService)
	walletService := services.NewWalletService(walletRepo, transactionRepo)
	userService := services.NewUserService(txManager, userRepo, walletRepo, cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	recipientService := services.NewRecipientService(recipientRepo)

	authMiddleware := middleware.BearerAuth(cfg.JWTSecret, cfg.JWTIssuer)

	handler := router.New(
		controller.NewAuthController(userService),
		controller.NewWalletController(walletService),
		controller.NewTransactionController(transferService),
		controller.NewRecipientController(recipientService),
		controller.NewFeesController(feesService),
		authMiddleware,
		db,
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}

	if err := db.Close(); err != nil {
		log.Printf("close database: %v", err)
	}
}
