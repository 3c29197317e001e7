package service_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
)

type TransferService interface {
	CreateTransfer(ctx context.Context, userID string, req models.CreateTransactionRequest, idempotencyKey string) (commons.Response[models.CreateTransactionResponse], error)
	ListTransfers(ctx context.Context, userID string, query models.ListTransactionsQuery) (commons.Response[models.ListTransactionsResponse], error)
	GetTransfer(ctx context.Context, userID, id string) (commons.Response[models.TransactionResponse], error)
}
