package service_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
)

type WalletService interface {
	Balances(ctx context.Context, userID string) (commons.Response[[]models.WalletBalance], error)
	Overview(ctx context.Context, userID string, recentLimit int) (commons.Response[models.WalletOverviewResponse], error)
}
