package service_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/shopspring/decimal"
)

type FeesService interface {
	// Compute returns (fee, net) for a gross amount in the given currency.
	// fee is rounded to 8 decimal places; net = gross - fee. Fails with
	// commons.ErrInvalidAmount when the net would be zero or negative.
	Compute(amount decimal.Decimal, code string) (decimal.Decimal, decimal.Decimal, error)

	Quote(ctx context.Context, amount string, code string) (commons.Response[models.FeeQuoteResponse], error)
}
