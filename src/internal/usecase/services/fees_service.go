package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/payza/wallet-backend/src/internal/adapter/http/models"
	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/currency"
	"github.com/payza/wallet-backend/src/internal/logger"
	"github.com/payza/wallet-backend/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// feePrecision is the fractional-digit count fee amounts are rounded to.
// Eight digits covers the smallest crypto unit the ledger stores.
const feePrecision = 8

var _ service_interfaces.FeesService = (*FeesService)(nil)

type FeesService struct{}

func NewFeesService() *FeesService {
	return &FeesService{}
}

func (s *FeesService) Compute(amount decimal.Decimal, code string) (decimal.Decimal, decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, commons.ErrInvalidAmount
	}

	fee := amount.Mul(currency.FeeRate(code)).Round(feePrecision)
	net := amount.Sub(fee)
	if net.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, commons.ErrInvalidAmount
	}

	return fee, net, nil
}

func (s *FeesService) Quote(ctx context.Context, amount string, code string) (commons.Response[models.FeeQuoteResponse], error) {
	_ = ctx

	normalized := currency.Normalize(code)
	if !currency.IsSupported(normalized) {
		err := fmt.Errorf("currency is not supported")
		return commons.ErrorResponse[models.FeeQuoteResponse]("validation failed", err.Error()), err
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		logger.Error("fees service quote invalid amount", err, nil)
		return commons.ErrorResponse[models.FeeQuoteResponse]("validation failed", "amount must be numeric"), err
	}

	fee, net, err := s.Compute(value, normalized)
	if err != nil {
		return commons.ErrorResponse[models.FeeQuoteResponse]("validation failed", commons.ErrInvalidAmount.Error()), err
	}

	response := models.FeeQuoteResponse{
		Amount:    value,
		Currency:  normalized,
		FeeRate:   currency.FeeRate(normalized),
		FeeAmount: fee,
		NetAmount: net,
	}

	return commons.SuccessResponse("fee quote computed", response), nil
}
