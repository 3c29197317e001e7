package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/payza/wallet-backend/src/internal/commons"
	"github.com/payza/wallet-backend/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestFeesServiceComputeFiat(t *testing.T) {
	svc := services.NewFeesService()

	fee, net, err := svc.Compute(decimal.RequireFromString("200"), "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fee.Equal(decimal.RequireFromString("1")) {
		t.Fatalf("expected 0.5%% fee of 1, got %s", fee)
	}
	if !net.Equal(decimal.RequireFromString("199")) {
		t.Fatalf("expected net 199, got %s", net)
	}
}

func TestFeesServiceComputeCrypto(t *testing.T) {
	svc := services.NewFeesService()

	fee, net, err := svc.Compute(decimal.RequireFromString("0.5"), "BTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fee.Equal(decimal.RequireFromString("0.005")) {
		t.Fatalf("expected 1%% fee of 0.005, got %s", fee)
	}
	if !fee.Add(net).Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("fee %s + net %s must equal the gross amount", fee, net)
	}
}

func TestFeesServiceComputeRoundsToEightPlaces(t *testing.T) {
	svc := services.NewFeesService()

	fee, net, err := svc.Compute(decimal.RequireFromString("0.00000123"), "ETH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fee.Exponent() < -8 {
		t.Fatalf("fee %s carries more than 8 fractional digits", fee)
	}
	if net.LessThanOrEqual(decimal.Zero) {
		t.Fatalf("net %s must stay positive", net)
	}
}

func TestFeesServiceComputeRejectsNonPositive(t *testing.T) {
	svc := services.NewFeesService()

	for _, raw := range []string{"0", "-5"} {
		if _, _, err := svc.Compute(decimal.RequireFromString(raw), "USD"); !errors.Is(err, commons.ErrInvalidAmount) {
			t.Fatalf("expected invalid-amount for %s, got %v", raw, err)
		}
	}
}

func TestFeesServiceQuote(t *testing.T) {
	svc := services.NewFeesService()

	response, err := svc.Quote(context.Background(), "100", "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Data == nil {
		t.Fatal("expected quote data")
	}
	if response.Data.Currency != "USD" {
		t.Fatalf("expected normalized currency USD, got %q", response.Data.Currency)
	}
	if !response.Data.FeeAmount.Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("expected fee 0.5, got %s", response.Data.FeeAmount)
	}
}

func TestFeesServiceQuoteUnsupportedCurrency(t *testing.T) {
	svc := services.NewFeesService()

	if _, err := svc.Quote(context.Background(), "100", "XYZ"); err == nil {
		t.Fatal("expected an error for an unsupported currency")
	}
}

func TestFeesServiceQuoteNonNumericAmount(t *testing.T) {
	svc := services.NewFeesService()

	if _, err := svc.Quote(context.Background(), "ten", "USD"); err == nil {
		t.Fatal("expected an error for a non-numeric amount")
	}
}
