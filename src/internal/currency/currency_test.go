package currency_test

import (
	"testing"

	"github.com/payza/wallet-backend/src/internal/currency"
	"github.com/shopspring/decimal"
)

func TestNormalize(t *testing.T) {
	if got := currency.Normalize("  usd "); got != "USD" {
		t.Fatalf("expected USD, got %q", got)
	}
}

func TestIsSupported(t *testing.T) {
	for _, code := range []string{"USD", "UZS", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "USDT", "BTC", "ETH"} {
		if !currency.IsSupported(code) {
			t.Fatalf("%s should be supported", code)
		}
	}
	for _, code := range []string{"XYZ", "DOGE", ""} {
		if currency.IsSupported(code) {
			t.Fatalf("%s should not be supported", code)
		}
	}
}

func TestClassify(t *testing.T) {
	if currency.Classify("btc") != currency.KindCrypto {
		t.Fatal("btc should classify as crypto")
	}
	if currency.Classify("EUR") != currency.KindFiat {
		t.Fatal("EUR should classify as fiat")
	}
}

func TestFeeRate(t *testing.T) {
	if !currency.FeeRate("USD").Equal(decimal.NewFromFloat(0.005)) {
		t.Fatalf("expected 0.5%% fiat rate, got %s", currency.FeeRate("USD"))
	}
	if !currency.FeeRate("ETH").Equal(decimal.NewFromFloat(0.01)) {
		t.Fatalf("expected 1%% crypto rate, got %s", currency.FeeRate("ETH"))
	}
}

func TestToUSD(t *testing.T) {
	if !currency.ToUSD(decimal.NewFromInt(2), "usdt").Equal(decimal.NewFromInt(2)) {
		t.Fatal("USDT should convert at par")
	}
	if !currency.ToUSD(decimal.NewFromInt(5), "XYZ").IsZero() {
		t.Fatal("unknown codes must contribute zero")
	}
}

func TestDefaultWalletCurrenciesAreSupported(t *testing.T) {
	for _, code := range currency.DefaultWalletCurrencies {
		if !currency.IsSupported(code) {
			t.Fatalf("default wallet currency %s is not in a supported set", code)
		}
	}
}
