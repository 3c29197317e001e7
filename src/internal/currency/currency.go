// Package currency holds the static currency tables: the fiat/crypto split,
// the platform fee rates and the USD display rates. Everything here is pure.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindFiat   Kind = "fiat"
	KindCrypto Kind = "crypto"
)

var fiatCurrencies = map[string]struct{}{
	"USD": {},
	"UZS": {},
	"EUR": {},
	"GBP": {},
	"JPY": {},
	"AUD": {},
	"CAD": {},
	"CHF": {},
}

var cryptoCurrencies = map[string]struct{}{
	"USDT": {},
	"BTC":  {},
	"ETH":  {},
}

// Every newly registered user gets one zero-balance wallet per entry.
var DefaultWalletCurrencies = []string{"USD", "UZS", "USDT", "BTC"}

var (
	fiatFeeRate   = decimal.NewFromFloat(0.005)
	cryptoFeeRate = decimal.NewFromFloat(0.01)
)

// Approximate spot rates used only for USD-equivalent display totals; the
// ledger never stores converted amounts.
var usdRates = map[string]decimal.Decimal{
	"USD":  decimal.NewFromInt(1),
	"UZS":  decimal.NewFromInt(1).Div(decimal.NewFromInt(12650)),
	"EUR":  decimal.NewFromFloat(1.08),
	"GBP":  decimal.NewFromFloat(1.27),
	"JPY":  decimal.NewFromFloat(0.0067),
	"AUD":  decimal.NewFromFloat(0.64),
	"CAD":  decimal.NewFromFloat(0.74),
	"CHF":  decimal.NewFromFloat(1.1),
	"USDT": decimal.NewFromInt(1),
	"BTC":  decimal.NewFromInt(45000),
	"ETH":  decimal.NewFromInt(2800),
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func IsFiat(code string) bool {
	_, ok := fiatCurrencies[Normalize(code)]
	return ok
}

func IsCrypto(code string) bool {
	_, ok := cryptoCurrencies[Normalize(code)]
	return ok
}

// IsSupported reports whether the code belongs to either currency set.
// Transfer requests for unsupported codes are rejected at the API boundary.
func IsSupported(code string) bool {
	return IsFiat(code) || IsCrypto(code)
}

// Classify maps a currency code to its kind. Unknown codes classify as fiat;
// callers that care must gate on IsSupported first.
func Classify(code string) Kind {
	if IsCrypto(code) {
		return KindCrypto
	}
	return KindFiat
}

// FeeRate returns the platform fee rate: 0.5% for fiat, 1% for crypto.
func FeeRate(code string) decimal.Decimal {
	if Classify(code) == KindCrypto {
		return cryptoFeeRate
	}
	return fiatFeeRate
}

// ToUSD converts an amount using the static display rates. Unknown codes
// contribute zero so a single odd wallet cannot poison an overview total.
func ToUSD(amount decimal.Decimal, code string) decimal.Decimal {
	rate, ok := usdRates[Normalize(code)]
	if !ok {
		return decimal.Zero
	}
	return amount.Mul(rate)
}
