package models

import "github.com/shopspring/decimal"

type FeeQuoteResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	FeeRate   decimal.Decimal `json:"feeRate"`
	FeeAmount decimal.Decimal `json:"feeAmount"`
	NetAmount decimal.Decimal `json:"netAmount"`
}
