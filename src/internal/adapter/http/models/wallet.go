package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletBalance struct {
	ID       string          `json:"id"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
}

type WalletOverviewSummary struct {
	TotalBalanceUSD decimal.Decimal `json:"totalBalanceUsd"`
}

type RecentTransaction struct {
	ID                  string          `json:"id"`
	Type                string          `json:"type"`
	Description         string          `json:"description"`
	Method              string          `json:"method"`
	Date                time.Time       `json:"date"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	Status              string          `json:"status"`
}

type WalletOverviewResponse struct {
	Summary             WalletOverviewSummary `json:"summary"`
	TraditionalBalances []WalletBalance       `json:"traditionalBalances"`
	CryptoBalances      []WalletBalance       `json:"cryptoBalances"`
	RecentTransactions  []RecentTransaction   `json:"recentTransactions"`
}
