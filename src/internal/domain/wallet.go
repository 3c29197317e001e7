package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletStatus string

const (
	WalletStatusActive WalletStatus = "active"
	WalletStatusFrozen WalletStatus = "frozen"
	WalletStatusClosed WalletStatus = "closed"
)

// Wallet is the per-(user, currency) balance record. At most one wallet
// exists per pair; the balance is mutated only by the transfer debit step.
type Wallet struct {
	ID        string
	UserID    string
	Currency  string
	Balance   decimal.Decimal
	Status    WalletStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
