package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusSuccess    TransactionStatus = "success"
	TransactionStatusFailed     TransactionStatus = "failed"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusProcessing, TransactionStatusSuccess, TransactionStatusFailed:
		return true
	}
	return false
}

// Transaction is one immutable ledger row. Settlement is synchronous, so rows
// are inserted directly in a terminal status and never mutated afterwards.
// Amount, FeeAmount and NetAmount satisfy FeeAmount + NetAmount = Amount to
// stored precision.
type Transaction struct {
	ID                  string
	SenderUserID        string
	RecipientIdentifier string
	SourceCurrency      string
	DestinationCurrency string
	Amount              decimal.Decimal
	FeeAmount           decimal.Decimal
	NetAmount           decimal.Decimal
	Status              TransactionStatus
	SourceWalletID      string
	IdempotencyKey      *string
	CreatedAt           time.Time
}
