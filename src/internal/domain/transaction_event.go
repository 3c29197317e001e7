package domain

import "time"

type TransactionEventType string

const (
	EventTransactionCreated   TransactionEventType = "transaction_created"
	EventTransactionCompleted TransactionEventType = "transaction_completed"
)

// TransactionEvent is an append-only audit entry. The orchestrator writes
// these but never reads them back.
type TransactionEvent struct {
	ID            int64
	TransactionID string
	EventType     TransactionEventType
	Details       string
	CreatedAt     time.Time
}
