package repo_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/domain"
)

type TransactionEventRepository interface {
	// Append records one audit event. Details is JSON-encoded before insert;
	// multiple events per transaction are expected.
	Append(ctx context.Context, q Querier, transactionID string, eventType domain.TransactionEventType, details any) error
}
