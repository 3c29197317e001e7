package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/payza/wallet-backend/src/internal/adapter/repository/repo_interfaces"
	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/payza/wallet-backend/src/internal/logger"
)

type TransactionEventRepository struct {
	db *sql.DB
}

func NewTransactionEventRepository(db *sql.DB) *TransactionEventRepository {
	return &TransactionEventRepository{db: db}
}

func (r *TransactionEventRepository) Append(ctx context.Context, q repo_interfaces.Querier, transactionID string, eventType domain.TransactionEventType, details any) error {
	payload, err := json.Marshal(logger.SanitizePayload(details))
	if err != nil {
		return fmt.Errorf("encode event details: %w", err)
	}

	const query = `
INSERT INTO transaction_events (transaction_id, event_type, details)
VALUES ($1, $2, $3::jsonb)`

	if _, err := q.ExecContext(ctx, query, transactionID, eventType, string(payload)); err != nil {
		logger.Error("transaction event repository append failed", err, logger.Fields{
			"transactionId": transactionID,
			"eventType":     eventType,
		})
		return fmt.Errorf("append transaction event: %w", err)
	}

	return nil
}
