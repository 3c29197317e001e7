package repo_interfaces

import (
	"context"
	"time"

	"github.com/payza/wallet-backend/src/internal/domain"
)

type TransactionFilter struct {
	Status   domain.TransactionStatus
	Currency string
	Search   string
	From     *time.Time
	To       *time.Time
}

type Page struct {
	Limit  int
	Offset int
}

type TransactionRepository interface {
	// Create appends one ledger row. The storage layer enforces uniqueness of
	// (sender_user_id, idempotency_key); a duplicate insert fails with a
	// unique-constraint violation rather than producing a second row.
	Create(ctx context.Context, q Querier, transaction domain.Transaction) (domain.Transaction, error)

	// FindByIdempotencyKey resolves a prior transaction for (userID, key).
	// A nil Querier runs the lookup on the pool, outside any open unit of
	// work; that is what the post-conflict fallback needs.
	FindByIdempotencyKey(ctx context.Context, q Querier, userID, key string) (domain.Transaction, error)

	List(ctx context.Context, userID string, filter TransactionFilter, page Page) ([]domain.Transaction, int, error)

	GetByID(ctx context.Context, userID, id string) (domain.Transaction, error)
}
