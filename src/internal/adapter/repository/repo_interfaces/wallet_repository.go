package repo_interfaces

import (
	"context"

	"github.com/payza/wallet-backend/src/internal/domain"
	"github.com/shopspring/decimal"
)

type WalletRepository interface {
	// GetActiveForUpdate returns the active wallet for (userID, currency)
	// with an exclusive row lock scoped to q's transaction. Concurrent debits
	// against the same wallet block until the holder commits or rolls back.
	GetActiveForUpdate(ctx context.Context, q Querier, userID, currency string) (domain.Wallet, error)

	// Debit decrements the balance unconditionally; the caller must have
	// validated sufficiency under the same lock.
	Debit(ctx context.Context, q Querier, walletID string, amount decimal.Decimal) error

	// CreateDefaults provisions one zero-balance wallet per currency for a
	// newly registered user.
	CreateDefaults(ctx context.Context, q Querier, userID string, currencies []string) error

	ListByUser(ctx context.Context, userID string) ([]domain.Wallet, error)
}
